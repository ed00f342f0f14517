package template

import (
	"os"
	"path/filepath"
	"regexp"
)

// fragmentPattern matches an inclusion directive: {{{ path }}}.
// The path capture is non-greedy so multiple directives on one line stay
// separate; surrounding whitespace is trimmed by the pattern itself.
var fragmentPattern = regexp.MustCompile(`\{\{\{\s*(.+?)\s*\}\}\}`)

// ResolveFragments expands every {{{ path }}} directive in text, splicing in
// the referenced file's content with its own directives recursively
// expanded. Relative references resolve against the directory containing
// basePath, so nested fragments reference paths relative to their own
// location and a fragment library can be relocated wholesale.
//
// Text without directives passes through unchanged, and re-resolving
// already-expanded text is the identity.
func ResolveFragments(text, basePath string) (string, error) {
	visiting := map[string]bool{canonical(basePath): true}
	return resolveFragments(text, basePath, visiting, []string{basePath})
}

func resolveFragments(text, basePath string, visiting map[string]bool, chain []string) (string, error) {
	matches := fragmentPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, nil
	}

	baseDir := filepath.Dir(basePath)
	var out []byte
	last := 0
	for _, m := range matches {
		out = append(out, text[last:m[0]]...)
		last = m[1]

		ref := text[m[2]:m[3]]
		path := ref
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		key := canonical(path)
		if visiting[key] {
			return "", &CyclicInclusionError{Path: path, Chain: append(chain, path)}
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return "", &MissingFragmentError{Path: path, IncludedFrom: basePath, Err: err}
		}

		visiting[key] = true
		expanded, err := resolveFragments(string(data), path, visiting, append(chain, path))
		delete(visiting, key)
		if err != nil {
			return "", err
		}
		out = append(out, expanded...)
	}
	out = append(out, text[last:]...)

	return string(out), nil
}

// canonical normalizes a path for cycle bookkeeping. Symlinked aliases of
// the same file are not detected; the guard covers the textual path only.
func canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
