// Package walk discovers template files under root directories and mirrors
// rendered output into an output tree.
package walk

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// TemplateExt is the extension identifying rendering targets.
const TemplateExt = ".md"

// Entry identifies one template file: its full path and its path relative
// to the root it was discovered under. Rel doubles as the output-relative
// path, so the output tree mirrors the input tree.
type Entry struct {
	Path string
	Rel  string
}

// RenderFunc produces the final text for one template file.
type RenderFunc func(templatePath string) (string, error)

// NotADirectoryError reports a root path that does not name a directory.
type NotADirectoryError struct {
	Path string
}

// Error implements the error interface.
func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("not a directory: %s", e.Path)
}

// EnsureDirectories verifies that every path names an existing directory.
func EnsureDirectories(paths []string) error {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			return &NotADirectoryError{Path: path}
		}
	}
	return nil
}

// Templates lists the template files under root in lexical path order.
func Templates(root string) ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking template directory %s: %w", root, err)
		}
		if d.IsDir() || filepath.Ext(path) != TemplateExt {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("relativizing %s against %s: %w", path, root, err)
		}
		entries = append(entries, Entry{Path: path, Rel: rel})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Mirror renders every template under each root and writes the result to
// the mirrored relative path under outputRoot, creating directories as
// needed. onFile, if non-nil, is called after each successful write. The
// first error aborts the run; a template that fails to render produces no
// output file.
func Mirror(roots []string, outputRoot string, render RenderFunc, onFile func(Entry)) error {
	for _, root := range roots {
		entries, err := Templates(root)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			text, err := render(entry.Path)
			if err != nil {
				return err
			}

			outPath := filepath.Join(outputRoot, entry.Rel)
			if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
				return fmt.Errorf("creating output directory for %s: %w", entry.Rel, err)
			}
			if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}

			if onFile != nil {
				onFile(entry)
			}
		}
	}
	return nil
}
