// Package vars builds the merged variable namespace from YAML source
// directories.
package vars

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Namespace is a flat mapping from variable name to value. Values are
// opaque to veneer; the substitution engine interprets them. A Namespace is
// built once per run and treated as read-only afterwards.
type Namespace map[string]any

// InvalidDataFileError reports a variable file whose content could not be
// parsed as a YAML mapping.
type InvalidDataFileError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *InvalidDataFileError) Error() string {
	return fmt.Sprintf("invalid variable file: %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *InvalidDataFileError) Unwrap() error {
	return e.Err
}

// Load merges every .yaml/.yml file found under the given directories, in
// order, into one Namespace. On key collision the later file wins. Files
// within a directory are visited in lexical path order, so precedence is
// deterministic both between directories (argument order) and within one
// (sorted walk).
func Load(dirs []string) (Namespace, error) {
	ns := Namespace{}
	for _, dir := range dirs {
		if err := loadDir(ns, dir); err != nil {
			return nil, err
		}
	}
	return ns, nil
}

// loadDir walks one source directory and merges each variable file it
// finds. filepath.WalkDir visits entries in lexical order.
func loadDir(ns Namespace, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking variable directory %s: %w", dir, err)
		}
		if d.IsDir() || !isVariableFile(path) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading variable file %s: %w", path, err)
		}

		var m map[string]any
		if err := yaml.Unmarshal(data, &m); err != nil {
			return &InvalidDataFileError{Path: path, Err: err}
		}
		ns.Merge(m)
		return nil
	})
}

// isVariableFile reports whether path carries a recognized variable-file
// extension. Both spellings of the YAML extension are accepted.
func isVariableFile(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Merge overlays m onto the namespace: every key in m is set, overwriting
// an existing value. The merge is a whole-mapping overwrite, not a deep
// per-key merge of nested structures.
func (n Namespace) Merge(m map[string]any) {
	for key, value := range m {
		n[key] = value
	}
}

// Has reports whether name is defined.
func (n Namespace) Has(name string) bool {
	_, ok := n[name]
	return ok
}

// Keys returns the defined variable names in sorted order.
func (n Namespace) Keys() []string {
	keys := make([]string, 0, len(n))
	for key := range n {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
