package template

import (
	"fmt"
	"strings"
)

// MissingTemplateError reports a template file that could not be read.
type MissingTemplateError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *MissingTemplateError) Error() string {
	return fmt.Sprintf("template file not found: %s", e.Path)
}

// Unwrap returns the underlying read error.
func (e *MissingTemplateError) Unwrap() error {
	return e.Err
}

// MissingFragmentError reports a fragment reference that did not resolve to
// a readable file. Path is the resolved filesystem path; IncludedFrom names
// the file containing the reference.
type MissingFragmentError struct {
	Path         string
	IncludedFrom string
	Err          error
}

// Error implements the error interface.
func (e *MissingFragmentError) Error() string {
	return fmt.Sprintf("fragment not found: %s (included from %s)", e.Path, e.IncludedFrom)
}

// Unwrap returns the underlying read error.
func (e *MissingFragmentError) Unwrap() error {
	return e.Err
}

// CyclicInclusionError reports a fragment that directly or transitively
// includes itself. Chain lists the inclusion path from the root template to
// the repeated file.
type CyclicInclusionError struct {
	Path  string
	Chain []string
}

// Error implements the error interface.
func (e *CyclicInclusionError) Error() string {
	return fmt.Sprintf("cyclic fragment inclusion: %s (chain: %s)", e.Path, strings.Join(e.Chain, " -> "))
}

// UndefinedVariablesError is returned in strict mode when a template
// references variables absent from the namespace. Outside strict mode the
// same condition is a diagnostic, not an error.
type UndefinedVariablesError struct {
	TemplatePath string
	Names        []string
}

// Error implements the error interface.
func (e *UndefinedVariablesError) Error() string {
	return fmt.Sprintf("undefined variables in %s: %s", e.TemplatePath, strings.Join(e.Names, ", "))
}
