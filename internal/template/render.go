package template

import (
	"fmt"
	"os"

	"github.com/flosch/pongo2/v6"

	"github.com/fieldnotes-dev/veneer/internal/vars"
)

// Diagnostic is a non-fatal finding emitted while rendering a template.
type Diagnostic struct {
	TemplatePath string
	Missing      []string // sorted variable names absent from the namespace
}

// Sink receives diagnostics. A nil sink discards them. Sinks must tolerate
// one call per template; the renderer never emits partial diagnostics.
type Sink func(Diagnostic)

// Renderer renders template files against a read-only variable namespace.
// The namespace must not be mutated while a Renderer holds it.
type Renderer struct {
	// Namespace is the merged variable mapping used for substitution.
	Namespace vars.Namespace

	// Sink receives an undefined-variable diagnostic per affected template.
	Sink Sink

	// Strict promotes undefined-variable diagnostics to errors, so a
	// template referencing an unknown variable fails instead of rendering
	// with empty substitutions.
	Strict bool
}

// Render reads, expands, diagnoses, and substitutes a single template file.
// Undefined variables are reported through the Sink and, unless Strict is
// set, do not block rendering: the engine substitutes empty output for
// them. Fatal errors (missing template, missing fragment, cyclic inclusion,
// engine failure) abort the render.
func (r *Renderer) Render(templatePath string) (string, error) {
	expanded, err := r.expand(templatePath)
	if err != nil {
		return "", err
	}

	missing := r.missing(expanded)
	if len(missing) > 0 {
		if r.Sink != nil {
			r.Sink(Diagnostic{TemplatePath: templatePath, Missing: missing})
		}
		if r.Strict {
			return "", &UndefinedVariablesError{TemplatePath: templatePath, Names: missing}
		}
	}

	tpl, err := pongo2.FromString(expanded)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", templatePath, err)
	}
	out, err := tpl.Execute(pongo2.Context(r.Namespace))
	if err != nil {
		return "", fmt.Errorf("rendering template %s: %w", templatePath, err)
	}
	return out, nil
}

// Check expands a template and returns the sorted names of variables it
// references that are absent from the namespace, without substituting or
// writing anything.
func (r *Renderer) Check(templatePath string) ([]string, error) {
	expanded, err := r.expand(templatePath)
	if err != nil {
		return nil, err
	}
	return r.missing(expanded), nil
}

// RenderText runs the resolution pipeline on in-memory text instead of a
// file: fragment expansion against basePath, usage scan, then substitution.
// It returns the rendered text and the sorted undefined variable names.
// Used by callers that hold template content directly (the MCP surface).
func (r *Renderer) RenderText(text, basePath string) (rendered string, missing []string, err error) {
	expanded, err := ResolveFragments(text, basePath)
	if err != nil {
		return "", nil, err
	}

	missing = r.missing(expanded)

	tpl, err := pongo2.FromString(expanded)
	if err != nil {
		return "", nil, fmt.Errorf("parsing template text: %w", err)
	}
	rendered, err = tpl.Execute(pongo2.Context(r.Namespace))
	if err != nil {
		return "", nil, fmt.Errorf("rendering template text: %w", err)
	}
	return rendered, missing, nil
}

// expand reads the template and fully resolves its fragment directives.
func (r *Renderer) expand(templatePath string) (string, error) {
	raw, err := os.ReadFile(templatePath)
	if err != nil {
		return "", &MissingTemplateError{Path: templatePath, Err: err}
	}
	return ResolveFragments(string(raw), templatePath)
}

// missing computes usage minus namespace keys on fragment-expanded text.
func (r *Renderer) missing(expanded string) []string {
	usage := ScanVariables(expanded)
	undefined := make(map[string]struct{})
	for name := range usage {
		if !r.Namespace.Has(name) {
			undefined[name] = struct{}{}
		}
	}
	if len(undefined) == 0 {
		return nil
	}
	return sortedNames(undefined)
}
