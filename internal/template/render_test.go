package template

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/fieldnotes-dev/veneer/internal/vars"
)

func TestRenderer_SubstitutesVariables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greeting.md")
	writeFile(t, path, "Hello, {{ name }}!")

	r := &Renderer{Namespace: vars.Namespace{"name": "John Doe"}}
	got, err := r.Render(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Hello, John Doe!" {
		t.Errorf("got %q", got)
	}
}

func TestRenderer_UndefinedVariableDiagnosedButRendered(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greeting.md")
	writeFile(t, path, "Hello, {{ name }} and {{ undefined_variable }}!")

	var diags []Diagnostic
	r := &Renderer{
		Namespace: vars.Namespace{"name": "John Doe"},
		Sink:      func(d Diagnostic) { diags = append(diags, d) },
	}

	got, err := r.Render(path)
	if err != nil {
		t.Fatalf("undefined variable must not abort the render: %v", err)
	}
	// The engine substitutes empty output for the missing name.
	if got != "Hello, John Doe and !" {
		t.Errorf("got %q", got)
	}

	if len(diags) != 1 {
		t.Fatalf("diagnostics = %d, want 1", len(diags))
	}
	if diags[0].TemplatePath != path {
		t.Errorf("TemplatePath = %q, want %q", diags[0].TemplatePath, path)
	}
	if want := []string{"undefined_variable"}; !reflect.DeepEqual(diags[0].Missing, want) {
		t.Errorf("Missing = %v, want %v", diags[0].Missing, want)
	}
}

func TestRenderer_NoDiagnosticWhenAllDefined(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ok.md")
	writeFile(t, path, "{{ a }}")

	called := false
	r := &Renderer{
		Namespace: vars.Namespace{"a": "x"},
		Sink:      func(Diagnostic) { called = true },
	}
	if _, err := r.Render(path); err != nil {
		t.Fatal(err)
	}
	if called {
		t.Error("sink called with no undefined variables")
	}
}

func TestRenderer_StrictFailsOnUndefined(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.md")
	writeFile(t, path, "{{ missing }}")

	r := &Renderer{Namespace: vars.Namespace{}, Strict: true}
	_, err := r.Render(path)

	var undefErr *UndefinedVariablesError
	if !errors.As(err, &undefErr) {
		t.Fatalf("error = %v, want *UndefinedVariablesError", err)
	}
	if want := []string{"missing"}; !reflect.DeepEqual(undefErr.Names, want) {
		t.Errorf("Names = %v, want %v", undefErr.Names, want)
	}
}

func TestRenderer_MissingTemplate(t *testing.T) {
	r := &Renderer{Namespace: vars.Namespace{}}
	path := filepath.Join(t.TempDir(), "absent.md")

	_, err := r.Render(path)
	var tplErr *MissingTemplateError
	if !errors.As(err, &tplErr) {
		t.Fatalf("error = %v, want *MissingTemplateError", err)
	}
	if tplErr.Path != path {
		t.Errorf("Path = %q, want %q", tplErr.Path, path)
	}
}

// Variables introduced by included fragments are diagnosed: fragment
// expansion completes before the usage scan.
func TestRenderer_FragmentVariablesDiagnosed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "frag.md"), "from fragment: {{ frag_var }}")
	path := filepath.Join(dir, "main.md")
	writeFile(t, path, "{{{ frag.md }}}")

	var diags []Diagnostic
	r := &Renderer{
		Namespace: vars.Namespace{},
		Sink:      func(d Diagnostic) { diags = append(diags, d) },
	}
	if _, err := r.Render(path); err != nil {
		t.Fatal(err)
	}

	if len(diags) != 1 || !reflect.DeepEqual(diags[0].Missing, []string{"frag_var"}) {
		t.Errorf("diagnostics = %+v, want frag_var reported", diags)
	}
}

func TestRenderer_MissingFragmentAborts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.md")
	writeFile(t, path, "{{{ gone.md }}}")

	r := &Renderer{Namespace: vars.Namespace{}}
	_, err := r.Render(path)
	var fragErr *MissingFragmentError
	if !errors.As(err, &fragErr) {
		t.Fatalf("error = %v, want *MissingFragmentError", err)
	}
}

func TestRenderer_EngineEvaluatesControlFlow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loop.md")
	writeFile(t, path, "{% for item in items %}[{{ item }}]{% endfor %}")

	r := &Renderer{Namespace: vars.Namespace{"items": []any{"a", "b"}}}
	got, err := r.Render(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != "[a][b]" {
		t.Errorf("got %q", got)
	}
}

func TestRenderer_Check(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "frag.md"), "{{ b }}")
	path := filepath.Join(dir, "main.md")
	writeFile(t, path, "{{ a }} {{{ frag.md }}} {{ c }}")

	r := &Renderer{Namespace: vars.Namespace{"a": 1}}
	missing, err := r.Check(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"b", "c"}; !reflect.DeepEqual(missing, want) {
		t.Errorf("missing = %v, want %v (sorted)", missing, want)
	}
}

func TestRenderer_RenderText(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "frag.md"), "world")

	r := &Renderer{Namespace: vars.Namespace{"greeting": "hello"}}
	rendered, missing, err := r.RenderText("{{ greeting }} {{{ frag.md }}}{{ punct }}", filepath.Join(dir, "stdin"))
	if err != nil {
		t.Fatal(err)
	}
	if rendered != "hello world" {
		t.Errorf("rendered = %q", rendered)
	}
	if want := []string{"punct"}; !reflect.DeepEqual(missing, want) {
		t.Errorf("missing = %v, want %v", missing, want)
	}
}
