package mcp

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/fieldnotes-dev/veneer/internal/vars"
)

// writeFile creates a file with parent directories under a test tree.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewServer(t *testing.T) {
	server := NewServer("test", vars.Namespace{"a": 1})
	if server == nil {
		t.Fatal("NewServer returned nil")
	}
}

func TestHandleRenderText(t *testing.T) {
	ns := vars.Namespace{"name": "John Doe"}
	handler := handleRenderText(ns)

	_, out, err := handler(context.Background(), nil, RenderTextInput{
		Text: "Hello, {{ name }} and {{ undefined_variable }}!",
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.Rendered != "Hello, John Doe and !" {
		t.Errorf("Rendered = %q", out.Rendered)
	}
	if want := []string{"undefined_variable"}; !reflect.DeepEqual(out.Undefined, want) {
		t.Errorf("Undefined = %v, want %v", out.Undefined, want)
	}
}

func TestHandleRenderText_ExtraVariablesOverlay(t *testing.T) {
	ns := vars.Namespace{"k": "from_namespace"}
	handler := handleRenderText(ns)

	_, out, err := handler(context.Background(), nil, RenderTextInput{
		Text:      "{{ k }}",
		Variables: map[string]any{"k": "from_call"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.Rendered != "from_call" {
		t.Errorf("Rendered = %q, want per-call variable to win", out.Rendered)
	}
	// The shared namespace must stay untouched.
	if ns["k"] != "from_namespace" {
		t.Errorf("shared namespace mutated: %v", ns)
	}
}

func TestHandleRenderText_Fragments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "frag.md"), "world")
	handler := handleRenderText(vars.Namespace{})

	_, out, err := handler(context.Background(), nil, RenderTextInput{
		Text:     "hello {{{ frag.md }}}",
		BasePath: filepath.Join(dir, "stdin"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.Rendered != "hello world" {
		t.Errorf("Rendered = %q", out.Rendered)
	}
}

func TestHandleScanVariables(t *testing.T) {
	handler := handleScanVariables()

	_, out, err := handler(context.Background(), nil, ScanVariablesInput{
		Text: "{{ b }} {{ a }} {{ a }}",
	})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(out.Variables, want) {
		t.Errorf("Variables = %v, want %v", out.Variables, want)
	}
	if out.Count != 2 {
		t.Errorf("Count = %d, want 2", out.Count)
	}
}

func TestHandleResolveFragments_MissingFragment(t *testing.T) {
	handler := handleResolveFragments()

	_, _, err := handler(context.Background(), nil, ResolveFragmentsInput{
		Text:     "{{{ gone.md }}}",
		BasePath: filepath.Join(t.TempDir(), "stdin"),
	})
	if err == nil {
		t.Fatal("expected error for missing fragment")
	}
}

func TestHandleListVariables(t *testing.T) {
	handler := handleListVariables(vars.Namespace{"zeta": 1, "alpha": 2})

	_, out, err := handler(context.Background(), nil, ListVariablesInput{})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"alpha", "zeta"}; !reflect.DeepEqual(out.Variables, want) {
		t.Errorf("Variables = %v, want %v", out.Variables, want)
	}
	if out.Count != 2 {
		t.Errorf("Count = %d, want 2", out.Count)
	}
}
