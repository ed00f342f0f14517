package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func TestVars_Table(t *testing.T) {
	varsDir := t.TempDir()
	writeFile(t, filepath.Join(varsDir, "vars.yaml"), "name: John Doe\ncount: 3\n")

	stdout, _, err := execute(t, "vars", varsDir)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"NAME", "VALUE", "name", "John Doe", "count", "2 variable(s) defined"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout = %q, want it to contain %q", stdout, want)
		}
	}
}

func TestVars_JSONShowsEffectiveValues(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	writeFile(t, filepath.Join(dirA, "vars.yaml"), "k: from_a\n")
	writeFile(t, filepath.Join(dirB, "vars.yaml"), "k: from_b\n")

	stdout, _, err := execute(t, "vars", dirA+";"+dirB, "--json")
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if jsonErr := json.Unmarshal([]byte(stdout), &got); jsonErr != nil {
		t.Fatalf("stdout is not JSON: %v (%q)", jsonErr, stdout)
	}
	if got["k"] != "from_b" {
		t.Errorf("k = %v, want from_b (later source wins)", got["k"])
	}
}

func TestVars_MissingDirectory(t *testing.T) {
	_, stderr, err := execute(t, "vars", "/does/not/exist")
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if !strings.Contains(stderr, "not a directory") {
		t.Errorf("stderr = %q", stderr)
	}
}
