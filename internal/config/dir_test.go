package config

import (
	"path/filepath"
	"testing"
)

func TestDir_ExplicitOverride(t *testing.T) {
	t.Setenv("VENEER_CONFIG_HOME", "/custom/veneer")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	if got := Dir(); got != "/custom/veneer" {
		t.Errorf("Dir() = %q, want explicit override to win", got)
	}
}

func TestDir_XDG(t *testing.T) {
	t.Setenv("VENEER_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	if got, want := Dir(), filepath.Join("/xdg", "veneer"); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestDir_HomeFallback(t *testing.T) {
	t.Setenv("VENEER_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	got := Dir()
	if got == "" {
		t.Skip("no home directory in test environment")
	}
	if filepath.Base(got) != "veneer" {
		t.Errorf("Dir() = %q, want a veneer directory", got)
	}
}
