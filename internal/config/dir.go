// Package config provides the global configuration directory for veneer.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the veneer configuration directory.
//
// Resolution:
//   - $VENEER_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/veneer if set (respects XDG on any platform)
//   - %AppData%/veneer on Windows
//   - ~/.config/veneer on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("VENEER_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "veneer")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "veneer")
		}
	}

	// macOS and Linux: ~/.config/veneer
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "veneer")
}
