// Package config provides the global configuration directory and the
// optional defaults file for chfmt.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the chfmt configuration directory.
//
// Resolution:
//   - $CHFMT_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/chfmt if set (respects XDG on any platform)
//   - %AppData%/chfmt on Windows
//   - ~/.config/chfmt on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("CHFMT_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "chfmt")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "chfmt")
		}
	}

	// macOS and Linux: ~/.config/chfmt
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "chfmt")
}
