// Package config resolves the stencil configuration and template directories.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// EnvTemplatesDir is the environment variable that overrides the templates
// root directory.
const EnvTemplatesDir = "STENCIL_TEMPLATES_DIR"

// Dir returns the stencil configuration directory.
//
// Resolution:
//   - $STENCIL_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/stencil if set (respects XDG on any platform)
//   - %AppData%/stencil on Windows
//   - ~/.config/stencil on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("STENCIL_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stencil")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "stencil")
		}
	}

	// macOS and Linux: ~/.config/stencil
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "stencil")
}

// TemplatesDir resolves the templates root directory.
//
// Resolution:
//   - flagValue (the --dir flag) if non-empty
//   - $STENCIL_TEMPLATES_DIR if set
//   - <configdir>/templates
//
// The root is always passed explicitly to the loader; this function is the
// only place that knows the convention.
func TemplatesDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if dir := os.Getenv(EnvTemplatesDir); dir != "" {
		return dir
	}
	if dir := Dir(); dir != "" {
		return filepath.Join(dir, "templates")
	}
	return ""
}
