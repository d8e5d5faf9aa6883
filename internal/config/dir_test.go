package config

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestDir_Default(t *testing.T) {
	// Clear overrides
	t.Setenv("STENCIL_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	dir := Dir()
	if dir == "" {
		t.Fatal("Dir() returned empty string")
	}

	if runtime.GOOS != "windows" {
		if filepath.Base(dir) != "stencil" {
			t.Errorf("Dir() = %q, want path ending in 'stencil'", dir)
		}
	}
}

func TestDir_ExplicitOverride(t *testing.T) {
	t.Setenv("STENCIL_CONFIG_HOME", "/custom/path")
	if got := Dir(); got != "/custom/path" {
		t.Errorf("Dir() = %q, want %q", got, "/custom/path")
	}
}

func TestDir_XDGOverride(t *testing.T) {
	t.Setenv("STENCIL_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	if got := Dir(); got != filepath.Join("/xdg/config", "stencil") {
		t.Errorf("Dir() = %q, want %q", got, filepath.Join("/xdg/config", "stencil"))
	}
}

func TestTemplatesDir_FlagWins(t *testing.T) {
	t.Setenv(EnvTemplatesDir, "/from/env")
	if got := TemplatesDir("/from/flag"); got != "/from/flag" {
		t.Errorf("TemplatesDir() = %q, want %q", got, "/from/flag")
	}
}

func TestTemplatesDir_EnvOverride(t *testing.T) {
	t.Setenv(EnvTemplatesDir, "/from/env")
	if got := TemplatesDir(""); got != "/from/env" {
		t.Errorf("TemplatesDir() = %q, want %q", got, "/from/env")
	}
}

func TestTemplatesDir_Default(t *testing.T) {
	t.Setenv(EnvTemplatesDir, "")
	t.Setenv("STENCIL_CONFIG_HOME", "/cfg")
	want := filepath.Join("/cfg", "templates")
	if got := TemplatesDir(""); got != want {
		t.Errorf("TemplatesDir() = %q, want %q", got, want)
	}
}
