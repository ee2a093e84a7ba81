package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pfl.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_Explicit(t *testing.T) {
	path := writeConfig(t, `
color = "never"
max_errors = 10
context_lines = 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Color != "never" {
		t.Fatalf("expected color %q, got %q", "never", cfg.Color)
	}
	if cfg.MaxErrors != 10 {
		t.Fatalf("expected max_errors 10, got %d", cfg.MaxErrors)
	}
	if cfg.ContextLines != 2 {
		t.Fatalf("expected context_lines 2, got %d", cfg.ContextLines)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `max_errors = 5`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Color != "auto" {
		t.Fatalf("expected default color, got %q", cfg.Color)
	}
	if cfg.MaxErrors != 5 {
		t.Fatalf("expected max_errors 5, got %d", cfg.MaxErrors)
	}
}

func TestLoad_ExplicitMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatalf("expected an error for a missing explicit config")
	}
}

func TestLoad_MissingDefaultFileIsFine(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(cwd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_InvalidColorMode(t *testing.T) {
	path := writeConfig(t, `color = "sometimes"`)

	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for an invalid color mode")
	}
}

func TestLoad_NegativeMaxErrors(t *testing.T) {
	path := writeConfig(t, `max_errors = -1`)

	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for a negative cap")
	}
}
