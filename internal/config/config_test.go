package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDBPathExplicitWins(t *testing.T) {
	t.Setenv("DB_PATH", "/env/path.db")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	got, err := cfg.ResolveDBPath("/explicit/path.db")
	if err != nil || got != "/explicit/path.db" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestResolveDBPathEnv(t *testing.T) {
	t.Setenv("DB_PATH", "/env/path.db")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	got, err := cfg.ResolveDBPath("")
	if err != nil || got != "/env/path.db" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestResolveDBPathRelativeCandidate(t *testing.T) {
	t.Setenv("DB_PATH", "")
	dir := t.TempDir()
	old, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })

	if err := os.MkdirAll(filepath.Join(dir, "data"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "data", "products.db"), []byte{}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := Config{}
	got, err := cfg.ResolveDBPath("")
	if err != nil || got != filepath.Join("data", "products.db") {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestResolveDBPathError(t *testing.T) {
	t.Setenv("DB_PATH", "")
	old, _ := os.Getwd()
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })

	cfg := Config{}
	if _, err := cfg.ResolveDBPath(""); !errors.Is(err, ErrDBPathNotFound) {
		t.Fatalf("err = %v, want ErrDBPathNotFound", err)
	}
}

func TestDirLayout(t *testing.T) {
	cfg := Config{DocsRoot: "/repo"}
	if cfg.TempDir() != filepath.Join("/repo", "_temp") {
		t.Fatalf("temp dir = %s", cfg.TempDir())
	}
	if cfg.ConsolidatedDir() != filepath.Join("/repo", "_consolidated") {
		t.Fatalf("consolidated dir = %s", cfg.ConsolidatedDir())
	}
}
