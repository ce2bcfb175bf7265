package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/touchall/internal/model"
)

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(m.Path(filepath.Join(t.TempDir(), "absent.toml")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Models.Bases) != 1 || cfg.Models.Bases[0] != "BaseModel" {
		t.Errorf("expected default bases, got %v", cfg.Models.Bases)
	}

	if cfg.Check.Strict {
		t.Error("expected strict to default to false")
	}

	if cfg.Check.Parallel != 1 {
		t.Errorf("expected parallel to default to 1, got %d", cfg.Check.Parallel)
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "touchall.toml")
	content := `
[models]
bases = ["BaseModel", "BaseSettings"]

[check]
strict = true
parallel = 4
`

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(m.Path(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Models.Bases) != 2 {
		t.Errorf("expected 2 bases, got %v", cfg.Models.Bases)
	}

	if !cfg.Check.Strict {
		t.Error("expected strict to be true")
	}

	if cfg.Check.Parallel != 4 {
		t.Errorf("expected parallel 4, got %d", cfg.Check.Parallel)
	}
}

func TestLoadConfig_EmptyBasesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "touchall.toml")

	if err := os.WriteFile(path, []byte("[models]\nbases = []\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(m.Path(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Models.Bases) != 1 || cfg.Models.Bases[0] != "BaseModel" {
		t.Errorf("expected default bases, got %v", cfg.Models.Bases)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "touchall.toml")

	if err := os.WriteFile(path, []byte("models = [broken"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(m.Path(path)); err == nil {
		t.Fatal("expected an error for malformed TOML")
	}
}
