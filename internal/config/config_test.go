package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.World.Height != 30 {
		t.Errorf("World.Height = %d, want 30", cfg.World.Height)
	}
	if cfg.Physics.Gravity != 1200.0 {
		t.Errorf("Physics.Gravity = %v, want 1200", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpSpeed != 480.0 {
		t.Errorf("Physics.JumpSpeed = %v, want 480", cfg.Physics.JumpSpeed)
	}
	if cfg.Build.Radius != 2 {
		t.Errorf("Build.Radius = %d, want 2", cfg.Build.Radius)
	}
	if cfg.Theme != "Azure Coast" {
		t.Errorf("Theme = %q, want Azure Coast", cfg.Theme)
	}
}

func TestEmbeddedDefaultMatchesCode(t *testing.T) {
	// With no custom path and no user config the loader falls back to the
	// embedded YAML, which must agree with the hardcoded defaults.
	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	want := Default()
	if loaded != want {
		t.Errorf("embedded defaults = %+v, want %+v", loaded, want)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	yaml := `
world:
  height: 48
physics:
  gravity: 600.0
theme: Violet Bloom
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}

	if cfg.World.Height != 48 {
		t.Errorf("World.Height = %d, want 48", cfg.World.Height)
	}
	if cfg.Physics.Gravity != 600.0 {
		t.Errorf("Physics.Gravity = %v, want 600", cfg.Physics.Gravity)
	}
	if cfg.Theme != "Violet Bloom" {
		t.Errorf("Theme = %q, want Violet Bloom", cfg.Theme)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("loading a missing explicit config should fail")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("world: ["), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("loading malformed YAML should fail")
	}
}
