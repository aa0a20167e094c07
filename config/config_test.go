package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Failed to load defaults: %v", err)
	}
	if cfg.Window.TileSize != 48 {
		t.Errorf("Expected default tile size 48, got %d", cfg.Window.TileSize)
	}
	if cfg.SavesDir != "saves" {
		t.Errorf("Expected default saves dir 'saves', got %q", cfg.SavesDir)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `window:
  title: Custom
  tileSize: 32
generator:
  width: 8
  height: 8
  oceanCoverage: 0.5
  mountainCount: 2
  floraCount: 3
  faunaCount: 3
  userName: Ada
savesDir: data/saves
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Window.Title != "Custom" || cfg.Window.TileSize != 32 {
		t.Errorf("Unexpected window config: %+v", cfg.Window)
	}
	if cfg.Generator.Width != 8 || cfg.Generator.UserName != "Ada" {
		t.Errorf("Unexpected generator config: %+v", cfg.Generator)
	}
	if cfg.SavesDir != "data/saves" {
		t.Errorf("Expected saves dir 'data/saves', got %q", cfg.SavesDir)
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("window:\n  tileSize: 64\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Window.TileSize != 64 {
		t.Errorf("Expected tile size 64, got %d", cfg.Window.TileSize)
	}
	if cfg.Generator.Width != 12 {
		t.Errorf("Expected default generator width 12, got %d", cfg.Generator.Width)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"oversized grid":    "generator:\n  width: 20\n",
		"bad coverage":      "generator:\n  oceanCoverage: 1.5\n",
		"zero tile size":    "window:\n  tileSize: 0\n",
		"negative counts":   "generator:\n  floraCount: -1\n",
		"blank saves dir":   "savesDir: \"\"\n",
		"malformed yaml":    "window: [\n",
	}
	for name, data := range cases {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestGeneratorConfigFor(t *testing.T) {
	cfg := Default()
	wc := cfg.GeneratorConfigFor("trip", 7)
	if wc.Name != "trip" || wc.Seed != 7 {
		t.Errorf("Expected name/seed to be carried, got %q/%d", wc.Name, wc.Seed)
	}
	if wc.Width != cfg.Generator.Width || wc.UserName != cfg.Generator.UserName {
		t.Error("Expected generator defaults to be carried over")
	}
}
