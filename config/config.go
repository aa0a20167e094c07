// Package config loads the viewer and generator settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/CB2Moon/InhabitantHunter/grid"
	"github.com/CB2Moon/InhabitantHunter/worldgen"
)

// Config is the top-level application configuration.
type Config struct {
	// Window holds the viewer window settings.
	Window WindowConfig `yaml:"window"`

	// Generator holds the default settings for generated scenarios.
	Generator GeneratorConfig `yaml:"generator"`

	// SavesDir is the directory scanned for scenario save files.
	SavesDir string `yaml:"savesDir"`
}

// WindowConfig holds the viewer window settings.
type WindowConfig struct {
	Title    string `yaml:"title"`
	TileSize int    `yaml:"tileSize"` // Tile edge length in pixels
}

// GeneratorConfig holds the default scenario generation settings. It maps
// directly onto worldgen.Config, minus the name and seed which come from
// the command line.
type GeneratorConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	OceanCoverage float64 `yaml:"oceanCoverage"`
	MountainCount int     `yaml:"mountainCount"`
	FloraCount    int     `yaml:"floraCount"`
	FaunaCount    int     `yaml:"faunaCount"`
	UserName      string  `yaml:"userName"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:    "Inhabitant Hunter",
			TileSize: 48,
		},
		Generator: GeneratorConfig{
			Width:         12,
			Height:        10,
			OceanCoverage: 0.3,
			MountainCount: 4,
			FloraCount:    6,
			FaunaCount:    6,
			UserName:      "Researcher",
		},
		SavesDir: "saves",
	}
}

// Load reads the configuration from path. A missing file is not an error;
// the defaults are returned instead.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// Validate checks the loaded values against the grid and generator limits.
func (c *Config) Validate() error {
	if c.Window.TileSize <= 0 {
		return fmt.Errorf("window tile size must be positive, got %d", c.Window.TileSize)
	}
	g := c.Generator
	if g.Width < grid.MinSize || g.Width > grid.MaxSize {
		return fmt.Errorf("generator width %d must be within %d..%d", g.Width, grid.MinSize, grid.MaxSize)
	}
	if g.Height < grid.MinSize || g.Height > grid.MaxSize {
		return fmt.Errorf("generator height %d must be within %d..%d", g.Height, grid.MinSize, grid.MaxSize)
	}
	if g.OceanCoverage < 0 || g.OceanCoverage > 1 {
		return fmt.Errorf("ocean coverage %v must be within 0..1", g.OceanCoverage)
	}
	if g.MountainCount < 0 || g.FloraCount < 0 || g.FaunaCount < 0 {
		return fmt.Errorf("entity counts must not be negative")
	}
	if c.SavesDir == "" {
		return fmt.Errorf("saves directory must not be empty")
	}
	return nil
}

// GeneratorConfigFor converts the configured generation defaults into a
// worldgen.Config with the given name and seed.
func (c *Config) GeneratorConfigFor(name string, seed int) worldgen.Config {
	return worldgen.Config{
		Name:          name,
		Width:         c.Generator.Width,
		Height:        c.Generator.Height,
		Seed:          seed,
		OceanCoverage: c.Generator.OceanCoverage,
		MountainCount: c.Generator.MountainCount,
		FloraCount:    c.Generator.FloraCount,
		FaunaCount:    c.Generator.FaunaCount,
		UserName:      c.Generator.UserName,
	}
}
