package worldgen

import (
	"strings"
	"testing"

	"github.com/CB2Moon/InhabitantHunter/grid"
	"github.com/CB2Moon/InhabitantHunter/scenario"
)

func testConfig() Config {
	return Config{
		Name:          "generated",
		Width:         12,
		Height:        10,
		Seed:          42,
		OceanCoverage: 0.3,
		MountainCount: 4,
		FloraCount:    5,
		FaunaCount:    5,
		UserName:      "explorer",
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, err := NewGenerator(testConfig()).Generate()
	if err != nil {
		t.Fatalf("Failed to generate: %v", err)
	}
	b, err := NewGenerator(testConfig()).Generate()
	if err != nil {
		t.Fatalf("Failed to generate: %v", err)
	}
	if a.Encode() != b.Encode() {
		t.Error("Expected identical scenarios for the same seed")
	}

	cfg := testConfig()
	cfg.Seed = 43
	c, err := NewGenerator(cfg).Generate()
	if err != nil {
		t.Fatalf("Failed to generate: %v", err)
	}
	if a.Encode() == c.Encode() {
		t.Error("Expected different scenarios for different seeds")
	}
}

func TestGenerateRespectsConfig(t *testing.T) {
	cfg := testConfig()
	s, err := NewGenerator(cfg).Generate()
	if err != nil {
		t.Fatalf("Failed to generate: %v", err)
	}
	if s.Name() != cfg.Name {
		t.Errorf("Expected name %q, got %q", cfg.Name, s.Name())
	}
	if s.Grid().Width() != cfg.Width || s.Grid().Height() != cfg.Height {
		t.Errorf("Expected %dx%d grid, got %dx%d",
			cfg.Width, cfg.Height, s.Grid().Width(), s.Grid().Height())
	}
	if s.Seed() != cfg.Seed {
		t.Errorf("Expected seed %d, got %d", cfg.Seed, s.Seed())
	}
	if len(s.Entities()) == 0 {
		t.Error("Expected a populated scenario")
	}
}

func TestGenerateRejectsBadDimensions(t *testing.T) {
	cfg := testConfig()
	cfg.Width = 3
	if _, err := NewGenerator(cfg).Generate(); err == nil {
		t.Error("Expected error for undersized grid")
	}
}

func TestGeneratedEntitiesMatchTerrain(t *testing.T) {
	s, err := NewGenerator(testConfig()).Generate()
	if err != nil {
		t.Fatalf("Failed to generate: %v", err)
	}
	for _, a := range s.Animals().Animals() {
		terrain := s.Grid().TileAt(a.Coordinate()).Terrain()
		if a.Habitat() == grid.Ocean && terrain != grid.Ocean {
			t.Errorf("Ocean animal %s placed on %s", a, terrain)
		}
		if a.Habitat() == grid.Land && terrain == grid.Ocean {
			t.Errorf("Land animal %s placed on %s", a, terrain)
		}
	}
}

func TestGenerateRoundTripsThroughSaveFormat(t *testing.T) {
	s, err := NewGenerator(testConfig()).Generate()
	if err != nil {
		t.Fatalf("Failed to generate: %v", err)
	}
	decoded, err := scenario.Decode(strings.NewReader(s.Encode()))
	if err != nil {
		t.Fatalf("Failed to decode generated scenario: %v", err)
	}
	if !decoded.Equal(s) {
		t.Error("Expected generated scenario to survive a save round trip")
	}
}
