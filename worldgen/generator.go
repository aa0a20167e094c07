// Package worldgen procedurally generates scenarios: a terrain map grown
// from seeded random patches, populated with plants, animals and a user.
// Generation is deterministic for a given config.
package worldgen

import (
	"fmt"
	"math/rand"

	"github.com/CB2Moon/InhabitantHunter/entity"
	"github.com/CB2Moon/InhabitantHunter/grid"
	"github.com/CB2Moon/InhabitantHunter/scenario"
)

// Config holds configuration for scenario generation.
type Config struct {
	Name          string  // Scenario name
	Width         int     // Grid width in tiles
	Height        int     // Grid height in tiles
	Seed          int     // Random seed, also stored on the scenario
	OceanCoverage float64 // Target fraction of ocean tiles (0..1)
	MountainCount int     // Number of mountain tiles to scatter
	FloraCount    int     // Number of plants to place
	FaunaCount    int     // Number of animals to place
	UserName      string  // Name of the placed user; empty places no user
}

// placementAttempts caps how often the generator retries a random tile
// before giving up on one placement.
const placementAttempts = 50

// Generator builds scenarios from a Config.
type Generator struct {
	config Config
	rng    *rand.Rand
}

// NewGenerator creates a generator for the given config.
func NewGenerator(config Config) *Generator {
	return &Generator{
		config: config,
		rng:    rand.New(rand.NewSource(int64(config.Seed))),
	}
}

// Generate creates a new scenario: terrain first, then entities. Entity
// placements that cannot find a free suitable tile are skipped rather than
// failing the whole generation.
func (g *Generator) Generate() (*scenario.Scenario, error) {
	s, err := scenario.New(g.config.Name, g.config.Width, g.config.Height, g.config.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create scenario: %w", err)
	}
	if err := s.Grid().SetTerrain(g.generateTerrain()); err != nil {
		return nil, fmt.Errorf("failed to apply terrain: %w", err)
	}

	if g.config.UserName != "" {
		u := g.placeUser(s)
		if u == nil {
			return nil, fmt.Errorf("no habitable tile found for user %q", g.config.UserName)
		}
	}
	g.placeFlora(s)
	g.placeFauna(s)
	return s, nil
}

// generateTerrain builds the row-major terrain slice: ocean blobs grown
// from random seeds until the coverage target is met, a sand shoreline
// pass, then scattered mountains.
func (g *Generator) generateTerrain() []grid.TileType {
	width, height := g.config.Width, g.config.Height
	terrain := make([]grid.TileType, width*height)

	target := int(g.config.OceanCoverage * float64(len(terrain)))
	oceans := 0
	for attempt := 0; oceans < target && attempt < placementAttempts; attempt++ {
		oceans += g.growOceanBlob(terrain, target-oceans)
	}

	// Land bordering ocean becomes shoreline.
	for i, t := range terrain {
		if t != grid.Land {
			continue
		}
		x, y := i%width, i/width
		for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := x+d[0], y+d[1]
			if nx < 0 || nx >= width || ny < 0 || ny >= height {
				continue
			}
			if terrain[ny*width+nx] == grid.Ocean {
				terrain[i] = grid.Sand
				break
			}
		}
	}

	placed := 0
	for attempt := 0; placed < g.config.MountainCount && attempt < placementAttempts*g.config.MountainCount; attempt++ {
		i := g.rng.Intn(len(terrain))
		if terrain[i] == grid.Land {
			terrain[i] = grid.Mountain
			placed++
		}
	}
	return terrain
}

// growOceanBlob converts up to budget tiles into ocean via a random walk
// from a random starting tile, and returns how many tiles it converted.
func (g *Generator) growOceanBlob(terrain []grid.TileType, budget int) int {
	width, height := g.config.Width, g.config.Height
	size := 3 + g.rng.Intn(6)
	if size > budget {
		size = budget
	}
	x, y := g.rng.Intn(width), g.rng.Intn(height)
	converted := 0
	for step := 0; step < size*3 && converted < size; step++ {
		i := y*width + x
		if terrain[i] != grid.Ocean {
			terrain[i] = grid.Ocean
			converted++
		}
		switch g.rng.Intn(4) {
		case 0:
			x++
		case 1:
			x--
		case 2:
			y++
		case 3:
			y--
		}
		if x < 0 {
			x = 0
		}
		if x >= width {
			x = width - 1
		}
		if y < 0 {
			y = 0
		}
		if y >= height {
			y = height - 1
		}
	}
	return converted
}

// placeUser places the configured user on a random habitable tile.
func (g *Generator) placeUser(s *scenario.Scenario) *entity.User {
	for attempt := 0; attempt < placementAttempts; attempt++ {
		c := g.randomCoordinate()
		u := entity.NewUser(c, g.config.UserName)
		if s.Place(u) == nil {
			return u
		}
	}
	return nil
}

// placeFlora scatters plants of random size on free land tiles.
func (g *Generator) placeFlora(s *scenario.Scenario) {
	placed := 0
	for attempt := 0; placed < g.config.FloraCount && attempt < placementAttempts*g.config.FloraCount; attempt++ {
		f := entity.NewFlora(g.randomSize(), g.randomCoordinate())
		if s.Place(f) == nil {
			placed++
		}
	}
}

// placeFauna scatters animals of random size. The habitat follows the
// terrain of the chosen tile, so ocean tiles get ocean animals.
func (g *Generator) placeFauna(s *scenario.Scenario) {
	placed := 0
	for attempt := 0; placed < g.config.FaunaCount && attempt < placementAttempts*g.config.FaunaCount; attempt++ {
		c := g.randomCoordinate()
		habitat := grid.Land
		if s.Grid().TileAt(c).Terrain() == grid.Ocean {
			habitat = grid.Ocean
		}
		f, err := entity.NewFauna(g.randomSize(), c, habitat)
		if err != nil {
			continue
		}
		if s.Place(f) == nil {
			placed++
		}
	}
}

func (g *Generator) randomCoordinate() grid.Coordinate {
	return grid.Coordinate{
		X: g.rng.Intn(g.config.Width),
		Y: g.rng.Intn(g.config.Height),
	}
}

func (g *Generator) randomSize() entity.Size {
	return []entity.Size{entity.Small, entity.Medium, entity.Large, entity.Giant}[g.rng.Intn(4)]
}
