// Package scenario ties a grid, its inhabitants and an event log together
// into one simulated session, and implements the operations that mutate it:
// validated movement, collection, and the save-format codec. A scenario is
// not safe for concurrent use; every operation completes or fails
// synchronously before the next one starts.
package scenario

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/CB2Moon/InhabitantHunter/entity"
	"github.com/CB2Moon/InhabitantHunter/eventlog"
	"github.com/CB2Moon/InhabitantHunter/grid"
)

// Scenario is one simulated session: a named grid with a fixed random seed,
// the entities placed on it, the live-animal registry and the event log.
// The grid and seed never change after construction; a resize means building
// a new scenario from scratch.
type Scenario struct {
	name    string
	seed    int
	grid    *grid.Grid
	rng     *rand.Rand
	log     *eventlog.Log
	animals *AnimalRegistry
}

// New creates a scenario with an all-Land grid of the given dimensions.
// Width and height must be within grid.MinSize..grid.MaxSize, the seed must
// be non-negative and the name non-empty.
func New(name string, width, height, seed int) (*Scenario, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("scenario name must not be empty")
	}
	if seed < 0 {
		return nil, fmt.Errorf("scenario seed must be non-negative, got %d", seed)
	}
	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	return &Scenario{
		name:    name,
		seed:    seed,
		grid:    g,
		rng:     rand.New(rand.NewSource(int64(seed))),
		log:     eventlog.NewLog(),
		animals: NewAnimalRegistry(),
	}, nil
}

// Name returns the scenario's name.
func (s *Scenario) Name() string {
	return s.name
}

// Seed returns the random seed the scenario was created with.
func (s *Scenario) Seed() int {
	return s.seed
}

// Grid returns the scenario's tile grid.
func (s *Scenario) Grid() *grid.Grid {
	return s.grid
}

// Rand returns the scenario's random source, seeded with Seed.
func (s *Scenario) Rand() *rand.Rand {
	return s.rng
}

// Log returns the scenario's event log.
func (s *Scenario) Log() *eventlog.Log {
	return s.log
}

// Animals returns the registry of animals currently alive in the scenario.
func (s *Scenario) Animals() *AnimalRegistry {
	return s.animals
}

// Place puts an entity onto the grid at its own coordinate. The tile must
// be in bounds and unoccupied, and its terrain must admit the entity: no
// Ocean or Mountain for users, no Ocean for plants, and habitat-matching
// terrain for animals (Ocean habitat on Ocean tiles, Land habitat anywhere
// but Ocean). Placed animals are added to the registry.
func (s *Scenario) Place(e entity.Entity) error {
	c := e.Coordinate()
	if err := s.grid.CheckBounds(c); err != nil {
		return err
	}
	tile := s.grid.TileAt(c)
	if tile.Occupied() {
		return fmt.Errorf("tile %s is already occupied", c)
	}
	terrain := tile.Terrain()
	switch v := e.(type) {
	case *entity.User:
		if terrain == grid.Ocean || terrain == grid.Mountain {
			return fmt.Errorf("user cannot inhabit %s at %s", terrain, c)
		}
	case *entity.Fauna:
		if v.Habitat() == grid.Ocean && terrain != grid.Ocean {
			return fmt.Errorf("ocean animal cannot inhabit %s at %s", terrain, c)
		}
		if v.Habitat() == grid.Land && terrain == grid.Ocean {
			return fmt.Errorf("land animal cannot inhabit %s at %s", terrain, c)
		}
		s.animals.Add(v)
	case *entity.Flora:
		if terrain == grid.Ocean {
			return fmt.Errorf("plant cannot inhabit %s at %s", terrain, c)
		}
	default:
		return fmt.Errorf("unknown entity variant %T", e)
	}
	tile.SetOccupant(e)
	return nil
}

// Entities returns every entity on the grid in row-major tile order.
func (s *Scenario) Entities() []entity.Entity {
	var out []entity.Entity
	for i := range s.grid.Tiles() {
		occ, err := s.grid.Tiles()[i].Occupant()
		if err != nil {
			continue
		}
		if e, ok := occ.(entity.Entity); ok {
			out = append(out, e)
		}
	}
	return out
}

// Equal reports whether two scenarios have the same name, dimensions and
// tile-for-tile contents. The seed and the event log are not compared.
func (s *Scenario) Equal(other *Scenario) bool {
	return s.name == other.name && s.grid.Equal(other.grid)
}

// String returns the human-readable summary:
//
//	Beach retreat
//	Width: 6, Height: 5
//	Entities: 4
func (s *Scenario) String() string {
	return strings.Join([]string{
		s.name,
		fmt.Sprintf("Width: %d, Height: %d", s.grid.Width(), s.grid.Height()),
		fmt.Sprintf("Entities: %d", len(s.Entities())),
	}, "\n")
}
