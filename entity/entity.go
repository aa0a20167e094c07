package entity

import (
	"fmt"

	"github.com/CB2Moon/InhabitantHunter/grid"
)

// Entity is anything placed on the scenario map. Entities are immutable
// after construction except for their coordinate, which changes when they
// are moved.
type Entity interface {
	grid.Occupant

	// Coordinate returns the entity's current position.
	Coordinate() grid.Coordinate
	// SetCoordinate updates the entity's stored position. Callers are
	// responsible for keeping the grid's occupant references in sync.
	SetCoordinate(c grid.Coordinate)
	// Size returns the entity's size category.
	Size() Size
	// Name returns the entity's human-readable name.
	Name() string
}

// Collectable marks the entity variants a user may harvest for points:
// Fauna and Flora. Users are never collectable.
type Collectable interface {
	Entity

	// Points returns the points earned by collecting this entity.
	Points() int
}

// base carries the state shared by all entity variants.
type base struct {
	size       Size
	coordinate grid.Coordinate
}

func (b *base) Coordinate() grid.Coordinate {
	return b.coordinate
}

func (b *base) SetCoordinate(c grid.Coordinate) {
	b.coordinate = c
}

func (b *base) Size() Size {
	return b.size
}

// display renders the shared human-readable form "name [Kind] at (x,y)".
func display(name, kind string, c grid.Coordinate) string {
	return fmt.Sprintf("%s [%s] at %s", name, kind, c)
}
