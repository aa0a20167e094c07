package entity

import (
	"fmt"

	"github.com/CB2Moon/InhabitantHunter/grid"
)

// faunaNames maps size and habitat to the animal's species name.
var faunaNames = map[Size][2]string{
	Small:  {"Mouse", "Crab"},
	Medium: {"Dog", "Fish"},
	Large:  {"Horse", "Shark"},
	Giant:  {"Elephant", "Whale"},
}

// Fauna is an animal. Animals are bound to a habitat, either Land or Ocean,
// that restricts which tiles they may occupy. Animals can move and can be
// collected by a user.
type Fauna struct {
	base
	habitat grid.TileType
}

// NewFauna creates an animal with the given size, coordinate and habitat.
// The habitat must be Land or Ocean.
func NewFauna(size Size, c grid.Coordinate, habitat grid.TileType) (*Fauna, error) {
	if habitat != grid.Land && habitat != grid.Ocean {
		return nil, fmt.Errorf("fauna habitat must be LAND or OCEAN, got %s", habitat)
	}
	return &Fauna{
		base:    base{size: size, coordinate: c},
		habitat: habitat,
	}, nil
}

// Habitat returns the animal's habitat terrain.
func (f *Fauna) Habitat() grid.TileType {
	return f.habitat
}

// Name returns the species name determined by size and habitat, e.g. a
// Medium Land animal is a "Dog".
func (f *Fauna) Name() string {
	names := faunaNames[f.size]
	if f.habitat == grid.Land {
		return names[0]
	}
	return names[1]
}

// Points returns the points earned for collecting this animal.
func (f *Fauna) Points() int {
	return f.size.Points()
}

// Encode returns the save-line form "Fauna-SIZE-x,y-HABITAT".
func (f *Fauna) Encode() string {
	return fmt.Sprintf("Fauna-%s-%s-%s", f.size, f.coordinate.Encode(), f.habitat)
}

// String returns the human-readable form, e.g. "Dog [Fauna] at (2,5) [LAND]".
func (f *Fauna) String() string {
	return fmt.Sprintf("%s [%s]", display(f.Name(), "Fauna", f.coordinate), f.habitat)
}
