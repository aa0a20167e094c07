package entity

import (
	"fmt"

	"github.com/CB2Moon/InhabitantHunter/grid"
)

var floraNames = map[Size]string{
	Small:  "Flower",
	Medium: "Shrub",
	Large:  "Sapling",
	Giant:  "Tree",
}

// Flora is a stationary plant. Plants never move but can be collected by a
// user.
type Flora struct {
	base
}

// NewFlora creates a plant with the given size and coordinate.
func NewFlora(size Size, c grid.Coordinate) *Flora {
	return &Flora{base: base{size: size, coordinate: c}}
}

// Name returns the plant's name determined by its size, e.g. "Shrub" for
// Medium.
func (f *Flora) Name() string {
	return floraNames[f.size]
}

// Points returns the points earned for collecting this plant.
func (f *Flora) Points() int {
	return f.size.Points()
}

// Encode returns the save-line form "Flora-SIZE-x,y".
func (f *Flora) Encode() string {
	return fmt.Sprintf("Flora-%s-%s", f.size, f.coordinate.Encode())
}

// String returns the human-readable form, e.g. "Shrub [Flora] at (2,5)".
func (f *Flora) String() string {
	return display(f.Name(), "Flora", f.coordinate)
}
