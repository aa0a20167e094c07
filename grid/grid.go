package grid

import "fmt"

const (
	// MinSize is the minimum width or height of a grid.
	MinSize = 5
	// MaxSize is the maximum width or height of a grid.
	MaxSize = 15
)

// OutOfBoundsError reports a coordinate that falls outside a grid.
type OutOfBoundsError struct {
	Coordinate Coordinate
	Width      int
	Height     int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("coordinate %s out of bounds for %dx%d grid",
		e.Coordinate, e.Width, e.Height)
}

// Grid is a fixed-size rectangular tile map stored in row-major order.
// Width and height never change after construction.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// New creates a grid of unoccupied Land tiles with the given dimensions.
func New(width, height int) (*Grid, error) {
	if width < MinSize || width > MaxSize {
		return nil, fmt.Errorf("width %d does not satisfy %d <= width <= %d",
			width, MinSize, MaxSize)
	}
	if height < MinSize || height > MaxSize {
		return nil, fmt.Errorf("height %d does not satisfy %d <= height <= %d",
			height, MinSize, MaxSize)
	}
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}, nil
}

// Width returns the number of tiles per row.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Size returns the total number of tiles.
func (g *Grid) Size() int {
	return g.width * g.height
}

// InBounds reports whether the coordinate lies on the grid.
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// CheckBounds returns an OutOfBoundsError if the coordinate is not on the
// grid.
func (g *Grid) CheckBounds(c Coordinate) error {
	if !g.InBounds(c) {
		return &OutOfBoundsError{Coordinate: c, Width: g.width, Height: g.height}
	}
	return nil
}

// Index converts an in-bounds coordinate to its position in the tile array.
func (g *Grid) Index(c Coordinate) int {
	return c.X + c.Y*g.width
}

// CoordinateAt converts a tile array index back to a coordinate.
func (g *Grid) CoordinateAt(index int) Coordinate {
	return Coordinate{X: index % g.width, Y: index / g.width}
}

// TileAt returns the tile at the given coordinate. The coordinate must be
// in bounds.
func (g *Grid) TileAt(c Coordinate) *Tile {
	return &g.tiles[g.Index(c)]
}

// Tiles returns the backing tile slice in row-major order. Mutating the
// returned tiles mutates the grid.
func (g *Grid) Tiles() []Tile {
	return g.tiles
}

// SetTerrain replaces every tile with an unoccupied tile of the given
// terrain kinds, which must be exactly width*height entries in row-major
// order.
func (g *Grid) SetTerrain(terrain []TileType) error {
	if len(terrain) != g.Size() {
		return fmt.Errorf("terrain length %d does not match grid size %d",
			len(terrain), g.Size())
	}
	for i, t := range terrain {
		g.tiles[i] = NewTile(t)
	}
	return nil
}

// Equal reports whether two grids have the same dimensions and tile-for-tile
// equal contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.tiles {
		if !g.tiles[i].Equal(&other.tiles[i]) {
			return false
		}
	}
	return true
}
