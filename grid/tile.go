package grid

import "errors"

// ErrNoEntity is returned when an empty tile is queried for its occupant.
var ErrNoEntity = errors.New("no entity at tile")

// Occupant is anything that can sit on a tile. The grid only stores the
// reference; interpretation of the occupant (who may harvest it, whether it
// can move) is up to the caller.
type Occupant interface {
	// Encode returns the occupant's machine-readable save-line form.
	Encode() string
	// String returns the occupant's human-readable form.
	String() string
}

// Tile is a single cell of the grid: an immutable terrain kind plus an
// optional occupant reference. Only the owning grid's callers should set
// the occupant.
type Tile struct {
	terrain  TileType
	occupant Occupant
}

// NewTile creates an unoccupied tile with the given terrain.
func NewTile(terrain TileType) Tile {
	return Tile{terrain: terrain}
}

// Terrain returns the terrain kind of the tile.
func (t *Tile) Terrain() TileType {
	return t.terrain
}

// Occupied reports whether the tile currently holds an occupant.
func (t *Tile) Occupied() bool {
	return t.occupant != nil
}

// Occupant returns the tile's occupant, or ErrNoEntity if the tile is empty.
func (t *Tile) Occupant() (Occupant, error) {
	if t.occupant == nil {
		return nil, ErrNoEntity
	}
	return t.occupant, nil
}

// SetOccupant places an occupant on the tile, replacing any existing one.
func (t *Tile) SetOccupant(o Occupant) {
	t.occupant = o
}

// Clear removes the tile's occupant.
func (t *Tile) Clear() {
	t.occupant = nil
}

// Equal reports whether two tiles have the same terrain and, judged by
// their encodings, the same occupant.
func (t *Tile) Equal(other *Tile) bool {
	if t.terrain != other.terrain {
		return false
	}
	if (t.occupant == nil) != (other.occupant == nil) {
		return false
	}
	if t.occupant == nil {
		return true
	}
	return t.occupant.Encode() == other.occupant.Encode()
}
