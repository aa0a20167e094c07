// Package grid provides the rectangular tile map that a scenario plays out
// on: coordinates, terrain kinds, tiles and the grid itself. All bounds and
// index math is defined relative to an explicit Grid value rather than any
// process-wide state.
package grid

import "fmt"

// TileType is the terrain kind of a single tile. The terrain governs which
// entities may occupy or traverse the tile.
type TileType int

const (
	Land TileType = iota
	Ocean
	Mountain
	Sand
)

// tileTypeNames maps each terrain kind to its full-word token, as used in
// entity save lines (e.g. "Fauna-SMALL-1,1-LAND").
var tileTypeNames = map[TileType]string{
	Land:     "LAND",
	Ocean:    "OCEAN",
	Mountain: "MOUNTAIN",
	Sand:     "SAND",
}

// tileTypeCodes is the fixed bijection between terrain kinds and their
// single-character map encodings.
var tileTypeCodes = map[TileType]byte{
	Land:     'L',
	Ocean:    'O',
	Mountain: 'M',
	Sand:     'S',
}

// String returns the full-word token for the terrain kind.
func (t TileType) String() string {
	if name, ok := tileTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TileType(%d)", int(t))
}

// Encode returns the single-character map encoding of the terrain kind.
func (t TileType) Encode() string {
	return string(tileTypeCodes[t])
}

// DecodeTileType converts a single map character back into a terrain kind.
func DecodeTileType(c byte) (TileType, error) {
	for t, code := range tileTypeCodes {
		if code == c {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown terrain character %q", string(c))
}

// ParseTileType converts a full-word token (e.g. "OCEAN") back into a
// terrain kind.
func ParseTileType(s string) (TileType, error) {
	for t, name := range tileTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown terrain token %q", s)
}
