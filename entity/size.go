// Package entity defines the inhabitants of a scenario: the player-controlled
// User plus the Fauna and Flora it studies. The variant set is closed; code
// that needs to treat entities differently dispatches on the concrete type or
// on the Collectable capability rather than open-ended subtyping.
package entity

import "fmt"

// Size is the size category of an entity. Each category carries a fixed
// move distance (tiles per move, Manhattan) and the number of points a user
// earns for collecting an entity of that size.
type Size int

const (
	Small Size = iota
	Medium
	Large
	Giant
)

var sizeNames = map[Size]string{
	Small:  "SMALL",
	Medium: "MEDIUM",
	Large:  "LARGE",
	Giant:  "GIANT",
}

var sizeMoveDistances = map[Size]int{
	Small:  1,
	Medium: 3,
	Large:  5,
	Giant:  7,
}

var sizePoints = map[Size]int{
	Small:  5,
	Medium: 10,
	Large:  15,
	Giant:  20,
}

// MoveDistance returns how many tiles an entity of this size may cover in a
// single move.
func (s Size) MoveDistance() int {
	return sizeMoveDistances[s]
}

// Points returns how many points collecting an entity of this size earns.
func (s Size) Points() int {
	return sizePoints[s]
}

// String returns the size token used in save lines, e.g. "SMALL".
func (s Size) String() string {
	if name, ok := sizeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Size(%d)", int(s))
}

// ParseSize converts a save-line size token back into a Size.
func ParseSize(s string) (Size, error) {
	for size, name := range sizeNames {
		if name == s {
			return size, nil
		}
	}
	return 0, fmt.Errorf("unknown size token %q", s)
}
