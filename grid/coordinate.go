package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinate is an (x,y) position on a grid. Coordinates are plain values:
// they may hold positions outside any particular grid (including negative
// components produced during range computation) until checked against a
// Grid's bounds.
type Coordinate struct {
	X int
	Y int
}

// Translate returns a new coordinate shifted by the given amounts.
func (c Coordinate) Translate(dx, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// Distance returns the component-wise delta from this coordinate to other,
// i.e. (other.X-c.X, other.Y-c.Y).
func (c Coordinate) Distance(other Coordinate) Coordinate {
	return Coordinate{X: other.X - c.X, Y: other.Y - c.Y}
}

// AbsX returns the absolute value of the x component.
func (c Coordinate) AbsX() int {
	if c.X < 0 {
		return -c.X
	}
	return c.X
}

// AbsY returns the absolute value of the y component.
func (c Coordinate) AbsY() int {
	if c.Y < 0 {
		return -c.Y
	}
	return c.Y
}

// Manhattan returns the Manhattan distance from this coordinate to other.
func (c Coordinate) Manhattan(other Coordinate) int {
	d := c.Distance(other)
	return d.AbsX() + d.AbsY()
}

// Encode returns the machine-readable form "x,y".
func (c Coordinate) Encode() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// String returns the human-readable form "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// DecodeCoordinate parses the machine-readable form produced by Encode.
// The string must contain exactly one comma and two integer components.
func DecodeCoordinate(s string) (Coordinate, error) {
	if strings.Count(s, ",") != 1 {
		return Coordinate{}, fmt.Errorf("coordinate %q: expected exactly one comma", s)
	}
	parts := strings.Split(s, ",")
	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return Coordinate{}, fmt.Errorf("coordinate %q: x component is not an integer", s)
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return Coordinate{}, fmt.Errorf("coordinate %q: y component is not an integer", s)
	}
	return Coordinate{X: x, Y: y}, nil
}
