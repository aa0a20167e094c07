package entity

import (
	"testing"

	"github.com/CB2Moon/InhabitantHunter/grid"
)

func TestSizeTable(t *testing.T) {
	moves := map[Size]int{Small: 1, Medium: 3, Large: 5, Giant: 7}
	points := map[Size]int{Small: 5, Medium: 10, Large: 15, Giant: 20}
	for size, want := range moves {
		if size.MoveDistance() != want {
			t.Errorf("Expected %s move distance %d, got %d", size, want, size.MoveDistance())
		}
	}
	for size, want := range points {
		if size.Points() != want {
			t.Errorf("Expected %s points %d, got %d", size, want, size.Points())
		}
	}
}

func TestParseSize(t *testing.T) {
	for _, size := range []Size{Small, Medium, Large, Giant} {
		parsed, err := ParseSize(size.String())
		if err != nil {
			t.Fatalf("Failed to parse %s: %v", size, err)
		}
		if parsed != size {
			t.Errorf("Expected %s, got %s", size, parsed)
		}
	}
	if _, err := ParseSize("HUGE"); err == nil {
		t.Error("Expected error parsing unknown size token")
	}
	if _, err := ParseSize("small"); err == nil {
		t.Error("Expected size tokens to be case sensitive")
	}
}

func TestUserEncodeAndString(t *testing.T) {
	u := NewUser(grid.Coordinate{X: 11, Y: 3}, "user1")
	if u.Size() != Medium {
		t.Errorf("Expected users to be Medium, got %s", u.Size())
	}
	if u.Encode() != "User-11,3-user1" {
		t.Errorf("Expected 'User-11,3-user1', got '%s'", u.Encode())
	}
	if u.String() != "user1 [User] at (11,3)" {
		t.Errorf("Unexpected string form '%s'", u.String())
	}
}

func TestFaunaNames(t *testing.T) {
	names := map[Size][2]string{
		Small:  {"Mouse", "Crab"},
		Medium: {"Dog", "Fish"},
		Large:  {"Horse", "Shark"},
		Giant:  {"Elephant", "Whale"},
	}
	for size, want := range names {
		land, err := NewFauna(size, grid.Coordinate{X: 1, Y: 1}, grid.Land)
		if err != nil {
			t.Fatalf("Failed to create land fauna: %v", err)
		}
		if land.Name() != want[0] {
			t.Errorf("Expected %s land animal '%s', got '%s'", size, want[0], land.Name())
		}
		ocean, err := NewFauna(size, grid.Coordinate{X: 1, Y: 1}, grid.Ocean)
		if err != nil {
			t.Fatalf("Failed to create ocean fauna: %v", err)
		}
		if ocean.Name() != want[1] {
			t.Errorf("Expected %s ocean animal '%s', got '%s'", size, want[1], ocean.Name())
		}
	}
}

func TestFaunaHabitatValidation(t *testing.T) {
	for _, habitat := range []grid.TileType{grid.Mountain, grid.Sand} {
		if _, err := NewFauna(Small, grid.Coordinate{X: 1, Y: 1}, habitat); err == nil {
			t.Errorf("Expected error for %s habitat", habitat)
		}
	}
}

func TestFaunaEncodeAndString(t *testing.T) {
	f, err := NewFauna(Small, grid.Coordinate{X: 1, Y: 1}, grid.Land)
	if err != nil {
		t.Fatalf("Failed to create fauna: %v", err)
	}
	if f.Encode() != "Fauna-SMALL-1,1-LAND" {
		t.Errorf("Expected 'Fauna-SMALL-1,1-LAND', got '%s'", f.Encode())
	}
	if f.String() != "Mouse [Fauna] at (1,1) [LAND]" {
		t.Errorf("Unexpected string form '%s'", f.String())
	}
	if f.Points() != 5 {
		t.Errorf("Expected 5 points, got %d", f.Points())
	}
}

func TestFloraEncodeAndString(t *testing.T) {
	f := NewFlora(Large, grid.Coordinate{X: 2, Y: 5})
	if f.Name() != "Sapling" {
		t.Errorf("Expected 'Sapling', got '%s'", f.Name())
	}
	if f.Encode() != "Flora-LARGE-2,5" {
		t.Errorf("Expected 'Flora-LARGE-2,5', got '%s'", f.Encode())
	}
	if f.String() != "Sapling [Flora] at (2,5)" {
		t.Errorf("Unexpected string form '%s'", f.String())
	}
	if f.Points() != 15 {
		t.Errorf("Expected 15 points, got %d", f.Points())
	}
}

func TestOnlyFaunaAndFloraAreCollectable(t *testing.T) {
	fauna, err := NewFauna(Small, grid.Coordinate{X: 1, Y: 1}, grid.Land)
	if err != nil {
		t.Fatalf("Failed to create fauna: %v", err)
	}
	var e Entity = fauna
	if _, ok := e.(Collectable); !ok {
		t.Error("Expected fauna to be collectable")
	}
	e = NewFlora(Small, grid.Coordinate{X: 1, Y: 1})
	if _, ok := e.(Collectable); !ok {
		t.Error("Expected flora to be collectable")
	}
	e = NewUser(grid.Coordinate{X: 1, Y: 1}, "u")
	if _, ok := e.(Collectable); ok {
		t.Error("Users must not be collectable")
	}
}

func TestSetCoordinate(t *testing.T) {
	u := NewUser(grid.Coordinate{X: 1, Y: 1}, "u")
	u.SetCoordinate(grid.Coordinate{X: 2, Y: 3})
	if u.Coordinate() != (grid.Coordinate{X: 2, Y: 3}) {
		t.Errorf("Expected (2,3), got %v", u.Coordinate())
	}
	if u.Encode() != "User-2,3-u" {
		t.Errorf("Expected encoding to track the coordinate, got '%s'", u.Encode())
	}
}
