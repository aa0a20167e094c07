package entity

import (
	"fmt"

	"github.com/CB2Moon/InhabitantHunter/grid"
)

// User is the player-controlled researcher. Users are always Medium sized;
// their movement budget is fixed separately by the movement validator and
// does not derive from the size table.
type User struct {
	base
	name string
}

// NewUser creates a user at the given coordinate with a display name.
func NewUser(c grid.Coordinate, name string) *User {
	return &User{
		base: base{size: Medium, coordinate: c},
		name: name,
	}
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Encode returns the save-line form "User-x,y-name".
func (u *User) Encode() string {
	return fmt.Sprintf("User-%s-%s", u.coordinate.Encode(), u.name)
}

// String returns the human-readable form, e.g. "Dave [User] at (12,12)".
func (u *User) String() string {
	return display(u.name, "User", u.coordinate)
}
