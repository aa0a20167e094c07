// Package eventlog records the ordered history of a scenario as immutable
// event snapshots. Events capture the coordinates in effect when the action
// happened; later movement of the entities involved does not change what a
// logged event renders.
package eventlog

import (
	"fmt"
	"strings"

	"github.com/CB2Moon/InhabitantHunter/entity"
	"github.com/CB2Moon/InhabitantHunter/grid"
)

// entrySeparator closes every rendered event.
const entrySeparator = "-----"

// Event is a single recorded action. Events are display-only: the core
// logic never re-interprets them.
type Event interface {
	// Actor returns the entity that performed the action.
	Actor() entity.Entity
	// InitialCoordinate returns the actor's position when the event was
	// created.
	InitialCoordinate() grid.Coordinate
	// Coordinate returns the position the action was directed at.
	Coordinate() grid.Coordinate
	// String returns the human-readable rendering of the event.
	String() string
}

// MoveEvent records an entity moving from one coordinate to another.
type MoveEvent struct {
	actor entity.Entity
	from  grid.Coordinate
	to    grid.Coordinate
}

// NewMoveEvent records actor moving to target. The actor's current
// coordinate is captured as the pre-move position, so the event must be
// created before the move is applied.
func NewMoveEvent(actor entity.Entity, target grid.Coordinate) *MoveEvent {
	return &MoveEvent{actor: actor, from: actor.Coordinate(), to: target}
}

// Actor returns the moving entity.
func (e *MoveEvent) Actor() entity.Entity {
	return e.actor
}

// InitialCoordinate returns the actor's pre-move position.
func (e *MoveEvent) InitialCoordinate() grid.Coordinate {
	return e.from
}

// Coordinate returns the move's destination.
func (e *MoveEvent) Coordinate() grid.Coordinate {
	return e.to
}

// String renders the event, showing the actor at its pre-move position:
//
//	Dave [User] at (13,13)
//	MOVED TO (12,12)
//	-----
func (e *MoveEvent) String() string {
	return strings.Join([]string{
		displayAt(e.actor, e.from),
		fmt.Sprintf("MOVED TO %s", e.to),
		entrySeparator,
	}, "\n")
}

// CollectEvent records a user collecting a target entity.
type CollectEvent struct {
	actor    *entity.User
	from     grid.Coordinate
	target   entity.Entity
	targetAt grid.Coordinate
}

// NewCollectEvent records user collecting target. Both positions are
// captured at creation time, so the event must be created before the
// target's tile is cleared.
func NewCollectEvent(user *entity.User, target entity.Entity) *CollectEvent {
	return &CollectEvent{
		actor:    user,
		from:     user.Coordinate(),
		target:   target,
		targetAt: target.Coordinate(),
	}
}

// Actor returns the collecting user.
func (e *CollectEvent) Actor() entity.Entity {
	return e.actor
}

// InitialCoordinate returns the user's position when the collection
// happened.
func (e *CollectEvent) InitialCoordinate() grid.Coordinate {
	return e.from
}

// Coordinate returns the collected entity's position.
func (e *CollectEvent) Coordinate() grid.Coordinate {
	return e.targetAt
}

// Target returns the entity that was collected.
func (e *CollectEvent) Target() entity.Entity {
	return e.target
}

// String renders the event with both parties at their pre-collection
// positions:
//
//	Dave [User] at (12,12)
//	COLLECTED
//	Dog [Fauna] at (11,12) [LAND]
//	-----
func (e *CollectEvent) String() string {
	return strings.Join([]string{
		displayAt(e.actor, e.from),
		"COLLECTED",
		displayAt(e.target, e.targetAt),
		entrySeparator,
	}, "\n")
}

// displayAt renders an entity's String form with its coordinate swapped for
// the one recorded in the event.
func displayAt(e entity.Entity, c grid.Coordinate) string {
	current := e.Coordinate()
	return strings.Replace(e.String(), current.String(), c.String(), 1)
}
