package scenario

import (
	"github.com/CB2Moon/InhabitantHunter/entity"
	"github.com/CB2Moon/InhabitantHunter/eventlog"
	"github.com/CB2Moon/InhabitantHunter/grid"
)

// userMoveBudget is the fixed movement budget of a user. Users move up to
// four tiles regardless of their nominal size category, so this is not a
// size-table lookup.
const userMoveBudget = 4

// moveProfile captures how movement rules differ between the mobile entity
// variants.
type moveProfile struct {
	// budget is the maximum Manhattan distance of a single move.
	budget int
	// admissible reports whether the entity may stand on the terrain.
	admissible func(grid.TileType) bool
	// relaxedTarget is true when the destination tile may hold a
	// collectable occupant (users collect by moving onto it). When false,
	// the destination is held to the same strictly-unoccupied test as
	// every other path tile.
	relaxedTarget bool
}

// moveProfileFor returns the movement rules for a mobile entity, or false
// for entities that cannot move (plants).
func moveProfileFor(e entity.Entity) (moveProfile, bool) {
	switch v := e.(type) {
	case *entity.User:
		return moveProfile{
			budget: userMoveBudget,
			admissible: func(t grid.TileType) bool {
				return t != grid.Ocean && t != grid.Mountain
			},
			relaxedTarget: true,
		}, true
	case *entity.Fauna:
		habitat := v.Habitat()
		return moveProfile{
			budget: v.Size().MoveDistance(),
			admissible: func(t grid.TileType) bool {
				if habitat == grid.Ocean {
					return t == grid.Ocean
				}
				return t != grid.Ocean
			},
		}, true
	default:
		return moveProfile{}, false
	}
}

// CanMove reports whether the entity may legally move to target. It returns
// an OutOfBoundsError when target is not on the grid; all other failures
// are reported as a plain false.
//
// A move is legal when the target differs from the current position, the
// Manhattan distance fits the entity's budget, the target terrain and
// occupancy admit the entity, and at least one of the two L-shaped paths
// (horizontal-then-vertical or vertical-then-horizontal) is unimpeded:
// every tile along the path must itself pass the terrain, budget and
// strictly-unoccupied tests.
func (s *Scenario) CanMove(e entity.Entity, target grid.Coordinate) (bool, error) {
	if err := s.grid.CheckBounds(target); err != nil {
		return false, err
	}
	if e.Coordinate() == target {
		return false, nil
	}
	p, ok := moveProfileFor(e)
	if !ok {
		return false, nil
	}
	if p.relaxedTarget && !s.checkTile(p, e.Coordinate(), target, true) {
		return false, nil
	}
	return s.traverse(p, e.Coordinate(), target, true) ||
		s.traverse(p, e.Coordinate(), target, false), nil
}

// checkTile reports whether one tile of a prospective path admits the
// moving entity: within the distance budget from the entity's current
// position, admissible terrain, and acceptable occupancy. Path tiles use
// relaxed=false and must be strictly empty; a relaxed destination may also
// hold a collectable occupant.
func (s *Scenario) checkTile(p moveProfile, from, c grid.Coordinate, relaxed bool) bool {
	if from.Manhattan(c) > p.budget {
		return false
	}
	tile := s.grid.TileAt(c)
	if !p.admissible(tile.Terrain()) {
		return false
	}
	occ, err := tile.Occupant()
	if err != nil {
		return true // empty tile
	}
	if !relaxed {
		return false
	}
	_, collectable := occ.(entity.Collectable)
	return collectable
}

// traverse walks one of the two L-shaped path orderings from the entity's
// position to target and reports whether every tile on it is passable.
// With a relaxed destination the final tile of the second leg is skipped
// (it has already been checked with the relaxed occupancy test); otherwise
// the destination is held to the strict test like any other path tile.
func (s *Scenario) traverse(p moveProfile, from, target grid.Coordinate, horizontalFirst bool) bool {
	d := from.Distance(target)
	sx, sy := sign(d.X), sign(d.Y)

	type leg struct {
		steps int
		at    func(step int) grid.Coordinate
	}
	horizontal := leg{
		steps: d.AbsX(),
		at: func(step int) grid.Coordinate {
			if horizontalFirst {
				return from.Translate(sx*step, 0)
			}
			return from.Translate(sx*step, d.Y)
		},
	}
	vertical := leg{
		steps: d.AbsY(),
		at: func(step int) grid.Coordinate {
			if horizontalFirst {
				return from.Translate(d.X, sy*step)
			}
			return from.Translate(0, sy*step)
		},
	}

	first, second := horizontal, vertical
	if !horizontalFirst {
		first, second = vertical, horizontal
	}
	if p.relaxedTarget {
		// The destination itself was checked with the relaxed test.
		second.steps--
	}
	for step := 1; step <= first.steps; step++ {
		if !s.checkTile(p, from, first.at(step), false) {
			return false
		}
	}
	for step := 1; step <= second.steps; step++ {
		if !s.checkTile(p, from, second.at(step), false) {
			return false
		}
	}
	return true
}

// PossibleMoves returns every coordinate the entity can legally move to:
// the Manhattan ball of the entity's size-derived move distance, filtered
// by CanMove. Out-of-bounds candidates are silently dropped; they are an
// expected outcome of the speculative sweep, not an error.
func (s *Scenario) PossibleMoves(e entity.Entity) []grid.Coordinate {
	from := e.Coordinate()
	radius := e.Size().MoveDistance()
	var out []grid.Coordinate
	for x := from.X - radius; x <= from.X+radius; x++ {
		for y := from.Y - radius; y <= from.Y+radius; y++ {
			candidate := grid.Coordinate{X: x, Y: y}
			if from.Manhattan(candidate) > radius {
				continue
			}
			ok, err := s.CanMove(e, candidate)
			if err == nil && ok {
				out = append(out, candidate)
			}
		}
	}
	return out
}

// Move moves the entity to target. CanMove(e, target) must already have
// returned true; Move does not re-validate.
//
// The move event is logged first. If the mover is a user a collection is
// attempted at the destination before the tiles are updated; collection
// failures are discarded and the move completes regardless. Finally the
// old tile is cleared, the destination tile takes the entity, and the
// entity's coordinate is updated.
func (s *Scenario) Move(e entity.Entity, target grid.Coordinate) {
	s.log.Add(eventlog.NewMoveEvent(e, target))
	if u, ok := e.(*entity.User); ok {
		// An empty destination reports ErrNoEntity here; that is the
		// normal plain-move case.
		_, _ = s.Collect(u, target)
	}
	s.grid.TileAt(e.Coordinate()).Clear()
	s.grid.TileAt(target).SetOccupant(e)
	e.SetCoordinate(target)
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
