package scenario

import (
	"github.com/CB2Moon/InhabitantHunter/entity"
	"github.com/CB2Moon/InhabitantHunter/eventlog"
	"github.com/CB2Moon/InhabitantHunter/grid"
)

// Collect has the user collect whatever occupies the target tile. It
// returns the points the collection earned. An out-of-bounds target or an
// empty tile is an error; a tile occupied by something that cannot be
// collected (another user) earns zero points without error or log entry.
//
// Collect itself does not range-limit the target; callers reach it through
// PossibleCollections or through a validated move.
func (s *Scenario) Collect(u *entity.User, target grid.Coordinate) (int, error) {
	if err := s.grid.CheckBounds(target); err != nil {
		return 0, err
	}
	tile := s.grid.TileAt(target)
	occ, err := tile.Occupant()
	if err != nil {
		return 0, err
	}
	c, ok := occ.(entity.Collectable)
	if !ok {
		return 0, nil
	}
	s.log.Add(eventlog.NewCollectEvent(u, c))
	tile.Clear()
	if f, ok := c.(*entity.Fauna); ok {
		s.animals.Remove(f)
	}
	return c.Points(), nil
}

// PossibleCollections returns the coordinates of every collectable entity
// on a tile orthogonally adjacent to the user.
func (s *Scenario) PossibleCollections(u *entity.User) []grid.Coordinate {
	from := u.Coordinate()
	neighbours := []grid.Coordinate{
		from.Translate(0, -1),
		from.Translate(0, 1),
		from.Translate(-1, 0),
		from.Translate(1, 0),
	}
	var out []grid.Coordinate
	for _, c := range neighbours {
		if !s.grid.InBounds(c) {
			continue
		}
		occ, err := s.grid.TileAt(c).Occupant()
		if err != nil {
			continue
		}
		if _, ok := occ.(entity.Collectable); ok {
			out = append(out, c)
		}
	}
	return out
}
