package eventlog

import "strings"

// Log is the ordered event history of one scenario, together with running
// statistics derived from the events as they are appended.
type Log struct {
	events            []Event
	entitiesCollected int
	tilesTraversed    int
	pointsEarned      int
}

// NewLog creates an empty log with all statistics at zero.
func NewLog() *Log {
	return &Log{}
}

// Add appends an event to the log. A CollectEvent bumps the collected count
// and adds the target's points; a MoveEvent adds the move's Manhattan
// distance to the tiles traversed.
func (l *Log) Add(e Event) {
	switch ev := e.(type) {
	case *CollectEvent:
		l.entitiesCollected++
		l.pointsEarned += ev.Target().Size().Points()
	case *MoveEvent:
		l.tilesTraversed += ev.InitialCoordinate().Manhattan(ev.Coordinate())
	}
	l.events = append(l.events, e)
}

// Events returns a copy of the logged events in append order.
func (l *Log) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// EntitiesCollected returns how many entities have been collected.
func (l *Log) EntitiesCollected() int {
	return l.entitiesCollected
}

// TilesTraversed returns the total Manhattan distance moved.
func (l *Log) TilesTraversed() int {
	return l.tilesTraversed
}

// PointsEarned returns the total points earned from collections.
func (l *Log) PointsEarned() int {
	return l.pointsEarned
}

// String renders every event in append order, separated by newlines, with
// no trailing newline.
func (l *Log) String() string {
	entries := make([]string, len(l.events))
	for i, e := range l.events {
		entries[i] = e.String()
	}
	return strings.Join(entries, "\n")
}
