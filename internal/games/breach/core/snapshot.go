package core

import "time"

// Snapshot is the read model a presentation layer renders from.
type Snapshot struct {
	Grid           *Grid // Copy; consumed flags included
	Sequences      []Sequence
	Progress       []Progress
	Selections     []Selection
	ValidMoves     []Coord
	BufferUsed     int
	BufferCapacity int
	TimeLimit      time.Duration
	TimeRemaining  time.Duration
	TimerArmed     bool
	Axis           Axis
	Anchor         Coord
	HasAnchor      bool
	Status         Status
	Reason         Reason
}

// Snapshot returns the current session state for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Grid:           s.grid.Clone(),
		Sequences:      s.matcher.Sequences(),
		Progress:       s.matcher.Progress(),
		Selections:     s.Selections(),
		ValidMoves:     s.ValidMoves(),
		BufferUsed:     s.bufferUsed,
		BufferCapacity: s.cfg.BufferCapacity,
		TimeLimit:      s.cfg.TimeLimit,
		TimeRemaining:  s.remaining,
		TimerArmed:     s.timerArmed,
		Axis:           s.axis,
		Anchor:         s.anchor,
		HasAnchor:      len(s.selections) > 0,
		Status:         s.status,
		Reason:         s.reason,
	}
}

// Matched returns how many codes of sequence i are matched, treating Completed as
// the full length.
func (snap Snapshot) Matched(i int) int {
	if i < 0 || i >= len(snap.Progress) {
		return 0
	}
	if snap.Progress[i] == Completed {
		return len(snap.Sequences[i])
	}
	return int(snap.Progress[i])
}
