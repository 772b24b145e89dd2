package core

import (
	"errors"

	"github.com/zyedidia/generic/mapset"
)

// Rejections are recoverable: the session is unchanged and no buffer is used.
var (
	ErrInvalidFirstMove = errors.New("first selection must be in row 0")
	ErrAxisViolation    = errors.New("selection breaks the row/column alternation")
	ErrAlreadySelected  = errors.New("cell already selected")
	ErrOutOfBounds      = errors.New("cell outside the grid")
)

// ValidationState is the part of a session the validator reads.
type ValidationState struct {
	Size     int
	Axis     Axis
	Anchor   Coord
	Started  bool // false until the first accepted selection
	Selected mapset.Set[Coord]
}

// Validate checks a proposed selection against the placement rules, in order:
// bounds, already selected, first move in row 0, then the axis constraint.
// A nil result means the selection is accepted.
func Validate(c Coord, st ValidationState) error {
	if c.X < 0 || c.X >= st.Size || c.Y < 0 || c.Y >= st.Size {
		return ErrOutOfBounds
	}
	if st.Selected.Has(c) {
		return ErrAlreadySelected
	}
	if !st.Started {
		if c.Y != 0 {
			return ErrInvalidFirstMove
		}
		return nil
	}
	if !st.Axis.Allows(st.Anchor, c) {
		return ErrAxisViolation
	}
	return nil
}

// ValidMoves lists every cell that Validate would accept, in row-major order.
func ValidMoves(st ValidationState) []Coord {
	moves := make([]Coord, 0, st.Size)
	for y := 0; y < st.Size; y++ {
		for x := 0; x < st.Size; x++ {
			if Validate(C(x, y), st) == nil {
				moves = append(moves, C(x, y))
			}
		}
	}
	return moves
}
