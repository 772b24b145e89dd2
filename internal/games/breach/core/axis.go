package core

// Axis is the constraint the next selection must satisfy.
type Axis uint8

const (
	// AxisNone applies before the first selection: only row 0 is open.
	AxisNone Axis = iota
	// AxisRow ("row-bound"): keep the anchor's column, move to another row.
	AxisRow
	// AxisColumn ("column-bound"): keep the anchor's row, move to another column.
	AxisColumn
)

// String returns the string representation of an axis.
func (a Axis) String() string {
	switch a {
	case AxisNone:
		return "none"
	case AxisRow:
		return "row"
	case AxisColumn:
		return "column"
	default:
		return "unknown"
	}
}

// Next returns the constraint in force after an accepted selection.
//
//	none   -> row
//	row    -> column
//	column -> row
func (a Axis) Next() Axis {
	switch a {
	case AxisRow:
		return AxisColumn
	default:
		return AxisRow
	}
}

// Allows reports whether moving from anchor to c satisfies the constraint.
func (a Axis) Allows(anchor, c Coord) bool {
	switch a {
	case AxisNone:
		return c.Y == 0
	case AxisRow:
		return c.X == anchor.X && c.Y != anchor.Y
	case AxisColumn:
		return c.Y == anchor.Y && c.X != anchor.X
	default:
		return false
	}
}
