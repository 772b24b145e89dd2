// Package core provides the sequence-matching puzzle engine behind the breach minigame.
// This package is UI-agnostic and deterministic for a given seed: it generates a
// code matrix with a guaranteed solution path, tracks player selections against the
// target sequences, and resolves the session to success or failure.
package core

import "fmt"

// Code is a single matrix token such as "1C" or "E9".
type Code string

// Coord represents a cell on the grid.
// X is the column, Y is the row; row 0 is the entry row.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// SharesOneAxis reports whether c and other differ in exactly one component.
func (c Coord) SharesOneAxis(other Coord) bool {
	return (c.X == other.X) != (c.Y == other.Y)
}

// Path is an ordered walk through the grid that solves the puzzle.
type Path []Coord

// PathLength is the number of cells in a synthesized solution path.
const PathLength = 6

// Selection is an accepted pick recorded in arrival order.
type Selection struct {
	At   Coord
	Code Code
}
