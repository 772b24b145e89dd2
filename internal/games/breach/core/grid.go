package core

import "strings"

// Cell is a single matrix entry.
type Cell struct {
	Code     Code
	Consumed bool // Set once the cell has been selected
}

// Grid is an N×N code matrix indexed by (column, row).
type Grid struct {
	Size  int
	Cells []Cell // Row-major: index = y*Size + x
}

// NewGrid creates an empty grid of the given size.
func NewGrid(size int) *Grid {
	return &Grid{
		Size:  size,
		Cells: make([]Cell, size*size),
	}
}

// GridFromRows builds a grid from rows of codes. All rows must have len(rows) entries.
func GridFromRows(rows [][]Code) *Grid {
	g := NewGrid(len(rows))
	for y, row := range rows {
		for x, code := range row {
			if x < g.Size {
				g.Set(C(x, y), code)
			}
		}
	}
	return g
}

// InBounds returns true if the coordinate is within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Size && c.Y >= 0 && c.Y < g.Size
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.Size + c.X
}

// Code returns the code at c, or "" if out of bounds.
func (g *Grid) Code(c Coord) Code {
	if !g.InBounds(c) {
		return ""
	}
	return g.Cells[g.index(c)].Code
}

// Set writes a code at c. Out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, code Code) {
	if !g.InBounds(c) {
		return
	}
	g.Cells[g.index(c)].Code = code
}

// Consumed reports whether the cell at c has been selected.
func (g *Grid) Consumed(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.Cells[g.index(c)].Consumed
}

// consume marks the cell at c as selected.
func (g *Grid) consume(c Coord) {
	if g.InBounds(c) {
		g.Cells[g.index(c)].Consumed = true
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Size: g.Size, Cells: cells}
}

// Row returns the codes of row y.
func (g *Grid) Row(y int) []Code {
	row := make([]Code, 0, g.Size)
	for x := 0; x < g.Size; x++ {
		row = append(row, g.Code(C(x, y)))
	}
	return row
}

// CodesAt returns the codes along a path, in order.
func (g *Grid) CodesAt(path Path) []Code {
	codes := make([]Code, len(path))
	for i, c := range path {
		codes[i] = g.Code(c)
	}
	return codes
}

// String renders the grid as space-separated rows for debugging and the CLI.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.Size; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < g.Size; x++ {
			if x > 0 {
				sb.WriteRune(' ')
			}
			sb.WriteString(string(g.Code(C(x, y))))
		}
	}
	return sb.String()
}
