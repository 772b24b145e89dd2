// Package core holds the types shared by the puzzle screen and the platform
// layer: the character Screen, colours, input frames, runtime config and
// screen geometry. It does not import Bubble Tea, so everything here can be
// driven directly from tests.
package core

// Rect is an axis-aligned area of the screen in character cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Centered returns a w by h rectangle centred on a screen of sw by sh cells.
func Centered(sw, sh, w, h int) Rect {
	return NewRect((sw-w)/2, (sh-h)/2, w, h)
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// CellAt splits r into cells of cw by ch characters and returns the column and
// row under (x, y). ok is false outside r.
func (r Rect) CellAt(x, y, cw, ch int) (col, row int, ok bool) {
	if cw <= 0 || ch <= 0 || !r.Contains(x, y) {
		return 0, 0, false
	}
	return (x - r.X) / cw, (y - r.Y) / ch, true
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
