package core

import (
	"testing"
	"time"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestRectCellAt(t *testing.T) {
	r := NewRect(3, 4, 24, 12) // 6x6 cells of 4x2

	tests := []struct {
		name     string
		x, y     int
		col, row int
		ok       bool
	}{
		{"first cell", 3, 4, 0, 0, true},
		{"first cell far corner", 6, 5, 0, 0, true},
		{"second column", 7, 4, 1, 0, true},
		{"last cell", 26, 15, 5, 5, true},
		{"left of grid", 2, 4, 0, 0, false},
		{"below grid", 3, 16, 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col, row, ok := r.CellAt(tc.x, tc.y, 4, 2)
			if ok != tc.ok || col != tc.col || row != tc.row {
				t.Errorf("CellAt(%d, %d) = %d, %d, %v, want %d, %d, %v", tc.x, tc.y, col, row, ok, tc.col, tc.row, tc.ok)
			}
		})
	}

	if _, _, ok := r.CellAt(3, 4, 0, 2); ok {
		t.Error("CellAt with zero cell width should fail")
	}
}

func TestCentered(t *testing.T) {
	r := Centered(80, 24, 36, 5)
	if r.X != 22 || r.Y != 9 || r.W != 36 || r.H != 5 {
		t.Errorf("Centered = %+v, want {22 9 36 5}", r)
	}
}

func TestRuntimeConfigResolved(t *testing.T) {
	cfg := RuntimeConfig{ScreenW: 100, ScreenH: 30}.Resolved()
	if cfg.TickRate != DefaultTickRate {
		t.Errorf("TickRate = %d, want %d", cfg.TickRate, DefaultTickRate)
	}
	if cfg.Seed == 0 {
		t.Error("Resolved should pick a seed")
	}

	fixed := RuntimeConfig{TickRate: 30, Seed: 42}.Resolved()
	if fixed.TickRate != 30 || fixed.Seed != 42 {
		t.Errorf("Resolved changed explicit values: %+v", fixed)
	}
}

func TestTickDuration(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{10, 100 * time.Millisecond},
		{0, time.Second / DefaultTickRate},
		{-5, time.Second / DefaultTickRate},
	}

	for _, tc := range tests {
		if got := (RuntimeConfig{TickRate: tc.rate}).TickDuration(); got != tc.want {
			t.Errorf("TickDuration(%d) = %v, want %v", tc.rate, got, tc.want)
		}
	}
}

func TestInputFrameClicks(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionConfirm)
	f.Click(3, 4)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionConfirm) || len(f.Clicks) != 0 {
		t.Error("Clear() should drop actions and clicks")
	}
	if !clone.Has(ActionConfirm) || len(clone.Clicks) != 1 || clone.Clicks[0] != (Point{X: 3, Y: 4}) {
		t.Errorf("Clone() = %+v, want confirm and one click at (3,4)", clone)
	}
}
