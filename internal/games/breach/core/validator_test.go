package core

import (
	"errors"
	"testing"

	"github.com/zyedidia/generic/mapset"
)

func TestAxisTransitions(t *testing.T) {
	tests := []struct {
		from, want Axis
	}{
		{AxisNone, AxisRow},
		{AxisRow, AxisColumn},
		{AxisColumn, AxisRow},
	}
	for _, tc := range tests {
		if got := tc.from.Next(); got != tc.want {
			t.Errorf("%s.Next() = %s, want %s", tc.from, got, tc.want)
		}
	}
}

func TestValidate(t *testing.T) {
	selected := mapset.New[Coord]()
	selected.Put(C(2, 0))
	selected.Put(C(2, 4))

	rowBound := ValidationState{Size: 6, Axis: AxisRow, Anchor: C(2, 4), Started: true, Selected: selected}
	colBound := ValidationState{Size: 6, Axis: AxisColumn, Anchor: C(2, 4), Started: true, Selected: selected}
	fresh := ValidationState{Size: 6, Axis: AxisNone, Selected: mapset.New[Coord]()}

	tests := []struct {
		name string
		st   ValidationState
		c    Coord
		want error
	}{
		{"first move in row 0", fresh, C(3, 0), nil},
		{"first move off row 0", fresh, C(3, 1), ErrInvalidFirstMove},
		{"out of bounds", fresh, C(6, 0), ErrOutOfBounds},
		{"negative", fresh, C(-1, 0), ErrOutOfBounds},
		{"row-bound same column", rowBound, C(2, 1), nil},
		{"row-bound different column", rowBound, C(3, 2), ErrAxisViolation},
		{"row-bound same row", rowBound, C(4, 4), ErrAxisViolation},
		{"column-bound same row", colBound, C(5, 4), nil},
		{"column-bound different row", colBound, C(5, 3), ErrAxisViolation},
		{"already selected wins over axis", rowBound, C(2, 0), ErrAlreadySelected},
		{"anchor itself", colBound, C(2, 4), ErrAlreadySelected},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := Validate(tc.c, tc.st); !errors.Is(err, tc.want) {
				t.Errorf("Validate(%v) = %v, want %v", tc.c, err, tc.want)
			}
		})
	}
}

func TestValidMoves(t *testing.T) {
	fresh := ValidationState{Size: 4, Selected: mapset.New[Coord]()}
	moves := ValidMoves(fresh)
	if len(moves) != 4 {
		t.Fatalf("first-move ValidMoves = %v, want the 4 row-0 cells", moves)
	}
	for _, m := range moves {
		if m.Y != 0 {
			t.Errorf("first-move candidate %v is not in row 0", m)
		}
	}

	selected := mapset.New[Coord]()
	selected.Put(C(1, 0))
	selected.Put(C(1, 2))
	st := ValidationState{Size: 4, Axis: AxisColumn, Anchor: C(1, 2), Started: true, Selected: selected}
	moves = ValidMoves(st)
	want := []Coord{C(0, 2), C(2, 2), C(3, 2)}
	if len(moves) != len(want) {
		t.Fatalf("ValidMoves = %v, want %v", moves, want)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("ValidMoves[%d] = %v, want %v", i, moves[i], want[i])
		}
	}
}
