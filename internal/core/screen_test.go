package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("New screen should be default spaces, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawTextColor(0, 0, "XXXX", ColorGreen)
	s.Clear()

	if c := s.GetCell(1, 0); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("after Clear() GetCell(1, 0) = %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "1C BD", ColorYellow)

	if got := s.Row(1); !strings.HasPrefix(got, "  1C BD") {
		t.Errorf("Row(1) = %q, expected prefix %q", got, "  1C BD")
	}
	if c := s.GetCell(3, 1); c.Color != ColorYellow {
		t.Errorf("GetCell(3, 1).Color = %d, expected yellow", c.Color)
	}

	// Clipping at the right edge
	s.DrawText(18, 2, "ABCD")
	if s.Get(19, 2) != 'B' {
		t.Errorf("Get(19, 2) = %q, expected 'B'", s.Get(19, 2))
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "时间", ColorDefault)

	// Two runes centered in ten columns start at column 4.
	if s.Get(4, 0) != '时' || s.Get(5, 0) != '间' {
		t.Errorf("Row(0) = %q, expected runes centered at 4", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(1, 1, 5, 3), ColorGreen)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 3}: '└',
		{5, 3}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("Get(%d, %d) = %q, expected %q", pos[0], pos[1], got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("DrawBox edges not drawn")
	}
	if s.GetCell(1, 1).Color != ColorGreen {
		t.Error("DrawBox should use the given color")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawHLine(2, 1, 4, '■', ColorGreen)

	if got := s.Row(1); got != "  ■■■■    " {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ABC")
	s.DrawText(0, 1, "DEF")

	if got := s.String(); got != "ABC\nDEF" {
		t.Errorf("String() = %q, expected %q", got, "ABC\nDEF")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColor(1, 1, 'X', ColorRed)
	s.SetColor(4, 4, 'Y', ColorRed)

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("Resize: got %dx%d, expected 3x3", s.Width(), s.Height())
	}
	if c := s.GetCell(1, 1); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("Resize should keep content, got %+v", c)
	}

	s.Resize(6, 6)
	if s.Get(4, 4) != ' ' {
		t.Error("Content clipped by a shrink should not come back")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "ab")

	if got := s.Row(0); got != "ab  " {
		t.Errorf("Row(0) = %q, expected %q", got, "ab  ")
	}
	if got := s.Row(5); got != "    " {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}
