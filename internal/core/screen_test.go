package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(64, 16, 2, 4)

	if s.Width() != 64 {
		t.Errorf("Width() = %d, expected 64", s.Width())
	}
	if s.Height() != 16 {
		t.Errorf("Height() = %d, expected 16", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestNewScreenClampsScale(t *testing.T) {
	s := NewScreen(4, 4, 0, -3)
	sx, sy := s.Scale()
	if sx != 1 || sy != 1 {
		t.Errorf("Scale() = (%d, %d), expected (1, 1)", sx, sy)
	}
}

func TestFitScreen(t *testing.T) {
	tests := []struct {
		name             string
		maxCols, maxRows int
		wantW, wantH     int
		wantSX, wantSY   int
	}{
		{"standard terminal", 80, 24, 64, 22, 2, 3},
		{"large terminal", 200, 80, 128, 64, 1, 1},
		{"tiny terminal", 10, 10, 10, 10, 13, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := FitScreen(128, 64, tc.maxCols, tc.maxRows)
			sx, sy := s.Scale()
			if s.Width() != tc.wantW || s.Height() != tc.wantH {
				t.Errorf("size = %dx%d, expected %dx%d", s.Width(), s.Height(), tc.wantW, tc.wantH)
			}
			if sx != tc.wantSX || sy != tc.wantSY {
				t.Errorf("Scale() = (%d, %d), expected (%d, %d)", sx, sy, tc.wantSX, tc.wantSY)
			}
			if s.Width() > tc.maxCols || s.Height() > tc.maxRows {
				t.Errorf("screen %dx%d does not fit %dx%d", s.Width(), s.Height(), tc.maxCols, tc.maxRows)
			}
		})
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10, 1, 1)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10, 1, 1)
	s.DrawFilledRect(0, 0, 10, 10)
	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("After Clear, expected space at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawFilledRectScaled(t *testing.T) {
	s := NewScreen(64, 16, 2, 4)
	// Tower base: 64 units wide at x=32, one box high at the bottom.
	s.DrawFilledRect(32, 56, 64, 8)

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			inside := x >= 16 && x < 48 && y >= 14 && y < 16
			got := s.Get(x, y) == FillRune
			if got != inside {
				t.Errorf("cell (%d, %d) filled = %v, expected %v", x, y, got, inside)
			}
		}
	}
}

func TestScreenDrawFilledRectPartialCell(t *testing.T) {
	s := NewScreen(10, 4, 2, 2)
	// x=3..6 touches cells 1, 2 (covering units 2..5)
	s.DrawFilledRect(3, 0, 3, 1)

	if s.Get(0, 0) != ' ' || s.Get(1, 0) != FillRune || s.Get(2, 0) != FillRune || s.Get(3, 0) != ' ' {
		t.Errorf("unexpected row 0: %q", s.Row(0))
	}
}

func TestScreenDrawFilledRectOvershoot(t *testing.T) {
	s := NewScreen(8, 2, 2, 1)
	// A box that bounced past the left edge is clipped, not shifted.
	s.DrawFilledRect(-2, 0, 4, 1)

	if s.Get(0, 0) != FillRune {
		t.Error("cell 0 should be filled by the visible part of the box")
	}
	if s.Get(1, 0) != ' ' {
		t.Error("cell 1 should stay empty")
	}
}

func TestScreenDrawFilledRectDegenerate(t *testing.T) {
	s := NewScreen(4, 4, 1, 1)
	s.DrawFilledRect(0, 0, 0, 4)
	s.DrawFilledRect(0, 0, 4, -1)

	if strings.ContainsRune(s.String(), FillRune) {
		t.Error("zero or negative sized rects should draw nothing")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5, 2, 2)
	s.DrawText(4, 2, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(36, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3, 1, 1)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5, 1, 1)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	outOfBounds := s.Row(-1)
	if outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}
