package core

import (
	"strings"
)

// FillRune is the character used for filled rectangles.
const FillRune = '█'

// Screen is a 2D character buffer that implements Canvas.
// Logical field coordinates are divided by integer scale factors to find
// the target cell, so a 128x64 field fits in an ordinary terminal.
type Screen struct {
	width  int
	height int
	scaleX int
	scaleY int
	cells  [][]rune
}

// NewScreen creates a new screen buffer with the given cell dimensions and
// scale. Scale factors below 1 are treated as 1.
func NewScreen(width, height, scaleX, scaleY int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		scaleX: Max(scaleX, 1),
		scaleY: Max(scaleY, 1),
	}
	s.allocate()
	s.Clear()
	return s
}

// FitScreen creates a screen large enough for a fieldW x fieldH logical field,
// picking the smallest scale that fits within maxCols x maxRows cells.
func FitScreen(fieldW, fieldH, maxCols, maxRows int) *Screen {
	sx := ceilDiv(fieldW, Max(maxCols, 1))
	sy := ceilDiv(fieldH, Max(maxRows, 1))
	sx = Max(sx, 1)
	sy = Max(sy, 1)
	return NewScreen(ceilDiv(fieldW, sx), ceilDiv(fieldH, sy), sx, sy)
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]rune, s.height)
	for y := range s.cells {
		s.cells[y] = make([]rune, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Scale returns the horizontal and vertical scale factors.
func (s *Screen) Scale() (int, int) {
	return s.scaleX, s.scaleY
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = ' '
		}
	}
}

// Set places a rune at the given cell.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = r
}

// Get returns the rune at the given cell.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x]
}

// DrawFilledRect fills every cell touched by the logical rectangle.
func (s *Screen) DrawFilledRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c0 := floorDiv(x, s.scaleX)
	c1 := ceilDiv(x+w, s.scaleX)
	r0 := floorDiv(y, s.scaleY)
	r1 := ceilDiv(y+h, s.scaleY)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			s.Set(col, row, FillRune)
		}
	}
}

// DrawText writes a string starting at the cell containing logical (x, y).
// Text is not scaled; characters beyond the screen edge are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	col := floorDiv(x, s.scaleX)
	row := floorDiv(y, s.scaleY)
	i := 0
	for _, r := range text {
		s.Set(col+i, row, r)
		i++
	}
}

// String converts the screen buffer to a renderable string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height*3 + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x])
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	return string(s.cells[y])
}

// floorDiv divides rounding toward negative infinity, so boxes that
// overshoot the left edge map to negative (clipped) cells.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

var _ Canvas = (*Screen)(nil)
