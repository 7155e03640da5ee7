package stacker

import "github.com/vovakirdan/tui-stacker/internal/core"

// Outcome is the result kind of a drop.
type Outcome int

const (
	OutcomePlaced Outcome = iota // a box was added to the tower
	OutcomeMiss                  // no overlap, the game is lost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePlaced:
		return "placed"
	case OutcomeMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// DropResult describes what a single drop did.
type DropResult struct {
	Outcome   Outcome
	Index     int        // Slot the box was placed in, -1 on a miss
	Placed    PlacedBox  // Zero on a miss
	Reference PlacedBox  // Box the falling box was tested against
	Shifted   bool       // Whether the base was discarded to make room
	Before    FallingBox // Falling box at the moment of the drop
}

// Drop resolves the falling box against the top of the tower.
//
// On a miss the state is left untouched. On a hit the placed geometry is
// computed from the falling box as it was at the drop, then the falling box
// is narrowed in place, the tower shifted if it was full, the box stored and
// the score incremented. An overlap that works out to zero or less is a miss.
func (s *GameState) Drop() DropResult {
	res := DropResult{Index: -1, Before: s.Falling}

	full := s.Tower.Full()
	replace := 0
	if !full {
		replace = s.Tower.NextIndex()
	}
	ref := s.reference(replace, full)
	res.Reference = ref

	x, w := s.Falling.X, s.Falling.Width
	lx, lw := ref.LeftX, ref.Width

	if core.SpanOverlap(x, w, lx, lw) == 0 {
		res.Outcome = OutcomeMiss
		return res
	}

	var placed PlacedBox
	overlap := w
	switch {
	case x == lx:
		placed = PlacedBox{Width: w, LeftX: x}
	case x < lx:
		overlap = w - core.Abs(lx-x)
		placed = PlacedBox{Width: overlap, LeftX: lx}
	default:
		overlap = (x + w) - (lx + lw)
		placed = PlacedBox{Width: overlap, LeftX: x}
	}

	if overlap <= 0 {
		res.Outcome = OutcomeMiss
		return res
	}

	if x != lx {
		s.Falling.X += (w + overlap) / 2
		s.Falling.Width = overlap
	}

	if full {
		s.Tower.ShiftDiscardBase()
	}
	s.Tower.Place(replace, placed)
	s.Score++

	res.Outcome = OutcomePlaced
	res.Index = replace
	res.Placed = placed
	res.Shifted = full
	return res
}

// reference returns the box a drop into slot replace lands on. When the tower
// is full the top box becomes slot 1 after the shift, so it is the reference.
// With nothing below, the initial base stands in.
func (s *GameState) reference(replace int, full bool) PlacedBox {
	if full {
		if b, ok := s.Tower.Slot(0); ok {
			return b
		}
	}
	if b, ok := s.Tower.Slot(replace + 1); ok {
		return b
	}
	return s.base
}
