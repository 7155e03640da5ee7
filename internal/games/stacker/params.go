// Package stacker implements the tower-stacking game: a box oscillates
// above a tower and must be dropped onto the top box. A partial overlap
// narrows the box, no overlap ends the game.
package stacker

import (
	"github.com/vovakirdan/tui-stacker/internal/config"
	"github.com/vovakirdan/tui-stacker/internal/core"
)

// Params is the immutable geometry of a game.
type Params struct {
	FieldWidth  int
	FieldHeight int
	BoxHeight   int
	Start       FallingBox // Falling box at the start of every game
	Base        PlacedBox  // Initial base of the tower
}

// NewParams builds game geometry from configuration.
func NewParams(cfg config.StackerConfig) Params {
	return Params{
		FieldWidth:  cfg.Field.Width,
		FieldHeight: cfg.Field.Height,
		BoxHeight:   cfg.Box.Height,
		Start: FallingBox{
			X:     cfg.Box.StartX,
			Y:     cfg.Box.Y,
			Width: cfg.Box.Width,
			Speed: cfg.Box.Speed,
		},
		Base: PlacedBox{
			Width: cfg.Tower.BaseWidth,
			LeftX: cfg.Tower.BaseX,
		},
	}
}

// DefaultParams returns the geometry of the default configuration.
func DefaultParams() Params {
	return NewParams(config.DefaultStackerConfig())
}

// SlotY returns the top edge of tower slot i. The base sits on the bottom
// of the field and each slot above it is one box higher.
func (p Params) SlotY(i int) int {
	return p.FieldHeight - (TowerCapacity-i)*p.BoxHeight
}

// SlotRect returns the on-field rectangle of a box in slot i.
func (p Params) SlotRect(i int, b PlacedBox) core.Rect {
	return core.NewRect(b.LeftX, p.SlotY(i), b.Width, p.BoxHeight)
}

// FallingRect returns the on-field rectangle of the falling box.
func (p Params) FallingRect(b FallingBox) core.Rect {
	return core.NewRect(b.X, b.Y, b.Width, p.BoxHeight)
}
