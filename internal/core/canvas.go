package core

// Canvas is the drawing surface the engine renders into once per tick.
// Coordinates are logical field units, not terminal cells.
type Canvas interface {
	// Clear erases the whole surface.
	Clear()

	// DrawFilledRect fills the rectangle with top-left (x, y) and size w x h.
	DrawFilledRect(x, y, w, h int)

	// DrawText writes text with its first character at (x, y).
	DrawText(x, y int, text string)
}
