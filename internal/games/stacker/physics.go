package stacker

// FallingBox is the moving box the player must land.
// X is the left edge; Y never changes during a game.
type FallingBox struct {
	X     int
	Y     int
	Width int
	Speed int
}

// Right returns the x-coordinate of the right edge.
func (b FallingBox) Right() int {
	return b.X + b.Width
}

// Advance moves the box by one tick and reverses direction when an edge
// reaches or passes a field bound. The position is not clamped, so the box
// may overshoot a bound by up to one tick of travel.
func (b *FallingBox) Advance(fieldWidth int) {
	b.X += b.Speed
	if b.X <= 0 || b.Right() >= fieldWidth {
		b.Speed = -b.Speed
	}
}
