package app

import (
	"fmt"

	"github.com/vovakirdan/tui-stacker/internal/core"
	"github.com/vovakirdan/tui-stacker/internal/games/stacker"
)

// markerSize is the side of the square drawn where a missed box stopped.
const markerSize = 8

// Projection is a copy of everything a frame needs, taken under the game
// state lock and drawn after it is released.
type Projection struct {
	State   AppState
	Falling core.Rect   // Empty outside Playing/Pause
	Tower   []core.Rect // Bottom-up
	Marker  core.Rect   // Set in GameOver
	Score   int
	Code    ErrorCode // Set in Err and on a failed tick
}

// project builds the projection of a game in the given state.
func project(state AppState, gs stacker.GameState, p stacker.Params) Projection {
	proj := Projection{
		State: state,
		Score: gs.Score,
		Tower: make([]core.Rect, 0, stacker.TowerCapacity),
	}
	for i, b := range gs.Tower.All() {
		proj.Tower = append(proj.Tower, p.SlotRect(i, b))
	}

	falling := p.FallingRect(gs.Falling)
	switch state {
	case StatePlaying, StatePause:
		proj.Falling = falling
	case StateGameOver:
		cx := falling.X + falling.W/2
		cy := falling.Y + falling.H/2
		mx := core.Clamp(cx-markerSize/2, 0, p.FieldWidth-markerSize)
		proj.Marker = core.NewRect(mx, cy-markerSize/2, markerSize, markerSize)
	}
	return proj
}

// draw renders a projection onto the canvas.
func draw(dst core.Canvas, proj Projection) {
	dst.Clear()

	switch proj.State {
	case StateMenu:
		dst.DrawText(2, 12, "STACKER")
		dst.DrawText(2, 28, "OK to start")
		dst.DrawText(2, 44, "Hold BACK to exit")
		return
	case StateErr:
		drawCode(dst, proj.Code)
		return
	case StateQuit:
		return
	}

	for _, r := range proj.Tower {
		dst.DrawFilledRect(r.X, r.Y, r.W, r.H)
	}

	switch proj.State {
	case StatePlaying:
		fillRect(dst, proj.Falling)
	case StatePause:
		fillRect(dst, proj.Falling)
		dst.DrawText(80, 0, "PAUSED")
	case StateGameOver:
		fillRect(dst, proj.Marker)
		dst.DrawText(2, 24, "GAME OVER")
		dst.DrawText(2, 32, "OK: again")
	}

	dst.DrawText(2, 0, fmt.Sprintf("SCORE %d", proj.Score))
}

// drawCode renders the diagnostic screen.
func drawCode(dst core.Canvas, code ErrorCode) {
	dst.Clear()
	dst.DrawText(2, 12, fmt.Sprintf("CODE %d", code))
	dst.DrawText(2, 28, "Hold BACK to exit")
}

func fillRect(dst core.Canvas, r core.Rect) {
	if r.Empty() {
		return
	}
	dst.DrawFilledRect(r.X, r.Y, r.W, r.H)
}
