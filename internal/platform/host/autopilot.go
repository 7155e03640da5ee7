package host

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-stacker/internal/app"
	"github.com/vovakirdan/tui-stacker/internal/core"
)

// Observer exposes the last frame an engine published.
type Observer interface {
	Latest() *app.Projection
}

// Autopilot plays the game by watching published frames and pressing
// Confirm when the falling box is as close to the top of the tower as it
// gets on this pass. It never touches the game state directly.
type Autopilot struct {
	// Tolerance is how far, in field units, the falling box may be from
	// the top box to drop without waiting for a closer frame.
	Tolerance int
	// MaxDrops stops the autopilot with a long press of Back once this
	// many drops were made. 0 plays forever.
	MaxDrops int

	seen      *app.Projection
	pending   bool
	pressedAt int
	waited    int
	drops     int
	best      int

	// Distance tracking for the current pass; prevD < 0 means unknown.
	prevX    int
	prevD    int
	closing  bool
	watching int
}

const (
	// pendingFrames is how many frames a requested drop may take to show up.
	pendingFrames = 10
	// patienceFrames is how many frames the autopilot watches one box
	// before dropping wherever it is.
	patienceFrames = 300
)

// NewAutopilot returns an autopilot that quits after maxDrops drops.
func NewAutopilot(maxDrops int) *Autopilot {
	return &Autopilot{MaxDrops: maxDrops, prevD: -1}
}

// Drops returns the number of drops requested so far.
func (a *Autopilot) Drops() int {
	return a.drops
}

// BestScore returns the highest score seen in any game.
func (a *Autopilot) BestScore() int {
	return a.best
}

// Decide returns the events to send for a frame. A frame that was already
// handled produces nothing.
func (a *Autopilot) Decide(p *app.Projection) []core.InputEvent {
	if p == nil || p == a.seen {
		return nil
	}
	a.seen = p
	if p.Score > a.best {
		a.best = p.Score
	}

	tap := []core.InputEvent{core.Press(core.KeyConfirm), core.Release(core.KeyConfirm)}

	switch p.State {
	case app.StateMenu, app.StatePause:
		a.forget()
		return tap
	case app.StateGameOver:
		a.pending = false
		a.forget()
		if a.done() {
			return []core.InputEvent{core.LongPress(core.KeyBack)}
		}
		return tap
	case app.StateErr:
		return []core.InputEvent{core.LongPress(core.KeyBack)}
	case app.StatePlaying:
	default:
		return nil
	}

	if a.pending {
		// Wait for the drop to resolve; give up if it got lost.
		if p.Score == a.pressedAt && a.waited < pendingFrames {
			a.waited++
			return nil
		}
		a.pending = false
		a.forget()
	}
	if a.done() {
		return []core.InputEvent{core.LongPress(core.KeyBack)}
	}
	if len(p.Tower) == 0 || !a.closest(p.Falling, p.Tower[len(p.Tower)-1]) {
		return nil
	}

	a.forget()
	a.pending = true
	a.pressedAt = p.Score
	a.waited = 0
	a.drops++
	return tap
}

func (a *Autopilot) done() bool {
	return a.MaxDrops > 0 && a.drops >= a.MaxDrops
}

// forget drops the distance history, for a new box or a new game.
func (a *Autopilot) forget() {
	a.prevD = -1
	a.closing = false
	a.watching = 0
}

// closest reports whether falling is at its nearest point to top on this
// pass. That is either within Tolerance, the frame where one more step at
// the current velocity would not get closer, or the first frame after the
// box turned away. A box that never settles is dropped after
// patienceFrames.
func (a *Autopilot) closest(falling, top core.Rect) bool {
	x := falling.X
	d := core.Abs(x - top.X)
	prevX, prevD, closing := a.prevX, a.prevD, a.closing
	a.prevX, a.prevD = x, d
	a.closing = prevD >= 0 && d < prevD
	a.watching++

	switch {
	case d <= a.Tolerance, a.watching >= patienceFrames:
		return true
	case prevD < 0:
		return false
	case a.closing:
		next := core.Abs(x + (x - prevX) - top.X)
		return next >= d
	default:
		return closing && d > prevD
	}
}

// Run polls obs every interval and sends the decided events until ctx ends.
// Events the loop cannot queue are lost; the next frame decides again.
func (a *Autopilot) Run(ctx context.Context, obs Observer, send func(core.InputEvent) bool, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		for _, ev := range a.Decide(obs.Latest()) {
			send(ev)
		}
	}
}
