package app

import (
	"github.com/vovakirdan/tui-stacker/internal/core"
	"github.com/vovakirdan/tui-stacker/internal/games/stacker"
)

// OnInput routes a single input event.
//
// A long press of Back quits from any state. Every other event needs the
// game state lock; if it is held the machine enters Err, a code 2 fault is
// recorded and returned, and the event is dropped. Transitions caused by an
// event are committed before the lock is released.
func (e *Engine) OnInput(ev core.InputEvent) error {
	if ev.Is(core.KeyBack, core.InputLongPress) {
		if from, err := e.machine.Transition(StateQuit); err == nil && from != StateQuit {
			e.logger.Info("quit", "from", from)
		}
		return nil
	}

	state, err := e.machine.Load()
	if err != nil {
		return e.record(err)
	}
	if state == StateQuit || state == StateErr {
		return nil
	}

	var (
		next    = state
		moved   bool
		loadErr error
	)
	err = e.store.TryUpdate(func(gs *stacker.GameState) {
		// Re-read under the lock; a miss moves to GameOver while holding it.
		state, loadErr = e.machine.Load()
		if loadErr != nil || state == StateQuit || state == StateErr {
			next = state
			return
		}
		var reset bool
		next, reset = route(gs, state, ev)
		if next == state {
			return
		}
		moved = e.machine.TransitionFrom(state, next)
		if moved && reset {
			*gs = stacker.NewGameState(e.params)
		}
	})
	if err != nil {
		if _, terr := e.machine.Transition(StateErr); terr != nil {
			e.logger.Debug("cannot enter Err", "err", terr)
		}
		return e.record(busy("input", err))
	}
	if loadErr != nil {
		return e.record(loadErr)
	}

	if next == state {
		return nil
	}
	if !moved {
		e.logger.Debug("transition superseded", "from", state, "to", next, "now", e.State())
		return nil
	}
	e.logger.Info("state changed", "from", state, "to", next, "event", ev.String())
	return nil
}

// route applies an event to the game state and returns the state the
// machine should move to, and whether a fresh game must replace gs.
// It runs with the game state lock held.
func route(gs *stacker.GameState, state AppState, ev core.InputEvent) (AppState, bool) {
	if state != StatePlaying {
		// Re-arm the latch so a press made outside play cannot drop later.
		gs.DropButtonReleased = true
	}

	confirm := ev.Is(core.KeyConfirm, core.InputPress)
	back := ev.Is(core.KeyBack, core.InputPress)

	switch state {
	case StatePlaying:
		switch {
		case confirm:
			if gs.DropButtonReleased {
				gs.DropRequested = true
				gs.DropButtonReleased = false
			}
		case ev.Is(core.KeyConfirm, core.InputRelease):
			gs.DropButtonReleased = true
		case back:
			return StatePause, false
		}

	case StateMenu:
		if confirm {
			return StatePlaying, true
		}

	case StatePause:
		switch {
		case confirm:
			return StatePlaying, false
		case back:
			return StateMenu, true
		}

	case StateGameOver:
		switch {
		case confirm:
			return StatePlaying, true
		case back:
			return StateMenu, true
		}
	}

	return state, false
}
