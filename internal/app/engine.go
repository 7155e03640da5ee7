package app

import (
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stacker/internal/core"
	"github.com/vovakirdan/tui-stacker/internal/games/stacker"
)

// Engine is the stacker core. The host calls OnTick on every frame and
// OnInput for every input event, possibly from different goroutines.
// Both entry points only ever try the game state lock; losing the race is
// reported as a code 2 fault instead of waiting.
type Engine struct {
	machine *Machine
	store   *stacker.Store
	params  stacker.Params
	logger  *log.Logger

	fault  atomic.Pointer[Fault]
	latest atomic.Pointer[Projection]
}

// NewEngine creates an engine showing the menu.
// A nil logger discards all output.
func NewEngine(params stacker.Params, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		machine: NewMachine(StateMenu),
		store:   stacker.NewStore(params),
		params:  params,
		logger:  logger,
	}
}

// State returns the current application state.
func (e *Engine) State() AppState {
	s, err := e.machine.Load()
	if err != nil {
		e.record(err)
	}
	return s
}

// LastFault returns the most recent fault, or nil. Faults are never cleared.
func (e *Engine) LastFault() *Fault {
	return e.fault.Load()
}

// ErrorCode returns the code of the most recent fault, or CodeNone.
func (e *Engine) ErrorCode() ErrorCode {
	if f := e.fault.Load(); f != nil {
		return f.Code
	}
	return CodeNone
}

// Latest returns the projection drawn by the most recent tick, or nil before
// the first tick. Reading it never touches the game state lock.
func (e *Engine) Latest() *Projection {
	return e.latest.Load()
}

// Snapshot projects the current game without drawing it. Like OnTick it
// only tries the game state lock and returns a code 2 fault if it is held.
func (e *Engine) Snapshot() (Projection, error) {
	state, err := e.machine.Load()
	if err != nil {
		f := e.record(err)
		return Projection{State: StateErr, Code: f.Code}, f
	}
	switch state {
	case StateMenu, StateQuit:
		return Projection{State: state}, nil
	case StateErr:
		return Projection{State: StateErr, Code: e.ErrorCode()}, nil
	}

	var proj Projection
	if err := e.store.TryView(func(gs stacker.GameState) {
		proj = project(state, gs, e.params)
	}); err != nil {
		return Projection{State: state, Code: CodeStoreBusy}, e.record(busy("snapshot", err))
	}
	return proj, nil
}

// Params returns the game geometry.
func (e *Engine) Params() stacker.Params {
	return e.params
}

// OnTick advances the game by one step if it is being played and renders
// the current frame onto dst.
func (e *Engine) OnTick(dst core.Canvas) error {
	state, err := e.machine.Load()
	if err != nil {
		f := e.record(err)
		e.publish(dst, Projection{State: StateErr, Code: f.Code})
		return f
	}

	switch state {
	case StateQuit:
		return nil
	case StateMenu:
		e.publish(dst, Projection{State: StateMenu})
		return nil
	case StateErr:
		e.publish(dst, Projection{State: StateErr, Code: e.ErrorCode()})
		return nil
	}

	var (
		proj    Projection
		res     stacker.DropResult
		dropped bool
		over    bool
		loadErr error
	)
	// The state is read again under the lock. Input commits its transitions
	// while holding it, and a miss commits GameOver here before unlocking, so
	// neither side acts on a state the other has already left.
	err = e.store.TryUpdate(func(gs *stacker.GameState) {
		if state, loadErr = e.machine.Load(); loadErr != nil {
			return
		}
		if state == StatePlaying {
			res, dropped = gs.Tick()
			if dropped && res.Outcome == stacker.OutcomeMiss {
				over = e.machine.TransitionFrom(StatePlaying, StateGameOver)
				state, _ = e.machine.Load()
			}
		}
		proj = project(state, *gs, e.params)
	})
	if err != nil {
		f := e.record(busy("tick", err))
		drawCode(dst, f.Code)
		return f
	}
	if loadErr != nil {
		f := e.record(loadErr)
		e.publish(dst, Projection{State: StateErr, Code: f.Code})
		return f
	}

	if dropped {
		e.logDrop(res, proj.Score, over)
	}
	if state == StateErr {
		proj.Code = e.ErrorCode()
	}
	e.publish(dst, proj)
	return nil
}

// logDrop logs a resolved drop. over reports whether the miss ended the game.
func (e *Engine) logDrop(res stacker.DropResult, score int, over bool) {
	switch {
	case res.Outcome == stacker.OutcomePlaced:
		e.logger.Debug("box placed",
			"index", res.Index,
			"left", res.Placed.LeftX,
			"width", res.Placed.Width,
			"shifted", res.Shifted,
			"score", score,
		)
	case over:
		e.logger.Info("game over",
			"score", score,
			"box_left", res.Before.X,
			"box_width", res.Before.Width,
			"ref_left", res.Reference.LeftX,
			"ref_width", res.Reference.Width,
		)
	default:
		e.logger.Debug("miss superseded by state change", "state", e.State())
	}
}

// publish draws the projection and makes it visible to Latest.
func (e *Engine) publish(dst core.Canvas, proj Projection) {
	draw(dst, proj)
	e.latest.Store(&proj)
}

// record remembers the fault carried by err and logs it.
// Errors that are not faults are wrapped as decode faults.
func (e *Engine) record(err error) *Fault {
	var f *Fault
	if !errors.As(err, &f) {
		f = newFault(CodeStateDecode, "unknown", err)
	}
	e.fault.Store(f)
	if f.Code == CodeStoreBusy {
		e.logger.Warn("game state busy", "op", f.Op, "code", int(f.Code))
	} else {
		e.logger.Error("fault", "op", f.Op, "code", int(f.Code), "err", f.Err)
	}
	return f
}

// busy wraps a store error as a code 2 fault.
func busy(op string, err error) *Fault {
	return newFault(CodeStoreBusy, op, fmt.Errorf("%w: %w", ErrStoreBusy, err))
}
