// Package host runs an engine the way a device firmware would: a periodic
// draw context and an independent input context, each calling into the
// engine without coordinating with the other.
package host

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-stacker/internal/app"
	"github.com/vovakirdan/tui-stacker/internal/core"
)

// Engine is the part of app.Engine the loop drives.
type Engine interface {
	OnTick(dst core.Canvas) error
	OnInput(ev core.InputEvent) error
	State() app.AppState
}

// Options configures a Loop.
type Options struct {
	// TickRate is in ticks per second; 0 means core.DefaultConfig().TickRate.
	TickRate int
	// InputBuffer is the number of queued events before Send starts dropping.
	InputBuffer int
	// OnFrame, if set, is called from the tick goroutine after each draw.
	OnFrame func(frame string)
	Logger  *log.Logger
}

// Loop owns the two contexts that call into the engine.
type Loop struct {
	engine   Engine
	screen   *core.Screen
	interval time.Duration
	events   chan core.InputEvent
	onFrame  func(string)
	logger   *log.Logger

	ticks   atomic.Int64
	dropped atomic.Int64
}

// New creates a loop drawing onto screen.
func New(engine Engine, screen *core.Screen, opts Options) *Loop {
	rate := opts.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	buf := opts.InputBuffer
	if buf <= 0 {
		buf = 16
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		engine:   engine,
		screen:   screen,
		interval: time.Second / time.Duration(rate),
		events:   make(chan core.InputEvent, buf),
		onFrame:  opts.OnFrame,
		logger:   logger,
	}
}

// Send queues an input event without blocking.
// Returns false if the queue is full and the event was dropped.
func (l *Loop) Send(ev core.InputEvent) bool {
	select {
	case l.events <- ev:
		return true
	default:
		l.dropped.Add(1)
		l.logger.Debug("input queue full", "event", ev.String())
		return false
	}
}

// Ticks returns the number of ticks run so far.
func (l *Loop) Ticks() int64 {
	return l.ticks.Load()
}

// Dropped returns the number of events Send could not queue.
func (l *Loop) Dropped() int64 {
	return l.dropped.Load()
}

// Run drives the engine until it reaches Quit or ctx is cancelled.
// Engine faults are not fatal; they are logged by the engine and the loop
// keeps going. Returns ctx.Err() if the context ended the loop.
func (l *Loop) Run(ctx context.Context) error {
	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		return l.tickLoop(gctx, stop)
	})
	g.Go(func() error {
		return l.inputLoop(gctx, stop)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if l.engine.State() == app.StateQuit {
		l.logger.Info("host stopped", "ticks", l.Ticks(), "dropped_events", l.Dropped())
		return nil
	}
	return ctx.Err()
}

func (l *Loop) tickLoop(ctx context.Context, stop context.CancelFunc) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if l.engine.State() == app.StateQuit {
			stop()
			return nil
		}
		if err := l.engine.OnTick(l.screen); err != nil {
			l.logger.Debug("tick fault", "code", int(app.CodeOf(err)))
		}
		l.ticks.Add(1)
		if l.onFrame != nil {
			l.onFrame(l.screen.String())
		}
	}
}

func (l *Loop) inputLoop(ctx context.Context, stop context.CancelFunc) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-l.events:
			if err := l.engine.OnInput(ev); err != nil {
				l.logger.Debug("input fault", "event", ev.String(), "code", int(app.CodeOf(err)))
			}
			if l.engine.State() == app.StateQuit {
				stop()
				return nil
			}
		}
	}
}
