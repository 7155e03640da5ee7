// Package tui hosts the stacker in a terminal through Bubble Tea.
// Frames come from the host loop; keys are mapped to device input events.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-stacker/internal/core"
)

// FrameMsg carries a rendered frame from the host loop.
type FrameMsg string

// DoneMsg is sent when the host loop has stopped.
type DoneMsg struct {
	Err error
}

// releaseMsg fires when a key has not been seen for the release delay.
// Terminals report no key-up, so releases are synthesized.
type releaseMsg struct {
	key core.Key
	gen int
}

// releaseCmd schedules the synthetic release of a key press.
func releaseCmd(k core.Key, gen int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return releaseMsg{key: k, gen: gen}
	})
}

// frameMailbox holds the newest frame the program has not taken yet.
// Put never blocks, so the tick goroutine never waits on the UI; an unread
// frame is replaced by the newer one.
type frameMailbox struct {
	ch chan string
}

func newFrameMailbox() *frameMailbox {
	return &frameMailbox{ch: make(chan string, 1)}
}

// Put stores frame, discarding an unread older one.
func (m *frameMailbox) Put(frame string) {
	for {
		select {
		case m.ch <- frame:
			return
		default:
		}
		select {
		case <-m.ch:
		default:
		}
	}
}

// forward hands frames to send until ctx is done. send may block; frames
// arriving meanwhile collapse into the latest one.
func (m *frameMailbox) forward(ctx context.Context, send func(tea.Msg)) {
	for {
		select {
		case <-ctx.Done():
			return
		case frame := <-m.ch:
			send(FrameMsg(frame))
		}
	}
}
