package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stacker/internal/app"
	"github.com/vovakirdan/tui-stacker/internal/core"
	"github.com/vovakirdan/tui-stacker/internal/platform/host"
)

// Status reports what the header shows.
type Status interface {
	State() app.AppState
	ErrorCode() app.ErrorCode
}

// Model is the Bubble Tea model for the terminal host. It does not run the
// game; it forwards input to the host loop and shows the frames it gets back.
type Model struct {
	send         func(core.InputEvent) bool
	status       Status
	keys         KeyMap
	help         help.Model
	releaseDelay time.Duration

	held  map[core.Key]int // generation of the pending release per held key
	gen   int
	frame string
	err   error
	done  bool
}

// NewModel creates a model that sends input events through send.
func NewModel(send func(core.InputEvent) bool, status Status, releaseDelay time.Duration) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		send:         send,
		status:       status,
		keys:         DefaultKeyMap(),
		help:         h,
		releaseDelay: releaseDelay,
		held:         make(map[core.Key]int),
	}
}

// Init implements tea.Model. Frames are pushed by the host loop.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case releaseMsg:
		if m.held[msg.key] == msg.gen {
			delete(m.held, msg.key)
			m.send(core.Release(msg.key))
		}
		return m, nil

	case FrameMsg:
		m.frame = string(msg)
		return m, nil

	case DoneMsg:
		m.err = msg.Err
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey turns a terminal key into device input. A key seen again
// before its release fired is reported as a repeat and the release is
// pushed back.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k, action := m.keys.MapKey(msg)
	switch action {
	case actionQuit:
		m.send(core.LongPress(k))
		return m, nil
	case actionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case actionNone:
		return m, nil
	}

	ev := core.Press(k)
	if _, ok := m.held[k]; ok {
		ev = core.InputEvent{Key: k, Kind: core.InputRepeat}
	}
	m.gen++
	m.held[k] = m.gen
	m.send(ev)
	return m, releaseCmd(k, m.gen, m.releaseDelay)
}

// View renders the current frame with header and help footer.
func (m Model) View() string {
	if m.done {
		return ""
	}

	state, code := app.StateMenu, app.CodeNone
	if m.status != nil {
		state, code = m.status.State(), m.status.ErrorCode()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(state, code),
		frameStyle.Render(RenderFrame(m.frame)),
		m.help.View(m.keys),
	)
}

// Err returns the error the host loop stopped with, if any.
func (m Model) Err() error {
	return m.err
}

// Options configures Run.
type Options struct {
	TickRate     int
	InputBuffer  int
	ReleaseDelay time.Duration
	Logger       *log.Logger
}

// Run hosts the engine in the terminal until it quits or ctx is cancelled.
func Run(ctx context.Context, engine *app.Engine, screen *core.Screen, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	frames := newFrameMailbox()
	loop := host.New(engine, screen, host.Options{
		TickRate:    opts.TickRate,
		InputBuffer: opts.InputBuffer,
		Logger:      opts.Logger,
		OnFrame:     frames.Put,
	})

	p := tea.NewProgram(
		NewModel(loop.Send, engine, opts.ReleaseDelay),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	forwardDone := make(chan struct{})
	go func() {
		defer close(forwardDone)
		frames.forward(ctx, p.Send)
	}()

	loopDone := make(chan error, 1)
	go func() {
		err := loop.Run(ctx)
		loopDone <- err
		p.Send(DoneMsg{Err: err})
	}()

	_, runErr := p.Run()
	cancel()
	<-forwardDone
	if err := <-loopDone; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", runErr)
	}
	return nil
}
