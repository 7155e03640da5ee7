package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-stacker/internal/core"
)

// KeyMap defines the key bindings of the terminal host.
type KeyMap struct {
	Confirm key.Binding
	Back    key.Binding
	Quit    key.Binding
	Help    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Back, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Confirm, k.Back},
		{k.Quit, k.Help},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/enter", "drop / ok"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "pause / back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
	}
}

// keyAction is what a terminal key means to the device.
type keyAction int

const (
	actionNone  keyAction = iota
	actionPress           // press of a device key, released by timeout
	actionQuit            // long press of Back
	actionHelp
)

// MapKey translates a key message to a device key and what to do with it.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Key, keyAction) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.KeyBack, actionQuit
	case key.Matches(msg, k.Confirm):
		return core.KeyConfirm, actionPress
	case key.Matches(msg, k.Back):
		return core.KeyBack, actionPress
	case key.Matches(msg, k.Help):
		return core.KeyNone, actionHelp
	}
	return core.KeyNone, actionNone
}
