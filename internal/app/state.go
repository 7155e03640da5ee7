// Package app sequences the stacker: it owns the application state machine,
// routes input events and drives the game on every tick.
package app

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// AppState is the top-level state of the application.
type AppState int32

const (
	StateMenu AppState = iota
	StatePlaying
	StatePause
	StateGameOver
	StateQuit
	StateErr
)

// String returns a human-readable name for the state.
func (s AppState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePause:
		return "Pause"
	case StateGameOver:
		return "GameOver"
	case StateQuit:
		return "Quit"
	case StateErr:
		return "Err"
	default:
		return fmt.Sprintf("AppState(%d)", int32(s))
	}
}

// decodeState maps a stored value back to a known state.
func decodeState(v int32) (AppState, bool) {
	s := AppState(v)
	if s < StateMenu || s > StateErr {
		return StateErr, false
	}
	return s, true
}

// ErrIllegalTransition is returned for transitions the machine does not allow.
var ErrIllegalTransition = errors.New("app: illegal state transition")

// transitions lists the allowed targets for each state. Quit and Err are
// reachable from every non-terminal state and are handled separately.
var transitions = map[AppState][]AppState{
	StateMenu:     {StatePlaying},
	StatePlaying:  {StateGameOver, StatePause},
	StatePause:    {StatePlaying, StateMenu},
	StateGameOver: {StatePlaying, StateMenu},
}

// CanTransition reports whether the machine allows from -> to.
func CanTransition(from, to AppState) bool {
	switch {
	case from == StateQuit:
		return false
	case to == StateQuit:
		return true
	case from == StateErr:
		return false
	case to == StateErr:
		return true
	}
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Machine holds the application state in an atomic so it can be read from
// any context without touching the game state lock.
type Machine struct {
	v atomic.Int32
}

// NewMachine returns a machine in the given state.
func NewMachine(initial AppState) *Machine {
	m := &Machine{}
	m.v.Store(int32(initial))
	return m
}

// Load returns the current state. A stored value that does not decode
// forces the machine into Err and returns a code 1 fault.
func (m *Machine) Load() (AppState, error) {
	raw := m.v.Load()
	s, ok := decodeState(raw)
	if !ok {
		m.v.Store(int32(StateErr))
		return StateErr, newFault(CodeStateDecode, "load state", fmt.Errorf("%w: value %d", ErrStateDecode, raw))
	}
	return s, nil
}

// Transition moves the machine to the target state if allowed from the
// current one. The check and the store are one compare-and-swap, so a
// concurrent transition is never overwritten by a stale decision.
// Returns the state the machine was in before the change.
func (m *Machine) Transition(to AppState) (AppState, error) {
	for {
		raw := m.v.Load()
		from, ok := decodeState(raw)
		if !ok {
			from = StateErr
		}
		if !CanTransition(from, to) {
			return from, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
		}
		if m.v.CompareAndSwap(raw, int32(to)) {
			return from, nil
		}
	}
}

// TransitionFrom moves from -> to only if the machine is currently in from.
// Returns false if the state changed underneath the caller.
func (m *Machine) TransitionFrom(from, to AppState) bool {
	if !CanTransition(from, to) {
		return false
	}
	return m.v.CompareAndSwap(int32(from), int32(to))
}
