package stacker

import (
	"errors"
	"sync"
)

// ErrBusy is returned when the game state is held by another context.
var ErrBusy = errors.New("stacker: game state busy")

// GameState is everything that changes during a game.
type GameState struct {
	Falling            FallingBox
	Tower              Tower
	Score              int
	DropRequested      bool
	DropButtonReleased bool

	base       PlacedBox
	fieldWidth int
}

// NewGameState returns the state at the start of a game.
func NewGameState(p Params) GameState {
	return GameState{
		Falling:            p.Start,
		Tower:              NewTower(p.Base),
		DropButtonReleased: true,
		base:               p.Base,
		fieldWidth:         p.FieldWidth,
	}
}

// Tick runs one simulation step: a pending drop is consumed and resolved
// first, then the falling box moves unless the drop missed.
// Returns the drop result and whether a drop happened.
func (s *GameState) Tick() (DropResult, bool) {
	var res DropResult
	dropped := s.DropRequested
	if dropped {
		s.DropRequested = false
		res = s.Drop()
		if res.Outcome == OutcomeMiss {
			return res, true
		}
	}
	s.Falling.Advance(s.fieldWidth)
	return res, dropped
}

// Store owns the game state and guards it with a lock that is only ever
// tried, never waited on. Callers that lose the race get ErrBusy and skip
// their work for this occurrence.
type Store struct {
	mu    sync.Mutex
	state GameState
}

// NewStore creates a store holding a fresh game.
func NewStore(p Params) *Store {
	return &Store{state: NewGameState(p)}
}

// TryUpdate runs fn with exclusive access to the state.
// Returns ErrBusy without calling fn if the lock is held.
func (s *Store) TryUpdate(fn func(*GameState)) error {
	if !s.mu.TryLock() {
		return ErrBusy
	}
	defer s.mu.Unlock()
	fn(&s.state)
	return nil
}

// TryView runs fn with a copy of the state.
// Returns ErrBusy without calling fn if the lock is held.
func (s *Store) TryView(fn func(GameState)) error {
	if !s.mu.TryLock() {
		return ErrBusy
	}
	snapshot := s.state
	s.mu.Unlock()
	fn(snapshot)
	return nil
}
