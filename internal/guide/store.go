package guide

import (
	"sync"

	"dmguide/internal/debug"
)

// Store holds the ViewState of one session for surfaces that handle input on
// more than one goroutine, such as the web server.
type Store struct {
	mu    sync.Mutex
	state ViewState
}

// NewStore returns a store holding initial.
func NewStore(initial ViewState) *Store {
	return &Store{state: initial}
}

// State returns the current state.
func (s *Store) State() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies ev and returns the resulting state. A rejected event
// leaves the state untouched and returns the error from Reduce.
func (s *Store) Dispatch(ev Event) (ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := Reduce(s.state, ev)
	if err != nil {
		debug.Log("event rejected", "event", eventName(ev), "err", err)
		return s.state, err
	}
	debug.Log("event applied", "event", ev.Name(),
		"section", next.Section, "expanded", next.ExpandedAlgo, "detail", next.DetailedAlgo,
		"card", next.CardIndex, "flipped", next.CardFlipped, "dark", next.DarkMode)
	s.state = next
	return next, nil
}

// Reset restores the state to initial.
func (s *Store) Reset(initial ViewState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = initial
}

func eventName(ev Event) string {
	if ev == nil {
		return "<nil>"
	}
	return ev.Name()
}
