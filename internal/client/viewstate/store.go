package viewstate

import "sync"

// Store serializes events of one view. Loads and the session resolver
// settle on their own goroutines; the store applies them one at a time.
type Store struct {
	mu    sync.Mutex
	state State
}

func NewStore() *Store {
	return &Store{state: Initial()}
}

// Dispatch applies e and returns the resulting state.
func (s *Store) Dispatch(e Event) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, e)
	return s.state
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
