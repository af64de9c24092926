package memory

import (
	"context"
	"sync"

	"github.com/rbaliev/dfakit/pkg/automaton"
	"github.com/rbaliev/dfakit/pkg/ports"
)

// Store implements ports.AutomatonStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*automaton.Automaton
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*automaton.Automaton),
	}
}

// Save persists the automaton in memory. Automata are immutable after
// construction, so the pointer is stored as-is; no defensive copy is needed.
func (s *Store) Save(ctx context.Context, id string, a *automaton.Automaton) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = a
	return nil
}

// Load retrieves the automaton from memory.
func (s *Store) Load(ctx context.Context, id string) (*automaton.Automaton, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.data[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return a, nil
}

// Delete removes the automaton.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns stored automaton IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}
