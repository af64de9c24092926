package ports

import (
	"context"
	"errors"

	"github.com/rbaliev/dfakit/pkg/automaton"
)

// ErrNotFound is returned when an automaton ID cannot be found in the store.
var ErrNotFound = errors.New("automaton not found")

// ErrMalformedDocument is returned when a stored document cannot be parsed
// back into an automaton.
var ErrMalformedDocument = errors.New("malformed automaton document")

// AutomatonStore defines the interface for persisting built automata.
// Identifiers are caller-supplied; the HTTP layer uses the automaton's
// content fingerprint, which is stable across processes and runs.
type AutomatonStore interface {
	// Save persists the automaton under the given ID.
	Save(ctx context.Context, id string, a *automaton.Automaton) error

	// Load retrieves the automaton for the given ID.
	// Returns ErrNotFound if no such automaton exists and wraps
	// ErrMalformedDocument if the stored bytes cannot be decoded.
	Load(ctx context.Context, id string) (*automaton.Automaton, error)

	// Delete removes the automaton for the given ID. Deleting an absent ID
	// is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored automata.
	List(ctx context.Context) ([]string, error)
}
