package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rbaliev/dfakit/pkg/automaton"
	"github.com/rbaliev/dfakit/pkg/ports"
)

// Store implements ports.AutomatonStore using the local filesystem.
// It stores automata as JSON documents in a configured directory.
type Store struct {
	BasePath string
}

// NewStore creates a new file store with the given base path.
// If basePath is empty, it defaults to ".dfakit/automata".
func NewStore(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".dfakit", "automata")
	}
	return &Store{BasePath: basePath}
}

func (f *Store) path(id string) string {
	return filepath.Join(f.BasePath, id+".json")
}

// Save persists the automaton's document to a JSON file.
func (f *Store) Save(ctx context.Context, id string, a *automaton.Automaton) error {
	if id == "" {
		return fmt.Errorf("id cannot be empty")
	}

	if err := os.MkdirAll(f.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure automata directory: %w", err)
	}

	data, err := json.MarshalIndent(a.Document(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal automaton: %w", err)
	}

	if err := os.WriteFile(f.path(id), data, 0644); err != nil {
		return fmt.Errorf("failed to write automaton file: %w", err)
	}

	return nil
}

// Load reads an automaton document back from disk and rebuilds it, running
// the full construction validation.
func (f *Store) Load(ctx context.Context, id string) (*automaton.Automaton, error) {
	if id == "" {
		return nil, fmt.Errorf("id cannot be empty")
	}

	data, err := os.ReadFile(f.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read automaton file: %w", err)
	}

	var doc automaton.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrMalformedDocument, err)
	}

	a, err := automaton.FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild automaton %s: %w", id, err)
	}

	return a, nil
}

// Delete removes the automaton file.
func (f *Store) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id cannot be empty")
	}

	err := os.Remove(f.path(id))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete automaton file: %w", err)
	}

	return nil
}

// List returns all stored automaton IDs.
func (f *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(f.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list automata: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			name := entry.Name()
			ids = append(ids, name[:len(name)-len(".json")])
		}
	}

	return ids, nil
}
