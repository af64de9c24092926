package dsl

import (
	"fmt"

	"github.com/rbaliev/dfakit/pkg/automaton"
)

// Builder manages the automaton construction.
type Builder struct {
	states  map[automaton.State]*StateBuilder
	symbols map[automaton.Symbol]struct{}
	start   automaton.State
	err     error
}

// New creates a new automaton builder.
func New() *Builder {
	return &Builder{
		states:  make(map[automaton.State]*StateBuilder),
		symbols: make(map[automaton.Symbol]struct{}),
	}
}

// State declares a state and returns its builder.
// If the state was already declared, the existing builder is returned.
func (b *Builder) State(name automaton.State) *StateBuilder {
	if sb, ok := b.states[name]; ok {
		return sb
	}
	sb := &StateBuilder{
		name:    name,
		edges:   make(map[automaton.Symbol]automaton.State),
		builder: b,
	}
	b.states[name] = sb
	return sb
}

// Symbols declares alphabet symbols that are not used by any edge.
// Symbols appearing in On calls are registered automatically; this is
// only needed to widen the alphabet of a partial transition function.
func (b *Builder) Symbols(symbols ...automaton.Symbol) *Builder {
	for _, s := range symbols {
		b.symbols[s] = struct{}{}
	}
	return b
}

// Start sets the start state, declaring it if necessary.
func (b *Builder) Start(name automaton.State) *Builder {
	b.State(name)
	b.start = name
	return b
}

// Build compiles the declared states and edges into an automaton.
func (b *Builder) Build() (*automaton.Automaton, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.start == "" {
		return nil, fmt.Errorf("no start state declared")
	}

	states := make([]automaton.State, 0, len(b.states))
	accept := make([]automaton.State, 0)
	transitions := make(map[automaton.Key]automaton.State)
	for name, sb := range b.states {
		states = append(states, name)
		if sb.accept {
			accept = append(accept, name)
		}
		for symbol, target := range sb.edges {
			transitions[automaton.Key{From: name, On: symbol}] = target
		}
	}

	alphabet := make([]automaton.Symbol, 0, len(b.symbols))
	for s := range b.symbols {
		alphabet = append(alphabet, s)
	}

	a, err := automaton.New(states, alphabet, transitions, b.start, accept)
	if err != nil {
		return nil, fmt.Errorf("failed to build automaton: %w", err)
	}
	return a, nil
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
