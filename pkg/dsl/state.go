package dsl

import (
	"fmt"

	"github.com/rbaliev/dfakit/pkg/automaton"
)

// StateBuilder provides a fluent API for configuring a single state.
type StateBuilder struct {
	name    automaton.State
	accept  bool
	edges   map[automaton.Symbol]automaton.State
	builder *Builder
}

// Accept marks the state as an accept state.
func (s *StateBuilder) Accept() *StateBuilder {
	s.accept = true
	return s
}

// On adds an edge to the target state for the given symbol.
// The target is declared implicitly and the symbol is added to the
// alphabet. Redefining an existing edge to a different target is a
// determinism violation and fails the eventual Build call.
func (s *StateBuilder) On(symbol automaton.Symbol, target automaton.State) *StateBuilder {
	if existing, ok := s.edges[symbol]; ok && existing != target {
		s.builder.fail(fmt.Errorf("conflicting edge from %q on %q: %q vs %q", s.name, string(symbol), existing, target))
		return s
	}
	s.builder.State(target)
	s.builder.symbols[symbol] = struct{}{}
	s.edges[symbol] = target
	return s
}

// Loop adds a self-edge for each of the given symbols.
func (s *StateBuilder) Loop(symbols ...automaton.Symbol) *StateBuilder {
	for _, symbol := range symbols {
		s.On(symbol, s.name)
	}
	return s
}

// State declares another state on the parent builder, allowing chained
// definitions without holding a reference to the Builder.
func (s *StateBuilder) State(name automaton.State) *StateBuilder {
	return s.builder.State(name)
}
