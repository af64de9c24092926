package automaton

import (
	"errors"
	"fmt"
)

// InvalidKind identifies which structural invariant a candidate automaton broke.
type InvalidKind string

const (
	// StartNotInStates: the start state is not a member of the state set.
	StartNotInStates InvalidKind = "start_not_in_states"
	// AcceptNotSubsetOfStates: an accept state is not a member of the state set.
	AcceptNotSubsetOfStates InvalidKind = "accept_not_subset_of_states"
	// DanglingTransitionState: a transition references a state outside the state set.
	DanglingTransitionState InvalidKind = "dangling_transition_state"
	// DanglingTransitionSymbol: a transition is keyed on a symbol outside the alphabet.
	DanglingTransitionSymbol InvalidKind = "dangling_transition_symbol"
)

// InvalidAutomatonError reports a structural invariant violation found at
// construction time. The automaton is never built when one is returned.
type InvalidAutomatonError struct {
	Kind   InvalidKind
	Detail string
}

func (e *InvalidAutomatonError) Error() string {
	return fmt.Sprintf("invalid automaton (%s): %s", e.Kind, e.Detail)
}

// UnknownSymbolError reports an input symbol outside the automaton's alphabet.
// It aborts the single run that encountered it; the automaton itself remains
// valid and reusable.
type UnknownSymbolError struct {
	Symbol rune
	Pos    int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("symbol %q at position %d is not in the alphabet", e.Symbol, e.Pos)
}

// IsInvalid reports whether err is an InvalidAutomatonError of the given kind.
func IsInvalid(err error, kind InvalidKind) bool {
	var ie *InvalidAutomatonError
	return errors.As(err, &ie) && ie.Kind == kind
}
