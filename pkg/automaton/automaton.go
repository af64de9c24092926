package automaton

import (
	"fmt"
	"sort"
)

// State is an opaque, comparable state label.
type State string

// Symbol is a single element of the input alphabet.
type Symbol rune

// Key is the explicit two-field transition key. Using a struct instead of a
// concatenated string means state labels and symbols may contain any
// character, including the historical "," separator.
type Key struct {
	From State
	On   Symbol
}

// Automaton is a validated, immutable DFA five-tuple. Construct via New or
// FromDocument; the zero value is not usable.
type Automaton struct {
	states      map[State]struct{}
	alphabet    map[Symbol]struct{}
	transitions map[Key]State
	start       State
	accept      map[State]struct{}
	sinks       map[State]struct{}
}

// New validates the five-tuple and returns the automaton.
//
// The transition function is not required to be total: an absent (state,
// symbol) entry means "no transition defined" and makes Run stop early with a
// rejection. Every state and symbol the transitions do reference, however,
// must belong to the declared sets, and New fails with an
// *InvalidAutomatonError otherwise.
func New(states []State, alphabet []Symbol, transitions map[Key]State, start State, accept []State) (*Automaton, error) {
	a := &Automaton{
		states:      make(map[State]struct{}, len(states)),
		alphabet:    make(map[Symbol]struct{}, len(alphabet)),
		transitions: make(map[Key]State, len(transitions)),
		start:       start,
		accept:      make(map[State]struct{}, len(accept)),
	}
	for _, s := range states {
		a.states[s] = struct{}{}
	}
	for _, c := range alphabet {
		a.alphabet[c] = struct{}{}
	}
	for k, to := range transitions {
		a.transitions[k] = to
	}
	for _, s := range accept {
		a.accept[s] = struct{}{}
	}

	if _, ok := a.states[start]; !ok {
		return nil, &InvalidAutomatonError{
			Kind:   StartNotInStates,
			Detail: fmt.Sprintf("start state %q is not in the state set", start),
		}
	}
	for s := range a.accept {
		if _, ok := a.states[s]; !ok {
			return nil, &InvalidAutomatonError{
				Kind:   AcceptNotSubsetOfStates,
				Detail: fmt.Sprintf("accept state %q is not in the state set", s),
			}
		}
	}
	for k, to := range a.transitions {
		if _, ok := a.states[k.From]; !ok {
			return nil, &InvalidAutomatonError{
				Kind:   DanglingTransitionState,
				Detail: fmt.Sprintf("transition source %q is not in the state set", k.From),
			}
		}
		if _, ok := a.states[to]; !ok {
			return nil, &InvalidAutomatonError{
				Kind:   DanglingTransitionState,
				Detail: fmt.Sprintf("transition target %q (from %q on %q) is not in the state set", to, k.From, k.On),
			}
		}
		if _, ok := a.alphabet[k.On]; !ok {
			return nil, &InvalidAutomatonError{
				Kind:   DanglingTransitionSymbol,
				Detail: fmt.Sprintf("transition symbol %q is not in the alphabet", k.On),
			}
		}
	}

	// A non-accept state whose defined transitions all loop back to itself
	// can neither be left nor accept, so its runs are decided on entry.
	escapes := make(map[State]bool, len(a.states))
	for k, to := range a.transitions {
		if to != k.From {
			escapes[k.From] = true
		}
	}
	a.sinks = make(map[State]struct{})
	for s := range a.states {
		if _, acc := a.accept[s]; acc {
			continue
		}
		if !escapes[s] {
			a.sinks[s] = struct{}{}
		}
	}

	return a, nil
}

// IsRejectSink reports whether s is an absorbing non-accept state, i.e. one
// whose defined transitions are all self-loops. Run terminates as soon as it
// enters such a state.
func (a *Automaton) IsRejectSink(s State) bool {
	_, ok := a.sinks[s]
	return ok
}

// Start returns the start state.
func (a *Automaton) Start() State { return a.start }

// IsAccept reports whether s is an accepting state.
func (a *Automaton) IsAccept(s State) bool {
	_, ok := a.accept[s]
	return ok
}

// InAlphabet reports whether c is a member of the alphabet.
func (a *Automaton) InAlphabet(c Symbol) bool {
	_, ok := a.alphabet[c]
	return ok
}

// Next returns the destination for (from, on) and whether it is defined.
func (a *Automaton) Next(from State, on Symbol) (State, bool) {
	to, ok := a.transitions[Key{From: from, On: on}]
	return to, ok
}

// States returns the state set in sorted order.
func (a *Automaton) States() []State {
	out := make([]State, 0, len(a.states))
	for s := range a.states {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Alphabet returns the alphabet in sorted order.
func (a *Automaton) Alphabet() []Symbol {
	out := make([]Symbol, 0, len(a.alphabet))
	for c := range a.alphabet {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AcceptStates returns the accept set in sorted order.
func (a *Automaton) AcceptStates() []State {
	out := make([]State, 0, len(a.accept))
	for s := range a.accept {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of defined transitions.
func (a *Automaton) Len() int { return len(a.transitions) }
