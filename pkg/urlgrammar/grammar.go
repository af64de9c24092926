/*
Package urlgrammar builds the concrete DFA for URL-shaped input.

The grammar recognizes http/https URLs over a fixed ~70 symbol alphabet. Its
transition table is generated by rule-based enumeration over every
(state, symbol) pair, so the function is total: anything invalid is routed
into an explicit absorbing "rejected" sink instead of relying on the engine's
undefined-transition stop.
*/
package urlgrammar

import (
	"strings"

	"github.com/rbaliev/dfakit/pkg/automaton"
)

// Grammar states.
const (
	StateStart           automaton.State = "start"
	StateScheme          automaton.State = "scheme"
	StateSchemeSeparator automaton.State = "scheme_separator"
	StateAuthority       automaton.State = "authority"
	StatePath            automaton.State = "path"
	StateQuery           automaton.State = "query"
	StateFragment        automaton.State = "fragment"
	StateRejected        automaton.State = "rejected"
)

const (
	lower  = "abcdefghijklmnopqrstuvwxyz"
	upper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits = "0123456789"
	// RFC 3986 punctuation admitted by the grammar.
	punct = "-._~:/?#[]@!$&'()*+,;=%"

	alphanum = lower + upper + digits

	// Character classes that self-loop within a component.
	authoritySafe = alphanum + "-._"
	pathSafe      = alphanum + "-._~:/@!$&'()*+,;=%"
	querySafe     = pathSafe + "?"
	fragmentSafe  = querySafe + "#"
)

// Alphabet returns the grammar's full alphabet.
func Alphabet() []automaton.Symbol {
	chars := alphanum + punct
	out := make([]automaton.Symbol, 0, len(chars))
	for _, r := range chars {
		out = append(out, automaton.Symbol(r))
	}
	return out
}

// New builds the URL grammar automaton. The construction is pure and
// deterministic: every call yields a structurally identical automaton, and
// identical fingerprints.
func New() *automaton.Automaton {
	states := []automaton.State{
		StateStart, StateScheme, StateSchemeSeparator, StateAuthority,
		StatePath, StateQuery, StateFragment, StateRejected,
	}
	accept := []automaton.State{StateAuthority, StatePath, StateQuery, StateFragment}
	alphabet := Alphabet()

	transitions := make(map[automaton.Key]automaton.State, len(states)*len(alphabet))
	set := func(from automaton.State, on automaton.Symbol, to automaton.State) {
		transitions[automaton.Key{From: from, On: on}] = to
	}

	for _, c := range alphabet {
		r := rune(c)

		// start: only 'h' can open a scheme.
		if r == 'h' {
			set(StateStart, c, StateScheme)
		} else {
			set(StateStart, c, StateRejected)
		}

		// scheme: accumulate the "http"/"https" letters, ':' moves on.
		switch {
		case strings.ContainsRune("tps", r):
			set(StateScheme, c, StateScheme)
		case r == ':':
			set(StateScheme, c, StateSchemeSeparator)
		default:
			set(StateScheme, c, StateRejected)
		}

		// scheme_separator: absorb the "//"; a second ':' is invalid;
		// anything else opens the authority.
		switch r {
		case '/':
			set(StateSchemeSeparator, c, StateSchemeSeparator)
		case ':':
			set(StateSchemeSeparator, c, StateRejected)
		default:
			set(StateSchemeSeparator, c, StateAuthority)
		}

		// authority: host characters self-loop, delimiters advance.
		switch {
		case strings.ContainsRune(authoritySafe, r):
			set(StateAuthority, c, StateAuthority)
		case r == '/':
			set(StateAuthority, c, StatePath)
		case r == '?':
			set(StateAuthority, c, StateQuery)
		case r == '#':
			set(StateAuthority, c, StateFragment)
		default:
			set(StateAuthority, c, StateRejected)
		}

		// path
		switch {
		case strings.ContainsRune(pathSafe, r):
			set(StatePath, c, StatePath)
		case r == '?':
			set(StatePath, c, StateQuery)
		case r == '#':
			set(StatePath, c, StateFragment)
		default:
			set(StatePath, c, StateRejected)
		}

		// query
		switch {
		case strings.ContainsRune(querySafe, r):
			set(StateQuery, c, StateQuery)
		case r == '#':
			set(StateQuery, c, StateFragment)
		default:
			set(StateQuery, c, StateRejected)
		}

		// fragment
		if strings.ContainsRune(fragmentSafe, r) {
			set(StateFragment, c, StateFragment)
		} else {
			set(StateFragment, c, StateRejected)
		}

		// rejected: absorbing sink, defined explicitly to keep the table total.
		set(StateRejected, c, StateRejected)
	}

	a, err := automaton.New(states, alphabet, transitions, StateStart, accept)
	if err != nil {
		// The table is generated from the declared sets; a validation
		// failure here is a programming error.
		panic(err)
	}
	return a
}
