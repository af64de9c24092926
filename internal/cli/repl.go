// Package cli implements the interactive harness and report formatting
// behind the dfakit commands.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rbaliev/dfakit/pkg/automaton"
	"github.com/rbaliev/dfakit/pkg/ports"
)

// UndefinedTargetPolicy decides what interactive construction does when the
// user names a transition target that is not a declared state.
type UndefinedTargetPolicy int

const (
	// UseTrapState silently substitutes an absorbing "trap" state, telling
	// the user. The trap state is added to the state set on first use.
	UseTrapState UndefinedTargetPolicy = iota
	// Reject aborts construction on the first undefined target.
	Reject
)

// TrapState is the substitute target under UseTrapState.
const TrapState automaton.State = "trap"

// REPL is the interactive read-evaluate loop for building, testing, saving
// and loading automata.
type REPL struct {
	in     *bufio.Scanner
	out    io.Writer
	store  ports.AutomatonStore
	policy UndefinedTargetPolicy
}

// NewREPL wires the loop to its I/O and persistence. The store decides where
// "save" and "load" go (file store by default, redis behind a flag).
func NewREPL(in io.Reader, out io.Writer, store ports.AutomatonStore, policy UndefinedTargetPolicy) *REPL {
	return &REPL{
		in:     bufio.NewScanner(in),
		out:    out,
		store:  store,
		policy: policy,
	}
}

func (r *REPL) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// readLine prompts and reads one line. ok is false when input is exhausted.
func (r *REPL) readLine(prompt string) (string, bool) {
	r.printf("%s", prompt)
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

// Run drives the top-level menu until the user exits or input ends.
func (r *REPL) Run(ctx context.Context) error {
	r.printf("DFA Simulator\n=============\n")

	for {
		r.printf("\nOptions:\n1. Create a new automaton\n2. Load an automaton\n3. Exit\n")
		choice, ok := r.readLine("\nEnter your choice (1-3): ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			a, err := r.createInteractive()
			if err != nil {
				r.printf("Error: %v\n", err)
				continue
			}
			r.testLoop(a)
			r.offerSave(ctx, a)
		case "2":
			id, ok := r.readLine("Enter automaton ID to load: ")
			if !ok {
				return nil
			}
			a, err := r.store.Load(ctx, id)
			if err != nil {
				r.printf("Error: %v\n", err)
				continue
			}
			r.printf("Automaton %s loaded\n", id)
			r.testLoop(a)
		case "3":
			return nil
		default:
			r.printf("Invalid choice. Please try again.\n")
		}
	}
}

// splitList parses a comma-separated prompt answer.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// createInteractive prompts for the full five-tuple, one transition per
// (state, symbol) pair.
func (r *REPL) createInteractive() (*automaton.Automaton, error) {
	r.printf("=== Automaton Creator ===\n")

	statesInput, ok := r.readLine("Enter states (comma-separated): ")
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	states := splitList(statesInput)
	stateSet := make(map[string]struct{}, len(states))
	for _, s := range states {
		stateSet[s] = struct{}{}
	}

	alphabetInput, ok := r.readLine("Enter alphabet symbols (comma-separated): ")
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	var alphabet []automaton.Symbol
	for _, s := range splitList(alphabetInput) {
		runes := []rune(s)
		if len(runes) != 1 {
			return nil, fmt.Errorf("symbol %q must be a single character", s)
		}
		alphabet = append(alphabet, automaton.Symbol(runes[0]))
	}

	transitions := make(map[automaton.Key]automaton.State)
	trapUsed := false
	r.printf("\nDefine transition function:\n")
	for _, state := range states {
		for _, symbol := range alphabet {
			target, ok := r.readLine(fmt.Sprintf("delta(%s, %c) = ", state, symbol))
			if !ok {
				return nil, io.ErrUnexpectedEOF
			}
			if _, known := stateSet[target]; !known {
				if r.policy == Reject {
					return nil, fmt.Errorf("%q is not a valid state", target)
				}
				r.printf("Error: %s is not a valid state. Using the trap state.\n", target)
				target = string(TrapState)
				trapUsed = true
			}
			transitions[automaton.Key{From: automaton.State(state), On: symbol}] = automaton.State(target)
		}
	}
	if trapUsed {
		states = append(states, string(TrapState))
	}

	var start string
	for {
		start, ok = r.readLine("\nEnter start state: ")
		if !ok {
			return nil, io.ErrUnexpectedEOF
		}
		if _, known := stateSet[start]; known {
			break
		}
		r.printf("Error: Start state must be in the set of states.\n")
	}

	acceptInput, ok := r.readLine("\nEnter accept states (comma-separated): ")
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	var accept []string
	for _, s := range splitList(acceptInput) {
		if _, known := stateSet[s]; known {
			accept = append(accept, s)
		} else {
			r.printf("Warning: %s is not in the set of states and was dropped.\n", s)
		}
	}

	stateVals := make([]automaton.State, len(states))
	for i, s := range states {
		stateVals[i] = automaton.State(s)
	}
	acceptVals := make([]automaton.State, len(accept))
	for i, s := range accept {
		acceptVals[i] = automaton.State(s)
	}

	return automaton.New(stateVals, alphabet, transitions, automaton.State(start), acceptVals)
}

// testLoop feeds user strings through the automaton until 'q'.
func (r *REPL) testLoop(a *automaton.Automaton) {
	for {
		input, ok := r.readLine("\nEnter a string to test (or 'q' to quit): ")
		if !ok || strings.EqualFold(input, "q") {
			return
		}

		res, err := a.Run(input)
		if err != nil {
			r.printf("Error: %v\n", err)
			continue
		}
		if res.Accepted {
			r.printf("String accepted\n")
		} else {
			r.printf("String rejected\n")
		}
		r.printf("State sequence: %s\n", FormatTrace(res.Trace))
	}
}

// offerSave asks whether to persist the automaton; an empty ID saves it
// under its content fingerprint.
func (r *REPL) offerSave(ctx context.Context, a *automaton.Automaton) {
	answer, ok := r.readLine("\nSave this automaton? (y/n): ")
	if !ok || !strings.EqualFold(answer, "y") {
		return
	}

	id, ok := r.readLine("Enter ID (empty for content fingerprint): ")
	if !ok {
		return
	}
	if id == "" {
		id = a.Fingerprint()
	}

	if err := r.store.Save(ctx, id, a); err != nil {
		r.printf("Error: %v\n", err)
		return
	}
	r.printf("Automaton saved as %s\n", id)
}

// FormatTrace renders a visited-state sequence as "a -> b -> c".
func FormatTrace(trace []automaton.State) string {
	parts := make([]string, len(trace))
	for i, s := range trace {
		parts[i] = string(s)
	}
	return strings.Join(parts, " -> ")
}
