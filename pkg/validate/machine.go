package validate

import (
	"errors"

	"github.com/rbaliev/dfakit/pkg/automaton"
	"github.com/rbaliev/dfakit/pkg/urlgrammar"
)

// Machine validates URLs by simulating them against a DFA. The automaton is
// injected, never a package-level singleton, so tests can supply their own
// grammar and concurrent callers can share one immutable instance.
type Machine struct {
	automaton *automaton.Automaton
}

var _ Validator = (*Machine)(nil)

// NewMachine builds a Machine over the given automaton. Pass
// urlgrammar.New() for the standard URL grammar.
func NewMachine(a *automaton.Automaton) *Machine {
	return &Machine{automaton: a}
}

// Validate runs the URL through the automaton. A symbol outside the alphabet
// is reported as a rejection (the sequence gains a trailing "rejected"
// marker), not as an error: HTTP and MCP callers want a structured verdict,
// never a fault.
func (m *Machine) Validate(url string) Report {
	res, err := m.automaton.Run(url)

	var ue *automaton.UnknownSymbolError
	if errors.As(err, &ue) {
		// Re-run the consumable prefix to recover the partial trace.
		prefix, prefixErr := m.automaton.Run(url[:ue.Pos])
		seq := []automaton.State{m.automaton.Start()}
		if prefixErr == nil {
			seq = prefix.Trace
		}
		return Report{
			Valid:           false,
			StateSequence:   append(seq, urlgrammar.StateRejected),
			RejectionReason: ue.Error(),
		}
	}

	report := Report{
		Valid:         res.Accepted,
		StateSequence: res.Trace,
	}
	if !res.Accepted {
		report.RejectionReason = urlgrammar.RejectionReason(url)
		return report
	}
	if comps, ok := urlgrammar.Split(url); ok {
		report.Components = &comps
	}
	return report
}

// DetectSecurityIssues scans the URL against the shared pattern catalog.
func (m *Machine) DetectSecurityIssues(url string) map[IssueKind][]string {
	var comps *urlgrammar.Components
	if c, ok := urlgrammar.Split(url); ok {
		comps = &c
	}
	return scanIssues(url, comps)
}
