package validate

import (
	"regexp"
	"strings"

	"github.com/rbaliev/dfakit/pkg/automaton"
	"github.com/rbaliev/dfakit/pkg/urlgrammar"
)

// urlPattern mirrors the grammar component by component: scheme, domain,
// optional port, then optional path, query and fragment.
var urlPattern = regexp.MustCompile(`(?i)^(https?://)` +
	`([a-zA-Z0-9][-a-zA-Z0-9]*(\.[-a-zA-Z0-9]+)*\.?)` +
	`(:\d+)?` +
	`(/[-a-zA-Z0-9._~:/?#\[\]@!$&'()*+,;=%]*)?` +
	`(\?[-a-zA-Z0-9._~:/?#\[\]@!$&'()*+,;=%]*)?` +
	`(#[-a-zA-Z0-9._~:/?#\[\]@!$&'()*+,;=%]*)?$`)

// Heuristic validates URLs with a single regex instead of an automaton
// simulation. It is cheaper per call and stricter about domain shape (the
// grammar accepts any authority characters; the regex wants a dotted name),
// but reports only a reconstructed state sequence, not a genuine trace.
type Heuristic struct{}

var _ Validator = (*Heuristic)(nil)

// NewHeuristic returns the regex-backed strategy.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Validate matches the URL against the pattern and reconstructs the state
// sequence the grammar would plausibly have walked.
func (h *Heuristic) Validate(url string) Report {
	match := urlPattern.FindStringSubmatch(url)
	if match == nil {
		return Report{
			Valid:           false,
			StateSequence:   rejectedSequence(url),
			RejectionReason: urlgrammar.RejectionReason(url),
		}
	}

	seq := []automaton.State{
		urlgrammar.StateStart, urlgrammar.StateScheme, urlgrammar.StateAuthority,
	}
	comps := &urlgrammar.Components{
		Scheme:    strings.TrimRight(match[1], ":/"),
		Authority: match[2],
		Path:      match[5],
		Query:     match[6],
		Fragment:  match[7],
	}
	if comps.Path != "" {
		seq = append(seq, urlgrammar.StatePath)
	}
	if comps.Query != "" {
		seq = append(seq, urlgrammar.StateQuery)
	}
	if comps.Fragment != "" {
		seq = append(seq, urlgrammar.StateFragment)
	}

	return Report{Valid: true, StateSequence: seq, Components: comps}
}

// rejectedSequence approximates how far an invalid URL got before failing.
func rejectedSequence(url string) []automaton.State {
	seq := []automaton.State{urlgrammar.StateStart}

	if strings.HasPrefix(url, "http") {
		seq = append(seq, urlgrammar.StateScheme)
		if _, rest, ok := strings.Cut(url, "://"); ok {
			if rest != "" && !strings.HasPrefix(rest, "/") {
				seq = append(seq, urlgrammar.StateAuthority)
				if strings.Contains(rest, "/") {
					seq = append(seq, urlgrammar.StatePath)
				}
				if strings.Contains(rest, "?") {
					seq = append(seq, urlgrammar.StateQuery)
				}
				if strings.Contains(rest, "#") {
					seq = append(seq, urlgrammar.StateFragment)
				}
			}
		}
	}

	return append(seq, urlgrammar.StateRejected)
}

// DetectSecurityIssues scans the URL against the shared pattern catalog.
func (h *Heuristic) DetectSecurityIssues(url string) map[IssueKind][]string {
	var comps *urlgrammar.Components
	if report := h.Validate(url); report.Components != nil {
		comps = report.Components
	}
	return scanIssues(url, comps)
}
