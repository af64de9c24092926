package validate

import (
	"github.com/rbaliev/dfakit/pkg/automaton"
	"github.com/rbaliev/dfakit/pkg/urlgrammar"
)

// Report is the result of validating one URL.
type Report struct {
	Valid           bool                    `json:"valid"`
	StateSequence   []automaton.State       `json:"state_sequence"`
	RejectionReason string                  `json:"rejection_reason,omitempty"`
	Components      *urlgrammar.Components  `json:"components,omitempty"`
	SecurityIssues  map[IssueKind][]string  `json:"security_issues,omitempty"`
}

// Validator is the common surface of both validation strategies. Callers
// must be able to swap one strategy for the other without noticing.
type Validator interface {
	// Validate checks a single URL. It never returns an error: malformed
	// input is expressed as a rejection inside the Report.
	Validate(url string) Report

	// DetectSecurityIssues scans the raw URL for suspicious substrings,
	// keyed by issue kind. An empty map means nothing was flagged.
	DetectSecurityIssues(url string) map[IssueKind][]string
}
