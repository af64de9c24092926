/*
Package dfakit is a deterministic finite automaton engine with a concrete
URL validation grammar.

The core model lives in pkg/automaton, the URL grammar in pkg/urlgrammar and
the validation strategies in pkg/validate. This root package only ties them
together for library consumers and carries the release version.
*/
package dfakit

import (
	"github.com/rbaliev/dfakit/pkg/urlgrammar"
	"github.com/rbaliev/dfakit/pkg/validate"
)

// Version is the release version reported by the CLI and the MCP server.
const Version = "0.4.0"

// NewURLValidator returns the automaton-backed validation strategy over the
// standard URL grammar.
func NewURLValidator() validate.Validator {
	return validate.NewMachine(urlgrammar.New())
}

// NewHeuristicValidator returns the regex-backed validation strategy.
func NewHeuristicValidator() validate.Validator {
	return validate.NewHeuristic()
}
