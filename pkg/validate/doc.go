/*
Package validate exposes the URL validation surface consumed by the CLI, the
HTTP API and the MCP adapter.

Two interchangeable strategies implement the same Validator interface:

  - Machine: drives the URL grammar automaton and reports the genuine state
    trace of the simulation.
  - Heuristic: a regex-based approximation that reconstructs a plausible
    state sequence from the shape of the input.

Both also scan for suspicious substrings (injection attempts, traversal,
redirect baiting and the like) via a shared pattern catalog. Validators are
plain values passed to whatever consumes them; nothing in this package holds
process-global state.
*/
package validate
