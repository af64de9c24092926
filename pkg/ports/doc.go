/*
Package ports defines the driven ports (interfaces) for dfakit.

These interfaces decouple the automaton domain from external implementations,
allowing the same engine to persist automata to the local filesystem, an
in-memory map, or Redis.

# Key Interfaces

  - AutomatonStore: persists and retrieves built automata under
    caller-visible identifiers (typically the automaton's content fingerprint).
*/
package ports
