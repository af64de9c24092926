/*
Package automaton contains the core deterministic finite automaton model.

It defines the automaton five-tuple (states, alphabet, transition function,
start state, accept states), validates its structural invariants at
construction time, and simulates input strings against it. The package is
kept pure and free of I/O; persistence lives behind the store ports and the
JSON codec in this package only shapes the wire document.

# Key Entities

  - Automaton: an immutable, validated DFA. Built once via New or FromDocument.
  - Key: the explicit (from-state, symbol) transition key. No string
    concatenation is used anywhere, so state labels may contain any character.
  - Result: the outcome of one simulation run — the accept/reject verdict plus
    the ordered trace of visited states.
  - Document: the stable JSON shape used for persistence and the HTTP API.

Simulation never mutates the automaton, so a single Automaton value may be
shared by any number of concurrent Run calls.
*/
package automaton
