package automaton

// Result is the outcome of a single simulation run.
type Result struct {
	// Accepted is true only when the full input was consumed and the final
	// state is an accepting one. A run that stopped on an undefined
	// transition is never accepted, whatever state it stopped in.
	Accepted bool
	// Trace is the ordered sequence of visited states, starting at the
	// start state. On an early stop it ends at the last reached state.
	Trace []State
}

// Run simulates input against the automaton.
//
// Symbols outside the alphabet abort the run with an *UnknownSymbolError.
// An undefined (state, symbol) transition stops the run immediately with a
// rejection, and so does entering a reject sink (see IsRejectSink): in both
// cases the verdict is already decided and the trace ends at the deciding
// state. Run is a pure function: it never mutates the automaton and is safe
// to call concurrently.
func (a *Automaton) Run(input string) (Result, error) {
	current := a.start
	trace := make([]State, 1, len(input)+1)
	trace[0] = current

	for i, r := range input {
		c := Symbol(r)
		if !a.InAlphabet(c) {
			return Result{}, &UnknownSymbolError{Symbol: r, Pos: i}
		}
		next, ok := a.Next(current, c)
		if !ok {
			// No transition defined: reject with the trace so far.
			return Result{Accepted: false, Trace: trace}, nil
		}
		current = next
		trace = append(trace, current)
		if a.IsRejectSink(current) {
			// The remaining input cannot change the outcome; the trace
			// records the sink exactly once.
			return Result{Accepted: false, Trace: trace}, nil
		}
	}

	return Result{Accepted: a.IsAccept(current), Trace: trace}, nil
}
