/*
Package dsl provides a fluent builder for programmatically constructing
deterministic finite automata.

It lets callers define machines in Go code instead of assembling transition
maps by hand, which is particularly useful for unit tests, generated
automata, and leveraging IDE autocompletion/type-checking.

Example usage:

	b := dsl.New()

	b.State("even").Accept().
		On('0', "odd").
		On('1', "even")

	b.State("odd").
		On('0', "even").
		On('1', "odd")

	machine, err := b.Start("even").Build()
	// machine accepts every string over {0,1} with an even number of zeros.
*/
package dsl
