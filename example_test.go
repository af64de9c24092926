package dfakit_test

import (
	"fmt"
	"log"

	"github.com/rbaliev/dfakit"
	"github.com/rbaliev/dfakit/pkg/dsl"
)

// ExampleNewURLValidator demonstrates the automaton-backed URL validation
// strategy. The state sequence is the exact path the grammar walked.
func ExampleNewURLValidator() {
	validator := dfakit.NewURLValidator()

	report := validator.Validate("https://example.com/docs?page=2#intro")
	fmt.Println(report.Valid)
	fmt.Println(report.StateSequence[len(report.StateSequence)-1])
	fmt.Println(report.Components.Authority)
	// Output:
	// true
	// fragment
	// example.com
}

// Example_customAutomaton builds a machine of its own with the dsl package
// and runs it directly, without any URL semantics involved.
func Example_customAutomaton() {
	b := dsl.New()

	b.State("even").Accept().
		On('0', "odd").
		On('1', "even")

	b.State("odd").
		On('0', "even").
		On('1', "odd")

	machine, err := b.Start("even").Build()
	if err != nil {
		log.Fatal(err)
	}

	res, err := machine.Run("1001")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Accepted)
	fmt.Println(res.Trace)
	// Output:
	// true
	// [even even odd even even]
}
