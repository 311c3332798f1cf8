package automaton_test

import (
	"fmt"

	"github.com/statecanvas/statecanvas/pkg/automaton"
)

func ExampleMachine_Edges() {
	// A two-state automaton where both symbols lead to the same target:
	// the pair collapses to a single logical edge.
	m := automaton.Machine{
		States: []string{"q0", "q1"},
		Start:  "q0",
		Transitions: map[string]map[string][]string{
			"q0": {"a": {"q1"}, "b": {"q1"}},
			"q1": {"a": {"q1"}},
		},
	}

	for _, e := range m.Edges() {
		fmt.Printf("%s -> %s\n", e.From, e.To)
	}
	// Output:
	// q0 -> q1
	// q1 -> q1
}

func ExampleMachine_Validate() {
	m := automaton.Machine{
		States: []string{"q0"},
		Start:  "q9",
	}
	fmt.Println(m.Validate())
	// Output:
	// unknown start state: "q9"
}
