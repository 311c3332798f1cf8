// Package automaton defines the graph model consumed by the layout engine.
//
// A [Machine] describes a finite-state automaton as a set of state IDs, a
// nested transition table (state → symbol → targets), and an optional start
// state. For layout purposes the symbol level is irrelevant: [Machine.Edges]
// flattens the table into a deduplicated set of directed edges, collapsing
// multiple symbols between the same pair of states into one logical edge.
//
// The package also provides JSON and YAML serialization in both file and
// io.Reader/io.Writer variants, mirroring the layout serialization API in
// pkg/layout.
//
// # Validation
//
// The layout engine tolerates degenerate machines (empty state sets,
// self-loops, transitions referencing unknown states) and never fails on
// them. Callers that want strictness can run [Machine.Validate], which
// reports duplicate states, an unknown start state, and transitions whose
// endpoints are not declared in States.
package automaton
