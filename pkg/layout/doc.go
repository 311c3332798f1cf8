// Package layout computes 2D canvas positions for the states of an
// automaton diagram.
//
// The package exposes three entry points:
//
//   - [Fresh] computes a general-purpose layout for interactive use: BFS
//     layering seeds an initial hierarchical guess, connected components are
//     arranged into compact shapes, a force simulation relaxes the result,
//     and post-processing resolves overlaps and fits everything to the
//     canvas. With [Options.PreserveExisting], retained states keep their
//     prior positions and only new states are placed.
//
//   - [Deterministic] computes a strict layered layout with no randomisation
//     step, suitable after algorithmic transformations of the machine where
//     reproducibility matters: identical input always yields identical
//     output.
//
//   - [PlaceNew] finds non-overlapping positions for newly added states
//     against an existing position set, using a spiral search.
//
// All entry points return a fresh map covering every declared state exactly
// once; caller-supplied position maps are never mutated. Degenerate input
// (empty machines, self-loops, transitions to undeclared states) degrades to
// best-effort geometric output rather than an error.
//
// # Pipeline
//
// Internally [Fresh] composes the following stages, each with its own file
// in this package:
//
//	adjacency → components → BFS layering → layer split →
//	hierarchical guess → cluster arrangement → force refinement →
//	overlap resolution → canvas fitting
//
// The force constants (component repulsion, node repulsion, edge attraction,
// displacement cap, cooling schedule) are empirically tuned and exposed as
// named fields on [Options]; they are the main lever for visual quality.
package layout
