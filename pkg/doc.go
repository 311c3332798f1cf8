// Package pkg provides the core libraries for Statecanvas diagram layout.
//
// # Overview
//
// Statecanvas positions the states of a finite-state automaton on a 2D
// canvas and renders the result as a diagram. The pkg directory is
// organized into five main areas:
//
//  1. [automaton] - The state machine model and its serialization
//  2. [layout] - The layout engine (layered and force-directed modes)
//  3. [render] - Output sinks (native SVG, Graphviz DOT, PNG, PDF)
//  4. [cache] - Content-addressed result caching (file, redis, mongo)
//  5. [pipeline] - Orchestration (load → layout → render)
//
// # Architecture
//
// The typical data flow through Statecanvas:
//
//	Machine definition (JSON/YAML)
//	         ↓
//	pkg/automaton  (parse, validate, flatten transitions to edges)
//	         ↓
//	pkg/layout     (compute a position for every state)
//	         ↓
//	pkg/render     (SVG / PNG / PDF / DOT / JSON artifacts)
//
// pkg/pipeline drives the three stages with per-stage caching keyed by
// content hashes, and pkg/observability lets hosts hook each stage.
//
// # Entry Points
//
// Most callers should start with [pipeline.Runner], which wires the
// stages together. Library users who only need positions can call
// [layout.Fresh], [layout.Deterministic], or [layout.PlaceNew] directly.
package pkg
