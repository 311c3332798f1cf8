package layout

import "github.com/statecanvas/statecanvas/pkg/automaton"

// Fresh computes a general-purpose layout for the machine.
//
// When opts.PreserveExisting is set and existing is non-empty, states present
// in both the machine and existing keep their prior positions and only the
// remaining states are placed, via [PlaceNew]. Otherwise the full pipeline
// runs: BFS layering seeds a hierarchical guess, connected components are
// arranged into compact clusters, the force simulation relaxes the result,
// overlaps are resolved, and the point set is fitted to the canvas.
//
// The returned map is freshly allocated and contains exactly one position
// per declared state; existing is never mutated. A nil or empty machine
// yields an empty map.
func Fresh(m *automaton.Machine, existing map[string]Position, opts *Options) map[string]Position {
	o := opts.normalized()
	if m == nil || len(m.States) == 0 {
		return map[string]Position{}
	}

	if o.PreserveExisting && len(existing) > 0 {
		return placePreserving(m, existing, opts)
	}

	adj := buildAdjacency(m)
	comps := components(m.States, adj)
	edges := m.Edges()

	positions := initialPositions(m, adj, o)
	arrangeClusters(positions, comps)
	refine(positions, comps, edges, o)
	resolveOverlaps(positions, m.States, o, o.Rand)
	fitToCanvas(positions, o)
	return positions
}

// placePreserving keeps positions for retained states and routes only the
// new states through the incremental placer. States that vanished from the
// machine are dropped; the result still covers every declared state exactly
// once.
func placePreserving(m *automaton.Machine, existing map[string]Position, opts *Options) map[string]Position {
	positions := make(map[string]Position, len(m.States))
	var missing []string
	for _, id := range m.States {
		if p, ok := existing[id]; ok {
			positions[id] = p
		} else {
			missing = append(missing, id)
		}
	}

	for id, p := range PlaceNew(positions, missing, opts) {
		positions[id] = p
	}
	return positions
}
