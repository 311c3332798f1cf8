package layout

import (
	"slices"

	"github.com/statecanvas/statecanvas/pkg/automaton"
)

// adjacency holds the directed and undirected neighbour maps derived from a
// machine's flattened edges. Symbol information is not retained. Edges whose
// endpoints are not declared in States never reach this point: they are
// dropped by [automaton.Machine.Edges], which keeps the completeness
// invariant intact for degenerate input.
type adjacency struct {
	directed   map[string][]string
	undirected map[string][]string
}

// buildAdjacency derives both neighbour maps from the machine. Neighbour
// lists are duplicate-free and deterministically ordered (edges arrive
// sorted). Self-loops appear in neither map: they carry no layering or
// attraction effect.
func buildAdjacency(m *automaton.Machine) adjacency {
	adj := adjacency{
		directed:   make(map[string][]string, len(m.States)),
		undirected: make(map[string][]string, len(m.States)),
	}

	for _, e := range m.Edges() {
		if e.From == e.To {
			continue
		}
		adj.directed[e.From] = appendUnique(adj.directed[e.From], e.To)
		adj.undirected[e.From] = appendUnique(adj.undirected[e.From], e.To)
		adj.undirected[e.To] = appendUnique(adj.undirected[e.To], e.From)
	}
	return adj
}

func appendUnique(list []string, id string) []string {
	if slices.Contains(list, id) {
		return list
	}
	return append(list, id)
}
