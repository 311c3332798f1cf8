package layout

import "github.com/statecanvas/statecanvas/pkg/automaton"

// bfsLayers assigns each reachable state a layer equal to its BFS depth from
// the seed. The seed is the machine's start state when declared and present;
// otherwise the first declared state. First discovery wins: back and cross
// edges never move an already-visited state to a different layer.
//
// States the traversal never reaches are returned separately, in declaration
// order, for the isolated-state placer. An empty machine yields no layers.
func bfsLayers(m *automaton.Machine, adj adjacency) (layers [][]string, unreached []string) {
	if len(m.States) == 0 {
		return nil, nil
	}

	seed := m.Start
	if seed == "" || !m.HasState(seed) {
		seed = m.States[0]
	}

	depth := map[string]int{seed: 0}
	queue := []string{seed}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		for len(layers) <= depth[id] {
			layers = append(layers, nil)
		}
		layers[depth[id]] = append(layers[depth[id]], id)

		for _, next := range adj.directed[id] {
			if _, seen := depth[next]; seen {
				continue
			}
			depth[next] = depth[id] + 1
			queue = append(queue, next)
		}
	}

	for _, id := range m.States {
		if _, seen := depth[id]; !seen {
			unreached = append(unreached, id)
		}
	}
	return layers, unreached
}

// splitLayers caps layer occupancy: any layer with more than maxPerLayer
// states is broken into consecutive contiguous sub-layers preserving the
// original relative order. Layers at or below the cap pass through
// unchanged. The result stays ordered from seed outward.
func splitLayers(layers [][]string, maxPerLayer int) [][]string {
	out := make([][]string, 0, len(layers))
	for _, layer := range layers {
		if len(layer) <= maxPerLayer {
			out = append(out, layer)
			continue
		}
		for start := 0; start < len(layer); start += maxPerLayer {
			end := min(start+maxPerLayer, len(layer))
			out = append(out, layer[start:end])
		}
	}
	return out
}
