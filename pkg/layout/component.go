package layout

// components partitions the states into connected components of the
// undirected adjacency map. Every state appears in exactly one component;
// states without neighbours form singletons. Traversal uses an explicit
// stack rather than recursion, so large graphs cannot hit depth limits.
//
// Component order follows the order of states, and members appear in
// discovery order, so the partition is deterministic.
func components(states []string, adj adjacency) [][]string {
	visited := make(map[string]bool, len(states))
	var comps [][]string

	for _, seed := range states {
		if visited[seed] {
			continue
		}

		var comp []string
		stack := []string{seed}
		visited[seed] = true
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, id)

			for _, next := range adj.undirected[id] {
				if !visited[next] {
					visited[next] = true
					stack = append(stack, next)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// centroid returns the arithmetic mean of the members' positions. Members
// without a position are skipped; an empty set yields the zero position.
func centroid(members []string, positions map[string]Position) Position {
	var sum Position
	var n int
	for _, id := range members {
		p, ok := positions[id]
		if !ok {
			continue
		}
		sum.X += p.X
		sum.Y += p.Y
		n++
	}
	if n == 0 {
		return Position{}
	}
	return Position{X: sum.X / float64(n), Y: sum.Y / float64(n)}
}
