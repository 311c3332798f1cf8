package layout

import (
	"math"

	"github.com/statecanvas/statecanvas/pkg/automaton"
)

// minForceDistance substitutes for near-zero distances so inverse-square
// forces never produce NaN or Infinity.
const minForceDistance = 1.0

// vector is a force accumulator. Distinct from Position to keep the
// semantics obvious at call sites.
type vector struct{ x, y float64 }

// refine runs the force simulation: a fixed number of stateless passes, each
// recomputing the net force on every state from an immutable snapshot of the
// current positions and applying it as a displacement capped by the cooling
// temperature. No velocity persists between passes, so this is steepest-
// descent relaxation with a decreasing step size.
//
// Force terms per pass:
//   - inter-component repulsion between component centroids, distributed
//     evenly over each component's members
//   - intra-component repulsion between every pair within a component
//   - spring attraction along every directed edge (self-loops excluded)
//   - boundary repulsion proportional to twice the penetration depth into
//     the margin band along each canvas edge
func refine(positions map[string]Position, comps [][]string, edges []automaton.Edge, o Options) {
	iterations := o.Iterations

	for iter := 0; iter < iterations; iter++ {
		temperature := math.Max(0.1, 1-float64(iter)/float64(iterations))
		forces := make(map[string]vector, len(positions))

		applyComponentRepulsion(forces, positions, comps, o)
		applyNodeRepulsion(forces, positions, comps, o)
		applyEdgeAttraction(forces, positions, edges, o)
		applyBoundaryRepulsion(forces, positions, o)

		maxStep := o.MaxDisplacement * temperature
		for id, f := range forces {
			p := positions[id]
			mag := math.Hypot(f.x, f.y)
			if mag > maxStep {
				f.x = f.x / mag * maxStep
				f.y = f.y / mag * maxStep
			}
			positions[id] = Position{X: p.X + f.x, Y: p.Y + f.y}
		}
	}
}

// applyComponentRepulsion pushes distinct components apart. The centroid
// pair force is split evenly across each component's members so small and
// large components feel the same aggregate push.
func applyComponentRepulsion(forces map[string]vector, positions map[string]Position, comps [][]string, o Options) {
	if len(comps) < 2 {
		return
	}

	centroids := make([]Position, len(comps))
	for i, comp := range comps {
		centroids[i] = centroid(comp, positions)
	}

	for i := 0; i < len(comps); i++ {
		for j := i + 1; j < len(comps); j++ {
			dx := centroids[i].X - centroids[j].X
			dy := centroids[i].Y - centroids[j].Y
			dist := math.Hypot(dx, dy)
			if dist < minForceDistance {
				dist = minForceDistance
				dx, dy = 1, 0 // identical centroids: push along a fixed axis
			}
			mag := o.ComponentRepulsion / (dist * dist)
			ux, uy := dx/dist, dy/dist

			share := mag / float64(len(comps[i]))
			for _, id := range comps[i] {
				f := forces[id]
				f.x += ux * share
				f.y += uy * share
				forces[id] = f
			}
			share = mag / float64(len(comps[j]))
			for _, id := range comps[j] {
				f := forces[id]
				f.x -= ux * share
				f.y -= uy * share
				forces[id] = f
			}
		}
	}
}

// applyNodeRepulsion pushes apart every pair of states within the same
// component, with a weaker constant than the component-level force.
func applyNodeRepulsion(forces map[string]vector, positions map[string]Position, comps [][]string, o Options) {
	for _, comp := range comps {
		for i := 0; i < len(comp); i++ {
			for j := i + 1; j < len(comp); j++ {
				a, b := positions[comp[i]], positions[comp[j]]
				dx := a.X - b.X
				dy := a.Y - b.Y
				dist := math.Hypot(dx, dy)
				if dist < minForceDistance {
					dist = minForceDistance
					dx, dy = 1, 0
				}
				mag := o.NodeRepulsion / (dist * dist)
				ux, uy := dx/dist, dy/dist

				fa := forces[comp[i]]
				fa.x += ux * mag
				fa.y += uy * mag
				forces[comp[i]] = fa

				fb := forces[comp[j]]
				fb.x -= ux * mag
				fb.y -= uy * mag
				forces[comp[j]] = fb
			}
		}
	}
}

// applyEdgeAttraction pulls edge endpoints together with a linear spring.
func applyEdgeAttraction(forces map[string]vector, positions map[string]Position, edges []automaton.Edge, o Options) {
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		a, ok1 := positions[e.From]
		b, ok2 := positions[e.To]
		if !ok1 || !ok2 {
			continue
		}
		dx := b.X - a.X
		dy := b.Y - a.Y
		dist := math.Hypot(dx, dy)
		if dist < minForceDistance {
			continue
		}
		mag := dist * o.EdgeAttraction
		ux, uy := dx/dist, dy/dist

		fa := forces[e.From]
		fa.x += ux * mag
		fa.y += uy * mag
		forces[e.From] = fa

		fb := forces[e.To]
		fb.x -= ux * mag
		fb.y -= uy * mag
		forces[e.To] = fb
	}
}

// applyBoundaryRepulsion pushes states back inside the margin band. The
// corrective force is proportional to the penetration depth, doubled, so
// deep violations recover quickly.
func applyBoundaryRepulsion(forces map[string]vector, positions map[string]Position, o Options) {
	m := o.BoundaryMargin
	for id, p := range positions {
		f := forces[id]
		if p.X < m {
			f.x += 2 * (m - p.X)
		}
		if p.X > o.Width-m {
			f.x -= 2 * (p.X - (o.Width - m))
		}
		if p.Y < m {
			f.y += 2 * (m - p.Y)
		}
		if p.Y > o.Height-m {
			f.y -= 2 * (p.Y - (o.Height - m))
		}
		forces[id] = f
	}
}
