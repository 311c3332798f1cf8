package layout

import (
	"math"
	"math/rand"
)

// resolveOverlaps runs bounded passes pushing apart any two states closer
// than the minimum distance. Each violation is fixed by splitting the
// deficit in half and moving both states in opposite directions along the
// line joining them. Exactly coincident states are separated along a
// uniformly random angle from rng, the only non-deterministic branch in the
// engine. Passes stop early once no violation is found.
//
// The guarantee is best-effort: inputs with more states than the canvas can
// hold at minDistance may still end closer.
func resolveOverlaps(positions map[string]Position, ids []string, o Options, rng *rand.Rand) {
	for pass := 0; pass < o.OverlapPasses; pass++ {
		moved := false
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				a, ok1 := positions[ids[i]]
				b, ok2 := positions[ids[j]]
				if !ok1 || !ok2 {
					continue
				}
				dx := b.X - a.X
				dy := b.Y - a.Y
				dist := math.Hypot(dx, dy)
				if dist >= o.MinDistance {
					continue
				}
				moved = true

				var ux, uy float64
				if dist == 0 {
					angle := rng.Float64() * 2 * math.Pi
					ux, uy = math.Cos(angle), math.Sin(angle)
					dist = minForceDistance
				} else {
					ux, uy = dx/dist, dy/dist
				}

				push := (o.MinDistance - dist) / 2
				positions[ids[i]] = Position{X: a.X - ux*push, Y: a.Y - uy*push}
				positions[ids[j]] = Position{X: b.X + ux*push, Y: b.Y + uy*push}
			}
		}
		if !moved {
			return
		}
	}
}
