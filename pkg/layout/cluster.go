package layout

import "math"

// Cluster radius bounds: radius grows with component size at 12px per
// member, clamped to [30, 60].
const (
	clusterRadiusPerMember = 12.0
	clusterRadiusMin       = 30.0
	clusterRadiusMax       = 60.0
)

// arrangeClusters re-lays every multi-member connected component into a
// compact deterministic shape around its current centroid: two members sit
// left and right of the centroid at half a radius, three members form a
// triangle at 120° increments, larger components a regular polygon.
// Singleton components are left where they are.
func arrangeClusters(positions map[string]Position, comps [][]string) {
	for _, comp := range comps {
		n := len(comp)
		if n < 2 {
			continue
		}

		c := centroid(comp, positions)
		radius := clamp(clusterRadiusPerMember*float64(n), clusterRadiusMin, clusterRadiusMax)

		if n == 2 {
			positions[comp[0]] = Position{X: c.X - radius/2, Y: c.Y}
			positions[comp[1]] = Position{X: c.X + radius/2, Y: c.Y}
			continue
		}

		// Triangle for n == 3, regular polygon beyond.
		for k, id := range comp {
			angle := 2 * math.Pi * float64(k) / float64(n)
			positions[id] = Position{
				X: c.X + radius*math.Cos(angle),
				Y: c.Y + radius*math.Sin(angle),
			}
		}
	}
}
