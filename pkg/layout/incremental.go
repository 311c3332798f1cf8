package layout

import "math"

// Spiral search parameters for incremental placement.
const (
	spiralAttempts   = 12
	spiralBaseRadius = 150.0
	spiralRadiusStep = 40.0
	spiralAngleStep  = 0.3
)

// PlaceNew finds positions for newly added states against an existing
// position set. Candidates are tried along a spiral around the canvas
// centre; the first candidate at least minDistance from every existing
// position wins. After twelve attempts the last candidate is accepted
// regardless; placement is best-effort, not a hard non-overlap guarantee.
// Accepted positions join the obstacle set, so later new states avoid
// earlier ones.
//
// The existing map is never mutated. The returned map holds positions for
// the new states only, clamped into the canvas with an 80px margin. When
// opts leaves MinDistance unset, the incremental default of 80 applies
// rather than the full-layout default.
func PlaceNew(existing map[string]Position, newIDs []string, opts *Options) map[string]Position {
	o := opts.normalizedIncremental()

	obstacles := make([]Position, 0, len(existing)+len(newIDs))
	for _, p := range existing {
		obstacles = append(obstacles, p)
	}

	placed := make(map[string]Position, len(newIDs))
	centerX := o.Width / 2
	centerY := o.Height / 2
	total := len(newIDs)

	for i, id := range newIDs {
		var candidate Position
		for attempt := 0; attempt < spiralAttempts; attempt++ {
			angle := float64(i)*2*math.Pi/float64(total) + float64(attempt)*spiralAngleStep
			radius := spiralBaseRadius + float64(attempt)*spiralRadiusStep
			candidate = Position{
				X: centerX + radius*math.Cos(angle),
				Y: centerY + radius*math.Sin(angle),
			}
			if clearOf(candidate, obstacles, o.MinDistance) {
				break
			}
		}

		candidate.X = clamp(candidate.X, placementMargin, o.Width-placementMargin)
		candidate.Y = clamp(candidate.Y, placementMargin, o.Height-placementMargin)
		placed[id] = candidate
		obstacles = append(obstacles, candidate)
	}
	return placed
}

// clearOf reports whether p keeps at least minDist from every obstacle.
func clearOf(p Position, obstacles []Position, minDist float64) bool {
	for _, q := range obstacles {
		if math.Hypot(p.X-q.X, p.Y-q.Y) < minDist {
			return false
		}
	}
	return true
}
