package layout

import (
	"math"
	"testing"
)

func TestArrangeClustersPair(t *testing.T) {
	positions := map[string]Position{
		"a": {X: 100, Y: 100},
		"b": {X: 300, Y: 100},
	}
	arrangeClusters(positions, [][]string{{"a", "b"}})

	// radius = clamp(12*2, 30, 60) = 30; members sit half a radius either
	// side of the centroid (200, 100).
	a, b := positions["a"], positions["b"]
	if a != (Position{X: 185, Y: 100}) || b != (Position{X: 215, Y: 100}) {
		t.Errorf("pair = %+v %+v, want {185 100} {215 100}", a, b)
	}
}

func TestArrangeClustersTriangle(t *testing.T) {
	positions := map[string]Position{
		"a": {X: 0, Y: 0},
		"b": {X: 60, Y: 0},
		"c": {X: 30, Y: 60},
	}
	arrangeClusters(positions, [][]string{{"a", "b", "c"}})

	// radius = clamp(36, 30, 60) = 36; all members on the circle around the
	// original centroid (30, 20), at 120 degree increments.
	cx, cy := 30.0, 20.0
	prev := math.NaN()
	for _, id := range []string{"a", "b", "c"} {
		p := positions[id]
		r := math.Hypot(p.X-cx, p.Y-cy)
		if math.Abs(r-36) > 1e-9 {
			t.Errorf("%s radius = %v, want 36", id, r)
		}
		angle := math.Atan2(p.Y-cy, p.X-cx)
		if !math.IsNaN(prev) {
			gap := math.Mod(angle-prev+2*math.Pi, 2*math.Pi)
			if math.Abs(gap-2*math.Pi/3) > 1e-9 {
				t.Errorf("angular gap = %v, want 2π/3", gap)
			}
		}
		prev = angle
	}
}

func TestArrangeClustersPolygonRadiusClamped(t *testing.T) {
	comp := []string{"a", "b", "c", "d", "e", "f", "g"}
	positions := make(map[string]Position, len(comp))
	for i, id := range comp {
		positions[id] = Position{X: float64(i) * 10, Y: 0}
	}
	arrangeClusters(positions, [][]string{comp})

	// radius = clamp(12*7=84, 30, 60) = 60.
	c := centroid(comp, positions)
	for _, id := range comp {
		p := positions[id]
		r := math.Hypot(p.X-c.X, p.Y-c.Y)
		if math.Abs(r-60) > 1e-9 {
			t.Errorf("%s radius = %v, want clamped 60", id, r)
		}
	}
}

func TestArrangeClustersLeavesSingletons(t *testing.T) {
	positions := map[string]Position{"solo": {X: 42, Y: 7}}
	arrangeClusters(positions, [][]string{{"solo"}})
	if positions["solo"] != (Position{X: 42, Y: 7}) {
		t.Errorf("singleton moved to %+v", positions["solo"])
	}
}
