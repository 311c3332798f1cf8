package layout

import (
	"math"

	"github.com/statecanvas/statecanvas/pkg/automaton"
)

// initialPositions builds the starting coordinate guess for the fresh
// pipeline. Each BFS layer becomes a horizontal row centred on the canvas:
// a layer of n states spans min(0.8·width, n·nodeSpacing), its members
// spaced evenly across that span; single-state layers sit exactly at the
// horizontal centre. States the BFS never reached are packed into a compact
// grid below the hierarchical region so the force refiner has something
// reasonable to work from.
func initialPositions(m *automaton.Machine, adj adjacency, o Options) map[string]Position {
	positions := make(map[string]Position, len(m.States))

	layers, unreached := bfsLayers(m, adj)
	layers = splitLayers(layers, o.MaxPerLayer)

	centerX := o.Width / 2
	maxY := o.Margin

	for i, layer := range layers {
		y := o.Margin + float64(i)*o.LevelSpacing
		if y > maxY {
			maxY = y
		}
		n := len(layer)
		if n == 1 {
			positions[layer[0]] = Position{X: centerX, Y: y}
			continue
		}
		span := math.Min(o.Width*0.8, float64(n)*o.NodeSpacing)
		step := span / float64(n-1)
		for k, id := range layer {
			positions[id] = Position{X: centerX - span/2 + float64(k)*step, Y: y}
		}
	}

	if len(unreached) > 0 {
		cols := int(math.Ceil(math.Sqrt(float64(len(unreached)))))
		gridWidth := float64(cols-1) * o.NodeSpacing
		top := maxY + o.LevelSpacing
		for k, id := range unreached {
			col := k % cols
			row := k / cols
			positions[id] = Position{
				X: centerX - gridWidth/2 + float64(col)*o.NodeSpacing,
				Y: top + float64(row)*o.NodeSpacing,
			}
		}
	}
	return positions
}
