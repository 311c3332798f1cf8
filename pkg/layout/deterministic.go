package layout

import "github.com/statecanvas/statecanvas/pkg/automaton"

// Deterministic computes a strict layered layout: layers advance left to
// right at a fixed spacing, members of a layer are distributed evenly down
// the canvas, and states unreachable from the start are stacked in a column
// to the right of the last layer. There is no force refinement and no
// randomisation, so the same machine and options always produce identical
// output. This is the layout of choice after algorithmic transformations of
// the machine, where reproducibility matters more than visual polish.
//
// The returned map contains exactly one position per declared state and is
// never shared with prior calls. A nil or empty machine yields an empty map.
func Deterministic(m *automaton.Machine, opts *Options) map[string]Position {
	if m == nil {
		return map[string]Position{}
	}
	o := opts.normalized()
	positions := make(map[string]Position, len(m.States))
	if len(m.States) == 0 {
		return positions
	}

	adj := buildAdjacency(m)
	layers, unreached := bfsLayers(m, adj)
	layers = splitLayers(layers, o.MaxPerLayer)

	startX := o.Margin
	maxX := startX
	usableHeight := o.Height - 2*o.Margin

	for i, layer := range layers {
		x := startX + float64(i)*o.LevelSpacing
		if x > maxX {
			maxX = x
		}
		switch n := len(layer); {
		case n == 1:
			positions[layer[0]] = Position{X: x, Y: o.Height / 2}
		default:
			for k, id := range layer {
				y := o.Margin + float64(k)/float64(n-1)*usableHeight
				positions[id] = Position{X: x, Y: y}
			}
		}
	}

	// States the BFS never reached go into one extra column.
	if len(unreached) > 0 {
		x := maxX + o.LevelSpacing
		for k, id := range unreached {
			positions[id] = Position{X: x, Y: o.Margin + float64(k)*o.NodeSpacing}
		}
	}

	clampAll(positions, o)
	return positions
}

// clampAll forces every position into [margin, dimension-margin] on both
// axes. Clamping is order-independent, so determinism is preserved.
func clampAll(positions map[string]Position, o Options) {
	for id, p := range positions {
		positions[id] = Position{
			X: clamp(p.X, o.Margin, o.Width-o.Margin),
			Y: clamp(p.Y, o.Margin, o.Height-o.Margin),
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		// Degenerate canvas smaller than twice the margin: collapse to the
		// midpoint rather than returning an inverted range.
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
