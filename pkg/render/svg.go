package render

import (
	"bytes"
	"fmt"
	"math"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/statecanvas/statecanvas/pkg/layout"
)

// Theme holds the colors used by the native SVG sink.
type Theme struct {
	Background  string
	StateFill   string
	StateStroke string
	StartStroke string
	Text        string
	Edge        string
}

// Built-in themes.
var (
	ThemeLight = Theme{
		Background:  "#ffffff",
		StateFill:   "#f5f5f5",
		StateStroke: "#333333",
		StartStroke: "#1a7f37",
		Text:        "#111111",
		Edge:        "#555555",
	}
	ThemeDark = Theme{
		Background:  "#1e1e2e",
		StateFill:   "#2a2a3e",
		StateStroke: "#8be9fd",
		StartStroke: "#50fa7b",
		Text:        "#f8f8f2",
		Edge:        "#6b80bf",
	}
)

// Drawing constants for the native sink.
const (
	stateRadius   = 28
	arrowLength   = 12.0
	arrowWidth    = 6.0
	loopRadius    = 18
	startArrowLen = 40.0
	edgeCurvature = 0.12
)

// SVGOption configures the native SVG sink.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	theme Theme
}

// WithTheme selects the color theme. Default is [ThemeLight].
func WithTheme(t Theme) SVGOption { return func(r *svgRenderer) { r.theme = t } }

// RenderSVG draws a computed layout as a self-contained SVG document.
// States are circles at their computed positions, transitions are curved
// arrows, self loops are small arcs above the state, and the start state
// carries an inbound marker and an accent outline.
func RenderSVG(res layout.Result, opts ...SVGOption) []byte {
	r := svgRenderer{theme: ThemeLight}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(int(res.Width), int(res.Height))
	canvas.Rect(0, 0, int(res.Width), int(res.Height), "fill:"+r.theme.Background)

	for _, e := range res.Edges {
		drawEdge(canvas, res, e.From, e.To, r.theme)
	}

	ids := sortedStateIDs(res.Positions)
	for _, id := range ids {
		drawState(canvas, res, id, r.theme)
	}

	canvas.End()
	return buf.Bytes()
}

// sortedStateIDs returns the position keys in a stable order so output is
// byte-identical across runs.
func sortedStateIDs(positions map[string]layout.Position) []string {
	ids := make([]string, 0, len(positions))
	for id := range positions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func drawState(canvas *svg.SVG, res layout.Result, id string, t Theme) {
	p, ok := res.Positions[id]
	if !ok {
		return
	}

	stroke := t.StateStroke
	width := 2
	if id == res.Start {
		stroke = t.StartStroke
		width = 3
		drawStartMarker(canvas, p, t)
	}

	canvas.Circle(int(p.X), int(p.Y), stateRadius,
		fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%d", t.StateFill, stroke, width))
	canvas.Text(int(p.X), int(p.Y)+5, id,
		fmt.Sprintf("fill:%s;font-family:sans-serif;font-size:14px;text-anchor:middle", t.Text))
}

// drawStartMarker draws the conventional inbound arrow left of the start
// state.
func drawStartMarker(canvas *svg.SVG, p layout.Position, t Theme) {
	x2 := p.X - stateRadius - 4
	x1 := x2 - startArrowLen
	canvas.Line(int(x1), int(p.Y), int(x2), int(p.Y),
		fmt.Sprintf("stroke:%s;stroke-width:2", t.StartStroke))
	drawArrowhead(canvas, x2, p.Y, 1, 0, t.StartStroke)
}

func drawEdge(canvas *svg.SVG, res layout.Result, from, to string, t Theme) {
	a, ok1 := res.Positions[from]
	b, ok2 := res.Positions[to]
	if !ok1 || !ok2 {
		return
	}

	if from == to {
		drawSelfLoop(canvas, a, t)
		return
	}

	dx := b.X - a.X
	dy := b.Y - a.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	ux, uy := dx/dist, dy/dist

	// Start and end on the circle rims, not the centers.
	sx := a.X + ux*stateRadius
	sy := a.Y + uy*stateRadius
	ex := b.X - ux*(stateRadius+4)
	ey := b.Y - uy*(stateRadius+4)

	// Curve each edge sideways so a reverse edge bows the other way.
	mx := (sx + ex) / 2
	my := (sy + ey) / 2
	cx := mx - uy*dist*edgeCurvature
	cy := my + ux*dist*edgeCurvature

	canvas.Path(fmt.Sprintf("M %.1f %.1f Q %.1f %.1f %.1f %.1f", sx, sy, cx, cy, ex, ey),
		fmt.Sprintf("fill:none;stroke:%s;stroke-width:2", t.Edge))

	// Arrowhead aligned with the curve's incoming direction.
	adx := ex - cx
	ady := ey - cy
	ad := math.Hypot(adx, ady)
	if ad > 0 {
		drawArrowhead(canvas, ex, ey, adx/ad, ady/ad, t.Edge)
	}
}

// drawSelfLoop draws a circular arc above the state with an arrowhead where
// the arc re-enters the circle.
func drawSelfLoop(canvas *svg.SVG, p layout.Position, t Theme) {
	x1 := p.X - 10
	y1 := p.Y - float64(stateRadius) + 4
	x2 := p.X + 10
	y2 := y1

	canvas.Path(fmt.Sprintf("M %.1f %.1f A %d %d 0 1 1 %.1f %.1f", x1, y1, loopRadius, loopRadius, x2, y2),
		fmt.Sprintf("fill:none;stroke:%s;stroke-width:2", t.Edge))
	drawArrowhead(canvas, x2, y2, 0.4, 0.9, t.Edge)
}

// drawArrowhead draws a filled triangle at (x, y) pointing along the unit
// vector (ux, uy).
func drawArrowhead(canvas *svg.SVG, x, y, ux, uy float64, color string) {
	px, py := -uy, ux
	p1x := x - ux*arrowLength + px*arrowWidth
	p1y := y - uy*arrowLength + py*arrowWidth
	p2x := x - ux*arrowLength - px*arrowWidth
	p2y := y - uy*arrowLength - py*arrowWidth

	canvas.Polygon(
		[]int{int(x), int(p1x), int(p2x)},
		[]int{int(y), int(p1y), int(p2y)},
		"fill:"+color)
}
