package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/statecanvas/statecanvas/pkg/layout"
)

// ToDOT converts a computed layout to Graphviz DOT format. Positions are
// pinned (pos="x,y!") so Graphviz draws the diagram at the engine's
// coordinates instead of re-laying it out; render with a position-respecting
// engine such as neato or fdp.
//
// The resulting DOT string can be rendered using [RenderGraphvizSVG] or
// [RenderGraphvizPNG], or saved for external tools.
func ToDOT(res layout.Result) string {
	var buf bytes.Buffer
	buf.WriteString("digraph machine {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14, fixedsize=true, width=0.8];\n")
	buf.WriteString("\n")

	// Graphviz points run bottom-up; flip y so the diagram matches the
	// canvas orientation.
	for _, id := range sortedStateIDs(res.Positions) {
		p := res.Positions[id]
		attrs := fmt.Sprintf("pos=%q", fmt.Sprintf("%.1f,%.1f!", p.X, res.Height-p.Y))
		if id == res.Start {
			attrs += ", penwidth=2, color=darkgreen"
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", id, attrs)
	}

	buf.WriteString("\n")
	edges := make([]string, 0, len(res.Edges))
	for _, e := range res.Edges {
		edges = append(edges, fmt.Sprintf("  %q -> %q;\n", e.From, e.To))
	}
	sort.Strings(edges)
	for _, e := range edges {
		buf.WriteString(e)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderGraphvizSVG renders a DOT graph to SVG using Graphviz in-process.
func RenderGraphvizSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderGraphviz(ctx, dot, graphviz.SVG)
}

// RenderGraphvizPNG renders a DOT graph to PNG using Graphviz in-process.
func RenderGraphvizPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderGraphviz(ctx, dot, graphviz.PNG)
}

func renderGraphviz(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	// Pinned positions need a layout engine that honors them.
	gv.SetLayout(graphviz.NEATO)

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	out := buf.Bytes()
	if format == graphviz.SVG {
		out = normalizeViewBox(out)
	}
	return out, nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz svg element to a zero-origin
// viewBox with explicit pixel dimensions, which embeds cleanly in HTML.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
