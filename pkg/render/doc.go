// Package render turns computed layouts into visual outputs.
//
// # Overview
//
// This package contains the rendering sinks that transform a [layout.Result]
// into drawable artifacts. It provides:
//
//   - A native SVG sink drawing states as circles and transitions as arrows
//   - Graphviz DOT export with optional in-process SVG/PNG rendering
//   - Generic format conversion (SVG to PDF/PNG)
//
// # Native SVG
//
// The [RenderSVG] function draws the diagram directly at the computed
// coordinates, so the picture is exactly what the layout engine produced:
//
//	svg := render.RenderSVG(result, render.WithTheme(render.ThemeDark))
//
// # Graphviz
//
// The [ToDOT] function exports the machine to DOT source with pinned node
// positions. [RenderGraphvizSVG] and [RenderGraphvizPNG] render that source
// in-process via [github.com/goccy/go-graphviz]; the DOT string can also be
// saved and processed with external Graphviz tools.
//
//	dot := render.ToDOT(result)
//	svg, err := render.RenderGraphvizSVG(ctx, dot)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := render.RenderSVG(result)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [layout.Result]: github.com/statecanvas/statecanvas/pkg/layout
package render
