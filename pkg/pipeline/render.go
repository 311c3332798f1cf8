package pipeline

import (
	"context"
	"time"

	"github.com/statecanvas/statecanvas/pkg/errors"
	"github.com/statecanvas/statecanvas/pkg/layout"
	"github.com/statecanvas/statecanvas/pkg/observability"
	"github.com/statecanvas/statecanvas/pkg/render"
)

// Render generates output artifacts in the requested formats from a computed
// layout.
func Render(ctx context.Context, res layout.Result, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)

	artifacts, err := renderFormats(ctx, res, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

func renderFormats(ctx context.Context, res layout.Result, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = render.RenderSVG(res, render.WithTheme(opts.theme()))
		case FormatPNG:
			data, err = render.RenderGraphvizPNG(ctx, render.ToDOT(res))
		case FormatDOT:
			data = []byte(render.ToDOT(res))
		case FormatJSON:
			data, err = layout.MarshalResult(res)
		case FormatPDF:
			svg := render.RenderSVG(res, render.WithTheme(opts.theme()))
			data, err = render.ToPDF(svg)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// theme resolves the theme name to the SVG sink theme.
func (o *Options) theme() render.Theme {
	if o.Theme == "dark" {
		return render.ThemeDark
	}
	return render.ThemeLight
}
