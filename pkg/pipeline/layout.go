package pipeline

import (
	"context"
	"math/rand"
	"time"

	"github.com/statecanvas/statecanvas/pkg/automaton"
	"github.com/statecanvas/statecanvas/pkg/layout"
	"github.com/statecanvas/statecanvas/pkg/observability"
)

// ComputeLayout runs the layout stage for a loaded machine. The mode selects
// between the general-purpose engine (fresh) and the deterministic layered
// projection (layered).
func ComputeLayout(ctx context.Context, m *automaton.Machine, opts Options) (layout.Result, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Result{}, err
	}

	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, opts.Mode, len(m.States))

	engineOpts := opts.engineOptions()

	var positions map[string]layout.Position
	if opts.IsLayered() {
		positions = layout.Deterministic(m, engineOpts)
	} else {
		positions = layout.Fresh(m, opts.Existing, engineOpts)
	}

	res := layout.NewResult(opts.Mode, m, positions, engineOpts)
	observability.Pipeline().OnLayoutComplete(ctx, opts.Mode, time.Since(start), nil)
	return res, nil
}

// engineOptions translates pipeline options into engine options.
func (o *Options) engineOptions() *layout.Options {
	return &layout.Options{
		Width:            o.Width,
		Height:           o.Height,
		MinDistance:      o.MinDistance,
		PreserveExisting: o.PreserveExisting,
		Rand:             rand.New(rand.NewSource(o.Seed)),
	}
}
