package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/statecanvas/statecanvas/pkg/automaton"
	"github.com/statecanvas/statecanvas/pkg/cache"
	"github.com/statecanvas/statecanvas/pkg/errors"
	"github.com/statecanvas/statecanvas/pkg/layout"
	"github.com/statecanvas/statecanvas/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidOptions, err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	m, err := r.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Machine = m
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.StateCount = m.StateCount()
	result.Stats.EdgeCount = m.EdgeCount()

	// Compute machine hash for cache keys and API responses
	if data, err := automaton.MarshalMachine(m); err == nil {
		result.MachineHash = cache.Hash(data)
	}

	r.Logger.Info("loaded machine",
		"states", result.Stats.StateCount,
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	res, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, m, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = res
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"mode", opts.Mode,
		"positions", len(res.Positions),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, res, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads and validates the machine definition for opts.
func (r *Runner) Load(ctx context.Context, opts Options) (*automaton.Machine, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	return Load(ctx, opts)
}

// ComputeLayoutWithCacheInfo computes a layout with caching and returns
// cache hit info.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, m *automaton.Machine, opts Options) (layout.Result, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Result{}, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key
	machineData, _ := automaton.MarshalMachine(m)
	machineHash := cache.Hash(machineData)
	cacheKey := r.Keyer.LayoutKey(machineHash, opts.LayoutKeyOpts())

	// Try cache first (unless refresh requested). Incremental runs depend
	// on caller-supplied positions, so they bypass the cache entirely.
	cacheable := !opts.PreserveExisting && len(opts.Existing) == 0
	if cacheable && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "layout")
			cached, err := layout.ReadResult(bytes.NewReader(data))
			if err == nil {
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		} else {
			observability.Cache().OnCacheMiss(ctx, "layout")
		}
	}

	// Compute layout
	res, err := ComputeLayout(ctx, m, opts)
	if err != nil {
		return layout.Result{}, false, err
	}

	// Cache the result
	if cacheable {
		if data, err := layout.MarshalResult(res); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return res, false, nil // Cache miss
}

// ComputeLayout is a convenience wrapper that calls
// ComputeLayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, m *automaton.Machine, opts Options) (layout.Result, error) {
	res, _, err := r.ComputeLayoutWithCacheInfo(ctx, m, opts)
	return res, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit
// info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, res layout.Result, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from layout data
	layoutData, err := layout.MarshalResult(res)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize layout for cache key")
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil // All artifacts from cache
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	// Render all formats
	rendered, err := Render(ctx, res, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, res layout.Result, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, res, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
