// Package pipeline provides the core layout pipeline for Statecanvas.
//
// This package implements the complete load → layout → render pipeline that
// can be used by CLI and API components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and validate a state machine definition (JSON or YAML)
//  2. Layout: Compute canvas positions for every state
//  3. Render: Generate output in various formats (SVG, PNG, PDF, DOT, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    MachinePath: "machines/login.json",
//	    Mode:        pipeline.ModeFresh,
//	    Formats:     []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	m, err := runner.Load(ctx, opts)
//
//	// Layout with a loaded machine
//	res, err := runner.ComputeLayout(ctx, m, opts)
//
//	// Render with an existing layout
//	artifacts, err := runner.Render(ctx, res, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/statecanvas/statecanvas/pkg/automaton"
	"github.com/statecanvas/statecanvas/pkg/cache"
	"github.com/statecanvas/statecanvas/pkg/errors"
	"github.com/statecanvas/statecanvas/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = layout.DefaultWidth

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = layout.DefaultHeight

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = int64(1)

	// DefaultTheme is the default color theme for the native SVG sink.
	DefaultTheme = "light"
)

// Layout mode constants.
const (
	ModeFresh   = layout.ModeFresh
	ModeLayered = layout.ModeLayered
)

// DefaultMode is the default layout mode.
const DefaultMode = ModeFresh

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatDOT  = "dot"
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatDOT:  true,
	FormatJSON: true,
	FormatPDF:  true,
}

// ValidModes is the set of supported layout modes.
var ValidModes = map[string]bool{
	ModeFresh:   true,
	ModeLayered: true,
}

// ValidThemes is the set of supported SVG themes.
var ValidThemes = map[string]bool{
	"light": true,
	"dark":  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options. Exactly one of Machine or MachinePath must be set.
	Machine     *automaton.Machine `json:"machine,omitempty"`
	MachinePath string             `json:"machine_path,omitempty"`

	// Layout options
	Mode        string  `json:"mode,omitempty"`
	Width       float64 `json:"width,omitempty"`
	Height      float64 `json:"height,omitempty"`
	MinDistance float64 `json:"min_distance,omitempty"`
	Seed        int64   `json:"seed,omitempty"`

	// Existing positions for incremental placement. When set together with
	// PreserveExisting, retained states keep their positions and only new
	// states are placed.
	Existing         map[string]layout.Position `json:"existing,omitempty"`
	PreserveExisting bool                       `json:"preserve_existing,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Theme   string   `json:"theme,omitempty"`

	// Refresh bypasses cached results and recomputes.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Machine is the loaded machine definition.
	Machine *automaton.Machine

	// MachineHash is the content hash of the machine definition.
	MachineHash string

	// Layout contains the computed positions and canvas dimensions.
	Layout layout.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	StateCount int
	EdgeCount  int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat,
				"invalid format: %q (must be one of: svg, png, dot, json, pdf)", f)
		}
	}
	return nil
}

// ValidateMode checks that a layout mode is valid.
func ValidateMode(mode string) error {
	if !ValidModes[mode] {
		return errors.New(errors.ErrCodeInvalidMode,
			"invalid mode: %q (must be one of: fresh, layered)", mode)
	}
	return nil
}

// ValidateTheme checks that a theme is valid.
func ValidateTheme(theme string) error {
	if !ValidThemes[theme] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid theme: %q (must be one of: light, dark)", theme)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetLayoutDefaults()
	if err := ValidateMode(o.Mode); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateTheme(o.Theme); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading a machine.
func (o *Options) ValidateForLoad() error {
	if o.Machine == nil && o.MachinePath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "machine or machine_path is required")
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Mode == "" {
		o.Mode = DefaultMode
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	return ValidateMode(o.Mode)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := ValidateMode(o.Mode); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateTheme(o.Theme)
}

// IsFresh returns true if this run uses the general-purpose layout.
func (o *Options) IsFresh() bool {
	return o.Mode == "" || o.Mode == ModeFresh
}

// IsLayered returns true if this run uses the deterministic layered layout.
func (o *Options) IsLayered() bool {
	return o.Mode == ModeLayered
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Mode:        o.Mode,
		Width:       o.Width,
		Height:      o.Height,
		MinDistance: o.MinDistance,
		Seed:        o.Seed,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Theme:  o.Theme,
	}
}
