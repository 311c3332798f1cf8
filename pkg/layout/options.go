package layout

import "math/rand"

// Default values applied by [Options.normalized]. Canvas dimensions follow
// the default render frame; the spacing and force constants are empirically
// tuned for diagrams of tens of states.
const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 1200.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 800.0

	// DefaultMargin is the default canvas margin used for fitting and
	// clamping.
	DefaultMargin = 50.0

	// DefaultMinDistance is the minimum pairwise distance enforced by the
	// overlap resolver.
	DefaultMinDistance = 110.0

	// DefaultLevelSpacing is the distance between consecutive layers.
	DefaultLevelSpacing = 150.0

	// DefaultNodeSpacing is the distance between neighbours within a layer.
	DefaultNodeSpacing = 130.0

	// DefaultMaxPerLayer caps how many states share one layer before the
	// splitter breaks it into sub-layers.
	DefaultMaxPerLayer = 6

	// DefaultIterations is the number of force-simulation passes.
	DefaultIterations = 30

	// DefaultComponentRepulsion scales the inverse-square force pushing
	// distinct connected components apart.
	DefaultComponentRepulsion = 8000.0

	// DefaultNodeRepulsion scales the weaker inverse-square force between
	// states of the same component.
	DefaultNodeRepulsion = 1000.0

	// DefaultEdgeAttraction scales the linear spring force along edges.
	DefaultEdgeAttraction = 0.01

	// DefaultMaxDisplacement caps per-iteration movement; the effective cap
	// is MaxDisplacement multiplied by the cooling temperature.
	DefaultMaxDisplacement = 20.0

	// DefaultBoundaryMargin is the distance from a canvas edge inside which
	// the boundary repulsion force engages.
	DefaultBoundaryMargin = 100.0

	// DefaultOverlapPasses bounds the overlap resolver.
	DefaultOverlapPasses = 8

	// DefaultPlacementDistance is the minimum distance used by [PlaceNew]
	// when Options.MinDistance is unset. Incremental placement tolerates
	// tighter packing than a full layout.
	DefaultPlacementDistance = 80.0

	// placementMargin is the clamp margin for incrementally placed states.
	placementMargin = 80.0
)

// Options configures a layout computation. The zero value is usable: every
// unset field is replaced by its Default* constant. A nil *Options behaves
// like the zero value.
type Options struct {
	// Width and Height are the canvas dimensions in pixels.
	Width  float64
	Height float64

	// Margin keeps positions away from the canvas border during fitting
	// and clamping.
	Margin float64

	// MinDistance is the minimum pairwise distance between states.
	// Best-effort: pathological inputs may end closer.
	MinDistance float64

	// LevelSpacing is the distance between consecutive BFS layers.
	LevelSpacing float64

	// NodeSpacing is the distance between neighbours within a layer.
	NodeSpacing float64

	// MaxPerLayer caps layer occupancy before splitting.
	MaxPerLayer int

	// Iterations is the number of force-simulation passes.
	Iterations int

	// Force constants. See the Default* constants for their roles.
	ComponentRepulsion float64
	NodeRepulsion      float64
	EdgeAttraction     float64
	MaxDisplacement    float64
	BoundaryMargin     float64

	// OverlapPasses bounds the overlap resolver.
	OverlapPasses int

	// PreserveExisting makes [Fresh] keep the caller-supplied positions for
	// retained states and place only new states, via the incremental placer.
	PreserveExisting bool

	// Rand is the random source for the single randomised branch: separating
	// exactly coincident states. When nil, a fixed-seed source is created
	// per call, so layouts are reproducible unless the caller injects
	// entropy.
	Rand *rand.Rand
}

// normalized returns a copy of o with defaults applied. A nil receiver
// yields all defaults.
func (o *Options) normalized() Options {
	var out Options
	if o != nil {
		out = *o
	}
	if out.Width <= 0 {
		out.Width = DefaultWidth
	}
	if out.Height <= 0 {
		out.Height = DefaultHeight
	}
	if out.Margin <= 0 {
		out.Margin = DefaultMargin
	}
	if out.MinDistance <= 0 {
		out.MinDistance = DefaultMinDistance
	}
	if out.LevelSpacing <= 0 {
		out.LevelSpacing = DefaultLevelSpacing
	}
	if out.NodeSpacing <= 0 {
		out.NodeSpacing = DefaultNodeSpacing
	}
	if out.MaxPerLayer <= 0 {
		out.MaxPerLayer = DefaultMaxPerLayer
	}
	if out.Iterations <= 0 {
		out.Iterations = DefaultIterations
	}
	if out.ComponentRepulsion <= 0 {
		out.ComponentRepulsion = DefaultComponentRepulsion
	}
	if out.NodeRepulsion <= 0 {
		out.NodeRepulsion = DefaultNodeRepulsion
	}
	if out.EdgeAttraction <= 0 {
		out.EdgeAttraction = DefaultEdgeAttraction
	}
	if out.MaxDisplacement <= 0 {
		out.MaxDisplacement = DefaultMaxDisplacement
	}
	if out.BoundaryMargin <= 0 {
		out.BoundaryMargin = DefaultBoundaryMargin
	}
	if out.OverlapPasses <= 0 {
		out.OverlapPasses = DefaultOverlapPasses
	}
	if out.Rand == nil {
		out.Rand = rand.New(rand.NewSource(1))
	}
	return out
}

// normalizedIncremental is normalized with the looser incremental-placement
// distance default.
func (o *Options) normalizedIncremental() Options {
	out := o.normalized()
	if o == nil || o.MinDistance <= 0 {
		out.MinDistance = DefaultPlacementDistance
	}
	return out
}
