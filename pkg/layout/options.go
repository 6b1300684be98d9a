package layout

import (
	"strings"

	"github.com/diagramd/diagramd/pkg/errors"
)

// =============================================================================
// Algorithm - Closed Layout Algorithm Enumeration
// =============================================================================

// Algorithm identifies one of the four layout algorithms.
// The zero value is AlgorithmLayered, which is also the documented fallback
// for unrecognized identifiers.
type Algorithm int

const (
	// AlgorithmLayered is the Sugiyama-style ranked layout.
	AlgorithmLayered Algorithm = iota
	// AlgorithmRadial places nodes evenly around a circle.
	AlgorithmRadial
	// AlgorithmGrid tiles nodes into a near-square grid.
	AlgorithmGrid
	// AlgorithmHierarchical positions nodes by topological level.
	AlgorithmHierarchical
)

// String returns the canonical identifier for the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmRadial:
		return "radial"
	case AlgorithmGrid:
		return "grid"
	case AlgorithmHierarchical:
		return "hierarchical"
	default:
		return "layered"
	}
}

// ParseAlgorithm maps an algorithm identifier to its Algorithm value.
// Matching is case-insensitive. The historical aliases "dagre" and "elk"
// map to layered, and "force" maps to radial, for backward compatibility
// with older diagram documents.
//
// An unrecognized identifier returns AlgorithmLayered together with an
// UNSUPPORTED_ALGORITHM error. Callers treat this as a diagnostic, not a
// failure: they log it and proceed with the returned fallback.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "layered", "dagre", "elk":
		return AlgorithmLayered, nil
	case "radial", "force":
		return AlgorithmRadial, nil
	case "grid":
		return AlgorithmGrid, nil
	case "hierarchical":
		return AlgorithmHierarchical, nil
	default:
		return AlgorithmLayered, errors.New(errors.ErrCodeUnsupportedAlgorithm, "unknown layout algorithm %q, falling back to layered", s)
	}
}

// =============================================================================
// Direction - Ranking Direction
// =============================================================================

// Direction controls the ranking axis and orientation of the layered layout.
// The other algorithms ignore it.
type Direction int

const (
	// DirectionTopBottom ranks along Y, sources at the top.
	DirectionTopBottom Direction = iota
	// DirectionBottomTop ranks along Y, sources at the bottom.
	DirectionBottomTop
	// DirectionLeftRight ranks along X, sources on the left.
	DirectionLeftRight
	// DirectionRightLeft ranks along X, sources on the right.
	DirectionRightLeft
)

// String returns the canonical identifier for the direction.
func (d Direction) String() string {
	switch d {
	case DirectionBottomTop:
		return "bottom-top"
	case DirectionLeftRight:
		return "left-right"
	case DirectionRightLeft:
		return "right-left"
	default:
		return "top-bottom"
	}
}

// ParseDirection maps a direction identifier to its Direction value.
// Matching is case-insensitive. An unrecognized identifier returns
// DirectionTopBottom together with an INVALID_DIRECTION error; callers log
// it and proceed with the fallback.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top-bottom", "":
		return DirectionTopBottom, nil
	case "bottom-top":
		return DirectionBottomTop, nil
	case "left-right":
		return DirectionLeftRight, nil
	case "right-left":
		return DirectionRightLeft, nil
	default:
		return DirectionTopBottom, errors.New(errors.ErrCodeInvalidDirection, "unknown layout direction %q, falling back to top-bottom", s)
	}
}

// reversed reports whether ranking should follow the reversed edge
// direction. The two "reverse" directions are achieved by ranking reversed
// edges, not by negating coordinates.
func (d Direction) reversed() bool {
	return d == DirectionBottomTop || d == DirectionRightLeft
}

// horizontal reports whether ranking runs along the X axis.
func (d Direction) horizontal() bool {
	return d == DirectionLeftRight || d == DirectionRightLeft
}

// =============================================================================
// Category - Diagram Category Defaults
// =============================================================================

// Category classifies a diagram for the purpose of picking default layout
// options. It is a selection hint only and is never part of the graph.
type Category int

const (
	// CategoryMixed is the default for unclassified diagrams.
	CategoryMixed Category = iota
	// CategoryWorkflow covers process/flow diagrams.
	CategoryWorkflow
	// CategoryRequirements covers requirement-decomposition diagrams.
	CategoryRequirements
	// CategoryArchitecture covers system-architecture diagrams.
	CategoryArchitecture
)

// String returns the canonical identifier for the category.
func (c Category) String() string {
	switch c {
	case CategoryWorkflow:
		return "workflow"
	case CategoryRequirements:
		return "requirements"
	case CategoryArchitecture:
		return "architecture"
	default:
		return "mixed"
	}
}

// ParseCategory maps a category identifier to its Category value.
// Unrecognized identifiers map to CategoryMixed, which is the documented
// default row of the selection table. This never errors: category is a
// convenience hint, and the mixed defaults are always safe.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "workflow":
		return CategoryWorkflow
	case "requirements":
		return CategoryRequirements
	case "architecture":
		return CategoryArchitecture
	default:
		return CategoryMixed
	}
}

// =============================================================================
// Options and Geometry Configuration
// =============================================================================

// Default spacing and geometry values. All of them can be overridden through
// [Options] and [Config]; zero-valued fields fall back to these.
const (
	// DefaultNodeSpacing is the within-rank gap used by the layered layout.
	DefaultNodeSpacing = 80.0
	// DefaultRankSpacing is the between-rank gap used by the layered layout.
	DefaultRankSpacing = 120.0
	// DefaultNodeWidth is the box width assumed for nodes that don't carry one.
	DefaultNodeWidth = 172.0
	// DefaultNodeHeight is the box height assumed for nodes that don't carry one.
	DefaultNodeHeight = 36.0
)

// Spacing holds the configurable gaps of the layered layout.
type Spacing struct {
	// Node is the gap between adjacent nodes within a rank.
	Node float64 `json:"node,omitempty"`
	// Rank is the gap between adjacent ranks.
	Rank float64 `json:"rank,omitempty"`
}

// Config collects every geometry constant the algorithms use, so the engine
// carries no hidden globals. The zero value means "use the defaults"; Apply
// fills zero fields via [DefaultConfig].
type Config struct {
	// NodeWidth and NodeHeight are fallback box dimensions for nodes whose
	// own Width/Height are zero.
	NodeWidth  float64
	NodeHeight float64

	// RadialMinRadius is the smallest circle radius the radial layout uses.
	RadialMinRadius float64
	// RadialPerNode grows the radius linearly with node count to avoid
	// overlap at high counts: radius = max(RadialMinRadius, n*RadialPerNode).
	RadialPerNode float64
	// RadialCenterX and RadialCenterY anchor the circle.
	RadialCenterX float64
	RadialCenterY float64

	// GridSpacing is the single constant governing both axes of the grid
	// layout.
	GridSpacing float64

	// LevelSpacing and LevelNodeSpacing position the hierarchical layout.
	// They are deliberately independent of [Spacing]: the hierarchical
	// algorithm historically uses its own fixed constants.
	LevelSpacing     float64
	LevelNodeSpacing float64
}

// DefaultConfig returns the standard geometry configuration.
func DefaultConfig() Config {
	return Config{
		NodeWidth:        DefaultNodeWidth,
		NodeHeight:       DefaultNodeHeight,
		RadialMinRadius:  200,
		RadialPerNode:    30,
		RadialCenterX:    400,
		RadialCenterY:    300,
		GridSpacing:      150,
		LevelSpacing:     150,
		LevelNodeSpacing: 180,
	}
}

// Options is the full configuration surface of the engine.
// The zero value is usable: it selects the layered layout, top-bottom, with
// default spacing and geometry.
type Options struct {
	Algorithm Algorithm
	Direction Direction
	Spacing   Spacing

	// Alignment is advisory only: it is carried through for callers that
	// persist options but does not influence positioning yet.
	Alignment string

	// Config overrides individual geometry constants. Zero fields keep
	// their defaults.
	Config Config
}

// DefaultOptions returns the engine defaults: layered, top-bottom.
func DefaultOptions() Options {
	return Options{
		Spacing: Spacing{Node: DefaultNodeSpacing, Rank: DefaultRankSpacing},
		Config:  DefaultConfig(),
	}
}

// OptionsFor returns the default options for a diagram category:
//
//	workflow      → layered, top-bottom
//	requirements  → hierarchical, top-bottom
//	architecture  → radial
//	mixed         → layered, left-right
func OptionsFor(c Category) Options {
	opts := DefaultOptions()
	switch c {
	case CategoryWorkflow:
		opts.Algorithm = AlgorithmLayered
		opts.Direction = DirectionTopBottom
	case CategoryRequirements:
		opts.Algorithm = AlgorithmHierarchical
		opts.Direction = DirectionTopBottom
	case CategoryArchitecture:
		opts.Algorithm = AlgorithmRadial
	default:
		opts.Algorithm = AlgorithmLayered
		opts.Direction = DirectionLeftRight
	}
	return opts
}

// withDefaults returns a copy of the options with every zero field replaced
// by its default, so the algorithms never see a zero gap or box size.
func (o Options) withDefaults() Options {
	if o.Spacing.Node <= 0 {
		o.Spacing.Node = DefaultNodeSpacing
	}
	if o.Spacing.Rank <= 0 {
		o.Spacing.Rank = DefaultRankSpacing
	}
	def := DefaultConfig()
	if o.Config.NodeWidth <= 0 {
		o.Config.NodeWidth = def.NodeWidth
	}
	if o.Config.NodeHeight <= 0 {
		o.Config.NodeHeight = def.NodeHeight
	}
	if o.Config.RadialMinRadius <= 0 {
		o.Config.RadialMinRadius = def.RadialMinRadius
	}
	if o.Config.RadialPerNode <= 0 {
		o.Config.RadialPerNode = def.RadialPerNode
	}
	if o.Config.RadialCenterX == 0 {
		o.Config.RadialCenterX = def.RadialCenterX
	}
	if o.Config.RadialCenterY == 0 {
		o.Config.RadialCenterY = def.RadialCenterY
	}
	if o.Config.GridSpacing <= 0 {
		o.Config.GridSpacing = def.GridSpacing
	}
	if o.Config.LevelSpacing <= 0 {
		o.Config.LevelSpacing = def.LevelSpacing
	}
	if o.Config.LevelNodeSpacing <= 0 {
		o.Config.LevelNodeSpacing = def.LevelNodeSpacing
	}
	return o
}
