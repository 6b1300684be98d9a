// Package pipeline provides the validate → layout pipeline for diagramd.
//
// This package implements the full layout request handling that is shared by
// the CLI and the API server: option parsing with documented fallbacks,
// graph validation, cached invocation of the pure layout engine, and
// observability events. Centralizing this logic keeps behavior consistent
// across entry points.
//
// # Usage
//
// Create a Runner and compute a layout:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{Algorithm: "layered", Direction: "top-bottom"}
//	out, err := runner.ComputeLayout(ctx, g, opts)
//
// The engine itself (github.com/diagramd/diagramd/pkg/layout) stays pure;
// everything stateful - caching, logging, fallback diagnostics - lives here.
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/diagramd/diagramd/pkg/cache"
	"github.com/diagramd/diagramd/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultAlgorithm is the layout used when a request names none.
	DefaultAlgorithm = "layered"

	// DefaultDirection is the ranking direction used when a request names none.
	DefaultDirection = "top-bottom"
)

// ValidAlgorithms is the set of canonical algorithm identifiers.
// Historical aliases (dagre, elk, force) are additionally accepted by
// [layout.ParseAlgorithm] but are not part of this set.
var ValidAlgorithms = map[string]bool{
	"layered":      true,
	"radial":       true,
	"grid":         true,
	"hierarchical": true,
}

// ValidDirections is the set of recognized direction identifiers.
var ValidDirections = map[string]bool{
	"top-bottom": true,
	"bottom-top": true,
	"left-right": true,
	"right-left": true,
}

// =============================================================================
// Options - Layout Request Configuration
// =============================================================================

// SpacingOptions mirrors the spacing part of the external options surface.
type SpacingOptions struct {
	Node float64 `json:"node,omitempty"`
	Rank float64 `json:"rank,omitempty"`
}

// Options is the externally visible layout configuration surface.
// This struct supports JSON serialization for API requests; identifiers are
// strings on purpose - unrecognized values resolve to documented fallbacks
// with a logged warning instead of failing the request.
type Options struct {
	Algorithm string         `json:"algorithm,omitempty"`
	Direction string         `json:"direction,omitempty"`
	Spacing   SpacingOptions `json:"spacing"`
	Alignment string         `json:"alignment,omitempty"` // advisory only

	// Refresh bypasses the layout cache for this request.
	Refresh bool `json:"refresh,omitempty"`

	// Logger overrides the runner's logger for this request (not serialized).
	Logger *log.Logger `json:"-"`
}

// SetDefaults fills empty identifier fields with the pipeline defaults.
func (o *Options) SetDefaults() {
	if o.Algorithm == "" {
		o.Algorithm = DefaultAlgorithm
	}
	if o.Direction == "" {
		o.Direction = DefaultDirection
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Resolve parses the string identifiers into engine options.
//
// Unrecognized algorithm or direction values are resolved to their fallbacks
// (layered / top-bottom); each substitution is returned as a coded
// diagnostic error so the caller can log it. Resolve itself never fails -
// layout is infallible from the caller's point of view.
func (o Options) Resolve() (layout.Options, []error) {
	var diags []error

	opts := layout.DefaultOptions()
	algo, err := layout.ParseAlgorithm(o.Algorithm)
	if err != nil {
		diags = append(diags, err)
	}
	dir, err := layout.ParseDirection(o.Direction)
	if err != nil {
		diags = append(diags, err)
	}

	opts.Algorithm = algo
	opts.Direction = dir
	opts.Alignment = o.Alignment
	if o.Spacing.Node > 0 {
		opts.Spacing.Node = o.Spacing.Node
	}
	if o.Spacing.Rank > 0 {
		opts.Spacing.Rank = o.Spacing.Rank
	}
	return opts, diags
}

// FromCategory builds the option surface for a diagram category using the
// fixed selection table (see [layout.OptionsFor]).
func FromCategory(category string) Options {
	defaults := layout.OptionsFor(layout.ParseCategory(category))
	return Options{
		Algorithm: defaults.Algorithm.String(),
		Direction: defaults.Direction.String(),
		Spacing: SpacingOptions{
			Node: defaults.Spacing.Node,
			Rank: defaults.Spacing.Rank,
		},
	}
}

// CacheKeyOpts returns the cache key options for this request.
func (o Options) CacheKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Algorithm:   o.Algorithm,
		Direction:   o.Direction,
		NodeSpacing: o.Spacing.Node,
		RankSpacing: o.Spacing.Rank,
	}
}
