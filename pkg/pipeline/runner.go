package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/diagramd/diagramd/pkg/cache"
	"github.com/diagramd/diagramd/pkg/errors"
	"github.com/diagramd/diagramd/pkg/graph"
	"github.com/diagramd/diagramd/pkg/layout"
	"github.com/diagramd/diagramd/pkg/observability"
)

// Runner encapsulates layout computation with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't store
// layout results. Multiple goroutines can safely use the same Runner with
// different options.
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

// ComputeLayout validates g, computes its layout under opts, and returns the
// graph with updated node positions. Results are cached by graph content
// hash and resolved options; identical requests hit the cache.
//
// Unrecognized algorithm/direction identifiers are resolved to their
// fallbacks with a logged warning - the only error a well-formed request can
// see is *graph.InvalidGraphError for a graph with dangling edges.
func (r *Runner) ComputeLayout(ctx context.Context, g graph.Graph, opts Options) (graph.Graph, error) {
	out, _, err := r.ComputeLayoutWithCacheInfo(ctx, g, opts)
	return out, err
}

// ComputeLayoutWithCacheInfo is like [Runner.ComputeLayout] and additionally
// reports whether the result came from the cache.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, g graph.Graph, opts Options) (graph.Graph, bool, error) {
	opts.SetDefaults()
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}

	engineOpts, diags := opts.Resolve()
	for _, diag := range diags {
		logger.Warn(errors.UserMessage(diag), "code", errors.GetCode(diag))
		if errors.Is(diag, errors.ErrCodeUnsupportedAlgorithm) {
			observability.Layout().OnAlgorithmFallback(ctx, opts.Algorithm, engineOpts.Algorithm.String())
		}
	}

	if err := g.Validate(); err != nil {
		observability.Layout().OnValidate(ctx, g.NodeCount(), g.EdgeCount(), err)
		return graph.Graph{}, false, err
	}
	observability.Layout().OnValidate(ctx, g.NodeCount(), g.EdgeCount(), nil)

	if err := ctx.Err(); err != nil {
		return graph.Graph{}, false, err
	}

	// Cache key from graph content and resolved (canonical) options, so
	// aliases like "dagre" share entries with "layered".
	cacheKey := ""
	if data, err := graph.Marshal(g); err == nil {
		cacheKey = r.Keyer.LayoutKey(cache.Hash(data), cache.LayoutKeyOpts{
			Algorithm:   engineOpts.Algorithm.String(),
			Direction:   engineOpts.Direction.String(),
			NodeSpacing: engineOpts.Spacing.Node,
			RankSpacing: engineOpts.Spacing.Rank,
		})
	}

	if cacheKey != "" && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := graph.Unmarshal(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	start := time.Now()
	observability.Layout().OnLayoutStart(ctx, engineOpts.Algorithm.String(), g.NodeCount())
	out, err := layout.Apply(g, engineOpts)
	observability.Layout().OnLayoutComplete(ctx, engineOpts.Algorithm.String(), time.Since(start), err)
	if err != nil {
		return graph.Graph{}, false, err
	}

	logger.Info("computed layout",
		"algorithm", engineOpts.Algorithm.String(),
		"nodes", out.NodeCount(),
		"edges", out.EdgeCount(),
		"duration", time.Since(start))

	if cacheKey != "" {
		if data, err := graph.Marshal(out); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return out, false, nil
}

// AutoLayout computes a layout using the default options for the given
// diagram category (workflow, requirements, architecture, mixed). Unknown
// categories use the mixed defaults.
func (r *Runner) AutoLayout(ctx context.Context, g graph.Graph, category string) (graph.Graph, error) {
	return r.ComputeLayout(ctx, g, FromCategory(category))
}
