package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/diagramd/diagramd/pkg/cache"
	"github.com/diagramd/diagramd/pkg/graph"
	"github.com/diagramd/diagramd/pkg/pipeline"
)

// spinnerThreshold is the node count above which the layout command shows a
// progress spinner instead of finishing before the terminal repaints.
const spinnerThreshold = 2000

// newLayoutCmd creates the layout command for computing diagram layouts.
func newLayoutCmd() *cobra.Command {
	var (
		output   string
		category string
		noCache  bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute node positions for a diagram graph",
		Long: `Compute node positions for a diagram graph.

The layout command takes a graph.json file (nodes and edges) and computes new
positions using the selected algorithm. The output is a graph.json with the
same edges and repositioned nodes, suitable for loading into the diagram
canvas.

Algorithms: layered (default), radial, grid, hierarchical. The historical
aliases dagre/elk/force are accepted. Alternatively, pass --category to pick
the default algorithm for a diagram category (workflow, requirements,
architecture, mixed).

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd.Context(), args[0], opts, category, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json, \"-\" for stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	cmd.Flags().StringVarP(&opts.Algorithm, "algorithm", "a", "", "layout algorithm: layered (default), radial, grid, hierarchical")
	cmd.Flags().StringVarP(&opts.Direction, "direction", "d", "", "ranking direction: top-bottom (default), bottom-top, left-right, right-left")
	cmd.Flags().Float64Var(&opts.Spacing.Node, "node-spacing", 0, "gap between nodes within a rank")
	cmd.Flags().Float64Var(&opts.Spacing.Rank, "rank-spacing", 0, "gap between ranks")
	cmd.Flags().StringVarP(&category, "category", "c", "", "derive options from a diagram category instead of --algorithm")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if a cached layout exists")

	return cmd
}

func runLayout(ctx context.Context, input string, opts pipeline.Options, category, output string, noCache bool) error {
	logger := loggerFromContext(ctx)

	g, err := graph.ReadFile(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded graph", "file", input, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	if category != "" {
		derived := pipeline.FromCategory(category)
		// Explicit flags still win over the category defaults.
		if opts.Algorithm == "" {
			opts.Algorithm = derived.Algorithm
		}
		if opts.Direction == "" {
			opts.Direction = derived.Direction
		}
	}
	opts.Logger = logger

	runner := pipeline.NewRunner(openCache(logger, noCache), nil, logger)

	var spinner *Spinner
	if g.NodeCount() >= spinnerThreshold {
		spinner = newSpinnerWithContext(ctx, fmt.Sprintf("laying out %d nodes...", g.NodeCount()))
		spinner.Start()
	}

	prog := newProgress(logger)
	out, err := runner.ComputeLayout(ctx, g, opts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		printError("layout failed: %s", err)
		return err
	}
	prog.done(fmt.Sprintf("Laid out %d nodes", out.NodeCount()))

	if output == "-" {
		return graph.Write(out, os.Stdout)
	}
	if output == "" {
		output = defaultOutputPath(input)
	}
	if err := graph.WriteFile(out, output); err != nil {
		return err
	}
	printSuccess("wrote %s", styleValue.Render(output))
	return nil
}

// defaultOutputPath derives <input>.layout.json from the input path.
func defaultOutputPath(input string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + ".layout.json"
}

// openCache returns the local file cache, or a null cache when caching is
// disabled or the cache directory cannot be created.
func openCache(logger *log.Logger, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(cacheDir())
	if err != nil {
		logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache()
	}
	return c
}

// cacheDir returns the per-user diagramd cache directory.
func cacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ".diagramd-cache"
	}
	return filepath.Join(base, "diagramd")
}
