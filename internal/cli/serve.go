package cli

import (
	"context"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/diagramd/diagramd/internal/api"
	"github.com/diagramd/diagramd/pkg/cache"
	"github.com/diagramd/diagramd/pkg/config"
	"github.com/diagramd/diagramd/pkg/pipeline"
)

// newServeCmd creates the serve command for running the HTTP layout API.
func newServeCmd() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP layout API",
		Long: `Run the HTTP layout API.

The server exposes POST /v1/layout and POST /v1/layout/auto for diagram
canvases, plus GET /healthz for probes. Configuration is read from a TOML
file; every setting has a working default, so the server runs without one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath, addr)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func runServe(ctx context.Context, configPath, addr string) error {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Addr = addr
	}

	layoutCache, err := openServerCache(ctx, cfg.Cache, logger)
	if err != nil {
		return err
	}
	defer layoutCache.Close()

	runner := pipeline.NewRunner(layoutCache, nil, logger)
	server := api.NewServer(runner, logger)
	server.SetSpacingDefaults(pipeline.SpacingOptions{
		Node: cfg.Layout.NodeSpacing,
		Rank: cfg.Layout.RankSpacing,
	})

	logger.Info("starting layout API",
		"addr", cfg.Addr,
		"cache", cfg.Cache.Backend)
	return server.ListenAndServe(ctx, cfg.Addr)
}

// openServerCache builds the cache backend selected in the configuration.
func openServerCache(ctx context.Context, cfg config.CacheConfig, logger *charmlog.Logger) (cache.Cache, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	case config.BackendNone:
		return cache.NewNullCache(), nil
	default:
		c, err := cache.NewFileCache(cfg.Dir)
		if err != nil {
			logger.Warn("cache disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		return c, nil
	}
}
