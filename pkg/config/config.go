// Package config loads diagramd server configuration from a TOML file.
//
// Every field has a working default, so a missing file or an empty file
// yields a usable configuration. Example:
//
//	addr = ":8080"
//
//	[cache]
//	backend = "redis" # file | redis | none
//	dir = "/var/cache/diagramd"
//
//	[cache.redis]
//	addr = "localhost:6379"
//	db = 0
//
//	[layout]
//	node_spacing = 80.0
//	rank_spacing = 120.0
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Cache backend identifiers.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the root server configuration.
type Config struct {
	// Addr is the listen address of the API server.
	Addr string `toml:"addr"`

	Cache  CacheConfig  `toml:"cache"`
	Layout LayoutConfig `toml:"layout"`
}

// CacheConfig selects and configures the layout cache backend.
type CacheConfig struct {
	// Backend is one of "file", "redis", "none".
	Backend string `toml:"backend"`
	// Dir is the cache directory for the file backend.
	Dir string `toml:"dir"`

	Redis RedisConfig `toml:"redis"`
}

// RedisConfig configures the redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// LayoutConfig carries server-wide layout defaults applied when a request
// omits spacing.
type LayoutConfig struct {
	NodeSpacing float64 `toml:"node_spacing"`
	RankSpacing float64 `toml:"rank_spacing"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr: ":8080",
		Cache: CacheConfig{
			Backend: BackendFile,
			Dir:     defaultCacheDir(),
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
		Layout: LayoutConfig{
			NodeSpacing: 80,
			RankSpacing: 120,
		},
	}
}

// Load reads a TOML configuration file and merges it over the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

// validate rejects configurations that cannot work.
func (c Config) validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return fmt.Errorf("unknown cache backend %q (must be one of: file, redis, none)", c.Cache.Backend)
	}
	if c.Cache.Backend == BackendFile && c.Cache.Dir == "" {
		return fmt.Errorf("cache backend %q requires cache.dir", BackendFile)
	}
	if c.Cache.Backend == BackendRedis && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache backend %q requires cache.redis.addr", BackendRedis)
	}
	return nil
}

// defaultCacheDir returns the per-user cache directory, falling back to a
// relative directory when the user cache dir cannot be determined.
func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ".diagramd-cache"
	}
	return filepath.Join(base, "diagramd")
}
