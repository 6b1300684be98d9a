package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "diagramd.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.Cache.Backend != BackendFile {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, BackendFile)
	}
	if cfg.Cache.Dir == "" {
		t.Error("Cache.Dir is empty")
	}
	if cfg.Layout.NodeSpacing != 80 || cfg.Layout.RankSpacing != 120 {
		t.Errorf("Layout = %+v, want spacing 80/120", cfg.Layout)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
addr = ":9090"

[cache]
backend = "redis"

[layout]
node_spacing = 40.0
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr)
	}
	if cfg.Cache.Backend != BackendRedis {
		t.Errorf("Cache.Backend = %q, want redis", cfg.Cache.Backend)
	}
	// Unset fields keep their defaults.
	if cfg.Cache.Redis.Addr != "localhost:6379" {
		t.Errorf("Cache.Redis.Addr = %q, want default preserved", cfg.Cache.Redis.Addr)
	}
	if cfg.Layout.NodeSpacing != 40 {
		t.Errorf("Layout.NodeSpacing = %v, want 40", cfg.Layout.NodeSpacing)
	}
	if cfg.Layout.RankSpacing != 120 {
		t.Errorf("Layout.RankSpacing = %v, want default 120", cfg.Layout.RankSpacing)
	}
}

func TestLoadUnknownBackend(t *testing.T) {
	path := writeConfig(t, `
[cache]
backend = "memcached"
`)
	if _, err := Load(path); err == nil {
		t.Error("Load() = nil, want error for unknown backend")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load() = nil, want error for missing file")
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	path := writeConfig(t, `addr = [broken`)
	if _, err := Load(path); err == nil {
		t.Error("Load() = nil, want parse error")
	}
}

func TestValidateRedisRequiresAddr(t *testing.T) {
	cfg := Default()
	cfg.Cache.Backend = BackendRedis
	cfg.Cache.Redis.Addr = ""
	if err := cfg.validate(); err == nil {
		t.Error("validate() = nil, want error for redis backend without addr")
	}
}
