package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/statecanvas/statecanvas/pkg/cache"
)

func withConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, appName)
}

func TestLoadConfigMissing(t *testing.T) {
	withConfigHome(t)

	cfg := LoadConfig()
	if cfg.Cache.Backend != "" {
		t.Errorf("backend = %q, want empty default", cfg.Cache.Backend)
	}
	if cfg.Canvas.Width != 0 {
		t.Errorf("width = %v, want 0", cfg.Canvas.Width)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := withConfigHome(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	content := `
theme = "dark"

[canvas]
width = 1600.0
height = 900.0

[cache]
backend = "redis"

[cache.redis]
addr = "localhost:6379"
db = 2
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig()
	if cfg.Theme != "dark" {
		t.Errorf("theme = %q, want dark", cfg.Theme)
	}
	if cfg.Canvas.Width != 1600 || cfg.Canvas.Height != 900 {
		t.Errorf("canvas = %vx%v, want 1600x900", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Cache.Backend != backendRedis {
		t.Errorf("backend = %q, want redis", cfg.Cache.Backend)
	}
	if cfg.Cache.Redis.Addr != "localhost:6379" || cfg.Cache.Redis.DB != 2 {
		t.Errorf("redis = %+v", cfg.Cache.Redis)
	}
}

func TestLoadConfigInvalidFallsBack(t *testing.T) {
	dir := withConfigHome(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not [valid toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig()
	if cfg.Cache.Backend != "" {
		t.Errorf("invalid config should yield defaults, got backend %q", cfg.Cache.Backend)
	}
}

func TestOpenCacheBackends(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		cfg := &Config{Cache: CacheConfig{Backend: backendNone}}
		store, err := cfg.OpenCache()
		if err != nil {
			t.Fatal(err)
		}
		defer store.Close()
		if _, ok := store.(*cache.NullCache); !ok {
			t.Errorf("backend none = %T, want *cache.NullCache", store)
		}
	})

	t.Run("file with dir", func(t *testing.T) {
		cfg := &Config{Cache: CacheConfig{Backend: backendFile, Dir: t.TempDir()}}
		store, err := cfg.OpenCache()
		if err != nil {
			t.Fatal(err)
		}
		defer store.Close()
		if _, ok := store.(*cache.FileCache); !ok {
			t.Errorf("backend file = %T, want *cache.FileCache", store)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := &Config{Cache: CacheConfig{Backend: "carrier-pigeon"}}
		if _, err := cfg.OpenCache(); err == nil {
			t.Error("expected error for unknown backend")
		}
	})
}
