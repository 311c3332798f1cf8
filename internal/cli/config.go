package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/statecanvas/statecanvas/pkg/cache"
)

// Cache backend names accepted in the config file.
const (
	backendFile  = "file"
	backendRedis = "redis"
	backendMongo = "mongo"
	backendNone  = "none"
)

// connectTimeout bounds redis and mongo connection attempts at startup.
const connectTimeout = 5 * time.Second

// Config holds user preferences loaded from config.toml.
type Config struct {
	Theme  string       `toml:"theme"`
	Canvas CanvasConfig `toml:"canvas"`
	Cache  CacheConfig  `toml:"cache"`
}

// CanvasConfig overrides the default canvas dimensions.
type CanvasConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend string      `toml:"backend"` // file (default), redis, mongo, none
	Dir     string      `toml:"dir"`     // file backend directory override
	Redis   RedisConfig `toml:"redis"`
	Mongo   MongoConfig `toml:"mongo"`
}

// RedisConfig holds redis backend connection settings.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig holds mongo backend connection settings.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// configPath returns the path of the user config file.
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads config.toml from the XDG config directory.
// A missing or unreadable file yields the zero config, so every
// command works without any configuration.
func LoadConfig() *Config {
	cfg := &Config{}
	path, err := configPath()
	if err != nil {
		return cfg
	}
	if _, err := os.Stat(path); err != nil {
		return cfg
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		// A broken config file should not brick the CLI.
		fmt.Fprintf(os.Stderr, "warning: ignoring invalid config %s: %v\n", path, err)
		return &Config{}
	}
	return cfg
}

// OpenCache opens the cache backend the config selects. The file backend
// is the default; connection failures fall back to a null cache.
func (c *Config) OpenCache() (cache.Cache, error) {
	switch c.Cache.Backend {
	case backendNone:
		return cache.NewNullCache(), nil

	case backendRedis:
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		store, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.Cache.Redis.Addr,
			Password: c.Cache.Redis.Password,
			DB:       c.Cache.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("connect redis cache: %w", err)
		}
		return store, nil

	case backendMongo:
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		store, err := cache.NewMongoCache(ctx, cache.MongoConfig{
			URI:        c.Cache.Mongo.URI,
			Database:   c.Cache.Mongo.Database,
			Collection: c.Cache.Mongo.Collection,
		})
		if err != nil {
			return nil, fmt.Errorf("connect mongo cache: %w", err)
		}
		return store, nil

	case backendFile, "":
		dir := c.Cache.Dir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
		}
		return cache.NewFileCache(dir)

	default:
		return nil, fmt.Errorf("unknown cache backend: %q", c.Cache.Backend)
	}
}
