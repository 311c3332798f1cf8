// Package cache provides caching for machine definitions, computed layouts,
// and rendered artifacts.
//
// # Architecture
//
// The package separates two concerns:
//   - Cache: byte-oriented storage with TTL (file, Redis, MongoDB, null)
//   - Keyer: deterministic key construction from domain inputs
//
// Keys are content-addressed: a machine definition hashes to a machine key,
// the layout key mixes that hash with the layout options, and the artifact
// key mixes the layout hash with the render options. Identical inputs always
// hit the same entry, so cached results survive across processes and hosts.
//
// # Backends
//
//	// CLI: file-based cache under the user cache directory
//	c, err := cache.NewFileCache(dir)
//
//	// Server: Redis for multi-instance deployments
//	c, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: "localhost:6379"})
//
//	// Server: MongoDB when an operational Mongo already exists
//	c, err := cache.NewMongoCache(ctx, cache.MongoConfig{URI: "mongodb://localhost"})
//
//	// Disabled
//	c := cache.NewNullCache()
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Default TTLs per entry kind. Machines and layouts are content-addressed so
// they never go stale; the TTLs only bound cache growth.
const (
	// TTLMachine is the lifetime for parsed machine definitions.
	TTLMachine = 7 * 24 * time.Hour

	// TTLLayout is the lifetime for computed layouts.
	TTLLayout = 7 * 24 * time.Hour

	// TTLArtifact is the lifetime for rendered artifacts.
	TTLArtifact = 24 * time.Hour
)

// Cache is the interface for cache backends.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts are the layout parameters that affect cached positions.
// Two layout requests with equal machine hash and equal opts are
// interchangeable.
type LayoutKeyOpts struct {
	Mode        string  `json:"mode"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	MinDistance float64 `json:"min_distance"`
	Seed        int64   `json:"seed,omitempty"`
}

// ArtifactKeyOpts are the render parameters that affect cached artifacts.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Theme  string `json:"theme,omitempty"`
}

// Keyer generates cache keys from domain inputs.
type Keyer interface {
	// MachineKey generates a key for a parsed machine definition.
	// source is the canonical serialized machine.
	MachineKey(source []byte) string

	// LayoutKey generates a key for computed positions.
	// machineHash is the hash portion of the machine key.
	LayoutKey(machineHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	// layoutHash is the hash portion of the layout key.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer implements Keyer with SHA-256 content hashing.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// MachineKey generates a key for a machine definition.
func (k *DefaultKeyer) MachineKey(source []byte) string {
	return "machine:" + Hash(source)
}

// LayoutKey generates a key for computed positions.
func (k *DefaultKeyer) LayoutKey(machineHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", machineHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)

// Hash computes the SHA-256 content hash of data as a 64-character hex
// string. Machine definitions and serialized layouts are addressed by this
// hash throughout the pipeline.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds a namespaced key of the form prefix:hash(parts). The parts
// are JSON-encoded before hashing so option structs key deterministically.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// NullCache discards every write and misses every read. It backs the
// --no-cache flag and the "none" backend in the config file.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always misses.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the value.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing.
func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close does nothing.
func (c *NullCache) Close() error {
	return nil
}

// Ensure NullCache implements Cache.
var _ Cache = (*NullCache)(nil)
