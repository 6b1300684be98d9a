// Package cache provides layout-result caching with pluggable backends.
//
// Layout computation is deterministic, so a result can be cached under a key
// derived from the graph content hash and the layout options. Backends:
//
//   - [FileCache]: directory of JSON entries, for CLI usage
//   - [RedisCache]: shared cache for multi-instance server deployments
//   - [NullCache]: caching disabled
//
// Keys are produced by a [Keyer]; wrap one in a [ScopedKeyer] to namespace
// keys per tenant or deployment.
package cache

import (
	"context"
	"time"
)

// Default TTLs per cached artifact type.
const (
	// TTLGraph applies to cached graph documents.
	TTLGraph = 24 * time.Hour

	// TTLLayout applies to cached layout results. Layouts are cheap to
	// recompute, so the TTL mainly bounds stale entries after an engine
	// change.
	TTLLayout = 12 * time.Hour
)

// Cache is a byte-oriented cache with per-entry TTLs.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl stores the entry without
	// expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts are the option fields that influence a layout result and
// therefore participate in its cache key.
type LayoutKeyOpts struct {
	Algorithm   string
	Direction   string
	NodeSpacing float64
	RankSpacing float64
}

// Keyer derives cache keys for the cacheable artifacts of the pipeline.
type Keyer interface {
	// GraphKey returns the key for a graph document identified by name.
	GraphKey(name string) string

	// LayoutKey returns the key for a layout of the graph with the given
	// content hash, computed under the given options.
	LayoutKey(graphHash string, opts LayoutKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// GraphKey generates a key for graph caching.
func (k *DefaultKeyer) GraphKey(name string) string {
	return hashKey("graph", name)
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", graphHash, opts)
}
