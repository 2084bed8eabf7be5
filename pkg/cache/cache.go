// Package cache provides artifact caching for the rendering pipeline.
//
// Rendered outputs are cached keyed by the content hash of the input graph
// plus the render options, so re-rendering an unchanged document is a file
// read. Two implementations exist: FileCache for normal CLI runs and
// NullCache when caching is disabled.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay valid. Artifacts are keyed
// by content hash, so expiry only bounds disk usage, not correctness.
const TTLArtifact = 30 * 24 * time.Hour

// Cache stores rendered artifacts as opaque byte slices.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKeyOpts are the render options that participate in artifact cache
// keys. Two runs with the same input hash and the same opts produce the same
// artifact, so they share a cache entry.
type ArtifactKeyOpts struct {
	Format     string // output format (html, json, dot, svg, png)
	Title      string
	ThemeHash  string // content hash of the theme file, empty without a theme
	KeepLeaves bool
	Width      int
	Height     int
}

// Keyer generates cache keys.
type Keyer interface {
	// ArtifactKey generates a key for a rendered artifact from the input
	// graph's content hash and the render options.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}
