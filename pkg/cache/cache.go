// Package cache stores rendered diagram artifacts.
//
// Rendering through Graphviz is the slow part of a docs build, and the DOT
// transcription of a diagram is deterministic, so artifacts are cached by a
// hash of the DOT text plus the output format (see [ArtifactKey]). A diagram
// whose content did not change is never laid out twice.
//
// Three backends are provided:
//   - [FileCache]: per-user directory cache for local builds
//   - [RedisCache]: shared cache for CI runners
//   - [NullCache]: caching disabled
//
// [Prefixed] namespaces the keys of any backend.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
// Get reports a miss with ok == false and a nil error.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// DefaultTTL is how long rendered artifacts are kept.
const DefaultTTL = 7 * 24 * time.Hour
