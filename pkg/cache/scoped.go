package cache

import (
	"context"
	"time"
)

// ScopedCache prefixes every key of an inner cache.
// It lets several tools (or several branches of a docs site) share one
// Redis database without colliding.
//
//	shared, _ := cache.NewRedisCache(url)
//	c := cache.Prefixed(shared, "archdiag:")
type ScopedCache struct {
	inner  Cache
	prefix string
}

// Prefixed wraps inner so that all keys carry prefix. A nil inner is
// replaced by a [NullCache].
func Prefixed(inner Cache, prefix string) Cache {
	if inner == nil {
		inner = NewNullCache()
	}
	return &ScopedCache{inner: inner, prefix: prefix}
}

// Get retrieves a prefixed key.
func (c *ScopedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.inner.Get(ctx, c.prefix+key)
}

// Set stores a prefixed key.
func (c *ScopedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.inner.Set(ctx, c.prefix+key, data, ttl)
}

// Delete removes a prefixed key.
func (c *ScopedCache) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, c.prefix+key)
}

// Close closes the inner cache.
func (c *ScopedCache) Close() error { return c.inner.Close() }

var _ Cache = (*ScopedCache)(nil)
