package hotcache

import (
	"context"
	"path"
	"time"

	"github.com/evictio/hotcache/errors"
	"github.com/evictio/hotcache/ttl"
)

// Fetcher produces a value for a key on a cache miss.
type Fetcher[V any] func(ctx context.Context) (V, error)

// GetOrSet returns the cached value for key. On a miss it invokes fetcher,
// stores the result with the given TTL (non-positive means default), and
// returns it. A fetcher error propagates and is never cached.
//
// By default there is no single-flight guarantee: two concurrent misses on
// the same key both invoke fetcher and both write the cache, last writer
// wins. WithCoalescing changes this so concurrent misses share one fetch.
func (c *Cache[V]) GetOrSet(ctx context.Context, key string, fetcher Fetcher[V], ttlDuration time.Duration) (V, error) {
	var zero V
	if c.closed.Load() {
		return zero, errors.WrapError("GetOrSet", key, errors.ErrCacheClosed)
	}

	if value, ok := c.Get(key); ok {
		return value, nil
	}

	if c.coalesce {
		v, err, _ := c.group.Do(key, func() (any, error) {
			// A previous flight may have filled the key while this
			// caller was queued behind it.
			if value, ok := c.lookup(key); ok {
				return value, nil
			}
			value, err := fetcher(ctx)
			if err != nil {
				return nil, err
			}
			if err := c.Set(key, value, ttlDuration); err != nil {
				return nil, err
			}
			return value, nil
		})
		if err != nil {
			return zero, errors.WrapError("GetOrSet", key, err)
		}
		return v.(V), nil
	}

	value, err := fetcher(ctx)
	if err != nil {
		return zero, errors.WrapError("GetOrSet", key, err)
	}
	if err := c.Set(key, value, ttlDuration); err != nil {
		return zero, err
	}
	return value, nil
}

// GetByPattern returns all live entries whose key matches the glob
// pattern (path.Match syntax). Expired entries encountered are filtered
// out of the result but not removed; cleanup is left to the lazy and
// periodic mechanisms.
func (c *Cache[V]) GetByPattern(pattern string) (map[string]V, error) {
	if c.closed.Load() {
		return nil, errors.WrapError("GetByPattern", pattern, errors.ErrCacheClosed)
	}

	now := time.Now()

	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make(map[string]V)
	for key, entry := range c.entries {
		matched, err := path.Match(pattern, key)
		if err != nil {
			return nil, errors.WrapError("GetByPattern", pattern, errors.ErrBadPattern)
		}
		if !matched || ttl.IsExpired(entry.CreatedAt, entry.TTL, now) {
			continue
		}
		result[key] = entry.Value
	}
	return result, nil
}

// DeleteByPattern removes every entry whose key matches the glob pattern,
// expired or not, and returns the number removed. Unlike GetByPattern the
// delete path is unconditional.
func (c *Cache[V]) DeleteByPattern(pattern string) (int, error) {
	if c.closed.Load() {
		return 0, errors.WrapError("DeleteByPattern", pattern, errors.ErrCacheClosed)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		matched, err := path.Match(pattern, key)
		if err != nil {
			return removed, errors.WrapError("DeleteByPattern", pattern, errors.ErrBadPattern)
		}
		if matched {
			delete(c.entries, key)
			removed++
		}
	}
	if removed > 0 {
		c.exporter.UpdateSize(int64(len(c.entries)))
	}
	return removed, nil
}
