package hotcache

import (
	"context"
	"time"
)

// Namespace is a thin convenience wrapper over a Cache that prefixes keys
// with a domain name and applies a domain default TTL. It adds no caching
// behavior of its own; several namespaces can share one engine as long as
// their names differ.
type Namespace[V any] struct {
	cache      *Cache[V]
	prefix     string
	defaultTTL time.Duration
}

// NewNamespace creates a namespaced view over cache. Keys are stored as
// "name:key". A non-positive defaultTTL falls back to the engine default.
func NewNamespace[V any](cache *Cache[V], name string, defaultTTL time.Duration) *Namespace[V] {
	return &Namespace[V]{
		cache:      cache,
		prefix:     name + ":",
		defaultTTL: defaultTTL,
	}
}

// Key returns the fully prefixed form of key.
func (n *Namespace[V]) Key(key string) string {
	return n.prefix + key
}

// Get retrieves a value from the namespace.
func (n *Namespace[V]) Get(key string) (V, bool) {
	return n.cache.Get(n.prefix + key)
}

// Set stores a value in the namespace with the domain default TTL.
func (n *Namespace[V]) Set(key string, value V) error {
	return n.cache.Set(n.prefix+key, value, n.defaultTTL)
}

// SetWithTTL stores a value in the namespace with an explicit TTL.
func (n *Namespace[V]) SetWithTTL(key string, value V, ttl time.Duration) error {
	return n.cache.Set(n.prefix+key, value, ttl)
}

// GetOrSet returns the cached value for key, fetching and storing it with
// the domain default TTL on a miss.
func (n *Namespace[V]) GetOrSet(ctx context.Context, key string, fetcher Fetcher[V]) (V, error) {
	return n.cache.GetOrSet(ctx, n.prefix+key, fetcher, n.defaultTTL)
}

// Has reports whether the namespace holds a live entry for key.
func (n *Namespace[V]) Has(key string) bool {
	return n.cache.Has(n.prefix + key)
}

// Delete removes the entry for key if present.
func (n *Namespace[V]) Delete(key string) bool {
	return n.cache.Delete(n.prefix + key)
}

// DeleteAll removes every entry in the namespace and returns the number
// removed.
func (n *Namespace[V]) DeleteAll() (int, error) {
	return n.cache.DeleteByPattern(n.prefix + "*")
}

// WarmUp pre-populates the namespace from the given source using the
// domain default TTL. Keys from the source are prefixed before storing.
func (n *Namespace[V]) WarmUp(ctx context.Context, warmer Warmer[V]) error {
	prefixed := WarmerFunc[V](func(ctx context.Context) (map[string]V, error) {
		entries, err := warmer.Entries(ctx)
		if err != nil {
			return nil, err
		}
		out := make(map[string]V, len(entries))
		for key, value := range entries {
			out[n.prefix+key] = value
		}
		return out, nil
	})
	return n.cache.WarmUp(ctx, prefixed, n.defaultTTL)
}
