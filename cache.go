package hotcache

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/evictio/hotcache/errors"
	"github.com/evictio/hotcache/metrics"
	"github.com/evictio/hotcache/ttl"
)

// Entry represents a cached value with metadata
type Entry[V any] struct {
	Value       V             `json:"value"`
	CreatedAt   time.Time     `json:"createdAt"`
	TTL         time.Duration `json:"ttl"`
	LastAccess  time.Time     `json:"lastAccess"`
	AccessCount int64         `json:"accessCount"`
}

// Cache is a bounded mapping from string keys to entries of type V.
// Entries expire after their TTL; inserting a new key into a full cache
// evicts the least-recently-accessed entry first.
//
// All operations are safe for concurrent use. GetOrSet intentionally does
// not coalesce concurrent fetches for the same key unless WithCoalescing
// is set; see its documentation.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]*Entry[V]

	maxSize   int
	ttlConfig ttl.Config

	stats    *Stats
	exporter metrics.Exporter
	logger   *slog.Logger

	sweepInterval time.Duration
	sweepTicker   *time.Ticker
	sweepStop     chan struct{}
	sweepDone     chan struct{}

	coalesce bool
	group    singleflight.Group

	closed    atomic.Bool
	closeOnce sync.Once
}

// New creates a new cache with the given options and starts its periodic
// sweep. Callers must Close the cache when done with it.
func New[V any](opts ...Option) *Cache[V] {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	c := &Cache[V]{
		entries:       make(map[string]*Entry[V]),
		maxSize:       options.maxSize,
		ttlConfig:     options.ttlConfig,
		stats:         &Stats{},
		exporter:      options.exporter,
		logger:        options.logger,
		sweepInterval: options.sweepInterval,
		coalesce:      options.coalesce,
	}

	if c.exporter == nil {
		c.exporter = metrics.NewStandardExporter()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	if c.sweepInterval > 0 {
		c.sweepTicker = time.NewTicker(c.sweepInterval)
		c.sweepStop = make(chan struct{})
		c.sweepDone = make(chan struct{})
		go c.sweep()
	}

	return c
}

// Get retrieves a value from the cache. The boolean reports a hit.
// Expired entries found here are removed and counted as expired; a lookup
// of a missing or expired key counts as a miss.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	if c.closed.Load() {
		return zero, false
	}

	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.stats.misses.Add(1)
		c.exporter.RecordMiss()
		return zero, false
	}

	if ttl.IsExpired(entry.CreatedAt, entry.TTL, now) {
		delete(c.entries, key)
		c.stats.expired.Add(1)
		c.stats.misses.Add(1)
		c.exporter.RecordExpiration()
		c.exporter.RecordMiss()
		c.exporter.UpdateSize(int64(len(c.entries)))
		return zero, false
	}

	entry.AccessCount++
	entry.LastAccess = now
	c.stats.hits.Add(1)
	c.exporter.RecordHit()
	return entry.Value, true
}

// Set stores a value in the cache. A non-positive ttl resolves to the
// configured default. Inserting a new key into a full cache evicts the
// least-recently-accessed entry first; overwriting an existing key never
// evicts. Set always resets the entry's bookkeeping.
func (c *Cache[V]) Set(key string, value V, ttlDuration time.Duration) error {
	if c.closed.Load() {
		return errors.WrapError("Set", key, errors.ErrCacheClosed)
	}

	if err := ttl.Validate(ttlDuration, c.ttlConfig); err != nil {
		return errors.WrapError("Set", key, err)
	}
	ttlDuration = ttl.Normalize(ttlDuration, c.ttlConfig)

	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && c.maxSize > 0 && len(c.entries) >= c.maxSize {
		c.evictLRULocked()
	}

	c.entries[key] = &Entry[V]{
		Value:       value,
		CreatedAt:   now,
		TTL:         ttlDuration,
		LastAccess:  now,
		AccessCount: 1,
	}
	c.exporter.UpdateSize(int64(len(c.entries)))
	return nil
}

// Delete removes the entry for key if present and reports whether it was.
// Delete has no effect on hit/miss counters.
func (c *Cache[V]) Delete(key string) bool {
	if c.closed.Load() {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		return false
	}
	delete(c.entries, key)
	c.exporter.UpdateSize(int64(len(c.entries)))
	return true
}

// Has reports whether key holds a live entry. Unlike Get it does not touch
// access bookkeeping or the hit/miss counters, but an expired entry found
// here is still removed and counted as expired.
func (c *Cache[V]) Has(key string) bool {
	if c.closed.Load() {
		return false
	}

	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return false
	}
	if ttl.IsExpired(entry.CreatedAt, entry.TTL, now) {
		delete(c.entries, key)
		c.stats.expired.Add(1)
		c.exporter.RecordExpiration()
		c.exporter.UpdateSize(int64(len(c.entries)))
		return false
	}
	return true
}

// Clear empties the cache and resets all counters to zero. Clearing is the
// one operation that also resets statistics.
func (c *Cache[V]) Clear() {
	if c.closed.Load() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearLocked()
}

func (c *Cache[V]) clearLocked() {
	c.entries = make(map[string]*Entry[V])
	c.stats.reset()
	c.exporter.Reset()
	c.exporter.UpdateSize(0)
}

// Len returns the number of currently stored entries, including expired
// entries that have not been swept yet.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Keys returns the keys of all currently stored entries, in no particular
// order.
func (c *Cache[V]) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	return keys
}

// evictLRULocked removes the entry with the oldest LastAccess. Ties are
// broken by map iteration order. Must be called with the write lock held.
func (c *Cache[V]) evictLRULocked() {
	var victim string
	var oldest time.Time
	found := false

	for k, entry := range c.entries {
		if !found || entry.LastAccess.Before(oldest) {
			victim = k
			oldest = entry.LastAccess
			found = true
		}
	}
	if !found {
		return
	}

	delete(c.entries, victim)
	c.stats.evictions.Add(1)
	c.exporter.RecordEviction()
}

// lookup reports whether key holds a live entry without touching counters
// or access bookkeeping. Used by the coalesced GetOrSet re-check.
func (c *Cache[V]) lookup(key string) (V, bool) {
	var zero V
	now := time.Now()

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || ttl.IsExpired(entry.CreatedAt, entry.TTL, now) {
		return zero, false
	}
	return entry.Value, true
}
