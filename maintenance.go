package hotcache

import (
	"context"
	"runtime/debug"
	"sort"
	"time"

	"github.com/evictio/hotcache/errors"
	"github.com/evictio/hotcache/ttl"
)

const (
	// highWaterRatio is the occupancy fraction above which Optimize runs
	// aggressive cleanup.
	highWaterRatio = 0.9

	// cullFraction is the share of entries aggressive cleanup removes.
	cullFraction = 0.2
)

// sweep periodically removes expired entries until the cache is closed.
// It runs independently of, and in addition to, lazy expiry on read.
func (c *Cache[V]) sweep() {
	defer close(c.sweepDone)

	for {
		select {
		case <-c.sweepTicker.C:
			if removed := c.removeExpired(); removed > 0 {
				c.logger.Debug("cache sweep removed expired entries", "count", removed)
			}
		case <-c.sweepStop:
			return
		}
	}
}

// removeExpired purges every expired entry, counting each as expired, and
// returns the number removed.
func (c *Cache[V]) removeExpired() int {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.entries {
		if ttl.IsExpired(entry.CreatedAt, entry.TTL, now) {
			delete(c.entries, key)
			c.stats.expired.Add(1)
			c.exporter.RecordExpiration()
			removed++
		}
	}
	if removed > 0 {
		c.exporter.UpdateSize(int64(len(c.entries)))
	}
	return removed
}

// Optimize runs the sweep's cleanup logic once and, if occupancy exceeds
// the high-water mark, performs aggressive cleanup: entries are ranked by
// a survival score favoring high access frequency and recent access, and
// the bottom 20% are removed as evictions. Capacity-triggered eviction on
// the Set path stays pure LRU; this batched hybrid pass only runs here.
func (c *Cache[V]) Optimize() {
	if c.closed.Load() {
		return
	}

	if removed := c.removeExpired(); removed > 0 {
		c.logger.Debug("optimize removed expired entries", "count", removed)
	}

	culled := 0
	c.mu.Lock()
	if c.maxSize > 0 && float64(len(c.entries)) > float64(c.maxSize)*highWaterRatio {
		culled = c.aggressiveCleanupLocked(time.Now())
	}
	c.mu.Unlock()

	if culled > 0 {
		c.logger.Debug("aggressive cleanup evicted entries", "count", culled)
		// Best-effort reclamation hint only; correctness never depends on it.
		debug.FreeOSMemory()
	}
}

// aggressiveCleanupLocked removes the floor(20%) of entries least worth
// keeping. The survival score weights access frequency at 0.7 and recency
// at 0.3, so rarely used entries with stale last-access times go first.
// Must be called with the write lock held.
func (c *Cache[V]) aggressiveCleanupLocked(now time.Time) int {
	type scoredKey struct {
		key   string
		score float64
	}

	scored := make([]scoredKey, 0, len(c.entries))
	for key, entry := range c.entries {
		idle := now.Sub(entry.LastAccess).Seconds()
		score := float64(entry.AccessCount)*0.7 - idle*0.3
		scored = append(scored, scoredKey{key: key, score: score})
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].score < scored[j].score
	})

	cull := int(float64(len(scored)) * cullFraction)
	for _, s := range scored[:cull] {
		delete(c.entries, s.key)
		c.stats.evictions.Add(1)
		c.exporter.RecordEviction()
	}
	if cull > 0 {
		c.exporter.UpdateSize(int64(len(c.entries)))
	}
	return cull
}

// Warmer supplies entries to pre-load before real traffic arrives. How
// "expected hot" keys are derived (static seed, historical telemetry) is
// up to the implementation.
type Warmer[V any] interface {
	Entries(ctx context.Context) (map[string]V, error)
}

// WarmerFunc adapts a function to the Warmer interface.
type WarmerFunc[V any] func(ctx context.Context) (map[string]V, error)

// Entries implements Warmer
func (f WarmerFunc[V]) Entries(ctx context.Context) (map[string]V, error) {
	return f(ctx)
}

// StaticWarmer returns a Warmer that always yields the given entries.
func StaticWarmer[V any](entries map[string]V) Warmer[V] {
	return WarmerFunc[V](func(context.Context) (map[string]V, error) {
		return entries, nil
	})
}

// WarmUp populates the cache from the given source with a shared TTL
// (non-positive means default). A failure partway through propagates
// without rolling back entries already warmed.
func (c *Cache[V]) WarmUp(ctx context.Context, warmer Warmer[V], ttlDuration time.Duration) error {
	if c.closed.Load() {
		return errors.WrapError("WarmUp", nil, errors.ErrCacheClosed)
	}

	entries, err := warmer.Entries(ctx)
	if err != nil {
		c.logger.Error("warm-up source failed", "error", err)
		return errors.WrapError("WarmUp", nil, err)
	}

	for key, value := range entries {
		if err := c.Set(key, value, ttlDuration); err != nil {
			c.logger.Error("warm-up aborted", "key", key, "error", err)
			return errors.WrapError("WarmUp", key, err)
		}
	}

	c.logger.Debug("cache warmed", "entries", len(entries))
	return nil
}

// Close cancels the periodic sweep, clears all entries and zeroes the
// statistics. It is safe to call multiple times; operations after Close
// fail or report missing keys.
func (c *Cache[V]) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)

		if c.sweepStop != nil {
			close(c.sweepStop)
			<-c.sweepDone
		}
		if c.sweepTicker != nil {
			c.sweepTicker.Stop()
		}

		c.mu.Lock()
		c.clearLocked()
		c.mu.Unlock()
	})
	return nil
}
