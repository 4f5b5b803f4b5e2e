package hotcache

import (
	"sync/atomic"
	"time"

	"github.com/evictio/hotcache/internal"
)

// Stats tracks the raw cache counters. They are reset only by ResetStats
// or Clear; sweeps and Optimize increment expired/evictions as a side
// effect of removing entries.
type Stats struct {
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
	expired   atomic.Int64
}

func (s *Stats) reset() {
	s.hits.Store(0)
	s.misses.Store(0)
	s.evictions.Store(0)
	s.expired.Store(0)
}

// StatsSnapshot is a point-in-time copy of cache statistics, with derived
// rates and entry ages computed on demand.
type StatsSnapshot struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Expired   int64

	// HitRate and MissRate are hits/(hits+misses) and its complement.
	// Both are zero when no requests have occurred.
	HitRate  float64
	MissRate float64

	Size    int
	MaxSize int

	// OldestEntry and NewestEntry are the min/max creation times across
	// current entries; both are the zero time when the cache is empty.
	OldestEntry time.Time
	NewestEntry time.Time

	// MemoryUsage is an approximation based on serialized value sizes,
	// not an exact accounting. Values that cannot be serialized
	// contribute zero.
	MemoryUsage int64
}

// GetStats returns the current cache statistics. Rates, entry ages and the
// memory estimate are computed on demand from the live entry set.
func (c *Cache[V]) GetStats() StatsSnapshot {
	snapshot := StatsSnapshot{
		Hits:      c.stats.hits.Load(),
		Misses:    c.stats.misses.Load(),
		Evictions: c.stats.evictions.Load(),
		Expired:   c.stats.expired.Load(),
		MaxSize:   c.maxSize,
	}

	if total := snapshot.Hits + snapshot.Misses; total > 0 {
		snapshot.HitRate = float64(snapshot.Hits) / float64(total)
		snapshot.MissRate = float64(snapshot.Misses) / float64(total)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot.Size = len(c.entries)
	for _, entry := range c.entries {
		if snapshot.OldestEntry.IsZero() || entry.CreatedAt.Before(snapshot.OldestEntry) {
			snapshot.OldestEntry = entry.CreatedAt
		}
		if entry.CreatedAt.After(snapshot.NewestEntry) {
			snapshot.NewestEntry = entry.CreatedAt
		}
		snapshot.MemoryUsage += internal.EstimateSize(entry.Value)
	}
	return snapshot
}

// ResetStats zeroes the raw counters without touching stored entries.
func (c *Cache[V]) ResetStats() {
	c.stats.reset()
	c.exporter.Reset()
	c.mu.RLock()
	c.exporter.UpdateSize(int64(len(c.entries)))
	c.mu.RUnlock()
}
