// Package metrics provides functionality for collecting and reporting cache performance metrics.
package metrics

import (
	"sync/atomic"
)

// Snapshot is a thread-safe copy of metrics
type Snapshot struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Expired   int64
	Size      int64
}

// StandardExporter tracks cache metrics with in-process counters
type StandardExporter struct {
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
	expired   atomic.Int64
	size      atomic.Int64
}

// NewStandardExporter creates a new StandardExporter
func NewStandardExporter() *StandardExporter {
	return &StandardExporter{}
}

// RecordHit records a cache hit
func (m *StandardExporter) RecordHit() {
	m.hits.Add(1)
}

// RecordMiss records a cache miss
func (m *StandardExporter) RecordMiss() {
	m.misses.Add(1)
}

// RecordEviction records a capacity or cleanup eviction
func (m *StandardExporter) RecordEviction() {
	m.evictions.Add(1)
}

// RecordExpiration records the removal of an expired entry
func (m *StandardExporter) RecordExpiration() {
	m.expired.Add(1)
}

// UpdateSize updates the current cache size
func (m *StandardExporter) UpdateSize(size int64) {
	m.size.Store(size)
}

// GetSnapshot returns a thread-safe copy of current metrics
func (m *StandardExporter) GetSnapshot() Snapshot {
	return Snapshot{
		Hits:      m.hits.Load(),
		Misses:    m.misses.Load(),
		Evictions: m.evictions.Load(),
		Expired:   m.expired.Load(),
		Size:      m.size.Load(),
	}
}

// Reset resets all metrics to zero
func (m *StandardExporter) Reset() {
	m.hits.Store(0)
	m.misses.Store(0)
	m.evictions.Store(0)
	m.expired.Store(0)
	m.size.Store(0)
}
