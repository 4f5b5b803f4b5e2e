package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Exporter defines the interface for metrics exporters
type Exporter interface {
	// RecordHit records a cache hit
	RecordHit()
	// RecordMiss records a cache miss
	RecordMiss()
	// RecordEviction records a capacity or cleanup eviction
	RecordEviction()
	// RecordExpiration records the removal of an expired entry
	RecordExpiration()
	// UpdateSize updates the current cache size
	UpdateSize(size int64)
	// GetSnapshot returns a thread-safe copy of current metrics
	GetSnapshot() Snapshot
	// Reset resets all metrics to zero
	Reset()
}

// PrometheusExporter implements Exporter using Prometheus metrics
type PrometheusExporter struct {
	hits      *prometheus.CounterVec
	misses    *prometheus.CounterVec
	evictions *prometheus.CounterVec
	expired   *prometheus.CounterVec
	size      *prometheus.GaugeVec

	// Internal counters for snapshot
	internalHits      atomic.Int64
	internalMisses    atomic.Int64
	internalEvictions atomic.Int64
	internalExpired   atomic.Int64
	internalSize      atomic.Int64

	// Labels for metrics
	labels map[string]string
}

// NewPrometheusExporter creates a new Prometheus metrics exporter registered
// on the given registerer. A nil registerer falls back to the default one.
func NewPrometheusExporter(cacheName string, reg prometheus.Registerer, labels map[string]string) *PrometheusExporter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if labels == nil {
		labels = make(map[string]string)
	}

	// Set default service name if not provided
	if _, exists := labels["service"]; !exists {
		labels["service"] = "hotcache"
	}

	// Always include cache name
	labels["cache"] = cacheName

	exporter := &PrometheusExporter{
		labels: labels,
	}

	exporter.hits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"service", "cache"},
	)

	exporter.misses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"service", "cache"},
	)

	exporter.evictions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions",
		},
		[]string{"service", "cache"},
	)

	exporter.expired = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_expired_total",
			Help: "Total number of entries removed because their TTL elapsed",
		},
		[]string{"service", "cache"},
	)

	exporter.size = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current number of items in the cache",
		},
		[]string{"service", "cache"},
	)

	reg.MustRegister(
		exporter.hits,
		exporter.misses,
		exporter.evictions,
		exporter.expired,
		exporter.size,
	)

	return exporter
}

// RecordHit implements Exporter
func (e *PrometheusExporter) RecordHit() {
	e.hits.With(e.labels).Inc()
	e.internalHits.Add(1)
}

// RecordMiss implements Exporter
func (e *PrometheusExporter) RecordMiss() {
	e.misses.With(e.labels).Inc()
	e.internalMisses.Add(1)
}

// RecordEviction implements Exporter
func (e *PrometheusExporter) RecordEviction() {
	e.evictions.With(e.labels).Inc()
	e.internalEvictions.Add(1)
}

// RecordExpiration implements Exporter
func (e *PrometheusExporter) RecordExpiration() {
	e.expired.With(e.labels).Inc()
	e.internalExpired.Add(1)
}

// UpdateSize implements Exporter
func (e *PrometheusExporter) UpdateSize(size int64) {
	e.size.With(e.labels).Set(float64(size))
	e.internalSize.Store(size)
}

// GetSnapshot implements Exporter
func (e *PrometheusExporter) GetSnapshot() Snapshot {
	return Snapshot{
		Hits:      e.internalHits.Load(),
		Misses:    e.internalMisses.Load(),
		Evictions: e.internalEvictions.Load(),
		Expired:   e.internalExpired.Load(),
		Size:      e.internalSize.Load(),
	}
}

// Reset implements Exporter
func (e *PrometheusExporter) Reset() {
	e.internalHits.Store(0)
	e.internalMisses.Store(0)
	e.internalEvictions.Store(0)
	e.internalExpired.Store(0)
	e.internalSize.Store(0)

	// Note: Prometheus metrics are not reset as they are meant to be cumulative
}
