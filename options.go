package hotcache

import (
	"log/slog"
	"time"

	"github.com/evictio/hotcache/metrics"
	"github.com/evictio/hotcache/ttl"
)

// DefaultSweepInterval is how often the periodic sweep purges expired
// entries unless configured otherwise.
const DefaultSweepInterval = 60 * time.Second

type options struct {
	maxSize       int
	ttlConfig     ttl.Config
	sweepInterval time.Duration
	logger        *slog.Logger
	exporter      metrics.Exporter
	coalesce      bool
}

// Option is a function that configures cache options
type Option func(*options)

func defaultOptions() *options {
	return &options{
		maxSize:       1000,
		ttlConfig:     ttl.DefaultConfig(),
		sweepInterval: DefaultSweepInterval,
	}
}

// WithMaxSize sets the maximum number of entries the cache can hold
func WithMaxSize(size int) Option {
	return func(o *options) {
		o.maxSize = size
	}
}

// WithTTLConfig sets the TTL configuration
func WithTTLConfig(config ttl.Config) Option {
	return func(o *options) {
		o.ttlConfig = config
	}
}

// WithDefaultTTL sets the TTL applied when a Set call passes a
// non-positive TTL
func WithDefaultTTL(d time.Duration) Option {
	return func(o *options) {
		o.ttlConfig.DefaultTTL = d
	}
}

// WithSweepInterval sets how often the periodic sweep runs. A
// non-positive interval disables the sweep; lazy expiry on read still
// applies.
func WithSweepInterval(interval time.Duration) Option {
	return func(o *options) {
		o.sweepInterval = interval
	}
}

// WithLogger sets the logger used for sweep and warm-up diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetricsExporter sets the metrics exporter. The default is an
// in-process StandardExporter; use metrics.NewPrometheusExporter to
// publish to a Prometheus registry.
func WithMetricsExporter(exporter metrics.Exporter) Option {
	return func(o *options) {
		o.exporter = exporter
	}
}

// WithCoalescing makes concurrent GetOrSet calls for the same missing key
// share a single fetcher invocation. This changes the documented default
// behavior, under which every concurrent miss fetches independently.
func WithCoalescing() Option {
	return func(o *options) {
		o.coalesce = true
	}
}

// FromConfig applies an environment-derived Config
func FromConfig(cfg Config) Option {
	return func(o *options) {
		o.maxSize = cfg.MaxSize
		o.ttlConfig = ttl.Config{
			DefaultTTL: cfg.DefaultTTL,
			MinTTL:     cfg.MinTTL,
			MaxTTL:     cfg.MaxTTL,
		}
		o.sweepInterval = cfg.SweepInterval
	}
}
