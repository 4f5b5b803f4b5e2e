package hotcache

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds engine settings loadable from the environment. Pass it to
// New via FromConfig.
type Config struct {
	// MaxSize is the entry-count capacity of the cache
	MaxSize int `env:"CACHE_MAX_SIZE" envDefault:"1000"`

	// DefaultTTL is applied when a Set call passes a non-positive TTL
	DefaultTTL time.Duration `env:"CACHE_DEFAULT_TTL" envDefault:"5m"`

	// MinTTL is the minimum allowed TTL (0 means no lower bound)
	MinTTL time.Duration `env:"CACHE_MIN_TTL" envDefault:"0"`

	// MaxTTL is the maximum allowed TTL (0 means no upper bound)
	MaxTTL time.Duration `env:"CACHE_MAX_TTL" envDefault:"24h"`

	// SweepInterval is how often the periodic sweep runs (non-positive
	// disables it)
	SweepInterval time.Duration `env:"CACHE_SWEEP_INTERVAL" envDefault:"60s"`
}

// LoadConfig parses the engine configuration from environment variables.
// When env file paths are given they are loaded first and must exist; with
// no arguments a `.env` in the working directory is loaded if present.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Config{}, fmt.Errorf("hotcache: load env files: %w", err)
		}
	} else {
		// Optional default .env; absence is not an error.
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("hotcache: parse config: %w", err)
	}
	return cfg, nil
}
