// Package ttl provides functionality for managing time-to-live (TTL) values in the cache.
// It includes utilities for validating TTL durations, calculating expiration times,
// and checking if entries have outlived their TTL.
package ttl

import (
	"time"

	"github.com/evictio/hotcache/errors"
)

// Config represents configuration for TTL behavior
type Config struct {
	// DefaultTTL is applied when a Set call passes a non-positive TTL
	DefaultTTL time.Duration

	// MinTTL is the minimum allowed TTL value (0 means no lower bound)
	MinTTL time.Duration

	// MaxTTL is the maximum allowed TTL value (0 means no upper bound)
	MaxTTL time.Duration
}

// DefaultConfig returns the default TTL configuration
func DefaultConfig() Config {
	return Config{
		DefaultTTL: 5 * time.Minute,
		MinTTL:     0,
		MaxTTL:     24 * time.Hour,
	}
}

// Validate validates a TTL value against the configuration
func Validate(ttl time.Duration, config Config) error {
	if ttl < 0 {
		return errors.WrapError("Validate", nil, errors.ErrInvalidTTL)
	}

	if ttl > 0 {
		if config.MinTTL > 0 && ttl < config.MinTTL {
			return errors.WrapError("Validate", nil, errors.ErrTTLTooShort)
		}
		if config.MaxTTL > 0 && ttl > config.MaxTTL {
			return errors.WrapError("Validate", nil, errors.ErrTTLTooLong)
		}
	}

	return nil
}

// Normalize normalizes a TTL value according to the configuration.
// A non-positive TTL resolves to the configured default.
func Normalize(ttl time.Duration, config Config) time.Duration {
	if ttl <= 0 {
		return config.DefaultTTL
	}

	if config.MinTTL > 0 && ttl < config.MinTTL {
		return config.MinTTL
	}

	if config.MaxTTL > 0 && ttl > config.MaxTTL {
		return config.MaxTTL
	}

	return ttl
}

// ExpiresAt calculates the expiration time for an entry created at the
// given moment with the given TTL
func ExpiresAt(createdAt time.Time, ttl time.Duration) time.Time {
	return createdAt.Add(ttl)
}

// IsExpired reports whether an entry created at the given moment has
// outlived its TTL as of now
func IsExpired(createdAt time.Time, ttl time.Duration, now time.Time) bool {
	return now.Sub(createdAt) > ttl
}
