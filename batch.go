package hotcache

import "time"

// GetMany retrieves multiple values from the cache. Keys that miss are
// omitted from the result.
func (c *Cache[V]) GetMany(keys []string) map[string]V {
	result := make(map[string]V, len(keys))
	for _, key := range keys {
		if value, ok := c.Get(key); ok {
			result[key] = value
		}
	}
	return result
}

// SetMany stores multiple values in the cache with a shared TTL. The
// operation is not atomic: a failure partway through leaves the entries
// already written in place.
func (c *Cache[V]) SetMany(entries map[string]V, ttlDuration time.Duration) error {
	for key, value := range entries {
		if err := c.Set(key, value, ttlDuration); err != nil {
			return err
		}
	}
	return nil
}

// DeleteMany removes multiple keys from the cache and returns the number
// of entries that were present.
func (c *Cache[V]) DeleteMany(keys []string) int {
	removed := 0
	for _, key := range keys {
		if c.Delete(key) {
			removed++
		}
	}
	return removed
}
