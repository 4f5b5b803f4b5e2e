// Package internal provides internal utility functions used across the hotcache package.
package internal

import "encoding/json"

// EstimateSize returns the approximate in-memory footprint of a cached
// value: the length of its JSON form doubled, approximating two bytes per
// character of storage. Values that cannot be serialized contribute zero
// rather than failing the caller.
func EstimateSize(v any) int64 {
	b, err := json.Marshal(v)
	if err != nil {
		return 0
	}
	return int64(len(b)) * 2
}
