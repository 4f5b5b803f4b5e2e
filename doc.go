// Package hotcache implements a bounded in-process cache-and-eviction
// engine: string keys map to generically typed entries with per-entry TTL
// expiry, LRU eviction on capacity pressure, hit/miss instrumentation,
// batch and pattern-scoped operations, and a maintenance subsystem
// (periodic sweep, warm-up, and a load-shedding Optimize pass).
//
// Expiry is discovered on two independent paths: lazily when an entry is
// read, and proactively by a periodic sweep that bounds worst-case
// staleness for keys that are never read again. Capacity-triggered
// eviction on the write path is pure LRU (one victim per insert), while
// Optimize performs a batched cleanup ranking entries by a hybrid
// frequency-and-recency score.
//
// The engine is purely in-memory and single-process: entries do not
// survive a restart, and nothing is shared across processes. Callers are
// responsible for key-namespacing conventions; the Namespace wrapper
// handles prefixing and per-domain default TTLs for them.
//
// Known limitation: GetOrSet has no single-flight guarantee by default.
// Concurrent misses on the same key each invoke their fetcher and each
// write the cache, last writer wins. WithCoalescing opts into shared
// fetches via singleflight where that trade-off is acceptable.
package hotcache
