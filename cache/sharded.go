// Package cache provides a thread-safe, sharded LRU cache with optional
// time-based expiry.
//
// The cache owns all of its state; nothing is shared between instances, and
// the clock used for expiry is injected with WithClock.
package cache

import (
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// Default configuration constants.
const (
	// DefaultShardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	DefaultShardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 256

	// shardMask is used for fast shard selection (DefaultShardCount - 1).
	shardMask = DefaultShardCount - 1
)

// FNV-1a parameters.
const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

// Hasher is a function that computes a hash for a key.
// Used by ShardedCache for shard selection.
type Hasher[K any] func(K) uint64

// StringHasher computes FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := uint64(fnvOffset)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime
	}
	return h
}

// Float64sHasher computes an FNV-1a hash over the IEEE 754 bits of vs.
// Use it to build hashers for small structs of floats. Positive and
// negative zero hash alike, matching ==.
func Float64sHasher(vs ...float64) uint64 {
	h := uint64(fnvOffset)
	for _, v := range vs {
		if v == 0 {
			v = 0
		}
		bits := math.Float64bits(v)
		for i := 0; i < 8; i++ {
			h ^= bits & 0xff
			h *= fnvPrime
			bits >>= 8
		}
	}
	return h
}

// Uint64Hasher returns the key itself as the hash (identity hash).
func Uint64Hasher(u uint64) uint64 {
	return u
}

// ShardedCache is a thread-safe, sharded LRU cache.
//
// Features:
//   - 16 shards for reduced lock contention
//   - LRU eviction with configurable capacity per shard
//   - optional TTL, measured with an injectable clock
//   - atomic statistics for monitoring
type ShardedCache[K comparable, V any] struct {
	shards   [DefaultShardCount]*shardedCacheShard[K, V]
	hasher   Hasher[K]
	capacity int // Per-shard capacity
	ttl      time.Duration
	now      func() time.Time

	// Statistics (atomic for zero-allocation reads)
	hits        atomic.Uint64
	misses      atomic.Uint64
	evictions   atomic.Uint64
	expirations atomic.Uint64
}

// shardedCacheShard is a single shard of the cache.
// Each shard has its own mutex for reduced contention.
type shardedCacheShard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*shardedCacheEntry[K, V]
	lru     *lruList[K]
}

// shardedCacheEntry holds a cached value with its LRU node.
type shardedCacheEntry[K comparable, V any] struct {
	value   V
	node    *lruNode[K]
	expires time.Time // zero when the entry never expires
}

// Stats is a snapshot of cache statistics.
type Stats struct {
	Len           int
	Capacity      int
	TotalCapacity int
	Hits          uint64
	Misses        uint64
	HitRate       float64
	Evictions     uint64
	Expirations   uint64
}

// NewSharded creates a new sharded cache with the specified capacity per shard.
// Total capacity is approximately capacity * DefaultShardCount (16).
//
// The hasher function is used to compute hash values for shard selection.
//
// If capacity <= 0, DefaultCapacity (256) is used.
func NewSharded[K comparable, V any](capacity int, hasher Hasher[K], opts ...Option) *ShardedCache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &ShardedCache[K, V]{
		hasher:   hasher,
		capacity: capacity,
		ttl:      o.ttl,
		now:      o.now,
	}

	for i := range c.shards {
		c.shards[i] = &shardedCacheShard[K, V]{
			entries: make(map[K]*shardedCacheEntry[K, V]),
			lru:     newLRUList[K](),
		}
	}

	return c
}

// getShard returns the shard for a given key.
// Uses bitwise AND for fast modulo (only works with power-of-2 shard count).
func (c *ShardedCache[K, V]) getShard(key K) *shardedCacheShard[K, V] {
	hash := c.hasher(key)
	return c.shards[hash&shardMask]
}

// expiry returns the expiry time for an entry stored now.
func (c *ShardedCache[K, V]) expiry() time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return c.now().Add(c.ttl)
}

// lookup returns the live entry for key, dropping it if it has expired.
// The shard lock must be held.
func (c *ShardedCache[K, V]) lookup(shard *shardedCacheShard[K, V], key K) (*shardedCacheEntry[K, V], bool) {
	entry, ok := shard.entries[key]
	if !ok {
		return nil, false
	}
	if !entry.expires.IsZero() && !c.now().Before(entry.expires) {
		shard.lru.Remove(entry.node)
		delete(shard.entries, key)
		c.expirations.Add(1)
		return nil, false
	}
	return entry, true
}

// Get retrieves a cached value by key.
// Returns (value, true) if found and not expired, (zero, false) otherwise.
//
// On cache hit, the entry is moved to the front of the LRU list.
func (c *ShardedCache[K, V]) Get(key K) (V, bool) {
	shard := c.getShard(key)

	shard.mu.Lock()
	entry, ok := c.lookup(shard, key)
	if !ok {
		shard.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	shard.lru.MoveToFront(entry.node)
	value := entry.value
	shard.mu.Unlock()

	c.hits.Add(1)
	return value, true
}

// Set stores a value in the cache.
// If the shard exceeds capacity after insertion, oldest entries are evicted.
func (c *ShardedCache[K, V]) Set(key K, value V) {
	shard := c.getShard(key)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	c.store(shard, key, value)
}

// store inserts or updates key. The shard lock must be held.
func (c *ShardedCache[K, V]) store(shard *shardedCacheShard[K, V], key K, value V) {
	if existing, ok := shard.entries[key]; ok {
		existing.value = value
		existing.expires = c.expiry()
		shard.lru.MoveToFront(existing.node)
		return
	}

	// Evict if at capacity
	for shard.lru.Len() >= c.capacity {
		oldest, ok := shard.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(shard.entries, oldest)
		c.evictions.Add(1)
	}

	node := shard.lru.PushFront(key)
	shard.entries[key] = &shardedCacheEntry[K, V]{
		value:   value,
		node:    node,
		expires: c.expiry(),
	}
}

// GetOrCreate returns a cached value or creates it using the provided function.
// This is the preferred method for cache access as it prevents duplicate computation.
//
// The create function is called with the shard lock held to prevent thundering herd.
// Keep the create function fast to minimize lock contention.
func (c *ShardedCache[K, V]) GetOrCreate(key K, create func() V) V {
	shard := c.getShard(key)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	if entry, ok := c.lookup(shard, key); ok {
		shard.lru.MoveToFront(entry.node)
		c.hits.Add(1)
		return entry.value
	}

	c.misses.Add(1)
	value := create()
	c.store(shard, key, value)
	return value
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *ShardedCache[K, V]) Delete(key K) bool {
	shard := c.getShard(key)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	entry, ok := shard.entries[key]
	if !ok {
		return false
	}

	shard.lru.Remove(entry.node)
	delete(shard.entries, key)
	return true
}

// Clear removes all entries from the cache.
func (c *ShardedCache[K, V]) Clear() {
	for _, shard := range c.shards {
		shard.mu.Lock()
		shard.entries = make(map[K]*shardedCacheEntry[K, V])
		shard.lru.Clear()
		shard.mu.Unlock()
	}
}

// Len returns the total number of entries across all shards.
// Expired entries that have not been looked up since are still counted.
func (c *ShardedCache[K, V]) Len() int {
	total := 0
	for _, shard := range c.shards {
		shard.mu.Lock()
		total += len(shard.entries)
		shard.mu.Unlock()
	}
	return total
}

// Capacity returns the per-shard capacity.
func (c *ShardedCache[K, V]) Capacity() int {
	return c.capacity
}

// TotalCapacity returns the total capacity across all shards.
func (c *ShardedCache[K, V]) TotalCapacity() int {
	return c.capacity * DefaultShardCount
}

// TTL returns the configured entry lifetime, or 0 when entries never expire.
func (c *ShardedCache[K, V]) TTL() time.Duration {
	if c.ttl < 0 {
		return 0
	}
	return c.ttl
}

// ShardLen returns the number of entries in each shard.
// Useful for debugging load distribution.
func (c *ShardedCache[K, V]) ShardLen() [DefaultShardCount]int {
	var lens [DefaultShardCount]int
	for i, shard := range c.shards {
		shard.mu.Lock()
		lens[i] = len(shard.entries)
		shard.mu.Unlock()
	}
	return lens
}

// Stats returns current cache statistics.
func (c *ShardedCache[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	total := hits + misses
	if total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:           c.Len(),
		Capacity:      c.capacity,
		TotalCapacity: c.capacity * DefaultShardCount,
		Hits:          hits,
		Misses:        misses,
		HitRate:       hitRate,
		Evictions:     c.evictions.Load(),
		Expirations:   c.expirations.Load(),
	}
}

// ResetStats resets all statistics counters to zero.
func (c *ShardedCache[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
	c.expirations.Store(0)
}
