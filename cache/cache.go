// Package cache provides a bounded, concurrency-safe memo of values created
// on demand from comparable keys.
//
// Entries are evicted in insertion order once the cache holds more than its
// capacity. Creation runs outside the lock, so a slow create never blocks
// lookups of other keys.
package cache

import "sync"

// Cache maps keys to values built by a create function.
//
// Thread safety: all methods are safe for concurrent access. When two
// goroutines miss on the same key at once, both create a value but only the
// first insert is kept and both callers receive it.
type Cache[K comparable, V any] struct {
	// mu protects all fields below
	mu sync.Mutex

	entries map[K]V

	// order holds keys oldest first
	order []K

	capacity int
	create   func(K) (V, error)

	stats Stats
}

// Stats reports cache activity counters.
type Stats struct {
	// Hits counts lookups that found the key.
	Hits uint64

	// Misses counts lookups that had to call create.
	Misses uint64

	// Creates counts successful create calls, including values discarded
	// because a concurrent Get inserted the same key first.
	Creates uint64

	// Evictions counts entries dropped to stay within capacity.
	Evictions uint64
}

// HitRate returns hits / (hits + misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// New creates a cache holding at most capacity entries.
// Returns ErrInvalidCapacity if capacity <= 0.
func New[K comparable, V any](capacity int, create func(K) (V, error)) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, &CapacityError{Capacity: capacity}
	}
	return &Cache[K, V]{
		entries:  make(map[K]V, capacity),
		order:    make([]K, 0, capacity+1),
		capacity: capacity,
		create:   create,
	}, nil
}

// Get returns the value for key, creating it on a miss.
// A create error is returned as is and nothing is stored, so the next Get
// for the same key calls create again.
func (c *Cache[K, V]) Get(key K) (V, error) {
	c.mu.Lock()
	if v, ok := c.entries[key]; ok {
		c.stats.Hits++
		c.mu.Unlock()
		return v, nil
	}
	c.stats.Misses++
	c.mu.Unlock()

	v, err := c.create(key)
	if err != nil {
		var zero V
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Creates++

	// Another goroutine may have inserted the key while we were creating.
	if existing, ok := c.entries[key]; ok {
		return existing, nil
	}
	c.entries[key] = v
	c.order = append(c.order, key)
	c.trim()
	return v, nil
}

// Peek returns the cached value for key without creating it or touching
// the statistics.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// trim evicts the oldest entries until the cache is within capacity.
// Caller must hold mu.
func (c *Cache[K, V]) trim() {
	n := len(c.order) - c.capacity
	if n <= 0 {
		return
	}
	for _, k := range c.order[:n] {
		delete(c.entries, k)
	}
	c.order = append(c.order[:0], c.order[n:]...)
	c.stats.Evictions += uint64(n)
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the maximum number of entries.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Keys returns the cached keys, oldest first.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]K(nil), c.order...)
}

// Stats returns a snapshot of the activity counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// ResetStats zeroes the activity counters (useful for benchmarking)
func (c *Cache[K, V]) ResetStats() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats = Stats{}
}

// Clear removes all entries. Statistics are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.order = c.order[:0]
}
