package regforge

import (
	"sync"

	"github.com/coregx/regforge/cache"
)

// Cache memoizes compiled generators by pattern text.
//
// It holds at most its capacity of generators and evicts the one compiled
// earliest when full. Compilation runs outside the cache lock. Failed
// compilations are never stored, so an invalid pattern fails the same way
// on every Get. Safe for concurrent use.
type Cache struct {
	gens   *cache.Cache[string, *Generator]
	config Config
}

// NewCache creates a cache of at most capacity generators, each compiled
// with config.
// Returns an error wrapping cache.ErrInvalidCapacity if capacity <= 0.
func NewCache(capacity int, config Config) (*Cache, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.Exclude = append([]string(nil), config.Exclude...)

	gens, err := cache.New(capacity, func(pattern string) (*Generator, error) {
		return CompileWithConfig(pattern, config)
	})
	if err != nil {
		return nil, err
	}
	return &Cache{gens: gens, config: config}, nil
}

// Get returns the generator for pattern, compiling it on a miss.
func (c *Cache) Get(pattern string) (*Generator, error) {
	return c.gens.Get(pattern)
}

// Stats returns a snapshot of cache activity. Stats().Creates counts
// successful compilations.
func (c *Cache) Stats() cache.Stats {
	return c.gens.Stats()
}

// Len returns the number of cached generators.
func (c *Cache) Len() int {
	return c.gens.Len()
}

// Capacity returns the maximum number of cached generators.
func (c *Cache) Capacity() int {
	return c.gens.Capacity()
}

// Patterns returns the cached patterns, oldest first.
func (c *Cache) Patterns() []string {
	return c.gens.Keys()
}

// Clear drops every cached generator.
func (c *Cache) Clear() {
	c.gens.Clear()
}

var defaultCache = sync.OnceValue(func() *Cache {
	c, err := NewCache(DefaultCacheCapacity, DefaultConfig())
	if err != nil {
		panic("regforge: default cache: " + err.Error())
	}
	return c
})

// Generate compiles pattern through a shared cache of DefaultCacheCapacity
// generators and returns one matching string.
//
// Example:
//
//	src := random.New(7)
//	for i := 0; i < 3; i++ {
//	    s, _ := regforge.Generate(`[0-9a-f]{8}`, src) // compiled once
//	    fmt.Println(s)
//	}
func Generate(pattern string, src Source) (string, error) {
	gen, err := defaultCache().Get(pattern)
	if err != nil {
		return "", err
	}
	return gen.TryGenerate(src)
}
