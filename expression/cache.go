package expression

import (
	"sync"

	"json-converter/config"
)

type cacheKey struct {
	source     string
	isAccessor bool
}

type cacheEntry struct {
	value any
	ok    bool
}

// Cache memoizes Parse results for one configuration. Parse itself never
// caches; callers converting the same document repeatedly opt in here.
// A Cache is safe for concurrent use.
type Cache struct {
	cfg *config.Configuration

	mu      sync.RWMutex
	entries map[cacheKey]cacheEntry
}

// NewCache returns an empty cache bound to cfg.
func NewCache(cfg *config.Configuration) *Cache {
	return &Cache{
		cfg:     cfg,
		entries: make(map[cacheKey]cacheEntry),
	}
}

// Parse returns the cached result for source, compiling it on first use.
// Failed compilations are cached too.
func (c *Cache) Parse(source string, isAccessor bool) (any, bool) {
	key := cacheKey{source: source, isAccessor: isAccessor}

	c.mu.RLock()
	entry, hit := c.entries[key]
	c.mu.RUnlock()

	if hit {
		return entry.value, entry.ok
	}

	value, ok := Parse(source, c.cfg, isAccessor)

	c.mu.Lock()
	c.entries[key] = cacheEntry{value: value, ok: ok}
	c.mu.Unlock()

	return value, ok
}

// Len returns the number of cached sources.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
