package schemafile

import (
	"sync"

	"github.com/reqschema/reqschema"
)

// Cache memoizes compiled schemas by file path with at-most-once compilation
// per key. Loaded schemas are immutable, so a read-mostly map is all the
// synchronization request handlers need.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	once sync.Once
	rs   *reqschema.RequestSchema
	err  error
}

// NewCache returns an empty schema cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cacheEntry)}
}

// Load returns the compiled schema for path, compiling it on first use.
// Concurrent callers for the same path share a single compilation; failures
// are cached too, since a broken schema file is an operator error that does
// not heal by retrying.
func (c *Cache) Load(path string) (*reqschema.RequestSchema, error) {
	c.mu.RLock()
	e := c.entries[path]
	c.mu.RUnlock()
	if e == nil {
		c.mu.Lock()
		if e = c.entries[path]; e == nil {
			e = &cacheEntry{}
			c.entries[path] = e
		}
		c.mu.Unlock()
	}
	e.once.Do(func() {
		e.rs, e.err = LoadFile(path)
	})
	return e.rs, e.err
}

// Invalidate drops the cached entry for path, forcing a re-load on next use.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}
