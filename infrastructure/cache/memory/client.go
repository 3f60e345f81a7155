// ABOUTME: In-memory parse cache bounded by entry count with least-recently-used eviction
// ABOUTME: Wraps groupcache's lru.Cache with a mutex for concurrent callers

package memory

import (
	"sync"

	"github.com/golang/groupcache/lru"

	"siren-api/core/domain"
)

// DefaultCapacity is the entry limit used when none is configured.
const DefaultCapacity = 1024

// MemoryCache implements the ParseCache interface using an LRU list
type MemoryCache struct {
	mu    sync.Mutex
	cache *lru.Cache
}

// NewMemoryCache creates a cache holding at most capacity entries.
// A capacity of zero or less uses DefaultCapacity.
func NewMemoryCache(capacity int) *MemoryCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryCache{cache: lru.New(capacity)}
}

// Get retrieves a parse result from the cache
func (c *MemoryCache) Get(key string) (*domain.AttributedText, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	return value.(*domain.AttributedText), true
}

// Add stores a parse result, evicting the oldest entry when full
func (c *MemoryCache) Add(key string, text *domain.AttributedText) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Add(key, text)
}

// Purge removes every entry
func (c *MemoryCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Clear()
}

// Len returns the number of entries
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}

// Capacity returns the entry limit
func (c *MemoryCache) Capacity() int {
	return c.cache.MaxEntries
}
