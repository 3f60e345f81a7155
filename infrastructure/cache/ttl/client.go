// ABOUTME: Time-bounded parse cache built on patrickmn/go-cache
// ABOUTME: Entries expire after a fixed TTL; a capacity guard flushes expired items when full

package ttl

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"siren-api/core/domain"
)

const (
	// DefaultTTL is the lifetime of an entry when none is configured.
	DefaultTTL = 10 * time.Minute
	// DefaultCapacity is the entry limit when none is configured.
	DefaultCapacity = 1024
)

// TTLCache implements the ParseCache interface with expiring entries
type TTLCache struct {
	// mu serializes Add so the capacity check and the insert are one step
	mu       sync.Mutex
	cache    *cache.Cache
	capacity int
}

// NewTTLCache creates a cache whose entries live for ttl. Expired entries are
// swept every ttl/2. Non-positive arguments use the defaults.
func NewTTLCache(ttl time.Duration, capacity int) *TTLCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &TTLCache{
		cache:    cache.New(ttl, ttl/2),
		capacity: capacity,
	}
}

// Get retrieves a parse result that has not expired
func (c *TTLCache) Get(key string) (*domain.AttributedText, bool) {
	value, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	text, ok := value.(*domain.AttributedText)
	return text, ok
}

// Add stores a parse result with the default expiration. When the cache is
// full, expired entries are removed first; if it is still full the new entry
// is dropped.
func (c *TTLCache) Add(key string, text *domain.AttributedText) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, found := c.cache.Get(key); !found && c.cache.ItemCount() >= c.capacity {
		c.cache.DeleteExpired()
		if c.cache.ItemCount() >= c.capacity {
			return
		}
	}
	c.cache.SetDefault(key, text)
}

// Purge removes every entry
func (c *TTLCache) Purge() {
	c.cache.Flush()
}

// Len returns the number of entries, including expired ones not yet swept
func (c *TTLCache) Len() int {
	return c.cache.ItemCount()
}
