// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// - cache/memory: Capacity-bounded LRU parse cache
// - cache/ttl: Time-bounded parse cache
// - logger/structured: logrus logger with optional file rotation
// - render/terminal: lipgloss renderer for display text
//
// # Cache Implementations
//
//	cache := memory.NewMemoryCache(memory.DefaultCapacity)
//	cache.Add(key, text)
//	text, ok := cache.Get(key)
//
//	cache := ttl.NewTTLCache(10*time.Minute, 1024)
//
// # Logger
//
//	logger := structured.New(structured.Options{Level: "debug", Format: "text"})
//	logger.Info("Parsed post", map[string]interface{}{
//	    "bytes": 512,
//	})
package infrastructure
