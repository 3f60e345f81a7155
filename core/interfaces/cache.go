// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import "siren-api/core/domain"

// ParseCache memoizes parse results keyed by a digest of the parser
// configuration and the raw HTML.
// Implementations can be a capacity-bounded LRU, a time-bounded cache, or
// anything else that is safe for concurrent use.
//
// Example usage:
//
//	cache := someCache // implements ParseCache
//
//	if text, ok := cache.Get(key); ok {
//		return text
//	}
//	text := parse(raw)
//	cache.Add(key, text)
type ParseCache interface {
	// Get returns the cached text for key.
	// The returned value is immutable and may be shared between callers.
	Get(key string) (*domain.AttributedText, bool)

	// Add stores text under key, evicting older entries as needed.
	Add(key string, text *domain.AttributedText)

	// Purge removes every entry.
	Purge()

	// Len returns the number of entries currently held.
	Len() int
}
