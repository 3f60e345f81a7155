// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the parsing pipeline

package interfaces

// Dependencies holds all external dependencies required by the core pipeline
type Dependencies struct {
	// Cache memoizes parse results; nil disables caching
	Cache ParseCache

	// Logger provides structured logging
	Logger Logger
}
