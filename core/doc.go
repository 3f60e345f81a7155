// Package core contains the post body pipeline of the Siren API.
// It is framework-agnostic and can be used without the HTTP layer.
//
// The core package is organized into several sub-packages:
//
// - sanitize: Allowlist sanitizing of server-provided HTML
// - parser: Tree walk producing attributed text
// - semantic: Mapping of microformat classes to link classes
// - links: Rewriting of mention and hashtag links to app URLs
// - format: Fonts, indents and list markers for display
// - render: The pipeline behind a parse cache
// - workers: Worker pool for parsing pages of posts
// - domain: Attributed and display text models
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, logger)
//
// # Design Principles
//
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Parse results are immutable and safe to share between goroutines
//
// # Usage Example
//
//	import (
//	    "siren-api/core/interfaces"
//	    "siren-api/core/render"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:  myCache,  // implements interfaces.ParseCache
//	    Logger: myLogger, // implements interfaces.Logger
//	}
//
//	svc := render.NewService(deps)
//	text := svc.Parse(`<p>Hello <a href="https://example.org/@bob" class="u-url mention">@bob</a></p>`)
//	display := svc.Render(raw, render.DefaultRenderOptions())
package core
