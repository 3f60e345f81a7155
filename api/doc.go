// Package api provides the HTTP API layer of the Siren API.
// It uses the Huma framework for OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
//	POST   /parse        parse one post body
//	POST   /parse/batch  parse up to 100 post bodies
//	POST   /render       parse and format one post body
//	DELETE /cache        purge the parse cache
//
// The OpenAPI document is served at /openapi.json and the docs UI at /docs.
//
// # Middleware
//
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling
// - Feature flags in the request context
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:    logger,
//	    Flags:     featureflags.NewEnvManager("FEATURE_"),
//	    RateLimit: 20,
//	    RateBurst: 40,
//	})
//	handlers.NewPostHandler(renderService, "body", 17).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8000", router)
//
// Domain validation errors map to 400; everything else maps to 500.
package api
