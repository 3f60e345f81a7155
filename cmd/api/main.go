// ABOUTME: Main entry point for the Siren API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"siren-api/api"
	"siren-api/api/handlers"
	"siren-api/core/interfaces"
	"siren-api/core/render"
	"siren-api/core/workers"
	"siren-api/infrastructure/cache/memory"
	"siren-api/infrastructure/cache/ttl"
	"siren-api/infrastructure/logger/structured"
	"siren-api/pkg/config"
	"siren-api/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := structured.New(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	logger.Info("Starting Siren API", map[string]interface{}{
		"port":        cfg.Server.Port,
		"cache_type":  cfg.Cache.Type,
		"strict":      cfg.Parser.Strict,
		"link_scheme": cfg.Parser.LinkScheme,
		"workers":     cfg.Parser.Workers,
	})

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:  newCache(cfg, logger),
		Logger: logger,
	}

	// Create services
	renderService := render.NewService(deps, render.WithConfig(render.Config{
		Strict:     cfg.Parser.Strict,
		LinkScheme: cfg.Parser.LinkScheme,
	}))

	// Start the batch parse pool
	parsePool := workers.NewParseWorker(renderService, workers.WorkerConfig{
		MaxWorkers: cfg.Parser.Workers,
		QueueSize:  cfg.Parser.Workers * 32,
	})
	if err := parsePool.Start(); err != nil {
		log.Fatalf("Failed to start parse workers: %v", err)
	}

	// Feature flags read FEATURE_* variables and default to on, except strict parsing
	flags := featureflags.NewEnvManager("FEATURE_")
	logger.Info("Feature flags loaded", flagFields(flags))

	// Create API with middleware
	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:    logger,
		Flags:     flags,
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
	})

	// Create and register handlers
	postHandler := handlers.NewPostHandler(renderService, cfg.Format.TextStyle, cfg.Format.IndentUnit)
	postHandler.RegisterRoutes(humaAPI)
	handlers.NewBatchHandler(parsePool).RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := parsePool.Stop(); err != nil {
		logger.Error("Failed to stop parse workers", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the parse cache selected by configuration
func newCache(cfg *config.Config, logger interfaces.Logger) interfaces.ParseCache {
	switch cfg.Cache.Type {
	case config.CacheTTL:
		logger.Info("Using TTL cache", map[string]interface{}{
			"ttl":      cfg.Cache.TTL.String(),
			"capacity": cfg.Cache.Capacity,
		})
		return ttl.NewTTLCache(cfg.Cache.TTL, cfg.Cache.Capacity)
	case config.CacheNone:
		logger.Info("Parse cache disabled", nil)
		return nil
	default:
		logger.Info("Using LRU cache", map[string]interface{}{
			"capacity": cfg.Cache.Capacity,
		})
		return memory.NewMemoryCache(cfg.Cache.Capacity)
	}
}

func flagFields(flags featureflags.Manager) map[string]interface{} {
	fields := make(map[string]interface{})
	for flag, enabled := range flags.GetAllFlags() {
		fields[string(flag)] = enabled
	}
	return fields
}

func init() {
	// Print banner
	fmt.Println(`
   _____ _                      ___    ____  ____
  / ___/(_)_______  ____       /   |  / __ \/  _/
  \__ \/ / ___/ _ \/ __ \     / /| | / /_/ // /
 ___/ / / /  /  __/ / / /    / ___ |/ ____// /
/____/_/_/   \___/_/ /_/    /_/  |_/_/   /___/
	`)
}
