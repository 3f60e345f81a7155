// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, parser, formatter and logging

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"siren-api/core/appurl"
	coreerrors "siren-api/core/errors"
	"siren-api/core/format"
)

// Cache backends
const (
	CacheLRU  = "lru"
	CacheTTL  = "ttl"
	CacheNone = "none"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains parse cache configuration
	Cache CacheConfig

	// Parser contains parsing configuration
	Parser ParserConfig

	// Format contains display formatting defaults
	Format FormatConfig

	// Log contains logger configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the sustained requests per second allowed per client
	RateLimit float64

	// RateBurst is the number of requests a client may burst above the rate
	RateBurst int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (lru/ttl/none)
	Type string

	// Capacity is the maximum number of cached parse results
	Capacity int

	// TTL is the lifetime of entries in the ttl backend
	TTL time.Duration
}

// ParserConfig holds parser configuration
type ParserConfig struct {
	// Strict fails parses on markup the parser does not cover
	Strict bool

	// LinkScheme is the scheme of rewritten mention and hashtag links
	LinkScheme string

	// Workers is the size of the batch parse pool
	Workers int
}

// FormatConfig holds the default display options
type FormatConfig struct {
	// TextStyle names the base text style, e.g. "body"
	TextStyle string

	// IndentUnit is the indent of one nesting level in points
	IndentUnit float64
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cacheTTL, err := getEnvAsDurationOrDefault("CACHE_TTL", 10*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsFloatOrDefault("RATE_LIMIT", 20),
			RateBurst: getEnvAsIntOrDefault("RATE_BURST", 40),
		},
		Cache: CacheConfig{
			Type:     strings.ToLower(getEnvOrDefault("CACHE_TYPE", CacheLRU)),
			Capacity: getEnvAsIntOrDefault("CACHE_CAPACITY", 1024),
			TTL:      cacheTTL,
		},
		Parser: ParserConfig{
			Strict:     getEnvAsBoolOrDefault("PARSER_STRICT", false),
			LinkScheme: getEnvOrDefault("LINK_SCHEME", appurl.DefaultScheme),
			Workers:    getEnvAsIntOrDefault("PARSER_WORKERS", 8),
		},
		Format: FormatConfig{
			TextStyle:  getEnvOrDefault("FORMAT_TEXT_STYLE", format.Body.Name),
			IndentUnit: getEnvAsFloatOrDefault("FORMAT_INDENT_UNIT", format.Body.Size),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("90s") or plain seconds
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return &coreerrors.ValidationError{Field: "PORT", Message: "port cannot be empty"}
	}

	if c.Server.RateLimit <= 0 {
		return &coreerrors.ValidationError{Field: "RATE_LIMIT", Message: "rate limit must be positive"}
	}

	if c.Server.RateBurst < 1 {
		return &coreerrors.ValidationError{Field: "RATE_BURST", Message: "rate burst must be at least 1"}
	}

	switch c.Cache.Type {
	case CacheLRU, CacheTTL, CacheNone:
	default:
		return &coreerrors.ValidationError{Field: "CACHE_TYPE", Message: "cache type must be 'lru', 'ttl' or 'none'"}
	}

	if c.Cache.Type != CacheNone && c.Cache.Capacity < 1 {
		return &coreerrors.ValidationError{Field: "CACHE_CAPACITY", Message: "cache capacity must be at least 1"}
	}

	if c.Cache.Type == CacheTTL && c.Cache.TTL < time.Second {
		return &coreerrors.ValidationError{Field: "CACHE_TTL", Message: "cache ttl must be at least 1 second"}
	}

	if err := appurl.ValidateScheme(c.Parser.LinkScheme); err != nil {
		return &coreerrors.ValidationError{Field: "LINK_SCHEME", Message: err.Error()}
	}

	if c.Parser.Workers < 1 {
		return &coreerrors.ValidationError{Field: "PARSER_WORKERS", Message: "parser workers must be at least 1"}
	}

	if _, ok := format.TextStyleNamed(c.Format.TextStyle); !ok {
		return &coreerrors.ValidationError{
			Field:   "FORMAT_TEXT_STYLE",
			Message: fmt.Sprintf("unknown text style %q, want one of %s", c.Format.TextStyle, strings.Join(format.TextStyleNames(), ", ")),
		}
	}

	if c.Format.IndentUnit < 0 {
		return &coreerrors.ValidationError{Field: "FORMAT_INDENT_UNIT", Message: "indent unit cannot be negative"}
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return &coreerrors.ValidationError{Field: "LOG_FORMAT", Message: "log format must be 'json' or 'text'"}
	}

	return nil
}

// TextStyle returns the configured base text style
func (c *Config) TextStyle() format.TextStyle {
	if style, ok := format.TextStyleNamed(c.Format.TextStyle); ok {
		return style
	}
	return format.Body
}
