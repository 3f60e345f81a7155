package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerrors "siren-api/core/errors"
	"siren-api/core/format"
)

var envKeys = []string{
	"PORT", "CACHE_TYPE", "CACHE_CAPACITY", "CACHE_TTL", "PARSER_STRICT",
	"LINK_SCHEME", "FORMAT_TEXT_STYLE", "FORMAT_INDENT_UNIT", "LOG_LEVEL",
	"LOG_FORMAT", "LOG_FILE", "RATE_LIMIT", "RATE_BURST", "PARSER_WORKERS",
}

// clearEnv blanks every variable LoadFromEnv reads for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, float64(20), cfg.Server.RateLimit)
	assert.Equal(t, 40, cfg.Server.RateBurst)
	assert.Equal(t, CacheLRU, cfg.Cache.Type)
	assert.Equal(t, 1024, cfg.Cache.Capacity)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.False(t, cfg.Parser.Strict)
	assert.Equal(t, "feditext", cfg.Parser.LinkScheme)
	assert.Equal(t, 8, cfg.Parser.Workers)
	assert.Equal(t, "body", cfg.Format.TextStyle)
	assert.Equal(t, format.Body.Size, cfg.Format.IndentUnit)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "", cfg.Log.File)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, cfg *Config)
	}{
		{
			name: "port",
			env:  map[string]string{"PORT": "3000"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "3000", cfg.Server.Port)
			},
		},
		{
			name: "cache type is lowercased",
			env:  map[string]string{"CACHE_TYPE": "TTL", "CACHE_CAPACITY": "50"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, CacheTTL, cfg.Cache.Type)
				assert.Equal(t, 50, cfg.Cache.Capacity)
			},
		},
		{
			name: "ttl in seconds",
			env:  map[string]string{"CACHE_TTL": "90"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
			},
		},
		{
			name: "ttl as duration",
			env:  map[string]string{"CACHE_TTL": "2h"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 2*time.Hour, cfg.Cache.TTL)
			},
		},
		{
			name: "parser",
			env:  map[string]string{"PARSER_STRICT": "true", "LINK_SCHEME": "siren"},
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Parser.Strict)
				assert.Equal(t, "siren", cfg.Parser.LinkScheme)
			},
		},
		{
			name: "invalid bool keeps default",
			env:  map[string]string{"PARSER_STRICT": "sometimes"},
			check: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.Parser.Strict)
			},
		},
		{
			name: "format",
			env:  map[string]string{"FORMAT_TEXT_STYLE": "caption1", "FORMAT_INDENT_UNIT": "12.5"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "caption1", cfg.Format.TextStyle)
				assert.Equal(t, 12.5, cfg.Format.IndentUnit)
				assert.Equal(t, format.Caption1, cfg.TextStyle())
			},
		},
		{
			name: "rate limit",
			env:  map[string]string{"RATE_LIMIT": "2.5", "RATE_BURST": "5"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 2.5, cfg.Server.RateLimit)
				assert.Equal(t, 5, cfg.Server.RateBurst)
			},
		},
		{
			name: "invalid int keeps default",
			env:  map[string]string{"RATE_BURST": "many"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 40, cfg.Server.RateBurst)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadFromEnv_InvalidTTL(t *testing.T) {
	clearEnv(t)
	t.Setenv("CACHE_TTL", "soon")

	_, err := LoadFromEnv()

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{"valid", func(*Config) {}, ""},
		{"empty port", func(c *Config) { c.Server.Port = "" }, "PORT"},
		{"zero rate", func(c *Config) { c.Server.RateLimit = 0 }, "RATE_LIMIT"},
		{"zero burst", func(c *Config) { c.Server.RateBurst = 0 }, "RATE_BURST"},
		{"unknown cache", func(c *Config) { c.Cache.Type = "redis" }, "CACHE_TYPE"},
		{"zero capacity", func(c *Config) { c.Cache.Capacity = 0 }, "CACHE_CAPACITY"},
		{"zero capacity without cache", func(c *Config) { c.Cache.Type = CacheNone; c.Cache.Capacity = 0 }, ""},
		{"short ttl", func(c *Config) { c.Cache.Type = CacheTTL; c.Cache.TTL = time.Millisecond }, "CACHE_TTL"},
		{"bad scheme", func(c *Config) { c.Parser.LinkScheme = "no scheme" }, "LINK_SCHEME"},
		{"no workers", func(c *Config) { c.Parser.Workers = 0 }, "PARSER_WORKERS"},
		{"unknown style", func(c *Config) { c.Format.TextStyle = "huge" }, "FORMAT_TEXT_STYLE"},
		{"negative indent", func(c *Config) { c.Format.IndentUnit = -1 }, "FORMAT_INDENT_UNIT"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg, err := LoadFromEnv()
			require.NoError(t, err)
			tt.modify(cfg)

			err = cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *coreerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}
