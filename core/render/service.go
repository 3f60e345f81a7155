// ABOUTME: Render service runs the parsing pipeline behind a parse cache
// ABOUTME: Provides business logic for parse and render operations independent of HTTP layer

package render

import (
	"encoding/hex"
	"fmt"
	"io"
	"sync"

	"github.com/zeebo/blake3"

	"siren-api/core/appurl"
	"siren-api/core/domain"
	"siren-api/core/format"
	"siren-api/core/interfaces"
	"siren-api/core/links"
	"siren-api/core/parser"
	"siren-api/core/sanitize"
	"siren-api/core/semantic"
)

// Config holds the settings that change parse results.
type Config struct {
	// Strict fails parses on markup the parser does not cover.
	Strict bool
	// LinkScheme is the scheme of internal links.
	LinkScheme string
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{LinkScheme: appurl.DefaultScheme}
}

// Fingerprint identifies the configuration in cache keys.
func (c Config) Fingerprint() string {
	return fmt.Sprintf("strict=%t;scheme=%s", c.Strict, c.LinkScheme)
}

// CacheKey returns the parse cache key of raw under cfg.
func CacheKey(cfg Config, raw string) string {
	h := blake3.New()
	_, _ = io.WriteString(h, cfg.Fingerprint())
	_, _ = h.Write([]byte{0})
	_, _ = io.WriteString(h, raw)
	return hex.EncodeToString(h.Sum(nil))
}

// RenderOptions selects how parsed text is displayed.
type RenderOptions struct {
	Style      format.TextStyle
	IndentUnit float64
	// Present hides the decorative parts of shortened URLs and trims the end.
	Present bool
}

// DefaultRenderOptions renders with the body style and an indent of one body size.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Style: format.Body, IndentUnit: format.Body.Size, Present: true}
}

// Option configures a Service.
type Option func(*Service)

// WithConfig sets the parser configuration.
func WithConfig(cfg Config) Option {
	return func(s *Service) { s.cfg = cfg }
}

// WithCache sets the parse cache, overriding the one in the dependencies.
func WithCache(cache interfaces.ParseCache) Option {
	return func(s *Service) { s.cache = cache }
}

// WithLogger sets the logger, overriding the one in the dependencies.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// Service parses and renders post bodies. It is safe for concurrent use.
type Service struct {
	mu     sync.RWMutex
	cfg    Config
	cache  interfaces.ParseCache
	logger interfaces.Logger

	sanitizer *sanitize.Sanitizer
}

// NewService creates a new render service instance
func NewService(deps interfaces.Dependencies, opts ...Option) *Service {
	s := &Service{
		cfg:       DefaultConfig(),
		cache:     deps.Cache,
		logger:    deps.Logger,
		sanitizer: sanitize.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = nopLogger{}
	}
	return s
}

// Config returns the current parser configuration.
func (s *Service) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// SetConfig replaces the parser configuration. Cached results of the old
// configuration are purged when the fingerprint changes.
func (s *Service) SetConfig(cfg Config) {
	s.mu.Lock()
	changed := cfg.Fingerprint() != s.cfg.Fingerprint()
	s.cfg = cfg
	s.mu.Unlock()

	if changed && s.cache != nil {
		s.cache.Purge()
		s.logger.Info("Parser configuration changed, cache purged", map[string]interface{}{
			"strict": cfg.Strict,
			"scheme": cfg.LinkScheme,
		})
	}
}

// Parse returns the attributed text of raw. It never fails: input that cannot
// be parsed yields empty text, and that result is cached like any other.
func (s *Service) Parse(raw string) *domain.AttributedText {
	return s.parse(s.Config(), raw, true)
}

// ParseE is Parse for callers that want to know about failures. It always
// runs the pipeline; successful results are added to the cache.
func (s *Service) ParseE(raw string) (*domain.AttributedText, error) {
	cfg := s.Config()
	text, err := s.pipeline(cfg, raw)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Add(CacheKey(cfg, raw), text)
	}
	return text, nil
}

// Render parses raw and formats it for display. Formatting is not cached.
func (s *Service) Render(raw string, opts RenderOptions) *domain.DisplayText {
	return s.render(s.Parse(raw), opts)
}

// PurgeCache empties the parse cache and returns how many entries it held.
func (s *Service) PurgeCache() int {
	if s.cache == nil {
		return 0
	}
	n := s.cache.Len()
	s.cache.Purge()
	return n
}

// CacheLen returns the number of cached parse results.
func (s *Service) CacheLen() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

func (s *Service) parse(cfg Config, raw string, useCache bool) *domain.AttributedText {
	useCache = useCache && s.cache != nil

	var key string
	if useCache {
		key = CacheKey(cfg, raw)
		if text, ok := s.cache.Get(key); ok {
			return text
		}
	}

	text, err := s.pipeline(cfg, raw)
	if err != nil {
		s.logger.Warn("Failed to parse post, using empty text", map[string]interface{}{
			"error":  err.Error(),
			"bytes":  len(raw),
			"strict": cfg.Strict,
		})
		text = &domain.AttributedText{}
	}

	if useCache {
		s.cache.Add(key, text)
	}
	return text
}

func (s *Service) render(text *domain.AttributedText, opts RenderOptions) *domain.DisplayText {
	display := format.Format(text, opts.Style, opts.IndentUnit)
	if opts.Present {
		display = format.Present(display)
	}
	return display
}

// pipeline runs sanitize, parse, class mapping and link rewriting.
func (s *Service) pipeline(cfg Config, raw string) (*domain.AttributedText, error) {
	body, err := s.sanitizer.Sanitize(raw)
	if err != nil {
		return nil, err
	}

	text, err := parser.Parse(body, parser.Options{
		Strict: cfg.Strict,
		OnRecover: func(err error) {
			s.logger.Debug("Recovered from malformed markup", map[string]interface{}{
				"error": err.Error(),
			})
		},
	})
	if err != nil {
		return nil, err
	}

	text = semantic.MapClasses(text)
	return links.Rewriter{Scheme: cfg.LinkScheme}.Rewrite(text), nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
