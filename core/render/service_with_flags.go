// ABOUTME: Render service entry points that honor feature flags from the context
// ABOUTME: Flags switch strict parsing, the parse cache and URL presentation per request

package render

import (
	"context"

	"siren-api/core/domain"
	"siren-api/pkg/featureflags"
)

// ParseWithFlags parses raw with strictness and caching decided by the
// feature flags in ctx.
func (s *Service) ParseWithFlags(ctx context.Context, raw string) *domain.AttributedText {
	cfg := s.Config()
	if featureflags.IsEnabled(ctx, featureflags.StrictParsing) {
		cfg.Strict = true
	}

	useCache := featureflags.IsEnabled(ctx, featureflags.CacheEnabled)
	if !useCache {
		s.logger.Debug("Parse cache disabled by feature flag", nil)
	}
	return s.parse(cfg, raw, useCache)
}

// RenderWithFlags is Render with flags from ctx. Presentation of shortened
// URLs only happens when both opts and the present_urls flag ask for it.
func (s *Service) RenderWithFlags(ctx context.Context, raw string, opts RenderOptions) *domain.DisplayText {
	opts.Present = opts.Present && featureflags.IsEnabled(ctx, featureflags.PresentURLs)
	return s.render(s.ParseWithFlags(ctx, raw), opts)
}
