// ABOUTME: Internal application links for tag timelines and mentioned accounts
// ABOUTME: Builds and parses URLs such as feditext:timeline?tag=foo

package appurl

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultScheme is the scheme used when none is configured.
const DefaultScheme = "feditext"

// Kind is the destination of an internal link.
type Kind string

const (
	// KindTagTimeline opens the timeline of a hashtag
	KindTagTimeline Kind = "timeline"
	// KindMention opens the profile of a mentioned account
	KindMention Kind = "mention"
)

// URL is a parsed internal link.
type URL struct {
	Scheme string
	Kind   Kind
	// Tag is the normalized hashtag name for KindTagTimeline.
	Tag string
	// Target is the original profile URL for KindMention.
	Target string
}

// TagTimeline returns the internal link of a hashtag timeline.
func TagTimeline(scheme, tag string) string {
	return URL{Scheme: scheme, Kind: KindTagTimeline, Tag: tag}.String()
}

// Mention returns the internal link of the account at target.
func Mention(scheme, target string) string {
	return URL{Scheme: scheme, Kind: KindMention, Target: target}.String()
}

// String renders the link. Query values escape only the characters that
// would break the query itself, so embedded URLs stay readable.
func (u URL) String() string {
	scheme := u.Scheme
	if scheme == "" {
		scheme = DefaultScheme
	}
	switch u.Kind {
	case KindTagTimeline:
		return scheme + ":" + string(KindTagTimeline) + "?tag=" + escape(u.Tag)
	case KindMention:
		return scheme + ":" + string(KindMention) + "?url=" + escape(u.Target)
	}
	return scheme + ":" + string(u.Kind)
}

// Parse reads back a link produced by String. It fails when raw uses another
// scheme or an unknown kind.
func Parse(scheme, raw string) (URL, error) {
	if scheme == "" {
		scheme = DefaultScheme
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return URL{}, fmt.Errorf("parse internal link: %w", err)
	}
	if parsed.Scheme != scheme {
		return URL{}, fmt.Errorf("parse internal link: scheme %q, want %q", parsed.Scheme, scheme)
	}
	query, err := url.ParseQuery(parsed.RawQuery)
	if err != nil {
		return URL{}, fmt.Errorf("parse internal link: %w", err)
	}

	u := URL{Scheme: scheme, Kind: Kind(parsed.Opaque)}
	switch u.Kind {
	case KindTagTimeline:
		u.Tag = query.Get("tag")
		if u.Tag == "" {
			return URL{}, fmt.Errorf("parse internal link: missing tag")
		}
	case KindMention:
		u.Target = query.Get("url")
		if u.Target == "" {
			return URL{}, fmt.Errorf("parse internal link: missing url")
		}
	default:
		return URL{}, fmt.Errorf("parse internal link: unknown kind %q", parsed.Opaque)
	}
	return u, nil
}

// escape percent-encodes s for use as a query value.
func escape(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&15])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func shouldEscape(c byte) bool {
	switch c {
	case '%', '&', '=', '+', '#', ';', ' ':
		return true
	}
	return c < 0x20 || c >= 0x7f
}

// ValidateScheme checks that scheme can prefix internal links. Upper case
// letters are rejected since parsing lowercases schemes.
func ValidateScheme(scheme string) error {
	if scheme == "" {
		return fmt.Errorf("scheme cannot be empty")
	}
	for i, c := range scheme {
		switch {
		case c >= 'a' && c <= 'z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return fmt.Errorf("invalid character %q in scheme %q", c, scheme)
		}
	}
	return nil
}
