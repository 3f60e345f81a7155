// ABOUTME: Rewrites mention and hashtag links into internal application links
// ABOUTME: Falls back to '#' and '@' prefixes for servers that send no semantic classes

package links

import (
	"strings"

	"siren-api/core/appurl"
	"siren-api/core/domain"
)

// Rewriter turns mention and hashtag links into internal links.
type Rewriter struct {
	// Scheme of the internal links; appurl.DefaultScheme when empty.
	Scheme string
}

// Rewrite returns a copy of text with mention and hashtag links pointing at
// internal destinations. Links that are parts of a shortened URL keep their
// external target.
func (r Rewriter) Rewrite(text *domain.AttributedText) *domain.AttributedText {
	b := text.Edit()

	for _, link := range text.Spans(domain.KeyLink) {
		href := link.Attrs.Link
		if href == "" {
			continue
		}
		start, end := text.TrimRange(link.Start, link.End)
		if start == end {
			continue
		}
		visible := text.Slice(start, end)

		switch classOf(text, start, end, visible) {
		case domain.LinkClassHashtag:
			name := domain.NormalizeTagName(strings.TrimLeft(visible, "#"))
			if name == "" {
				// A bare "#" has no timeline to open
				break
			}
			target := appurl.TagTimeline(r.Scheme, name)
			b.Update(start, end, func(a *domain.Attributes) { a.Hashtag = name })
			b.Update(link.Start, link.End, func(a *domain.Attributes) { a.Link = "" })
			b.Update(start, end, func(a *domain.Attributes) { a.Link = target })

		case domain.LinkClassMention:
			target := appurl.Mention(r.Scheme, href)
			b.Update(link.Start, link.End, func(a *domain.Attributes) { a.Link = "" })
			b.Update(start, end, func(a *domain.Attributes) { a.Link = target })
		}
	}

	return b.Freeze()
}

// classOf returns the link class of [start, end) when one class covers the
// whole range, and otherwise guesses from the visible text.
func classOf(text *domain.AttributedText, start, end int, visible string) domain.LinkClass {
	if attrs, ok := text.Uniform(domain.KeyLinkClass, start, end); ok && attrs.LinkClass != domain.LinkClassNone {
		return attrs.LinkClass
	}
	switch {
	case strings.HasPrefix(visible, "#"):
		return domain.LinkClassHashtag
	case strings.HasPrefix(visible, "@"):
		return domain.LinkClassMention
	}
	return domain.LinkClassNone
}
