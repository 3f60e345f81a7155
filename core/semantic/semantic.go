// ABOUTME: Maps the CSS classes federated servers put on links to typed link classes
// ABOUTME: Also stamps the blockquote depth of every run as its quote level

package semantic

import "siren-api/core/domain"

// MapClasses returns a copy of text with LinkClass set on classified link
// ranges and QuoteLevel set on runs inside block quotes.
//
// Each link span is classified separately, one class sub-span at a time, so
// two adjacent links never merge into one decision. Whitespace at the edges
// of a sub-span is excluded from the classified range.
func MapClasses(text *domain.AttributedText) *domain.AttributedText {
	b := text.Edit()

	for _, link := range text.Spans(domain.KeyLink) {
		if link.Attrs.Link == "" {
			continue
		}
		prevEllipsis := false
		for _, span := range text.SpansIn(domain.KeyClasses, link.Start, link.End) {
			start, end := text.TrimRange(span.Start, span.End)
			if start == end {
				prevEllipsis = false
				continue
			}
			class := Classify(span.Attrs.Classes, prevEllipsis)
			prevEllipsis = class == domain.LinkClassEllipsis
			if class != domain.LinkClassNone {
				b.Update(start, end, func(a *domain.Attributes) { a.LinkClass = class })
			}
		}
	}

	for _, span := range text.Spans(domain.KeyBlock) {
		if level := span.Attrs.Block.QuoteLevel(); level > 0 {
			b.Update(span.Start, span.End, func(a *domain.Attributes) { a.QuoteLevel = level })
		}
	}

	return b.Freeze()
}

// Classify derives the link class of one class sub-span. Hashtag wins over
// mention, mention over ellipsis, ellipsis over invisible. An invisible span
// right after an ellipsis span is the hidden tail of a shortened URL.
func Classify(classes domain.SirenClass, afterEllipsis bool) domain.LinkClass {
	switch {
	case classes.Has(domain.ClassHashtag):
		return domain.LinkClassHashtag
	case classes.Has(domain.ClassMention):
		return domain.LinkClassMention
	case classes.Has(domain.ClassEllipsis):
		return domain.LinkClassEllipsis
	case classes.Has(domain.ClassInvisible):
		if afterEllipsis {
			return domain.LinkClassTrailingInvisible
		}
		return domain.LinkClassLeadingInvisible
	}
	return domain.LinkClassNone
}
