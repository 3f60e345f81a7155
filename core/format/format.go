// ABOUTME: Turns attributed text into display text for a base style and indent unit
// ABOUTME: Resolves fonts, paragraph indents, list markers and block separators

package format

import (
	"strconv"
	"strings"

	"siren-api/core/domain"
)

const bullet = "• "

// Format resolves text into display runs. It is pure: the same input always
// yields an equal result, and text is not modified.
func Format(text *domain.AttributedText, style TextStyle, indentUnit float64) *domain.DisplayText {
	f := formatter{
		text:   text,
		style:  style,
		unit:   indentUnit,
		marked: map[int]bool{},
	}

	runs := text.Runs()
	for i := 0; i < len(runs); {
		block := runs[i].Attrs.Block
		j := i + 1
		for j < len(runs) && runs[j].Attrs.Block == block {
			j++
		}
		f.block(runs[i:j], block)
		i = j
	}

	return f.out.Freeze()
}

type formatter struct {
	text  *domain.AttributedText
	style TextStyle
	unit  float64
	out   domain.DisplayBuilder

	// marked holds the identities of list items that already have a marker.
	marked map[int]bool
}

// block formats the runs of one block span.
func (f *formatter) block(runs []domain.Run, block *domain.BlockIntent) {
	indent := float64(block.IndentationLevel()) * f.unit
	paragraph := domain.ParagraphStyle{FirstLineHeadIndent: indent, HeadIndent: indent}

	if marker, ok := f.marker(block); ok {
		f.out.Append(marker, domain.DisplayAttributes{
			Font: blockFont(f.style, block),
			Paragraph: domain.ParagraphStyle{
				FirstLineHeadIndent: max(indent-f.unit, 0),
				HeadIndent:          indent,
			},
			QuoteLevel: runs[0].Attrs.QuoteLevel,
			ListMarker: true,
		})
	}

	thematic := block != nil && block.Kind == domain.BlockThematicBreak
	var last domain.DisplayAttributes
	for _, run := range runs {
		last = f.display(run.Attrs, paragraph)
		last.ThematicBreak = thematic
		f.out.Append(f.text.Slice(run.Start, run.End), last)
	}

	sep := f.separator(runs, block)
	if sep == "" {
		return
	}
	f.out.Append(sep, domain.DisplayAttributes{
		Font:       blockFont(f.style, block),
		Paragraph:  last.Paragraph,
		QuoteLevel: last.QuoteLevel,
	})
}

// marker returns the list marker for the first span of a list item. Only the
// innermost item is marked; enclosing items count as marked from then on.
func (f *formatter) marker(block *domain.BlockIntent) (string, bool) {
	item := block.Nearest(domain.BlockListItem)
	if item == nil || f.marked[item.Identity] {
		return "", false
	}
	for c := item; c != nil; c = c.Parent {
		if c.Kind == domain.BlockListItem {
			f.marked[c.Identity] = true
		}
	}
	if item.Parent != nil && item.Parent.Kind == domain.BlockOrderedList {
		return strconv.Itoa(item.Ordinal) + ". ", true
	}
	return bullet, true
}

// separator returns the newlines that end a block span.
func (f *formatter) separator(runs []domain.Run, block *domain.BlockIntent) string {
	if block == nil {
		return "\n\n"
	}
	switch block.Kind {
	case domain.BlockParagraph, domain.BlockHeader, domain.BlockQuote:
		return "\n\n"
	case domain.BlockListItem:
		return "\n"
	case domain.BlockCode:
		end := runs[len(runs)-1].End
		if strings.HasSuffix(f.text.Slice(runs[0].Start, end), "\n") {
			return ""
		}
		return "\n"
	}
	return ""
}

func (f *formatter) display(attrs domain.Attributes, paragraph domain.ParagraphStyle) domain.DisplayAttributes {
	font, baseline := runFont(f.style, attrs)
	return domain.DisplayAttributes{
		Font:           font,
		BaselineOffset: baseline,
		Strikethrough:  attrs.Styles.Has(domain.StyleStrikethrough),
		Underline:      attrs.Styles.Has(domain.StyleUnderline),
		Paragraph:      paragraph,
		Link:           attrs.Link,
		LinkClass:      attrs.LinkClass,
		QuoteLevel:     attrs.QuoteLevel,
		Hashtag:        attrs.Hashtag,
	}
}
