// ABOUTME: AttributedText is the immutable parse result: a string plus attributed runs
// ABOUTME: Builder appends runs and applies range updates for the semantic passes

package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Attributes is the attribute set of one run. Zero values mean "absent".
type Attributes struct {
	Inline     InlineIntent
	Styles     StyleFlags
	Scripts    ScriptChain
	Link       string
	Block      *BlockIntent
	Classes    SirenClass
	LinkClass  LinkClass
	QuoteLevel int
	Hashtag    string
}

// AttributeKey names one field of Attributes.
type AttributeKey uint8

const (
	KeyInline AttributeKey = iota + 1
	KeyStyles
	KeyScripts
	KeyLink
	KeyBlock
	KeyClasses
	KeyLinkClass
	KeyQuoteLevel
	KeyHashtag
)

// Has reports whether the attribute named by key is present.
func (a Attributes) Has(key AttributeKey) bool {
	switch key {
	case KeyInline:
		return a.Inline != 0
	case KeyStyles:
		return a.Styles != 0
	case KeyScripts:
		return a.Scripts != 0
	case KeyLink:
		return a.Link != ""
	case KeyBlock:
		return a.Block != nil
	case KeyClasses:
		return a.Classes != 0
	case KeyLinkClass:
		return a.LinkClass != LinkClassNone
	case KeyQuoteLevel:
		return a.QuoteLevel > 0
	case KeyHashtag:
		return a.Hashtag != ""
	}
	return false
}

// Same reports whether a and b hold the same value for key.
// Block intents compare by identity, so two sibling paragraphs differ.
func (a Attributes) Same(b Attributes, key AttributeKey) bool {
	switch key {
	case KeyInline:
		return a.Inline == b.Inline
	case KeyStyles:
		return a.Styles == b.Styles
	case KeyScripts:
		return a.Scripts == b.Scripts
	case KeyLink:
		return a.Link == b.Link
	case KeyBlock:
		return a.Block == b.Block
	case KeyClasses:
		return a.Classes == b.Classes
	case KeyLinkClass:
		return a.LinkClass == b.LinkClass
	case KeyQuoteLevel:
		return a.QuoteLevel == b.QuoteLevel
	case KeyHashtag:
		return a.Hashtag == b.Hashtag
	}
	return false
}

// Equal compares attributes, following block intent chains structurally.
func (a Attributes) Equal(b Attributes) bool {
	blockA, blockB := a.Block, b.Block
	a.Block, b.Block = nil, nil
	return a == b && blockA.Equal(blockB)
}

// Run is a range of an attributed text. Start and End are byte offsets.
type Run struct {
	Start int
	End   int
	Attrs Attributes
}

// AttributedText is an immutable string with attributed runs. Runs are
// contiguous, cover the whole string, and adjacent runs differ.
// A nil *AttributedText behaves as empty text.
type AttributedText struct {
	text string
	runs []Run
}

// NewAttributedText returns text with a single run, or empty text when text is "".
func NewAttributedText(text string, attrs Attributes) *AttributedText {
	var b Builder
	b.Append(text, attrs)
	return b.Freeze()
}

// String returns the characters of the text.
func (t *AttributedText) String() string {
	if t == nil {
		return ""
	}
	return t.text
}

// Len returns the length of the text in bytes.
func (t *AttributedText) Len() int {
	if t == nil {
		return 0
	}
	return len(t.text)
}

// Runs returns a copy of the runs.
func (t *AttributedText) Runs() []Run {
	if t == nil {
		return nil
	}
	return append([]Run(nil), t.runs...)
}

// Slice returns the characters in [start, end).
func (t *AttributedText) Slice(start, end int) string {
	return t.String()[start:end]
}

// AttributesAt returns the attributes at byte offset pos.
func (t *AttributedText) AttributesAt(pos int) (Attributes, bool) {
	if t == nil {
		return Attributes{}, false
	}
	for _, r := range t.runs {
		if pos >= r.Start && pos < r.End {
			return r.Attrs, true
		}
	}
	return Attributes{}, false
}

// Spans returns the maximal ranges over which the value for key is constant.
// Only the key's field of each span's Attrs is meaningful for the whole span;
// the other fields are those of the span's first run.
func (t *AttributedText) Spans(key AttributeKey) []Run {
	if t == nil {
		return nil
	}
	var spans []Run
	for _, r := range t.runs {
		if n := len(spans); n > 0 && spans[n-1].Attrs.Same(r.Attrs, key) {
			spans[n-1].End = r.End
			continue
		}
		spans = append(spans, r)
	}
	return spans
}

// SpansIn is like Spans but clipped to [start, end).
func (t *AttributedText) SpansIn(key AttributeKey, start, end int) []Run {
	var spans []Run
	for _, r := range t.Runs() {
		if r.End <= start || r.Start >= end {
			continue
		}
		r.Start, r.End = max(r.Start, start), min(r.End, end)
		if n := len(spans); n > 0 && spans[n-1].Attrs.Same(r.Attrs, key) {
			spans[n-1].End = r.End
			continue
		}
		spans = append(spans, r)
	}
	return spans
}

// Uniform returns the attributes of [start, end) if key has one value over the
// whole range.
func (t *AttributedText) Uniform(key AttributeKey, start, end int) (Attributes, bool) {
	spans := t.SpansIn(key, start, end)
	if len(spans) != 1 {
		return Attributes{}, false
	}
	return spans[0].Attrs, true
}

// TrimRange narrows [start, end) until it neither starts nor ends with
// Unicode whitespace. An all-whitespace range comes back empty (start == end).
func (t *AttributedText) TrimRange(start, end int) (int, int) {
	s := t.String()
	for start < end {
		r, size := utf8.DecodeRuneInString(s[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		start += size
	}
	for start < end {
		r, size := utf8.DecodeLastRuneInString(s[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= size
	}
	return start, end
}

// Link is a navigable range, as consumers building mention and hashtag
// affordances see it.
type Link struct {
	Start   int
	End     int
	Text    string
	Target  string
	Class   LinkClass
	Hashtag string
}

// Links returns every link span in source order.
func (t *AttributedText) Links() []Link {
	var links []Link
	for _, span := range t.Spans(KeyLink) {
		if span.Attrs.Link == "" {
			continue
		}
		link := Link{
			Start:  span.Start,
			End:    span.End,
			Text:   t.Slice(span.Start, span.End),
			Target: span.Attrs.Link,
		}
		if attrs, ok := t.Uniform(KeyLinkClass, span.Start, span.End); ok {
			link.Class = attrs.LinkClass
		}
		if attrs, ok := t.Uniform(KeyHashtag, span.Start, span.End); ok {
			link.Hashtag = attrs.Hashtag
		}
		links = append(links, link)
	}
	return links
}

// Equal reports whether both texts have the same characters and runs.
func (t *AttributedText) Equal(o *AttributedText) bool {
	if t.String() != o.String() {
		return false
	}
	a, b := t.Runs(), o.Runs()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Start != b[i].Start || a[i].End != b[i].End || !a[i].Attrs.Equal(b[i].Attrs) {
			return false
		}
	}
	return true
}

// Edit returns a builder initialized with a copy of t.
func (t *AttributedText) Edit() *Builder {
	b := &Builder{}
	for _, r := range t.Runs() {
		b.segs = b.segs.add(t.text[r.Start:r.End], r.Attrs)
	}
	return b
}

// Builder accumulates an attributed text. The zero value is ready to use.
type Builder struct {
	segs segments[Attributes]
}

// Append adds text with attrs at the end, merging with the previous run when equal.
func (b *Builder) Append(text string, attrs Attributes) {
	b.segs = b.segs.add(text, attrs)
}

// Update applies fn to the attributes of every run intersecting [start, end).
func (b *Builder) Update(start, end int, fn func(*Attributes)) {
	b.segs = b.segs.update(start, end, fn)
}

// Len returns the current length in bytes.
func (b *Builder) Len() int {
	return b.segs.len()
}

// Freeze returns the immutable text. The builder may keep being used.
func (b *Builder) Freeze() *AttributedText {
	var sb strings.Builder
	runs := make([]Run, 0, len(b.segs))
	for _, seg := range b.segs {
		start := sb.Len()
		sb.WriteString(seg.text)
		runs = append(runs, Run{Start: start, End: sb.Len(), Attrs: seg.attrs})
	}
	return &AttributedText{text: sb.String(), runs: runs}
}
