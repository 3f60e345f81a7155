// ABOUTME: DisplayText is the formatter output with concrete fonts, indents and markers
// ABOUTME: Consumed read-only by text renderers (terminal preview, API clients)

package domain

import "strings"

// Font is a resolved font request.
type Font struct {
	Family    string
	Size      float64
	Bold      bool
	Italic    bool
	Monospace bool
}

// ParagraphStyle holds the indents of the paragraph a run belongs to.
type ParagraphStyle struct {
	FirstLineHeadIndent float64
	HeadIndent          float64
}

// DisplayAttributes is the attribute set of one display run.
type DisplayAttributes struct {
	Font           Font
	BaselineOffset float64
	Strikethrough  bool
	Underline      bool
	Paragraph      ParagraphStyle
	Link           string
	LinkClass      LinkClass
	QuoteLevel     int
	Hashtag        string
	// ListMarker is set on the synthesized "1. " or "• " prefix of a list item.
	ListMarker bool
	// ThematicBreak asks the renderer to draw a horizontal rule for the run.
	ThematicBreak bool
}

// DisplayRun is a range of a display text. Start and End are byte offsets.
type DisplayRun struct {
	Start int
	End   int
	Attrs DisplayAttributes
}

// DisplayText is an immutable formatted text. A nil *DisplayText is empty.
type DisplayText struct {
	text string
	runs []DisplayRun
}

// String returns the characters of the text.
func (d *DisplayText) String() string {
	if d == nil {
		return ""
	}
	return d.text
}

// Len returns the length in bytes.
func (d *DisplayText) Len() int {
	return len(d.String())
}

// Runs returns a copy of the runs.
func (d *DisplayText) Runs() []DisplayRun {
	if d == nil {
		return nil
	}
	return append([]DisplayRun(nil), d.runs...)
}

// RunText returns the characters covered by r.
func (d *DisplayText) RunText(r DisplayRun) string {
	return d.String()[r.Start:r.End]
}

// Equal reports whether both texts are identical.
func (d *DisplayText) Equal(o *DisplayText) bool {
	if d.String() != o.String() {
		return false
	}
	a, b := d.Runs(), o.Runs()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// DisplayBuilder accumulates a display text. The zero value is ready to use.
type DisplayBuilder struct {
	segs segments[DisplayAttributes]
}

// Append adds text with attrs at the end.
func (b *DisplayBuilder) Append(text string, attrs DisplayAttributes) {
	b.segs = b.segs.add(text, attrs)
}

// TrimTrailing removes trailing characters matched by cut from the end of the text.
func (b *DisplayBuilder) TrimTrailing(cut func(rune) bool) {
	for n := len(b.segs); n > 0; n = len(b.segs) {
		last := &b.segs[n-1]
		last.text = strings.TrimRightFunc(last.text, cut)
		if last.text != "" {
			return
		}
		b.segs = b.segs[:n-1]
	}
}

// Len returns the current length in bytes.
func (b *DisplayBuilder) Len() int {
	return b.segs.len()
}

// Freeze returns the immutable text.
func (b *DisplayBuilder) Freeze() *DisplayText {
	var sb strings.Builder
	runs := make([]DisplayRun, 0, len(b.segs))
	for _, seg := range b.segs {
		start := sb.Len()
		sb.WriteString(seg.text)
		runs = append(runs, DisplayRun{Start: start, End: sb.Len(), Attrs: seg.attrs})
	}
	return &DisplayText{text: sb.String(), runs: runs}
}
