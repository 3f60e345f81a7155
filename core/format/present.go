package format

import (
	"unicode"

	"siren-api/core/domain"
)

// Ellipsis replaces the hidden tail of a shortened URL.
const Ellipsis = "…"

// Present prepares display text for reading: the hidden scheme of shortened
// URLs is dropped, each hidden tail becomes an ellipsis, and trailing
// whitespace left by block separators is removed.
func Present(text *domain.DisplayText) *domain.DisplayText {
	var b domain.DisplayBuilder

	runs := text.Runs()
	for i := 0; i < len(runs); i++ {
		run := runs[i]
		switch run.Attrs.LinkClass {
		case domain.LinkClassLeadingInvisible:
			continue
		case domain.LinkClassTrailingInvisible:
			for i+1 < len(runs) && sameTail(run, runs[i+1]) {
				i++
			}
			b.Append(Ellipsis, run.Attrs)
		default:
			b.Append(text.RunText(run), run.Attrs)
		}
	}

	b.TrimTrailing(unicode.IsSpace)
	return b.Freeze()
}

// sameTail reports whether next continues the hidden tail started by run.
func sameTail(run, next domain.DisplayRun) bool {
	return next.Attrs.LinkClass == domain.LinkClassTrailingInvisible && next.Attrs.Link == run.Attrs.Link
}
