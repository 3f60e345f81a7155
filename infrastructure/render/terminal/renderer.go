// ABOUTME: Terminal preview of formatted post text using lipgloss styles
// ABOUTME: Draws indents, quote bars, list markers and rules; ANSI styling is optional

package terminal

import (
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"siren-api/core/domain"
)

const (
	quoteBar  = "│ "
	ruleWidth = 40
)

// Renderer turns display text into terminal lines.
type Renderer struct {
	// ANSI enables colors and text attributes.
	ANSI bool
	// IndentUnit is the paragraph indent that maps to two columns.
	IndentUnit float64

	lip *lipgloss.Renderer
}

// New creates a renderer writing styles for w. With ansi set the color
// profile is forced so output stays styled when w is not a TTY.
func New(w io.Writer, ansi bool, indentUnit float64) *Renderer {
	lip := lipgloss.NewRenderer(w, termenv.WithProfile(termenv.ANSI256))
	if ansi {
		lip.SetColorProfile(termenv.ANSI256)
	} else {
		lip.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{ANSI: ansi, IndentUnit: indentUnit, lip: lip}
}

// Render returns the text as terminal lines.
func (r *Renderer) Render(text *domain.DisplayText) string {
	var out strings.Builder
	lineStart := true

	for _, run := range text.Runs() {
		chunk := text.RunText(run)
		if run.Attrs.ThematicBreak {
			r.prefix(&out, run.Attrs)
			out.WriteString(r.style(run.Attrs).Render(strings.Repeat("─", ruleWidth)))
			if strings.HasSuffix(chunk, "\n") {
				out.WriteString("\n")
			}
			lineStart = true
			continue
		}

		lines := strings.Split(chunk, "\n")
		for i, line := range lines {
			if i > 0 {
				out.WriteString("\n")
				lineStart = true
			}
			if line == "" {
				continue
			}
			if lineStart {
				r.prefix(&out, run.Attrs)
				lineStart = false
			}
			out.WriteString(r.style(run.Attrs).Render(line))
		}
	}
	return out.String()
}

// prefix writes quote bars and the indent of a new line.
func (r *Renderer) prefix(out *strings.Builder, attrs domain.DisplayAttributes) {
	out.WriteString(strings.Repeat(r.bar(), attrs.QuoteLevel))
	indent := attrs.Paragraph.HeadIndent
	if attrs.ListMarker {
		indent = attrs.Paragraph.FirstLineHeadIndent
	}
	// Quote bars already take the columns of their indent level.
	out.WriteString(strings.Repeat(" ", max(r.columns(indent)-2*attrs.QuoteLevel, 0)))
}

func (r *Renderer) columns(indent float64) int {
	if r.IndentUnit <= 0 || indent <= 0 {
		return 0
	}
	return int(math.Round(indent/r.IndentUnit)) * 2
}

func (r *Renderer) bar() string {
	return r.lip.NewStyle().Faint(r.ANSI).Render(quoteBar)
}

func (r *Renderer) style(attrs domain.DisplayAttributes) lipgloss.Style {
	s := r.lip.NewStyle()
	if !r.ANSI {
		return s
	}

	s = s.Bold(attrs.Font.Bold).
		Italic(attrs.Font.Italic).
		Strikethrough(attrs.Strikethrough).
		Underline(attrs.Underline)

	switch {
	case attrs.LinkClass == domain.LinkClassMention:
		s = s.Foreground(lipgloss.Color("13"))
	case attrs.LinkClass == domain.LinkClassHashtag:
		s = s.Foreground(lipgloss.Color("14"))
	case attrs.Link != "":
		s = s.Foreground(lipgloss.Color("12")).Underline(true)
	case attrs.Font.Monospace:
		s = s.Foreground(lipgloss.Color("11"))
	case attrs.ListMarker:
		s = s.Faint(true)
	case attrs.ThematicBreak:
		s = s.Faint(true)
	}
	return s
}
