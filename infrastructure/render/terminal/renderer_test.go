package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"siren-api/core/domain"
	"siren-api/core/format"
	"siren-api/core/interfaces"
	"siren-api/core/render"
)

func display(raw string) *domain.DisplayText {
	svc := render.NewService(interfaces.Dependencies{})
	return svc.Render(raw, render.DefaultRenderOptions())
}

func TestRenderer_Plain(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "paragraphs",
			raw:  "<p>one</p><p>two</p>",
			want: "one\n\ntwo",
		},
		{
			name: "bullet list",
			raw:  "<p>hello</p><ul><li>x</li><li>y</li></ul>",
			want: "hello\n\n• x\n• y",
		},
		{
			name: "ordered list",
			raw:  `<ol start="3"><li>a</li><li>b</li></ol>`,
			want: "3. a\n4. b",
		},
		{
			name: "nested list indents",
			raw:  "<ul><li>a<ul><li>b</li></ul></li></ul>",
			want: "• a\n  • b",
		},
		{
			name: "quote",
			raw:  "<blockquote><p>quoted</p></blockquote>",
			want: "│ quoted",
		},
		{
			name: "nested quote",
			raw:  "<blockquote><blockquote><p>deep</p></blockquote></blockquote>",
			want: "│ │ deep",
		},
	}

	r := New(&bytes.Buffer{}, false, format.Body.Size)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Render(display(tt.raw)); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderer_ThematicBreak(t *testing.T) {
	r := New(&bytes.Buffer{}, false, format.Body.Size)

	got := r.Render(display("<p>a</p><hr><p>b</p>"))

	assert.Contains(t, got, strings.Repeat("─", ruleWidth))
	assert.True(t, strings.HasPrefix(got, "a\n"))
	assert.True(t, strings.HasSuffix(got, "b"))
}

func TestRenderer_ANSI(t *testing.T) {
	plain := New(&bytes.Buffer{}, false, format.Body.Size)
	styled := New(&bytes.Buffer{}, true, format.Body.Size)
	text := display("<p><b>bold</b> and <code>code</code></p>")

	assert.NotContains(t, plain.Render(text), "\x1b[")
	assert.Contains(t, styled.Render(text), "\x1b[")
}

func TestRenderer_Empty(t *testing.T) {
	r := New(&bytes.Buffer{}, true, format.Body.Size)

	assert.Equal(t, "", r.Render(nil))
}

func TestRenderer_Columns(t *testing.T) {
	r := &Renderer{IndentUnit: 10}

	tests := []struct {
		indent float64
		want   int
	}{
		{0, 0},
		{10, 2},
		{20, 4},
		{-5, 0},
	}
	for _, tt := range tests {
		if got := r.columns(tt.indent); got != tt.want {
			t.Errorf("columns(%v) = %d, want %d", tt.indent, got, tt.want)
		}
	}
}
