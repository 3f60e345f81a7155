package semantic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siren-api/core/domain"
	"siren-api/core/parser"
	"siren-api/core/sanitize"
)

func mapped(t *testing.T, raw string) *domain.AttributedText {
	t.Helper()
	body, err := sanitize.Sanitize(raw)
	require.NoError(t, err)
	text, err := parser.Parse(body, parser.Options{})
	require.NoError(t, err)
	return MapClasses(text)
}

func attrsOf(t *testing.T, text *domain.AttributedText, sub string) domain.Attributes {
	t.Helper()
	i := strings.Index(text.String(), sub)
	require.GreaterOrEqual(t, i, 0, "%q not found in %q", sub, text.String())
	attrs, _ := text.AttributesAt(i)
	return attrs
}

const shortenedURL = `<a href="https://example.org/path/to/a/long/page" rel="nofollow noopener noreferrer">` +
	`<span class="invisible">https://</span>` +
	`<span class="ellipsis">example.org/path/to/a</span>` +
	`<span class="invisible">/long/page</span></a>`

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		classes       domain.SirenClass
		afterEllipsis bool
		want          domain.LinkClass
	}{
		{"none", 0, false, domain.LinkClassNone},
		{"hashtag beats mention", domain.ClassMention | domain.ClassHashtag, false, domain.LinkClassHashtag},
		{"mention beats ellipsis", domain.ClassMention | domain.ClassEllipsis, false, domain.LinkClassMention},
		{"ellipsis beats invisible", domain.ClassEllipsis | domain.ClassInvisible, true, domain.LinkClassEllipsis},
		{"leading invisible", domain.ClassInvisible, false, domain.LinkClassLeadingInvisible},
		{"trailing invisible", domain.ClassInvisible, true, domain.LinkClassTrailingInvisible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.classes, tt.afterEllipsis))
		})
	}
}

func TestMapClasses_ShortenedURL(t *testing.T) {
	text := mapped(t, "<p>"+shortenedURL+"</p>")

	assert.Equal(t, "https://example.org/path/to/a/long/page", text.String())
	assert.Equal(t, domain.LinkClassLeadingInvisible, attrsOf(t, text, "https://").LinkClass)
	assert.Equal(t, domain.LinkClassEllipsis, attrsOf(t, text, "example.org").LinkClass)
	assert.Equal(t, domain.LinkClassTrailingInvisible, attrsOf(t, text, "/long/page").LinkClass)
}

func TestMapClasses_AdjacencyStopsAtLinkBoundary(t *testing.T) {
	raw := `<p><a href="https://a.example/x"><span class="ellipsis">a.example/x</span></a>` +
		`<a href="https://b.example/y"><span class="invisible">hidden</span></a></p>`
	text := mapped(t, raw)

	assert.Equal(t, domain.LinkClassEllipsis, attrsOf(t, text, "a.example").LinkClass)
	assert.Equal(t, domain.LinkClassLeadingInvisible, attrsOf(t, text, "hidden").LinkClass)
}

func TestMapClasses_UnclassifiedSpanResetsAdjacency(t *testing.T) {
	raw := `<p><a href="https://a.example/x"><span class="ellipsis">shown</span>plain<span class="invisible">tail</span></a></p>`
	text := mapped(t, raw)

	assert.Equal(t, domain.LinkClassNone, attrsOf(t, text, "plain").LinkClass)
	assert.Equal(t, domain.LinkClassLeadingInvisible, attrsOf(t, text, "tail").LinkClass)
}

func TestMapClasses_WhitespaceIsNotClassified(t *testing.T) {
	text := mapped(t, `<p><a href="https://example.org/@bob" class="mention"> @bob </a></p>`)

	assert.Equal(t, " @bob ", text.String())
	assert.Equal(t, domain.LinkClassNone, attrsOf(t, text, " ").LinkClass)
	assert.Equal(t, domain.LinkClassMention, attrsOf(t, text, "@bob").LinkClass)
	last, _ := text.AttributesAt(text.Len() - 1)
	assert.Equal(t, domain.LinkClassNone, last.LinkClass)
}

func TestMapClasses_ClassesWithoutLink(t *testing.T) {
	text := mapped(t, `<p><span class="mention">@nobody</span></p>`)

	assert.Equal(t, domain.LinkClassNone, attrsOf(t, text, "@nobody").LinkClass)
}

func TestMapClasses_QuoteLevel(t *testing.T) {
	raw := `<blockquote><p>one</p><blockquote><blockquote><p>three</p></blockquote></blockquote></blockquote><p>none</p>`
	text := mapped(t, raw)

	assert.Equal(t, 1, attrsOf(t, text, "one").QuoteLevel)
	assert.Equal(t, 3, attrsOf(t, text, "three").QuoteLevel)
	assert.Equal(t, 0, attrsOf(t, text, "none").QuoteLevel)
}

func TestMapClasses_KeepsInput(t *testing.T) {
	body, err := sanitize.Sanitize("<p>" + shortenedURL + "</p>")
	require.NoError(t, err)
	text, err := parser.Parse(body, parser.Options{})
	require.NoError(t, err)

	_ = MapClasses(text)

	for _, run := range text.Runs() {
		assert.Equal(t, domain.LinkClassNone, run.Attrs.LinkClass)
	}
}
