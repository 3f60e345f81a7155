package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSirenClasses(t *testing.T) {
	tests := []struct {
		name string
		attr string
		want SirenClass
	}{
		{"empty", "", 0},
		{"mention with microformat", "u-url mention", ClassMention},
		{"mention and hashtag", "mention hashtag", ClassMention | ClassHashtag},
		{"invisible", "invisible", ClassInvisible},
		{"extra whitespace", "  ellipsis\t", ClassEllipsis},
		{"unknown only", "h-card", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSirenClasses(tt.attr))
		})
	}
}

func TestScriptChain(t *testing.T) {
	var chain ScriptChain
	assert.Equal(t, 0, chain.Len())
	assert.Nil(t, chain.Levels())

	chain = chain.Push(ScriptSmall).Push(ScriptSuperscript).Push(ScriptSuperscript)
	assert.Equal(t, 3, chain.Len())
	assert.Equal(t, []Script{ScriptSmall, ScriptSuperscript, ScriptSuperscript}, chain.Levels())

	deep := ScriptChain(0)
	for i := 0; i < maxScriptDepth+4; i++ {
		deep = deep.Push(ScriptSubscript)
	}
	assert.Equal(t, maxScriptDepth, deep.Len(), "levels past the maximum depth are dropped")
}

func TestBlockIntent_Levels(t *testing.T) {
	quote := &BlockIntent{Kind: BlockQuote, Identity: 1}
	list := &BlockIntent{Kind: BlockUnorderedList, Identity: 2, Parent: quote}
	item := &BlockIntent{Kind: BlockListItem, Ordinal: 1, Identity: 3, Parent: list}
	para := &BlockIntent{Kind: BlockParagraph, Identity: 4, Parent: item}

	assert.Equal(t, 2, para.IndentationLevel())
	assert.Equal(t, 1, para.QuoteLevel())
	assert.Same(t, item, para.Nearest(BlockListItem))
	assert.Nil(t, para.Nearest(BlockHeader))
	assert.Equal(t, []*BlockIntent{para, item, list, quote}, para.Components())

	var none *BlockIntent
	assert.Equal(t, 0, none.IndentationLevel())
	assert.Equal(t, 0, none.QuoteLevel())
}

func TestLinkClass_Decorative(t *testing.T) {
	assert.True(t, LinkClassLeadingInvisible.Decorative())
	assert.True(t, LinkClassEllipsis.Decorative())
	assert.True(t, LinkClassTrailingInvisible.Decorative())
	assert.False(t, LinkClassMention.Decorative())
	assert.False(t, LinkClassHashtag.Decorative())
	assert.Equal(t, "hashtag", LinkClassHashtag.String())
}

func TestNormalizeTagName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"foo", "foo"},
		{"Foo", "foo"},
		{"FOOBAR", "foobar"},
		{"ｆｕｌｌｗｉｄｔｈ", "fullwidth"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTagName(tt.in), "NormalizeTagName(%q)", tt.in)
	}
}
