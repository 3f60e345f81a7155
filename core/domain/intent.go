// ABOUTME: Presentation intents and semantic classes attached to attributed text runs
// ABOUTME: Block intents form parent-linked chains; inline intents and classes are bitsets

package domain

import "strings"

// InlineIntent is a bitset of character-level formatting.
type InlineIntent uint8

const (
	// InlineStronglyEmphasized is bold text (b, strong)
	InlineStronglyEmphasized InlineIntent = 1 << iota
	// InlineEmphasized is italic text (i, em)
	InlineEmphasized
	// InlineCode is monospace text (code, kbd, samp, tt)
	InlineCode
	// InlineLineBreak marks the synthesized newline of a br element
	InlineLineBreak
	// InlineSoftBreak marks the synthesized zero width space of a wbr element
	InlineSoftBreak
)

var inlineIntentNames = []struct {
	flag InlineIntent
	name string
}{
	{InlineStronglyEmphasized, "strongly_emphasized"},
	{InlineEmphasized, "emphasized"},
	{InlineCode, "code"},
	{InlineLineBreak, "line_break"},
	{InlineSoftBreak, "soft_break"},
}

// Has reports whether all bits of f are set.
func (i InlineIntent) Has(f InlineIntent) bool {
	return f != 0 && i&f == f
}

// Names returns the names of the set bits in declaration order.
func (i InlineIntent) Names() []string {
	var names []string
	for _, n := range inlineIntentNames {
		if i.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	return names
}

// StyleFlags is a bitset of text styles with no inline intent equivalent.
type StyleFlags uint8

const (
	// StyleStrikethrough is set by s, strike and del
	StyleStrikethrough StyleFlags = 1 << iota
	// StyleUnderline is set by u and ins
	StyleUnderline
	// StyleSmall is set by small
	StyleSmall
	// StyleSuperscript is set by sup
	StyleSuperscript
	// StyleSubscript is set by sub
	StyleSubscript
)

var styleFlagNames = []struct {
	flag StyleFlags
	name string
}{
	{StyleStrikethrough, "strikethrough"},
	{StyleUnderline, "underline"},
	{StyleSmall, "small"},
	{StyleSuperscript, "superscript"},
	{StyleSubscript, "subscript"},
}

// Has reports whether all bits of f are set.
func (s StyleFlags) Has(f StyleFlags) bool {
	return f != 0 && s&f == f
}

// Names returns the names of the set flags in declaration order.
func (s StyleFlags) Names() []string {
	var names []string
	for _, n := range styleFlagNames {
		if s.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	return names
}

// Script is one size-changing style level: small, superscript or subscript.
type Script uint8

const (
	ScriptSmall Script = iota + 1
	ScriptSuperscript
	ScriptSubscript
)

// Flag returns the style flag that corresponds to the script level.
func (s Script) Flag() StyleFlags {
	switch s {
	case ScriptSmall:
		return StyleSmall
	case ScriptSuperscript:
		return StyleSuperscript
	case ScriptSubscript:
		return StyleSubscript
	}
	return 0
}

// maxScriptDepth is the number of 2-bit slots in a ScriptChain.
const maxScriptDepth = 16

// ScriptChain records nested small/sup/sub elements, outermost first.
// Each level takes two bits; an empty slot ends the chain. Levels past
// maxScriptDepth are dropped.
type ScriptChain uint32

// Push returns the chain with s nested inside the current innermost level.
func (c ScriptChain) Push(s Script) ScriptChain {
	n := c.Len()
	if n >= maxScriptDepth || s == 0 {
		return c
	}
	return c | ScriptChain(s&3)<<(2*n)
}

// Len returns the nesting depth.
func (c ScriptChain) Len() int {
	n := 0
	for n < maxScriptDepth && (c>>(2*n))&3 != 0 {
		n++
	}
	return n
}

// Levels returns the scripts from outermost to innermost.
func (c ScriptChain) Levels() []Script {
	n := c.Len()
	if n == 0 {
		return nil
	}
	levels := make([]Script, n)
	for i := range levels {
		levels[i] = Script((c >> (2 * i)) & 3)
	}
	return levels
}

// SirenClass is a bitset of the semantic CSS classes used by federated servers.
type SirenClass uint8

const (
	ClassMention SirenClass = 1 << iota
	ClassHashtag
	ClassEllipsis
	ClassInvisible
)

var sirenClassNames = map[string]SirenClass{
	"mention":   ClassMention,
	"hashtag":   ClassHashtag,
	"ellipsis":  ClassEllipsis,
	"invisible": ClassInvisible,
}

// ParseSirenClasses extracts the known semantic classes from a class attribute value.
// Unknown class names are ignored.
func ParseSirenClasses(attr string) SirenClass {
	var classes SirenClass
	for _, name := range strings.Fields(attr) {
		classes |= sirenClassNames[name]
	}
	return classes
}

// Has reports whether all bits of c are set.
func (s SirenClass) Has(c SirenClass) bool {
	return c != 0 && s&c == c
}

// Names returns the class names that are set.
func (s SirenClass) Names() []string {
	var names []string
	for _, name := range []string{"mention", "hashtag", "ellipsis", "invisible"} {
		if s.Has(sirenClassNames[name]) {
			names = append(names, name)
		}
	}
	return names
}

// LinkClass is the disambiguated meaning of a link span.
// The numeric values are stable and appear in serialized output.
type LinkClass uint8

const (
	LinkClassNone LinkClass = iota
	// LinkClassLeadingInvisible is the scheme part of a shortened URL, normally hidden.
	LinkClassLeadingInvisible
	// LinkClassEllipsis is the visible host and partial path of a shortened URL.
	LinkClassEllipsis
	// LinkClassTrailingInvisible is the hidden tail of a shortened URL, shown as "…".
	LinkClassTrailingInvisible
	// LinkClassMention is a user mention.
	LinkClassMention
	// LinkClassHashtag is a hashtag, even when the server also marked it as a mention.
	LinkClassHashtag
)

func (c LinkClass) String() string {
	switch c {
	case LinkClassLeadingInvisible:
		return "leading_invisible"
	case LinkClassEllipsis:
		return "ellipsis"
	case LinkClassTrailingInvisible:
		return "trailing_invisible"
	case LinkClassMention:
		return "mention"
	case LinkClassHashtag:
		return "hashtag"
	}
	return ""
}

// Decorative reports whether the class marks a fragment of a shortened URL.
func (c LinkClass) Decorative() bool {
	return c == LinkClassLeadingInvisible || c == LinkClassEllipsis || c == LinkClassTrailingInvisible
}

// BlockKind is the structural kind of a block intent.
type BlockKind uint8

const (
	BlockParagraph BlockKind = iota + 1
	BlockQuote
	BlockOrderedList
	BlockUnorderedList
	BlockListItem
	BlockHeader
	BlockCode
	BlockThematicBreak
)

func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "paragraph"
	case BlockQuote:
		return "block_quote"
	case BlockOrderedList:
		return "ordered_list"
	case BlockUnorderedList:
		return "unordered_list"
	case BlockListItem:
		return "list_item"
	case BlockHeader:
		return "header"
	case BlockCode:
		return "code_block"
	case BlockThematicBreak:
		return "thematic_break"
	}
	return "unknown"
}

// BlockIntent is one block-level element. Intents are chained through Parent,
// and Identity distinguishes siblings of the same kind within one parse.
type BlockIntent struct {
	Kind     BlockKind
	Ordinal  int // list items only; 0 when the item escaped its list
	Level    int // headers only, 1 through 6
	Identity int
	Parent   *BlockIntent
}

// Components returns the chain from b up to the root, innermost first.
func (b *BlockIntent) Components() []*BlockIntent {
	var chain []*BlockIntent
	for c := b; c != nil; c = c.Parent {
		chain = append(chain, c)
	}
	return chain
}

// count returns how many components of the chain match one of kinds.
func (b *BlockIntent) count(kinds ...BlockKind) int {
	n := 0
	for c := b; c != nil; c = c.Parent {
		for _, k := range kinds {
			if c.Kind == k {
				n++
				break
			}
		}
	}
	return n
}

// IndentationLevel counts the block quotes and lists in the chain.
func (b *BlockIntent) IndentationLevel() int {
	return b.count(BlockQuote, BlockOrderedList, BlockUnorderedList)
}

// QuoteLevel counts the block quotes in the chain.
func (b *BlockIntent) QuoteLevel() int {
	return b.count(BlockQuote)
}

// Nearest returns the innermost component of the given kind, or nil.
func (b *BlockIntent) Nearest(kind BlockKind) *BlockIntent {
	for c := b; c != nil; c = c.Parent {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// Equal compares two chains structurally.
func (b *BlockIntent) Equal(o *BlockIntent) bool {
	for b != nil && o != nil {
		if b == o {
			return true
		}
		if b.Kind != o.Kind || b.Ordinal != o.Ordinal || b.Level != o.Level || b.Identity != o.Identity {
			return false
		}
		b, o = b.Parent, o.Parent
	}
	return b == nil && o == nil
}
