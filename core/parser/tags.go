package parser

import (
	"golang.org/x/net/html/atom"

	"siren-api/core/domain"
)

type kind uint8

const (
	kindUnknown kind = iota
	kindContainer
	kindInline
	kindStyle
	kindLink
	kindBlock
	kindLeaf
)

var inlineIntents = map[atom.Atom]domain.InlineIntent{
	atom.B:      domain.InlineStronglyEmphasized,
	atom.Strong: domain.InlineStronglyEmphasized,
	atom.I:      domain.InlineEmphasized,
	atom.Em:     domain.InlineEmphasized,
	atom.Code:   domain.InlineCode,
	atom.Kbd:    domain.InlineCode,
	atom.Samp:   domain.InlineCode,
	atom.Tt:     domain.InlineCode,
}

var styleFlags = map[atom.Atom]domain.StyleFlags{
	atom.S:      domain.StyleStrikethrough,
	atom.Strike: domain.StyleStrikethrough,
	atom.Del:    domain.StyleStrikethrough,
	atom.U:      domain.StyleUnderline,
	atom.Ins:    domain.StyleUnderline,
	atom.Small:  domain.StyleSmall,
	atom.Sup:    domain.StyleSuperscript,
	atom.Sub:    domain.StyleSubscript,
}

var scripts = map[atom.Atom]domain.Script{
	atom.Small: domain.ScriptSmall,
	atom.Sup:   domain.ScriptSuperscript,
	atom.Sub:   domain.ScriptSubscript,
}

var blockKinds = map[atom.Atom]domain.BlockKind{
	atom.P:          domain.BlockParagraph,
	atom.Blockquote: domain.BlockQuote,
	atom.Pre:        domain.BlockCode,
	atom.Ol:         domain.BlockOrderedList,
	atom.Ul:         domain.BlockUnorderedList,
	atom.Li:         domain.BlockListItem,
	atom.H1:         domain.BlockHeader,
	atom.H2:         domain.BlockHeader,
	atom.H3:         domain.BlockHeader,
	atom.H4:         domain.BlockHeader,
	atom.H5:         domain.BlockHeader,
	atom.H6:         domain.BlockHeader,
}

var headerLevels = map[atom.Atom]int{
	atom.H1: 1,
	atom.H2: 2,
	atom.H3: 3,
	atom.H4: 4,
	atom.H5: 5,
	atom.H6: 6,
}

// blockContainers hold block children; whitespace between those children is
// formatting, not content.
var blockContainers = map[atom.Atom]bool{
	atom.Body:       true,
	atom.Blockquote: true,
	atom.Ol:         true,
	atom.Ul:         true,
	atom.Li:         true,
}

func tagKind(a atom.Atom) kind {
	switch a {
	case atom.Body, atom.Span:
		return kindContainer
	case atom.A:
		return kindLink
	case atom.Br, atom.Wbr, atom.Hr:
		return kindLeaf
	}
	if _, ok := inlineIntents[a]; ok {
		return kindInline
	}
	if _, ok := styleFlags[a]; ok {
		return kindStyle
	}
	if _, ok := blockKinds[a]; ok {
		return kindBlock
	}
	return kindUnknown
}
