// ABOUTME: Depth-first visitor turning a sanitized body tree into attributed text
// ABOUTME: Keeps one stack per concern: inline, style, link, block, list ordinal and class

package parser

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"siren-api/core/domain"
	coreerrors "siren-api/core/errors"
	htmlutil "siren-api/pkg/utils/html"
)

// Options controls error handling during the walk.
type Options struct {
	// Strict fails on elements and node types the parser does not know
	// instead of treating them as transparent containers, and fails on list
	// items outside of a list instead of recovering.
	Strict bool

	// OnRecover, if set, receives every error the parser recovered from.
	OnRecover func(error)
}

// Parse walks body and returns its attributed text. A nil body yields empty text.
func Parse(body *html.Node, opts Options) (*domain.AttributedText, error) {
	if body == nil {
		return &domain.AttributedText{}, nil
	}
	v := &visitor{opts: opts}
	if err := v.visit(body); err != nil {
		return nil, err
	}
	return v.out.Freeze(), nil
}

type stack[T any] []T

func (s *stack[T]) push(v T) { *s = append(*s, v) }

func (s *stack[T]) pop() {
	if n := len(*s); n > 0 {
		*s = (*s)[:n-1]
	}
}

func (s stack[T]) top() (v T) {
	if n := len(s); n > 0 {
		v = s[n-1]
	}
	return v
}

// styleState is one entry of the style stack.
type styleState struct {
	flags   domain.StyleFlags
	scripts domain.ScriptChain
}

// pushed records which stacks an element pushed, so leaving pops the same ones.
type pushed uint8

const (
	pushedInline pushed = 1 << iota
	pushedStyle
	pushedLink
	pushedBlock
	pushedList
	pushedClasses
	pushedPre
)

type visitor struct {
	opts Options
	out  domain.Builder

	inline  stack[domain.InlineIntent]
	styles  stack[styleState]
	links   stack[string]
	blocks  stack[*domain.BlockIntent]
	lists   stack[*listCounter]
	classes stack[domain.SirenClass]

	lastIdentity int
	preDepth     int
}

func (v *visitor) nextIdentity() int {
	v.lastIdentity++
	return v.lastIdentity
}

func (v *visitor) visit(n *html.Node) error {
	switch n.Type {
	case html.TextNode:
		v.text(n)
		return nil

	case html.ElementNode:
		if tagKind(n.DataAtom) == kindLeaf {
			v.leaf(n)
			return nil
		}
		p, err := v.enter(n)
		if err != nil {
			return err
		}
		if err := v.children(n); err != nil {
			return err
		}
		v.leave(p)
		return nil

	case html.DocumentNode:
		return v.children(n)

	default:
		if v.opts.Strict {
			return &coreerrors.UnsupportedNodeError{Type: nodeTypeName(n.Type)}
		}
		return v.children(n)
	}
}

func (v *visitor) children(n *html.Node) error {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := v.visit(c); err != nil {
			return err
		}
	}
	return nil
}

// emit appends s with the top of every stack.
func (v *visitor) emit(s string, extra domain.InlineIntent) {
	style := v.styles.top()
	v.out.Append(s, domain.Attributes{
		Inline:  v.inline.top() | extra,
		Styles:  style.flags,
		Scripts: style.scripts,
		Link:    v.links.top(),
		Block:   v.blocks.top(),
		Classes: v.classes.top(),
	})
}

func (v *visitor) text(n *html.Node) {
	if v.preDepth > 0 {
		v.emit(n.Data, 0)
		return
	}
	if htmlutil.IsBlank(n.Data) && betweenBlocks(n) {
		return
	}
	v.emit(htmlutil.CollapseWhitespace(n.Data), 0)
}

// leaf handles elements that synthesize their own text.
func (v *visitor) leaf(n *html.Node) {
	switch n.DataAtom {
	case atom.Br:
		v.emit("\n", domain.InlineLineBreak)
	case atom.Wbr:
		v.emit("\u200b", domain.InlineSoftBreak)
	case atom.Hr:
		v.blocks.push(v.newBlock(domain.BlockThematicBreak))
		v.emit("\n", 0)
		v.blocks.pop()
	}
}

func (v *visitor) newBlock(kind domain.BlockKind) *domain.BlockIntent {
	return &domain.BlockIntent{
		Kind:     kind,
		Identity: v.nextIdentity(),
		Parent:   v.blocks.top(),
	}
}

func (v *visitor) enter(n *html.Node) (pushed, error) {
	var p pushed

	switch tagKind(n.DataAtom) {
	case kindContainer:

	case kindInline:
		v.inline.push(v.inline.top() | inlineIntents[n.DataAtom])
		p |= pushedInline

	case kindStyle:
		style := v.styles.top()
		style.flags |= styleFlags[n.DataAtom]
		if script, ok := scripts[n.DataAtom]; ok {
			style.scripts = style.scripts.Push(script)
		}
		v.styles.push(style)
		p |= pushedStyle

	case kindLink:
		if href, ok := htmlutil.Attr(n, "href"); ok && href != "" {
			v.links.push(href)
			p |= pushedLink
		}

	case kindBlock:
		block, err := v.enterBlock(n)
		if err != nil {
			return 0, err
		}
		v.blocks.push(block)
		p |= pushedBlock
		switch block.Kind {
		case domain.BlockCode:
			v.preDepth++
			p |= pushedPre
		case domain.BlockOrderedList, domain.BlockUnorderedList:
			v.lists.push(newListCounter(n))
			p |= pushedList
		}

	default:
		if v.opts.Strict {
			return 0, &coreerrors.UnsupportedTagError{Tag: n.Data}
		}
	}

	if attr, ok := htmlutil.Attr(n, "class"); ok {
		if classes := domain.ParseSirenClasses(attr); classes != 0 {
			v.classes.push(v.classes.top() | classes)
			p |= pushedClasses
		}
	}

	return p, nil
}

func (v *visitor) enterBlock(n *html.Node) (*domain.BlockIntent, error) {
	kind := blockKinds[n.DataAtom]
	block := v.newBlock(kind)

	switch kind {
	case domain.BlockHeader:
		block.Level = headerLevels[n.DataAtom]

	case domain.BlockListItem:
		list := v.lists.top()
		if list == nil {
			err := coreerrors.ErrEscapedListItem
			if v.opts.Strict {
				return nil, err
			}
			if v.opts.OnRecover != nil {
				v.opts.OnRecover(err)
			}
			break
		}
		if value, ok := htmlutil.AttrInt(n, "value"); ok {
			list.reset(value)
		}
		block.Ordinal = list.next()
	}

	return block, nil
}

func (v *visitor) leave(p pushed) {
	if p&pushedInline != 0 {
		v.inline.pop()
	}
	if p&pushedStyle != 0 {
		v.styles.pop()
	}
	if p&pushedLink != 0 {
		v.links.pop()
	}
	if p&pushedBlock != 0 {
		v.blocks.pop()
	}
	if p&pushedList != 0 {
		v.lists.pop()
	}
	if p&pushedPre != 0 {
		v.preDepth--
	}
	if p&pushedClasses != 0 {
		v.classes.pop()
	}
}

// betweenBlocks reports whether a text node sits in a block container with
// only block-level elements (or nothing) on either side.
func betweenBlocks(n *html.Node) bool {
	if n.Parent == nil || !blockContainers[n.Parent.DataAtom] {
		return false
	}
	return isBlockOrNil(n.PrevSibling) && isBlockOrNil(n.NextSibling)
}

func isBlockOrNil(n *html.Node) bool {
	if n == nil {
		return true
	}
	if n.Type != html.ElementNode {
		return false
	}
	switch tagKind(n.DataAtom) {
	case kindBlock:
		return true
	case kindLeaf:
		return n.DataAtom == atom.Hr
	}
	return false
}

func nodeTypeName(t html.NodeType) string {
	switch t {
	case html.ErrorNode:
		return "error"
	case html.TextNode:
		return "text"
	case html.DocumentNode:
		return "document"
	case html.ElementNode:
		return "element"
	case html.CommentNode:
		return "comment"
	case html.DoctypeNode:
		return "doctype"
	case html.RawNode:
		return "raw"
	}
	return "unknown"
}
