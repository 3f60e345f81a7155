// ABOUTME: HTML utilities for text node whitespace and element attributes
// ABOUTME: Provides common x/net/html helpers used by the parser and the API

package html

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// isSpace reports whether c is HTML inter-element whitespace.
// U+00A0 is content, not whitespace.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// CollapseWhitespace replaces every run of HTML whitespace with a single space.
// Leading and trailing runs are collapsed, not trimmed.
func CollapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSpace(c) {
			if !inSpace {
				b.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteByte(c)
	}
	return b.String()
}

// IsBlank reports whether s consists only of HTML whitespace.
func IsBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isSpace(s[i]) {
			return false
		}
	}
	return true
}

// Attr returns the value of the attribute key on n.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// AttrInt returns the attribute key on n parsed as a decimal integer.
func AttrInt(n *html.Node, key string) (int, bool) {
	v, ok := Attr(n, key)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return i, true
}

// PlainText returns the text content of n with whitespace collapsed and trimmed.
func PlainText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if n != nil {
		walk(n)
	}
	return strings.TrimSpace(CollapseWhitespace(b.String()))
}
