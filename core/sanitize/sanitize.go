// ABOUTME: Whitelist sanitizer for federated post bodies built on a bluemonday policy
// ABOUTME: Returns the cleaned body element as an x/net/html tree for the parser

package sanitize

import (
	"bytes"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	coreerrors "siren-api/core/errors"
)

// AllowedElements are the elements of the federation sanitization profile.
var AllowedElements = []string{
	"p", "br", "wbr",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"blockquote", "pre", "ol", "ul", "li",
	"b", "strong", "i", "em",
	"s", "strike", "del", "u", "ins",
	"code", "kbd", "samp", "tt",
	"small", "sup", "sub",
	"span", "a", "hr",
}

// AllowedSchemes are the URL schemes a link may use.
var AllowedSchemes = []string{
	"https", "web+ap", "dat", "dweb", "ipfs", "ipns",
	"ssb", "gopher", "xmpp", "magnet", "gemini",
}

// Sanitizer cleans raw post HTML. It is safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// New builds a sanitizer with the federation profile.
func New() *Sanitizer {
	return &Sanitizer{policy: newPolicy()}
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(AllowedElements...)

	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("span", "a")
	p.AllowAttrs("href", "rel", "type").OnElements("a")
	p.AllowAttrs("start").Matching(bluemonday.Integer).OnElements("ol")
	p.AllowAttrs("reversed").OnElements("ol")
	p.AllowAttrs("value").Matching(bluemonday.Integer).OnElements("li")

	p.AllowURLSchemes(AllowedSchemes...)
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(false)

	return p
}

// Sanitize cleans raw and returns its body element.
func (s *Sanitizer) Sanitize(raw string) (*html.Node, error) {
	return s.SanitizeReader(strings.NewReader(raw))
}

// SanitizeReader is Sanitize for a stream.
func (s *Sanitizer) SanitizeReader(r io.Reader) (*html.Node, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &coreerrors.SanitizeError{Reason: coreerrors.ParseFailure, Err: err}
	}

	cleaned := s.policy.SanitizeBytes(raw)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(cleaned))
	if err != nil {
		return nil, &coreerrors.SanitizeError{Reason: coreerrors.ParseFailure, Err: err}
	}

	body := doc.Find("body")
	if body.Length() == 0 {
		return nil, &coreerrors.SanitizeError{Reason: coreerrors.MissingBody}
	}
	return body.Get(0), nil
}

// HTML returns the sanitized markup of raw without building a tree.
func (s *Sanitizer) HTML(raw string) string {
	return s.policy.Sanitize(raw)
}

var defaultSanitizer = New()

// Sanitize cleans raw with the shared default sanitizer.
func Sanitize(raw string) (*html.Node, error) {
	return defaultSanitizer.Sanitize(raw)
}
