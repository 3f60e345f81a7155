package parser

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	htmlutil "siren-api/pkg/utils/html"
)

// listCounter hands out the ordinals of one list.
type listCounter struct {
	ordinal int
	step    int
}

// newListCounter reads start and reversed from a list element. A reversed
// list without start counts down from its number of items.
func newListCounter(list *html.Node) *listCounter {
	c := &listCounter{ordinal: 1, step: 1}
	if list.DataAtom != atom.Ol {
		return c
	}

	_, reversed := htmlutil.Attr(list, "reversed")
	if reversed {
		c.step = -1
		c.ordinal = countItems(list)
	}
	if start, ok := htmlutil.AttrInt(list, "start"); ok {
		c.ordinal = start
	}
	return c
}

// next returns the ordinal of the next item and advances the counter.
func (c *listCounter) next() int {
	ordinal := c.ordinal
	c.ordinal += c.step
	return ordinal
}

// reset makes value the ordinal of the next item.
func (c *listCounter) reset(value int) {
	c.ordinal = value
}

func countItems(list *html.Node) int {
	n := 0
	for c := list.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Li {
			n++
		}
	}
	return n
}
