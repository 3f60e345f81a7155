package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizeTagName returns the identity of a hashtag name (without the leading '#').
// Compatibility-equivalent spellings and case variants map to the same identity.
func NormalizeTagName(name string) string {
	// A Caser keeps state, so one is made per call.
	return cases.Fold().String(norm.NFKC.String(name))
}
