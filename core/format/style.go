// ABOUTME: Base text styles and the font rules of the formatter
// ABOUTME: Header scaling, inline traits and compounding small/sup/sub sizes

package format

import (
	"sort"

	"siren-api/core/domain"
)

const (
	// SystemFamily is the font family of proportional text.
	SystemFamily = "system"
	// MonospaceFamily is the font family of code.
	MonospaceFamily = "monospace"
)

// TextStyle is a named base font size, after the platform text style presets.
type TextStyle struct {
	Name string
	Size float64
	Bold bool
}

var (
	LargeTitle  = TextStyle{Name: "largeTitle", Size: 34}
	Title1      = TextStyle{Name: "title1", Size: 28}
	Title2      = TextStyle{Name: "title2", Size: 22}
	Title3      = TextStyle{Name: "title3", Size: 20}
	Headline    = TextStyle{Name: "headline", Size: 17, Bold: true}
	Body        = TextStyle{Name: "body", Size: 17}
	Callout     = TextStyle{Name: "callout", Size: 16}
	Subheadline = TextStyle{Name: "subheadline", Size: 15}
	Footnote    = TextStyle{Name: "footnote", Size: 13}
	Caption1    = TextStyle{Name: "caption1", Size: 12}
	Caption2    = TextStyle{Name: "caption2", Size: 11}
)

var textStyles = map[string]TextStyle{}

func init() {
	for _, s := range []TextStyle{
		LargeTitle, Title1, Title2, Title3, Headline, Body,
		Callout, Subheadline, Footnote, Caption1, Caption2,
	} {
		textStyles[s.Name] = s
	}
}

// TextStyleNamed looks up a preset by name, e.g. "body" or "caption1".
func TextStyleNamed(name string) (TextStyle, bool) {
	s, ok := textStyles[name]
	return s, ok
}

// TextStyleNames returns the preset names in alphabetical order.
func TextStyleNames() []string {
	names := make([]string, 0, len(textStyles))
	for name := range textStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// headerScale is the size multiplier per header level.
var headerScale = [7]float64{1: 2.0, 2: 1.5, 3: 1.25, 4: 1.125, 5: 1.0625, 6: 1.0}

const (
	smallScale       = 0.8
	scriptScale      = 0.7
	superscriptShift = 0.35
	subscriptShift   = 0.2
)

// blockFont is the font of plain text in block: the base style, scaled and
// bolded for headers, monospace in code blocks.
func blockFont(style TextStyle, block *domain.BlockIntent) domain.Font {
	font := domain.Font{Family: SystemFamily, Size: style.Size, Bold: style.Bold}
	if h := block.Nearest(domain.BlockHeader); h != nil && h.Level >= 1 && h.Level <= 6 {
		font.Size *= headerScale[h.Level]
		font.Bold = true
	}
	if block.Nearest(domain.BlockCode) != nil {
		font.Family = MonospaceFamily
		font.Monospace = true
	}
	return font
}

// runFont applies inline intents and the script chain to the block font.
// Each script level works on the size left by the levels outside it.
func runFont(style TextStyle, attrs domain.Attributes) (domain.Font, float64) {
	font := blockFont(style, attrs.Block)
	if attrs.Inline.Has(domain.InlineStronglyEmphasized) {
		font.Bold = true
	}
	if attrs.Inline.Has(domain.InlineEmphasized) {
		font.Italic = true
	}
	if attrs.Inline.Has(domain.InlineCode) {
		font.Family = MonospaceFamily
		font.Monospace = true
	}

	baseline := 0.0
	for _, script := range attrs.Scripts.Levels() {
		switch script {
		case domain.ScriptSmall:
			font.Size *= smallScale
		case domain.ScriptSuperscript:
			baseline += superscriptShift * font.Size
			font.Size *= scriptScale
		case domain.ScriptSubscript:
			baseline -= subscriptShift * font.Size
			font.Size *= scriptScale
		}
	}
	return font, baseline
}
