// ABOUTME: Mappers for converting parse and render results to API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"strings"

	"siren-api/api/dto/responses"
	"siren-api/core/appurl"
	"siren-api/core/domain"
)

// ToParseResponse converts attributed text to a ParseResponse DTO
func ToParseResponse(text *domain.AttributedText) *responses.ParseResponse {
	runs := text.Runs()
	response := &responses.ParseResponse{
		Text:  text.String(),
		Runs:  make([]responses.RunResponse, 0, len(runs)),
		Links: make([]responses.LinkResponse, 0),
	}

	for _, run := range runs {
		response.Runs = append(response.Runs, ToRunResponse(text, run))
	}

	for _, link := range text.Links() {
		response.Links = append(response.Links, responses.LinkResponse{
			Start:   link.Start,
			End:     link.End,
			Text:    link.Text,
			Target:  link.Target,
			Class:   link.Class.String(),
			Hashtag: link.Hashtag,
			Account: mentionedAccount(link),
		})
	}

	return response
}

// ToRunResponse converts one run of text
func ToRunResponse(text *domain.AttributedText, run domain.Run) responses.RunResponse {
	attrs := run.Attrs
	return responses.RunResponse{
		Start:      run.Start,
		End:        run.End,
		Text:       text.Slice(run.Start, run.End),
		Inline:     attrs.Inline.Names(),
		Styles:     attrs.Styles.Names(),
		Scripts:    scriptNames(attrs.Scripts),
		Link:       attrs.Link,
		LinkClass:  attrs.LinkClass.String(),
		Classes:    attrs.Classes.Names(),
		QuoteLevel: attrs.QuoteLevel,
		Hashtag:    attrs.Hashtag,
		Blocks:     blockChain(attrs.Block),
	}
}

// ToRenderResponse converts display text to a RenderResponse DTO
func ToRenderResponse(text *domain.DisplayText) *responses.RenderResponse {
	runs := text.Runs()
	response := &responses.RenderResponse{
		Text: text.String(),
		Runs: make([]responses.DisplayRunResponse, 0, len(runs)),
	}

	for _, run := range runs {
		attrs := run.Attrs
		response.Runs = append(response.Runs, responses.DisplayRunResponse{
			Start: run.Start,
			End:   run.End,
			Text:  text.RunText(run),
			Font: responses.FontResponse{
				Family:    attrs.Font.Family,
				Size:      attrs.Font.Size,
				Bold:      attrs.Font.Bold,
				Italic:    attrs.Font.Italic,
				Monospace: attrs.Font.Monospace,
			},
			BaselineOffset:      attrs.BaselineOffset,
			Strikethrough:       attrs.Strikethrough,
			Underline:           attrs.Underline,
			FirstLineHeadIndent: attrs.Paragraph.FirstLineHeadIndent,
			HeadIndent:          attrs.Paragraph.HeadIndent,
			Link:                attrs.Link,
			LinkClass:           attrs.LinkClass.String(),
			QuoteLevel:          attrs.QuoteLevel,
			Hashtag:             attrs.Hashtag,
			ListMarker:          attrs.ListMarker,
			ThematicBreak:       attrs.ThematicBreak,
		})
	}

	return response
}

func blockChain(block *domain.BlockIntent) []responses.BlockResponse {
	components := block.Components()
	if len(components) == 0 {
		return nil
	}
	chain := make([]responses.BlockResponse, 0, len(components))
	for _, c := range components {
		chain = append(chain, responses.BlockResponse{
			Kind:     c.Kind.String(),
			Ordinal:  c.Ordinal,
			Level:    c.Level,
			Identity: c.Identity,
		})
	}
	return chain
}

func scriptNames(chain domain.ScriptChain) []string {
	levels := chain.Levels()
	if len(levels) == 0 {
		return nil
	}
	names := make([]string, 0, len(levels))
	for _, s := range levels {
		switch s {
		case domain.ScriptSmall:
			names = append(names, "small")
		case domain.ScriptSuperscript:
			names = append(names, "superscript")
		case domain.ScriptSubscript:
			names = append(names, "subscript")
		}
	}
	return names
}

// mentionedAccount decodes the profile URL of an internal mention link.
func mentionedAccount(link domain.Link) string {
	if link.Class != domain.LinkClassMention {
		return ""
	}
	scheme, _, ok := strings.Cut(link.Target, ":")
	if !ok {
		return ""
	}
	u, err := appurl.Parse(scheme, link.Target)
	if err != nil || u.Kind != appurl.KindMention {
		return ""
	}
	return u.Target
}
