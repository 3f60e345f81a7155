// ABOUTME: Request DTOs for post parsing and rendering endpoints
// ABOUTME: Provides validation tags and default values for incoming requests

package requests

// MaxHTMLLength bounds the size of a post body accepted by the API.
const MaxHTMLLength = 1 << 20

// ParseRequest represents the request body for parsing a post
type ParseRequest struct {
	// HTML is the post body as sent by the server
	HTML string `json:"html" maxLength:"1048576" doc:"Post body HTML"`
}

// RenderRequest represents the request body for rendering a post
type RenderRequest struct {
	// HTML is the post body as sent by the server
	HTML string `json:"html" maxLength:"1048576" doc:"Post body HTML"`

	// TextStyle names the base text style
	TextStyle string `json:"text_style,omitempty" doc:"Base text style, e.g. body or caption1"`

	// IndentUnit is the indent of one nesting level in points
	IndentUnit *float64 `json:"indent_unit,omitempty" minimum:"0" maximum:"200" doc:"Indent of one nesting level in points"`

	// Present hides the decorative parts of shortened URLs
	Present *bool `json:"present,omitempty" doc:"Hide the decorative parts of shortened URLs (default: true)"`
}

// ApplyDefaults sets default values for optional fields
func (r *RenderRequest) ApplyDefaults(textStyle string, indentUnit float64) {
	if r.TextStyle == "" {
		r.TextStyle = textStyle
	}
	if r.IndentUnit == nil {
		r.IndentUnit = &indentUnit
	}
	if r.Present == nil {
		enabled := true
		r.Present = &enabled
	}
}

// MaxBatchSize bounds the number of posts in one batch request.
const MaxBatchSize = 100

// BatchParseRequest represents the request body for parsing a page of posts
type BatchParseRequest struct {
	// Posts are post bodies in timeline order
	Posts []string `json:"posts" minItems:"1" maxItems:"100" doc:"Post body HTML, one entry per post"`
}
