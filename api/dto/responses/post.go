// ABOUTME: Response DTOs for post parsing and rendering endpoints
// ABOUTME: Offsets in runs and links are byte offsets into the returned text

package responses

// BlockResponse is one component of a run's block chain
type BlockResponse struct {
	Kind     string `json:"kind" doc:"Block kind, e.g. paragraph or list_item"`
	Ordinal  int    `json:"ordinal,omitempty" doc:"List item number"`
	Level    int    `json:"level,omitempty" doc:"Header level"`
	Identity int    `json:"identity" doc:"Distinguishes sibling blocks of the same kind"`
}

// RunResponse is one attributed run of parsed text
type RunResponse struct {
	Start      int             `json:"start"`
	End        int             `json:"end"`
	Text       string          `json:"text"`
	Inline     []string        `json:"inline,omitempty"`
	Styles     []string        `json:"styles,omitempty"`
	Scripts    []string        `json:"scripts,omitempty" doc:"Nested small/sup/sub levels, outermost first"`
	Link       string          `json:"link,omitempty"`
	LinkClass  string          `json:"link_class,omitempty"`
	Classes    []string        `json:"classes,omitempty"`
	QuoteLevel int             `json:"quote_level,omitempty"`
	Hashtag    string          `json:"hashtag,omitempty"`
	Blocks     []BlockResponse `json:"blocks,omitempty" doc:"Block chain, innermost first"`
}

// LinkResponse is a navigable range of parsed text
type LinkResponse struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Text    string `json:"text"`
	Target  string `json:"target"`
	Class   string `json:"class,omitempty"`
	Hashtag string `json:"hashtag,omitempty"`
	// Account is the profile URL behind a rewritten mention link
	Account string `json:"account,omitempty"`
}

// ParseResponse represents the response for a parsed post
type ParseResponse struct {
	Text  string         `json:"text"`
	Runs  []RunResponse  `json:"runs"`
	Links []LinkResponse `json:"links"`
}

// FontResponse is a resolved font request
type FontResponse struct {
	Family    string  `json:"family"`
	Size      float64 `json:"size"`
	Bold      bool    `json:"bold,omitempty"`
	Italic    bool    `json:"italic,omitempty"`
	Monospace bool    `json:"monospace,omitempty"`
}

// DisplayRunResponse is one run of rendered text
type DisplayRunResponse struct {
	Start               int          `json:"start"`
	End                 int          `json:"end"`
	Text                string       `json:"text"`
	Font                FontResponse `json:"font"`
	BaselineOffset      float64      `json:"baseline_offset,omitempty"`
	Strikethrough       bool         `json:"strikethrough,omitempty"`
	Underline           bool         `json:"underline,omitempty"`
	FirstLineHeadIndent float64      `json:"first_line_head_indent,omitempty"`
	HeadIndent          float64      `json:"head_indent,omitempty"`
	Link                string       `json:"link,omitempty"`
	LinkClass           string       `json:"link_class,omitempty"`
	QuoteLevel          int          `json:"quote_level,omitempty"`
	Hashtag             string       `json:"hashtag,omitempty"`
	ListMarker          bool         `json:"list_marker,omitempty"`
	ThematicBreak       bool         `json:"thematic_break,omitempty"`
}

// RenderResponse represents the response for a rendered post
type RenderResponse struct {
	Text string               `json:"text"`
	Runs []DisplayRunResponse `json:"runs"`
}

// PurgeCacheResponse reports how many parse results were dropped
type PurgeCacheResponse struct {
	Purged int `json:"purged"`
}

// BatchParseResponse holds one parse result per requested post, in request order
type BatchParseResponse struct {
	Results []ParseResponse `json:"results"`
}
