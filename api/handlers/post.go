// ABOUTME: Post handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for parsing, rendering and cache management

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"siren-api/api/dto/mappers"
	"siren-api/api/dto/requests"
	"siren-api/api/dto/responses"
	"siren-api/core/domain"
	"siren-api/core/errors"
	"siren-api/core/format"
	"siren-api/core/render"

	"github.com/danielgtaylor/huma/v2"
)

// PostService defines the methods needed from the render service
type PostService interface {
	ParseWithFlags(ctx context.Context, raw string) *domain.AttributedText
	RenderWithFlags(ctx context.Context, raw string, opts render.RenderOptions) *domain.DisplayText
	PurgeCache() int
}

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	service    PostService
	textStyle  string
	indentUnit float64
}

// NewPostHandler creates a new post handler. textStyle and indentUnit are
// used when a render request leaves them out.
func NewPostHandler(service PostService, textStyle string, indentUnit float64) *PostHandler {
	if textStyle == "" {
		textStyle = format.Body.Name
	}
	return &PostHandler{
		service:    service,
		textStyle:  textStyle,
		indentUnit: indentUnit,
	}
}

// RegisterRoutes registers all post-related routes
func (h *PostHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "parsePost",
		Method:      http.MethodPost,
		Path:        "/parse",
		Summary:     "Parse a post body",
		Description: "Sanitizes and parses post HTML into attributed text with semantic links",
		Tags:        []string{"Posts"},
	}, h.ParsePost)

	huma.Register(api, huma.Operation{
		OperationID: "renderPost",
		Method:      http.MethodPost,
		Path:        "/render",
		Summary:     "Render a post body",
		Description: "Parses post HTML and formats it with fonts, indents and list markers",
		Tags:        []string{"Posts"},
	}, h.RenderPost)

	huma.Register(api, huma.Operation{
		OperationID: "purgeCache",
		Method:      http.MethodDelete,
		Path:        "/cache",
		Summary:     "Purge the parse cache",
		Tags:        []string{"Cache"},
	}, h.PurgeCache)
}

// ParsePostInput defines the input for the ParsePost operation
type ParsePostInput struct {
	Body requests.ParseRequest `json:"body"`
}

// ParsePostOutput defines the output for the ParsePost operation
type ParsePostOutput struct {
	Body responses.ParseResponse
}

// ParsePost handles the POST /parse endpoint
func (h *PostHandler) ParsePost(ctx context.Context, input *ParsePostInput) (*ParsePostOutput, error) {
	text := h.service.ParseWithFlags(ctx, input.Body.HTML)
	return &ParsePostOutput{Body: *mappers.ToParseResponse(text)}, nil
}

// RenderPostInput defines the input for the RenderPost operation
type RenderPostInput struct {
	Body requests.RenderRequest `json:"body"`
}

// RenderPostOutput defines the output for the RenderPost operation
type RenderPostOutput struct {
	Body responses.RenderResponse
}

// RenderPost handles the POST /render endpoint
func (h *PostHandler) RenderPost(ctx context.Context, input *RenderPostInput) (*RenderPostOutput, error) {
	input.Body.ApplyDefaults(h.textStyle, h.indentUnit)

	style, ok := format.TextStyleNamed(input.Body.TextStyle)
	if !ok {
		return nil, toHumaError(&errors.ValidationError{
			Field:   "text_style",
			Message: fmt.Sprintf("unknown text style %q, want one of %s", input.Body.TextStyle, strings.Join(format.TextStyleNames(), ", ")),
		})
	}

	display := h.service.RenderWithFlags(ctx, input.Body.HTML, render.RenderOptions{
		Style:      style,
		IndentUnit: *input.Body.IndentUnit,
		Present:    *input.Body.Present,
	})
	return &RenderPostOutput{Body: *mappers.ToRenderResponse(display)}, nil
}

// PurgeCacheOutput defines the output for the PurgeCache operation
type PurgeCacheOutput struct {
	Body responses.PurgeCacheResponse
}

// PurgeCache handles the DELETE /cache endpoint
func (h *PostHandler) PurgeCache(ctx context.Context, input *struct{}) (*PurgeCacheOutput, error) {
	return &PurgeCacheOutput{Body: responses.PurgeCacheResponse{Purged: h.service.PurgeCache()}}, nil
}
