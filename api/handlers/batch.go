package handlers

import (
	"context"
	"net/http"

	"siren-api/api/dto/mappers"
	"siren-api/api/dto/requests"
	"siren-api/api/dto/responses"
	"siren-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// BatchParser parses a page of posts concurrently
type BatchParser interface {
	ParseBatch(ctx context.Context, posts []string) ([]*domain.AttributedText, error)
}

// BatchHandler serves batch parsing on a worker pool
type BatchHandler struct {
	parser BatchParser
}

// NewBatchHandler creates a new batch handler
func NewBatchHandler(parser BatchParser) *BatchHandler {
	return &BatchHandler{parser: parser}
}

// RegisterRoutes registers the batch route
func (h *BatchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "parsePostBatch",
		Method:      http.MethodPost,
		Path:        "/parse/batch",
		Summary:     "Parse a page of posts",
		Description: "Parses up to 100 post bodies concurrently and returns results in request order",
		Tags:        []string{"Posts"},
	}, h.ParseBatch)
}

// ParseBatchInput defines the input for the ParseBatch operation
type ParseBatchInput struct {
	Body requests.BatchParseRequest `json:"body"`
}

// ParseBatchOutput defines the output for the ParseBatch operation
type ParseBatchOutput struct {
	Body responses.BatchParseResponse
}

// ParseBatch handles the POST /parse/batch endpoint
func (h *BatchHandler) ParseBatch(ctx context.Context, input *ParseBatchInput) (*ParseBatchOutput, error) {
	texts, err := h.parser.ParseBatch(ctx, input.Body.Posts)
	if err != nil {
		return nil, toHumaError(err)
	}

	results := make([]responses.ParseResponse, len(texts))
	for i, text := range texts {
		results[i] = *mappers.ToParseResponse(text)
	}
	return &ParseBatchOutput{Body: responses.BatchParseResponse{Results: results}}, nil
}
