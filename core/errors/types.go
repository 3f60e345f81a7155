// ABOUTME: Custom error types for the parsing pipeline and its outer surfaces
// ABOUTME: Provides structured errors for recovery decisions and API responses

package errors

import (
	"errors"
	"fmt"
)

// SanitizeReason tells why sanitizing failed.
type SanitizeReason int

const (
	// MissingBody means the sanitized document had no body element
	MissingBody SanitizeReason = iota + 1
	// ParseFailure means the sanitized markup could not be read back as a tree
	ParseFailure
)

func (r SanitizeReason) String() string {
	switch r {
	case MissingBody:
		return "missing body"
	case ParseFailure:
		return "parse failure"
	}
	return "unknown"
}

// SanitizeError is fatal to one parse
type SanitizeError struct {
	Reason SanitizeReason
	Err    error
}

// Error implements the error interface
func (e *SanitizeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sanitize: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("sanitize: %s", e.Reason)
}

// Unwrap returns the underlying error
func (e *SanitizeError) Unwrap() error {
	return e.Err
}

// UnsupportedTagError is returned in strict mode for an element the parser does not know
type UnsupportedTagError struct {
	Tag string
}

// Error implements the error interface
func (e *UnsupportedTagError) Error() string {
	return fmt.Sprintf("unsupported tag: %s", e.Tag)
}

// UnsupportedNodeError is returned in strict mode for a node type the parser does not know
type UnsupportedNodeError struct {
	Type string
}

// Error implements the error interface
func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("unsupported node type: %s", e.Type)
}

// ErrEscapedListItem is reported for a list item with no enclosing list.
var ErrEscapedListItem = errors.New("list item outside of a list")

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsSanitize checks if an error is a SanitizeError
func IsSanitize(err error) bool {
	var sanitizeErr *SanitizeError
	return errors.As(err, &sanitizeErr)
}

// IsUnsupported checks if an error is an UnsupportedTagError or UnsupportedNodeError
func IsUnsupported(err error) bool {
	var tagErr *UnsupportedTagError
	var nodeErr *UnsupportedNodeError
	return errors.As(err, &tagErr) || errors.As(err, &nodeErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
