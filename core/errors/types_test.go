package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestSanitizeError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *SanitizeError
		want string
	}{
		{
			name: "missing body",
			err:  &SanitizeError{Reason: MissingBody},
			want: "sanitize: missing body",
		},
		{
			name: "parse failure with cause",
			err:  &SanitizeError{Reason: ParseFailure, Err: io.ErrUnexpectedEOF},
			want: "sanitize: parse failure: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("SanitizeError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSanitizeError_Unwrap(t *testing.T) {
	err := &SanitizeError{Reason: ParseFailure, Err: io.ErrUnexpectedEOF}

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("SanitizeError should unwrap to its cause")
	}
}

func TestUnsupportedErrors_Error(t *testing.T) {
	tagErr := &UnsupportedTagError{Tag: "marquee"}
	if tagErr.Error() != "unsupported tag: marquee" {
		t.Errorf("UnsupportedTagError.Error() = %v", tagErr.Error())
	}

	nodeErr := &UnsupportedNodeError{Type: "doctype"}
	if nodeErr.Error() != "unsupported node type: doctype" {
		t.Errorf("UnsupportedNodeError.Error() = %v", nodeErr.Error())
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "html",
		Message: "must not be empty",
	}

	expected := "validation error on field 'html': must not be empty"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIsSanitize(t *testing.T) {
	wrapped := fmt.Errorf("parse post: %w", &SanitizeError{Reason: MissingBody})

	if !IsSanitize(wrapped) {
		t.Error("IsSanitize should return true for wrapped SanitizeError")
	}
	if IsSanitize(errors.New("some other error")) {
		t.Error("IsSanitize should return false for non-SanitizeError")
	}
}

func TestIsUnsupported(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"tag", &UnsupportedTagError{Tag: "video"}, true},
		{"node", &UnsupportedNodeError{Type: "raw"}, true},
		{"wrapped tag", WrapError(&UnsupportedTagError{Tag: "div"}, "strict parse"), true},
		{"escaped list item", ErrEscapedListItem, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUnsupported(tt.err); got != tt.want {
				t.Errorf("IsUnsupported() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValidation_True(t *testing.T) {
	err := &ValidationError{
		Field:   "indent_unit",
		Message: "must be positive",
	}

	if !IsValidation(err) {
		t.Error("IsValidation should return true for ValidationError")
	}
}

func TestIsValidation_False(t *testing.T) {
	err := errors.New("some other error")

	if IsValidation(err) {
		t.Error("IsValidation should return false for non-ValidationError")
	}
}

func TestWrapError_PreservesOriginalError(t *testing.T) {
	originalErr := &SanitizeError{Reason: MissingBody}
	wrappedErr := WrapError(originalErr, "failed to parse post")

	if wrappedErr == nil {
		t.Fatal("WrapError should not return nil for non-nil error")
	}

	expectedMsg := "failed to parse post: sanitize: missing body"
	if wrappedErr.Error() != expectedMsg {
		t.Errorf("WrapError message = %v, want %v", wrappedErr.Error(), expectedMsg)
	}

	if !IsSanitize(wrappedErr) {
		t.Error("Wrapped error should still be identifiable as SanitizeError")
	}
}

func TestWrapError_KeepsSentinel(t *testing.T) {
	wrappedErr := WrapError(ErrEscapedListItem, "li")

	if !errors.Is(wrappedErr, ErrEscapedListItem) {
		t.Error("wrapped sentinel should match with errors.Is")
	}
}

func TestWrapError_HandlesNilError(t *testing.T) {
	wrappedErr := WrapError(nil, "this should not happen")

	if wrappedErr != nil {
		t.Error("WrapError should return nil when wrapping nil error")
	}
}
