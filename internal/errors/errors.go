package errors

import "fmt"

// ErrorCode represents a Glyphana error code.
type ErrorCode string

// The taxonomy is intentionally narrow: malformed queries, unknown
// categories and unresolvable codepoints all degrade inside the search
// core instead of erroring. Errors surface only at the operation edges.
const (
	ErrInvalidRequest  ErrorCode = "INVALID_REQUEST"  // 400
	ErrNotFound        ErrorCode = "NOT_FOUND"        // 404
	ErrFontUnavailable ErrorCode = "FONT_UNAVAILABLE" // 503
	ErrInternal        ErrorCode = "INTERNAL"         // 500
)

// GlyphanaError represents a structured error with code, status, and details.
type GlyphanaError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *GlyphanaError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *GlyphanaError {
	return &GlyphanaError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for a character or category that does
// not exist in the current index or registry.
func NewNotFound(identifier string) *GlyphanaError {
	return &GlyphanaError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewFontUnavailable creates a 503 error when the configured font family
// cannot be located or parsed.
func NewFontUnavailable(family string, err error) *GlyphanaError {
	details := map[string]any{"family": family}
	if err != nil {
		details["cause"] = err.Error()
	}
	return &GlyphanaError{
		Code:    ErrFontUnavailable,
		Status:  503,
		Message: fmt.Sprintf("font family %q unavailable", family),
		Details: details,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *GlyphanaError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &GlyphanaError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a GlyphanaError with the given code.
func Is(err error, code ErrorCode) bool {
	if gErr, ok := err.(*GlyphanaError); ok {
		return gErr.Code == code
	}
	return false
}
