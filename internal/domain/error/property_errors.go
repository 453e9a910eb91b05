// Package error defines domain-specific errors for the owner portal.
package error

import "errors"

// Property domain errors.
var (
	// ErrPropertyNotFound is returned when a property is not found.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrPropertyAccessDenied is returned when the caller does not own the property.
	ErrPropertyAccessDenied = errors.New("access to property denied")

	// ErrInvalidPropertyID is returned when the property ID is not a valid UUID.
	ErrInvalidPropertyID = errors.New("invalid property ID format")
)

// PropertyErrorCode defines error codes for property errors.
// Format: PRP-XXYYYY where XX is category and YYYY is specific error.
type PropertyErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPropertyID PropertyErrorCode = "PRP-010001"

	// Not found errors (02XXXX)
	ErrCodePropertyNotFound PropertyErrorCode = "PRP-020001"

	// Authorization errors (03XXXX)
	ErrCodePropertyAccessDenied PropertyErrorCode = "PRP-030001"

	// Internal errors (99XXXX)
	ErrCodePropertyInternalError PropertyErrorCode = "PRP-990001"
)

// PropertyError represents a property error with code and message.
type PropertyError struct {
	Code    PropertyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PropertyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PropertyError) Unwrap() error {
	return e.Err
}

// NewPropertyError creates a new PropertyError with the given code and message.
func NewPropertyError(code PropertyErrorCode, message string, err error) *PropertyError {
	return &PropertyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
