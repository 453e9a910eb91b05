// Package error defines domain-specific errors for the owner portal.
package error

import "errors"

// Forecast domain errors.
var (
	// ErrInvalidHorizon is returned when a forecast horizon is not a positive day count.
	ErrInvalidHorizon = errors.New("horizon must be a positive number of days")

	// ErrInvalidMonthCount is returned when a projection is requested for no months.
	ErrInvalidMonthCount = errors.New("months must be a positive number")

	// ErrMissingStartDate is returned when start_date is not provided.
	ErrMissingStartDate = errors.New("start_date is required")

	// ErrMissingEndDate is returned when end_date is not provided.
	ErrMissingEndDate = errors.New("end_date is required")

	// ErrInvalidDateRange is returned when end_date is not after start_date.
	ErrInvalidDateRange = errors.New("end_date must be after start_date")

	// ErrInvalidDateFormat is returned when date format is invalid.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidSimulationPayload is returned when a simulation request body cannot be read.
	ErrInvalidSimulationPayload = errors.New("invalid simulation payload")
)

// ForecastErrorCode defines error codes for forecast errors.
// Format: FCT-XXYYYY where XX is category and YYYY is specific error.
type ForecastErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidHorizon           ForecastErrorCode = "FCT-010001"
	ErrCodeInvalidMonthCount        ForecastErrorCode = "FCT-010002"
	ErrCodeMissingStartDate         ForecastErrorCode = "FCT-010003"
	ErrCodeMissingEndDate           ForecastErrorCode = "FCT-010004"
	ErrCodeInvalidDateRange         ForecastErrorCode = "FCT-010005"
	ErrCodeInvalidDateFormat        ForecastErrorCode = "FCT-010006"
	ErrCodeInvalidSimulationPayload ForecastErrorCode = "FCT-010007"

	// Internal errors (99XXXX)
	ErrCodeForecastInternalError ForecastErrorCode = "FCT-990001"
)

// ForecastError represents a forecast error with code and message.
type ForecastError struct {
	Code    ForecastErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ForecastError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ForecastError) Unwrap() error {
	return e.Err
}

// NewForecastError creates a new ForecastError with the given code and message.
func NewForecastError(code ForecastErrorCode, message string, err error) *ForecastError {
	return &ForecastError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
