package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/ukaji3/assignstat-go/pkg/assignstat"
)

// APIError represents a structured API error response
type APIError struct {
	StatusCode int    `json:"status_code"`
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// Render implements the render.Renderer interface for chi/render
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// ValidationError names the offending request field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, errorCode, message string, details any) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
		Details:    details,
	}
}

// errValidation creates a validation error with field details
func errValidation(field, message string) *APIError {
	return NewAPIError(http.StatusBadRequest, "VALIDATION_FAILED", "Request validation failed", ValidationError{
		Field:   field,
		Message: message,
	})
}

func errPayloadTooLarge(limit int64) *APIError {
	return NewAPIError(http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE",
		"Upload exceeds maximum allowed size", map[string]int64{"max_size": limit})
}

var errRateLimited = NewAPIError(http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Rate limit exceeded", nil)

// analysisError maps an analysis failure to its response and metrics outcome.
func analysisError(err error) (*APIError, string) {
	switch {
	case errors.Is(err, assignstat.ErrReadFailure):
		return NewAPIError(http.StatusBadRequest, "READ_FAILURE",
			"Failed to read the Excel file", err.Error()), outcomeReadFailure
	case errors.Is(err, assignstat.ErrSourceUnavailable):
		return NewAPIError(http.StatusUnprocessableEntity, "SOURCE_UNAVAILABLE",
			"No worksheet found in the Excel file", err.Error()), outcomeSourceUnavailable
	case errors.Is(err, assignstat.ErrMissingRequiredColumn):
		return NewAPIError(http.StatusUnprocessableEntity, "MISSING_REQUIRED_COLUMN",
			"Action column is missing or empty", err.Error()), outcomeMissingColumn
	default:
		return NewAPIError(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR",
			"Internal server error", nil), outcomeError
	}
}
