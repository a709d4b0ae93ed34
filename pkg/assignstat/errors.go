package assignstat

import (
	"errors"
	"fmt"
)

// ErrReadFailure indicates the input bytes could not be obtained.
var ErrReadFailure = errors.New("failed to read input")

// ErrSourceUnavailable indicates the input is not a readable workbook or
// the target worksheet does not exist.
var ErrSourceUnavailable = errors.New("source unavailable")

// ErrMissingRequiredColumn indicates the action column has no value in any data row.
var ErrMissingRequiredColumn = errors.New("action column is missing or empty")

// ErrInvalidTimezone indicates the reference timezone name is not a known IANA zone.
var ErrInvalidTimezone = errors.New("invalid timezone")

// AnalysisError represents an error during analysis.
type AnalysisError struct {
	SheetName string
	Stage     string // "read", "options", "open", "load", "aggregate"
	Err       error
}

func (e *AnalysisError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("analysis error (%s): %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("analysis error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError creates a new AnalysisError.
func NewAnalysisError(sheetName, stage string, err error) *AnalysisError {
	return &AnalysisError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
