// Package error defines domain-specific errors for the Rentfolio application.
package error

import "errors"

// Report domain errors. Note that an empty period is never an error:
// reports over periods with no activity yield zero-valued statements.
var (
	// ErrInvalidReportKind is returned when an unknown report kind is requested.
	ErrInvalidReportKind = errors.New("invalid report kind")

	// ErrInvalidReportPeriod is returned when period bounds are malformed.
	ErrInvalidReportPeriod = errors.New("invalid report period")

	// ErrInvalidReportYear is returned when a tax report year is out of range.
	ErrInvalidReportYear = errors.New("invalid report year")

	// ErrReportPropertyNotFound is returned when the requested property does not belong to the user.
	ErrReportPropertyNotFound = errors.New("property not found for report")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReportKind   ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportPeriod ReportErrorCode = "RPT-010002"
	ErrCodeInvalidReportYear   ReportErrorCode = "RPT-010003"

	// Access errors (02XXXX)
	ErrCodeReportPropertyNotFound ReportErrorCode = "RPT-020001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
