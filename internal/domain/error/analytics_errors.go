// Package error defines domain-specific errors for the Rentfolio application.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrInvalidTrendWindow is returned when a trailing window token is not recognized.
	ErrInvalidTrendWindow = errors.New("invalid trend window")

	// ErrInvalidMetricType is returned when an unknown metric series is requested.
	ErrInvalidMetricType = errors.New("invalid metric type")

	// ErrAnalyticsPropertyNotFound is returned when the requested property does not belong to the user.
	ErrAnalyticsPropertyNotFound = errors.New("property not found for analytics")

	// ErrAIServiceUnavailable is returned when the analysis service is not configured.
	ErrAIServiceUnavailable = errors.New("ai analysis service unavailable")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTrendWindow AnalyticsErrorCode = "ANL-010001"
	ErrCodeInvalidMetricType  AnalyticsErrorCode = "ANL-010002"

	// Access errors (02XXXX)
	ErrCodeAnalyticsPropertyNotFound AnalyticsErrorCode = "ANL-020001"

	// Upstream errors (03XXXX)
	ErrCodeAIServiceUnavailable AnalyticsErrorCode = "ANL-030001"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
