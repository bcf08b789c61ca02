// Package error defines domain-specific errors for the Rentfolio application.
package error

import "errors"

// Usage limit domain errors.
var (
	// ErrPropertyQuotaExceeded is returned when the plan's property cap is reached.
	ErrPropertyQuotaExceeded = errors.New("property limit reached for current plan")

	// ErrTransactionQuotaExceeded is returned when the plan's transaction cap is reached.
	ErrTransactionQuotaExceeded = errors.New("transaction limit reached for current plan")

	// ErrDocumentQuotaExceeded is returned when the plan's document cap is reached.
	ErrDocumentQuotaExceeded = errors.New("document limit reached for current plan")
)

// UsageErrorCode defines error codes for usage limit errors.
// Format: USG-XXYYYY where XX is category and YYYY is specific error.
type UsageErrorCode string

const (
	// Quota errors (01XXXX)
	ErrCodePropertyQuotaExceeded    UsageErrorCode = "USG-010001"
	ErrCodeTransactionQuotaExceeded UsageErrorCode = "USG-010002"
	ErrCodeDocumentQuotaExceeded    UsageErrorCode = "USG-010003"
)

// UsageError represents a usage limit error with code and message.
type UsageError struct {
	Code    UsageErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UsageError) Unwrap() error {
	return e.Err
}

// NewUsageError creates a new UsageError with the given code and message.
func NewUsageError(code UsageErrorCode, message string, err error) *UsageError {
	return &UsageError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
