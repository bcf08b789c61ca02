// Package error defines domain-specific errors for the Rentfolio application.
package error

import "errors"

// Property domain errors.
var (
	// ErrPropertyNotFound is returned when a property is not found in the system.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrNotAuthorizedToModifyProperty is returned when user is not authorized to modify a property.
	ErrNotAuthorizedToModifyProperty = errors.New("not authorized to modify property")

	// ErrInvalidPropertyUnits is returned when the unit count is not positive.
	ErrInvalidPropertyUnits = errors.New("units must be at least 1")

	// ErrInvalidPurchasePrice is returned when the purchase price is negative.
	ErrInvalidPurchasePrice = errors.New("purchase price must not be negative")

	// ErrMissingPropertyName is returned when a property has no name.
	ErrMissingPropertyName = errors.New("property name is required")
)

// PropertyErrorCode defines error codes for property errors.
// Format: PROP-XXYYYY where XX is category and YYYY is specific error.
type PropertyErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingPropertyName  PropertyErrorCode = "PROP-010001"
	ErrCodeInvalidPropertyUnits PropertyErrorCode = "PROP-010002"
	ErrCodeInvalidPurchasePrice PropertyErrorCode = "PROP-010003"

	// Access errors (02XXXX)
	ErrCodePropertyNotFound      PropertyErrorCode = "PROP-020001"
	ErrCodeNotAuthorizedProperty PropertyErrorCode = "PROP-020002"
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
