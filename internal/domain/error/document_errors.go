// Package error defines domain-specific errors for the Rentfolio application.
package error

import "errors"

// Document domain errors.
var (
	// ErrMissingDocumentName is returned when a document is registered without a name.
	ErrMissingDocumentName = errors.New("document name is required")

	// ErrDocumentNotFound is returned when a document record is not found.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrDocumentPropertyNotFound is returned when the referenced property does not exist.
	ErrDocumentPropertyNotFound = errors.New("property not found for document")
)

// DocumentErrorCode defines error codes for document errors.
// Format: DOC-XXYYYY where XX is category and YYYY is specific error.
type DocumentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingDocumentName DocumentErrorCode = "DOC-010001"

	// Access errors (02XXXX)
	ErrCodeDocumentNotFound         DocumentErrorCode = "DOC-020001"
	ErrCodeDocPropertyNotFound      DocumentErrorCode = "DOC-020002"
)

// DocumentError represents a document error with code and message.
type DocumentError struct {
	Code    DocumentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DocumentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DocumentError) Unwrap() error {
	return e.Err
}

// NewDocumentError creates a new DocumentError with the given code and message.
func NewDocumentError(code DocumentErrorCode, message string, err error) *DocumentError {
	return &DocumentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
