package dto

import (
	"time"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// RegisterDocumentRequest represents the request body for registering a
// document metadata record.
type RegisterDocumentRequest struct {
	PropertyID  *string `json:"property_id"`
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	ContentType string  `json:"content_type" binding:"max=100"`
	SizeBytes   int64   `json:"size_bytes" binding:"min=0"`
}

// DocumentResponse represents a document record in API responses.
type DocumentResponse struct {
	ID          string    `json:"id"`
	PropertyID  *string   `json:"property_id,omitempty"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type,omitempty"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}

// DocumentListResponse represents the response for listing document records.
type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Total     int                `json:"total"`
}

// ToDocumentResponse converts a domain Document entity to a DocumentResponse DTO.
func ToDocumentResponse(document *entity.Document) DocumentResponse {
	var propertyID *string
	if document.PropertyID != nil {
		id := document.PropertyID.String()
		propertyID = &id
	}

	return DocumentResponse{
		ID:          document.ID.String(),
		PropertyID:  propertyID,
		Name:        document.Name,
		ContentType: document.ContentType,
		SizeBytes:   document.SizeBytes,
		CreatedAt:   document.CreatedAt,
	}
}

// ToDocumentListResponse converts a slice of documents to a list response.
func ToDocumentListResponse(documents []*entity.Document) DocumentListResponse {
	responses := make([]DocumentResponse, len(documents))
	for i, d := range documents {
		responses[i] = ToDocumentResponse(d)
	}
	return DocumentListResponse{
		Documents: responses,
		Total:     len(responses),
	}
}
