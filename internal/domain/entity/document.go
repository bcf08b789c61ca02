// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is the metadata record for an uploaded file (lease, receipt,
// inspection report). File contents live in external storage; only the
// metadata is tracked here, and it is what the usage quota counts.
type Document struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	PropertyID  *uuid.UUID
	Name        string
	ContentType string
	SizeBytes   int64
	CreatedAt   time.Time
}

// NewDocument creates a new Document metadata entity.
func NewDocument(userID uuid.UUID, propertyID *uuid.UUID, name, contentType string, sizeBytes int64) *Document {
	return &Document{
		ID:          uuid.New(),
		UserID:      userID,
		PropertyID:  propertyID,
		Name:        name,
		ContentType: contentType,
		SizeBytes:   sizeBytes,
		CreatedAt:   time.Now().UTC(),
	}
}
