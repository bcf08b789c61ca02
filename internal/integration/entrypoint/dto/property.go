package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// CreatePropertyRequest represents the request body for creating a property.
type CreatePropertyRequest struct {
	Name           string           `json:"name" binding:"required,min=1,max=255"`
	Address        string           `json:"address" binding:"max=500"`
	Type           string           `json:"type" binding:"required"`
	PurchasePrice  decimal.Decimal  `json:"purchase_price"`
	EstimatedValue *decimal.Decimal `json:"estimated_value"`
	MonthlyRent    *decimal.Decimal `json:"monthly_rent"`
	Units          int              `json:"units"`
	OccupiedUnits  *int             `json:"occupied_units"`
}

// UpdatePropertyRequest represents the request body for updating a property.
// Absent fields are left unchanged.
type UpdatePropertyRequest struct {
	Name           *string          `json:"name"`
	Address        *string          `json:"address"`
	Type           *string          `json:"type"`
	PurchasePrice  *decimal.Decimal `json:"purchase_price"`
	EstimatedValue *decimal.Decimal `json:"estimated_value"`
	MonthlyRent    *decimal.Decimal `json:"monthly_rent"`
	Units          *int             `json:"units"`
	OccupiedUnits  *int             `json:"occupied_units"`
}

// PropertyResponse represents a property in API responses.
type PropertyResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Address        string           `json:"address"`
	Type           string           `json:"type"`
	PurchasePrice  decimal.Decimal  `json:"purchase_price"`
	EstimatedValue *decimal.Decimal `json:"estimated_value,omitempty"`
	MonthlyRent    *decimal.Decimal `json:"monthly_rent,omitempty"`
	Units          int              `json:"units"`
	OccupiedUnits  *int             `json:"occupied_units,omitempty"`
	OccupancyRate  decimal.Decimal  `json:"occupancy_rate"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// PropertyListResponse represents the response for listing properties.
type PropertyListResponse struct {
	Properties []PropertyResponse `json:"properties"`
	Total      int                `json:"total"`
}

// ToPropertyResponse converts a domain Property entity to a PropertyResponse DTO.
func ToPropertyResponse(property *entity.Property) PropertyResponse {
	return PropertyResponse{
		ID:             property.ID.String(),
		Name:           property.Name,
		Address:        property.Address,
		Type:           string(property.Type),
		PurchasePrice:  property.PurchasePrice,
		EstimatedValue: property.EstimatedValue,
		MonthlyRent:    property.MonthlyRent,
		Units:          property.Units,
		OccupiedUnits:  property.OccupiedUnits,
		OccupancyRate:  property.OccupancyRate(),
		CreatedAt:      property.CreatedAt,
		UpdatedAt:      property.UpdatedAt,
	}
}

// ToPropertyListResponse converts a slice of properties to a list response.
func ToPropertyListResponse(properties []*entity.Property) PropertyListResponse {
	responses := make([]PropertyResponse, len(properties))
	for i, p := range properties {
		responses[i] = ToPropertyResponse(p)
	}
	return PropertyListResponse{
		Properties: responses,
		Total:      len(responses),
	}
}
