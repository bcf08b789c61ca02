package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for recording a
// ledger entry. Amount is a magnitude; the sign is implied by Type.
type CreateTransactionRequest struct {
	PropertyID  *string         `json:"property_id"`
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category" binding:"max=100"`
	Description string          `json:"description" binding:"max=255"`
	Notes       string          `json:"notes"`
	Date        time.Time       `json:"date" binding:"required" time_format:"2006-01-02"`
	TaxCategory *string         `json:"tax_category"`
}

// UpdateTransactionRequest represents the request body for updating a
// ledger entry. Absent fields are left unchanged.
type UpdateTransactionRequest struct {
	Type        *string          `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Notes       *string          `json:"notes"`
	Date        *time.Time       `json:"date" time_format:"2006-01-02"`
	TaxCategory *string          `json:"tax_category"`
}

// TransactionResponse represents a ledger entry in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	PropertyID  *string         `json:"property_id,omitempty"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Notes       string          `json:"notes,omitempty"`
	Date        time.Time       `json:"date"`
	TaxCategory *string         `json:"tax_category,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TransactionListResponse represents the response for listing ledger entries.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	var propertyID *string
	if txn.PropertyID != nil {
		id := txn.PropertyID.String()
		propertyID = &id
	}

	return TransactionResponse{
		ID:          txn.ID.String(),
		PropertyID:  propertyID,
		Type:        string(txn.Type),
		Amount:      txn.Amount,
		Category:    txn.Category,
		Description: txn.Description,
		Notes:       txn.Notes,
		Date:        txn.Date,
		TaxCategory: txn.TaxCategory,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
}

// ToTransactionListResponse converts a slice of transactions to a list response.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions: responses,
		Total:        len(responses),
	}
}
