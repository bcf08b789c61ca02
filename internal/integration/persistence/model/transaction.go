package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	PropertyID  *uuid.UUID      `gorm:"type:uuid;index"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category    string          `gorm:"type:varchar(100);not null"`
	Description string          `gorm:"type:varchar(255)"`
	Notes       string          `gorm:"type:text"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	TaxCategory *string         `gorm:"type:varchar(100)"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
	Property *PropertyModel `gorm:"foreignKey:PropertyID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
// Rows written before sign normalization, or by other writers, may carry
// a signed amount; the entity invariant is a non-negative magnitude, so
// it is restored here.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		PropertyID:  m.PropertyID,
		Type:        entity.TransactionType(m.Type),
		Amount:      m.Amount.Abs(),
		Category:    m.Category,
		Description: m.Description,
		Notes:       m.Notes,
		Date:        m.Date,
		TaxCategory: m.TaxCategory,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		UserID:      transaction.UserID,
		PropertyID:  transaction.PropertyID,
		Type:        string(transaction.Type),
		Amount:      transaction.Amount,
		Category:    transaction.Category,
		Description: transaction.Description,
		Notes:       transaction.Notes,
		Date:        transaction.Date,
		TaxCategory: transaction.TaxCategory,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}
