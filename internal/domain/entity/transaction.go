// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (income or expense).
// This is a closed enum; no other values are permitted.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid reports whether the transaction type is one of the closed enum values.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Default free-text categories applied when the ledger entry carries none.
const (
	DefaultIncomeCategory  = "Rent"
	DefaultExpenseCategory = "Other"
)

// Transaction represents a single ledger entry for a landlord.
//
// Amount is always a non-negative magnitude; the sign is carried by Type.
// Use SignedAmount when a signed value is needed so that expenses are
// never double-negated.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	PropertyID  *uuid.UUID // Optional, portfolio-level entries have none
	Type        TransactionType
	Amount      decimal.Decimal // Non-negative magnitude
	Category    string
	Description string
	Notes       string
	Date        time.Time
	TaxCategory *string // Resolved to a canonical tax bucket at report time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity, normalizing the amount
// to its absolute value and defaulting the category by type.
func NewTransaction(
	userID uuid.UUID,
	propertyID *uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	category string,
	description string,
	notes string,
	date time.Time,
	taxCategory *string,
) *Transaction {
	now := time.Now().UTC()

	txn := &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		PropertyID:  propertyID,
		Type:        transactionType,
		Amount:      amount.Abs(),
		Category:    category,
		Description: description,
		Notes:       notes,
		Date:        date,
		TaxCategory: taxCategory,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	txn.Category = txn.CategoryOrDefault()

	return txn
}

// IsIncome reports whether the transaction is an income entry.
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense reports whether the transaction is an expense entry.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// SignedAmount returns the amount with the sign implied by the type:
// negative for expenses, positive for income.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// CategoryOrDefault returns the free-text category, substituting the
// per-type default when none was recorded.
func (t *Transaction) CategoryOrDefault() string {
	if t.Category != "" {
		return t.Category
	}
	if t.IsIncome() {
		return DefaultIncomeCategory
	}
	return DefaultExpenseCategory
}

// TaxCategoryName returns the raw tax category name, or the empty string
// when none was recorded.
func (t *Transaction) TaxCategoryName() string {
	if t.TaxCategory != nil {
		return *t.TaxCategory
	}
	return ""
}
