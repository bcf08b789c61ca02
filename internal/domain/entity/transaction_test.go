package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNewTransactionNormalizesAmount(t *testing.T) {
	txn := NewTransaction(
		uuid.New(), nil, TransactionTypeExpense,
		decimal.NewFromInt(-50), "Fees", "", "",
		time.Now(), nil,
	)

	if txn.Amount.IsNegative() {
		t.Errorf("amount should be stored as a magnitude, got %s", txn.Amount)
	}
	if !txn.Amount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected 50, got %s", txn.Amount)
	}
}

func TestSignedAmount(t *testing.T) {
	income := NewTransaction(
		uuid.New(), nil, TransactionTypeIncome,
		decimal.NewFromInt(100), "", "", "", time.Now(), nil,
	)
	expense := NewTransaction(
		uuid.New(), nil, TransactionTypeExpense,
		decimal.NewFromInt(100), "", "", "", time.Now(), nil,
	)

	if !income.SignedAmount().Equal(decimal.NewFromInt(100)) {
		t.Errorf("income should be positive, got %s", income.SignedAmount())
	}
	if !expense.SignedAmount().Equal(decimal.NewFromInt(-100)) {
		t.Errorf("expense should be negative, got %s", expense.SignedAmount())
	}
}

func TestCategoryOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		txnType  TransactionType
		category string
		want     string
	}{
		{"income defaults to Rent", TransactionTypeIncome, "", DefaultIncomeCategory},
		{"expense defaults to Other", TransactionTypeExpense, "", DefaultExpenseCategory},
		{"explicit category kept", TransactionTypeExpense, "Plumbing", "Plumbing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := NewTransaction(
				uuid.New(), nil, tt.txnType,
				decimal.NewFromInt(10), tt.category, "", "", time.Now(), nil,
			)
			if txn.Category != tt.want {
				t.Errorf("expected %s, got %s", tt.want, txn.Category)
			}
		})
	}
}

func TestTransactionTypeIsValid(t *testing.T) {
	if !TransactionTypeIncome.IsValid() || !TransactionTypeExpense.IsValid() {
		t.Error("income and expense are valid types")
	}
	if TransactionType("transfer").IsValid() {
		t.Error("transfer is not a valid type")
	}
	if TransactionType("").IsValid() {
		t.Error("the empty string is not a valid type")
	}
}

func TestTaxCategoryName(t *testing.T) {
	name := "Repairs & Maintenance"
	withTax := NewTransaction(
		uuid.New(), nil, TransactionTypeExpense,
		decimal.NewFromInt(10), "", "", "", time.Now(), &name,
	)
	withoutTax := NewTransaction(
		uuid.New(), nil, TransactionTypeExpense,
		decimal.NewFromInt(10), "", "", "", time.Now(), nil,
	)

	if withTax.TaxCategoryName() != name {
		t.Errorf("expected %s, got %s", name, withTax.TaxCategoryName())
	}
	if withoutTax.TaxCategoryName() != "" {
		t.Errorf("expected empty string, got %s", withoutTax.TaxCategoryName())
	}
}
