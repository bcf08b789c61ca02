// Package report contains the financial statement builders.
package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/aggregate"
	"github.com/rentfolio/backend/internal/domain/entity"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// GetCashFlowInput represents the input for generating a cash flow report.
type GetCashFlowInput struct {
	UserID     uuid.UUID
	PropertyID *uuid.UUID
	Period     valueobject.Period
}

// MonthCashFlow is one calendar month of cash flow. NetCashFlow is the
// month's income minus the month's expenses, not a cumulative cash
// position.
type MonthCashFlow struct {
	Month        string          `json:"month"`
	Income       decimal.Decimal `json:"income"`
	Expenses     decimal.Decimal `json:"expenses"`
	NetCashFlow  decimal.Decimal `json:"net_cash_flow"`
	Transactions []LineItem      `json:"transactions"`
}

// CashFlowSummary sums cash flow across all months of the period.
type CashFlowSummary struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetCashFlow   decimal.Decimal `json:"net_cash_flow"`
}

// CashFlowStatement is the cash flow report shape: all transactions,
// income and expense together, bucketed by calendar month.
type CashFlowStatement struct {
	Period  PeriodInfo      `json:"period"`
	Summary CashFlowSummary `json:"summary"`
	Months  []MonthCashFlow `json:"months"`
}

// GetCashFlowUseCase generates cash flow reports.
type GetCashFlowUseCase struct {
	transactionRepo adapter.TransactionRepository
	propertyRepo    adapter.PropertyRepository
	reportRepo      adapter.ReportRepository
}

// NewGetCashFlowUseCase creates a new GetCashFlowUseCase instance.
func NewGetCashFlowUseCase(
	transactionRepo adapter.TransactionRepository,
	propertyRepo adapter.PropertyRepository,
	reportRepo adapter.ReportRepository,
) *GetCashFlowUseCase {
	return &GetCashFlowUseCase{
		transactionRepo: transactionRepo,
		propertyRepo:    propertyRepo,
		reportRepo:      reportRepo,
	}
}

// Execute generates a cash flow report for the given scope.
func (uc *GetCashFlowUseCase) Execute(
	ctx context.Context,
	input GetCashFlowInput,
) (*CashFlowStatement, error) {
	period, err := resolvePeriod(input.Period)
	if err != nil {
		return nil, err
	}

	if _, err := verifyPropertyScope(ctx, uc.propertyRepo, input.UserID, input.PropertyID); err != nil {
		return nil, err
	}

	txns, err := fetchScopedTransactions(ctx, uc.transactionRepo, input.UserID, input.PropertyID, period)
	if err != nil {
		return nil, err
	}

	statement := buildCashFlow(txns, period)

	recordStatement(ctx, uc.reportRepo, entity.ReportKindCashFlow, input.UserID, input.PropertyID, period, statement)

	return statement, nil
}

// buildCashFlow is the pure cash flow builder. Months appear in calendar
// order; months with no transactions are absent.
func buildCashFlow(txns []*entity.Transaction, period valueobject.Period) *CashFlowStatement {
	sorted := sortedByDateAsc(txns)

	monthKeys, byMonth := aggregate.GroupBy(sorted, func(t *entity.Transaction) string {
		return aggregate.MonthKey(t.Date)
	})

	months := make([]MonthCashFlow, 0, len(monthKeys))
	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero

	for _, month := range monthKeys {
		group := byMonth[month]
		income := decimal.Zero
		expenses := decimal.Zero
		items := make([]LineItem, 0, len(group))
		for _, txn := range group {
			if txn.IsIncome() {
				income = income.Add(txn.Amount)
			} else {
				expenses = expenses.Add(txn.Amount)
			}
			items = append(items, lineItemFrom(txn, ""))
		}

		months = append(months, MonthCashFlow{
			Month:        month,
			Income:       income,
			Expenses:     expenses,
			NetCashFlow:  income.Sub(expenses),
			Transactions: items,
		})

		totalIncome = totalIncome.Add(income)
		totalExpenses = totalExpenses.Add(expenses)
	}

	return &CashFlowStatement{
		Period: newPeriodInfo(period),
		Summary: CashFlowSummary{
			TotalIncome:   totalIncome,
			TotalExpenses: totalExpenses,
			NetCashFlow:   totalIncome.Sub(totalExpenses),
		},
		Months: months,
	}
}
