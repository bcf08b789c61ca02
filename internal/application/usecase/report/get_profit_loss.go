// Package report contains the financial statement builders.
package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// GetProfitLossInput represents the input for generating a P&L statement.
// A zero Period selects the default (January 1 of the current year
// through now).
type GetProfitLossInput struct {
	UserID     uuid.UUID
	PropertyID *uuid.UUID
	Period     valueobject.Period
}

// ProfitLossSummary extends the shared totals with the profit margin.
type ProfitLossSummary struct {
	Summary
	ProfitMargin decimal.Decimal `json:"profit_margin"`
}

// ProfitLossStatement is the P&L report shape. Income is broken down by
// raw category, expenses by resolved tax bucket.
type ProfitLossStatement struct {
	Period   PeriodInfo          `json:"period"`
	Summary  ProfitLossSummary   `json:"summary"`
	Income   []CategoryBreakdown `json:"income"`
	Expenses []CategoryBreakdown `json:"expenses"`
}

// GetProfitLossUseCase generates profit & loss statements.
type GetProfitLossUseCase struct {
	transactionRepo adapter.TransactionRepository
	propertyRepo    adapter.PropertyRepository
	reportRepo      adapter.ReportRepository
	taxBuckets      *valueobject.TaxBucketTable
}

// NewGetProfitLossUseCase creates a new GetProfitLossUseCase instance.
func NewGetProfitLossUseCase(
	transactionRepo adapter.TransactionRepository,
	propertyRepo adapter.PropertyRepository,
	reportRepo adapter.ReportRepository,
	taxBuckets *valueobject.TaxBucketTable,
) *GetProfitLossUseCase {
	return &GetProfitLossUseCase{
		transactionRepo: transactionRepo,
		propertyRepo:    propertyRepo,
		reportRepo:      reportRepo,
		taxBuckets:      taxBuckets,
	}
}

// Execute generates a P&L statement for the given scope. A period with no
// activity yields a zero-valued statement, not an error.
func (uc *GetProfitLossUseCase) Execute(
	ctx context.Context,
	input GetProfitLossInput,
) (*ProfitLossStatement, error) {
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

	statement := buildProfitLoss(txns, period, uc.taxBuckets)

	recordStatement(ctx, uc.reportRepo, entity.ReportKindProfitLoss, input.UserID, input.PropertyID, period, statement)

	return statement, nil
}

// buildProfitLoss is the pure P&L builder. It assumes the slice is already
// correctly scoped by user, property and period.
func buildProfitLoss(
	txns []*entity.Transaction,
	period valueobject.Period,
	taxBuckets *valueobject.TaxBucketTable,
) *ProfitLossStatement {
	summary := summarize(txns)
	income, expenses := partitionByType(txns)

	return &ProfitLossStatement{
		Period: newPeriodInfo(period),
		Summary: ProfitLossSummary{
			Summary:      summary,
			ProfitMargin: ratioPercent(summary.NetIncome, summary.TotalIncome),
		},
		Income: breakdownBy(income, (*entity.Transaction).CategoryOrDefault, nil),
		Expenses: breakdownBy(expenses,
			func(t *entity.Transaction) string { return taxBuckets.Resolve(t.TaxCategoryName()) },
			func(t *entity.Transaction) string { return taxBuckets.Resolve(t.TaxCategoryName()) },
		),
	}
}
