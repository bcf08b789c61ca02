// Package report contains the financial statement builders.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// GetIncomeStatementInput represents the input for generating an income
// statement.
type GetIncomeStatementInput struct {
	UserID     uuid.UUID
	PropertyID *uuid.UUID
	Period     valueobject.Period
}

// PropertyContext is the property detail attached to an income statement.
type PropertyContext struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	MonthlyRent    decimal.Decimal `json:"monthly_rent"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
}

// IncomeStatement is the income statement shape: the P&L totals plus the
// property context for the scope, with BOTH income and expenses broken
// down by raw category. This is the simpler, non-tax-oriented view.
type IncomeStatement struct {
	Period     PeriodInfo          `json:"period"`
	Summary    Summary             `json:"summary"`
	Properties []PropertyContext   `json:"properties"`
	Income     []CategoryBreakdown `json:"income"`
	Expenses   []CategoryBreakdown `json:"expenses"`
}

// GetIncomeStatementUseCase generates income statements.
type GetIncomeStatementUseCase struct {
	transactionRepo adapter.TransactionRepository
	propertyRepo    adapter.PropertyRepository
	reportRepo      adapter.ReportRepository
}

// NewGetIncomeStatementUseCase creates a new GetIncomeStatementUseCase instance.
func NewGetIncomeStatementUseCase(
	transactionRepo adapter.TransactionRepository,
	propertyRepo adapter.PropertyRepository,
	reportRepo adapter.ReportRepository,
) *GetIncomeStatementUseCase {
	return &GetIncomeStatementUseCase{
		transactionRepo: transactionRepo,
		propertyRepo:    propertyRepo,
		reportRepo:      reportRepo,
	}
}

// Execute generates an income statement for the given scope.
func (uc *GetIncomeStatementUseCase) Execute(
	ctx context.Context,
	input GetIncomeStatementInput,
) (*IncomeStatement, error) {
	period, err := resolvePeriod(input.Period)
	if err != nil {
		return nil, err
	}

	scoped, err := verifyPropertyScope(ctx, uc.propertyRepo, input.UserID, input.PropertyID)
	if err != nil {
		return nil, err
	}

	var properties []*entity.Property
	if scoped != nil {
		properties = []*entity.Property{scoped}
	} else {
		properties, err = uc.propertyRepo.FindByUser(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch properties: %w", err)
		}
	}

	txns, err := fetchScopedTransactions(ctx, uc.transactionRepo, input.UserID, input.PropertyID, period)
	if err != nil {
		return nil, err
	}

	statement := buildIncomeStatement(txns, properties, period)

	recordStatement(ctx, uc.reportRepo, entity.ReportKindIncomeStatement, input.UserID, input.PropertyID, period, statement)

	return statement, nil
}

// buildIncomeStatement is the pure income statement builder.
func buildIncomeStatement(
	txns []*entity.Transaction,
	properties []*entity.Property,
	period valueobject.Period,
) *IncomeStatement {
	income, expenses := partitionByType(txns)

	contexts := make([]PropertyContext, 0, len(properties))
	for _, p := range properties {
		contexts = append(contexts, PropertyContext{
			ID:             p.ID,
			Name:           p.Name,
			Address:        p.Address,
			MonthlyRent:    p.RentAmount(),
			EstimatedValue: p.CurrentValue(),
		})
	}

	return &IncomeStatement{
		Period:     newPeriodInfo(period),
		Summary:    summarize(txns),
		Properties: contexts,
		Income:     breakdownBy(income, (*entity.Transaction).CategoryOrDefault, nil),
		Expenses:   breakdownBy(expenses, (*entity.Transaction).CategoryOrDefault, nil),
	}
}
