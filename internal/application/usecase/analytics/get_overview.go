// Package analytics contains portfolio analytics use cases.
package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/aggregate"
	"github.com/rentfolio/backend/internal/domain/entity"
)

// GetOverviewInput represents the input for the portfolio overview.
type GetOverviewInput struct {
	UserID uuid.UUID
}

// Overview is the portfolio-wide snapshot. It is independent of any
// period: income and expense totals are all-time sums, and monthly income
// comes from each property's current rent, not from transactions.
type Overview struct {
	TotalProperties int             `json:"total_properties"`
	TotalIncome     decimal.Decimal `json:"total_income"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	NetIncome       decimal.Decimal `json:"net_income"`
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	OccupancyRate   decimal.Decimal `json:"occupancy_rate"`
}

// GetOverviewUseCase computes the portfolio overview.
type GetOverviewUseCase struct {
	propertyRepo    adapter.PropertyRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	propertyRepo adapter.PropertyRepository,
	transactionRepo adapter.TransactionRepository,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		propertyRepo:    propertyRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute computes the overview for a user's whole portfolio.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*Overview, error) {
	properties, err := uc.propertyRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch properties: %w", err)
	}

	txns, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{UserID: input.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	return buildOverview(properties, txns), nil
}

// buildOverview is the pure overview builder.
func buildOverview(properties []*entity.Property, txns []*entity.Transaction) *Overview {
	amount := func(t *entity.Transaction) decimal.Decimal { return t.Amount }
	totalIncome := aggregate.SumWhere(txns, amount, (*entity.Transaction).IsIncome)
	totalExpenses := aggregate.SumWhere(txns, amount, (*entity.Transaction).IsExpense)

	monthlyIncome := decimal.Zero
	totalUnits := 0
	occupiedUnits := 0
	for _, p := range properties {
		monthlyIncome = monthlyIncome.Add(p.RentAmount())
		totalUnits += p.Units
		if occ := p.Occupied(); occ > 0 {
			occupiedUnits += occ
		}
	}

	occupancyRate := decimal.Zero
	if totalUnits > 0 {
		occupancyRate = decimal.NewFromInt(int64(occupiedUnits)).
			Div(decimal.NewFromInt(int64(totalUnits))).
			Mul(decimal.NewFromInt(100))
	}

	return &Overview{
		TotalProperties: len(properties),
		TotalIncome:     totalIncome,
		TotalExpenses:   totalExpenses,
		NetIncome:       totalIncome.Sub(totalExpenses),
		MonthlyIncome:   monthlyIncome,
		OccupancyRate:   occupancyRate,
	}
}
