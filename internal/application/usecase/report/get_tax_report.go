// Package report contains the financial statement builders.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// GetTaxReportInput represents the input for generating a tax report.
// Tax reports always cover a full calendar year.
type GetTaxReportInput struct {
	UserID     uuid.UUID
	PropertyID *uuid.UUID
	Year       int
}

// TaxBucketBreakdown is one canonical tax bucket with its expense items.
type TaxBucketBreakdown struct {
	Bucket string          `json:"bucket"`
	Total  decimal.Decimal `json:"total"`
	Items  []LineItem      `json:"items"`
}

// TaxCategorySummary is the flattened per-bucket view for tax filing.
type TaxCategorySummary struct {
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	ItemCount int             `json:"item_count"`
}

// TaxStatement is the tax report shape: expenses grouped by canonical tax
// bucket over a calendar year, with the year's income summed alongside.
type TaxStatement struct {
	Year          int                  `json:"year"`
	Period        PeriodInfo           `json:"period"`
	Summary       Summary              `json:"summary"`
	Buckets       []TaxBucketBreakdown `json:"buckets"`
	TaxCategories []TaxCategorySummary `json:"tax_categories"`
}

// GetTaxReportUseCase generates yearly tax reports.
type GetTaxReportUseCase struct {
	transactionRepo adapter.TransactionRepository
	propertyRepo    adapter.PropertyRepository
	reportRepo      adapter.ReportRepository
	userRepo        adapter.UserRepository
	notifier        adapter.ReportNotifier
	taxBuckets      *valueobject.TaxBucketTable
}

// NewGetTaxReportUseCase creates a new GetTaxReportUseCase instance.
func NewGetTaxReportUseCase(
	transactionRepo adapter.TransactionRepository,
	propertyRepo adapter.PropertyRepository,
	reportRepo adapter.ReportRepository,
	userRepo adapter.UserRepository,
	notifier adapter.ReportNotifier,
	taxBuckets *valueobject.TaxBucketTable,
) *GetTaxReportUseCase {
	return &GetTaxReportUseCase{
		transactionRepo: transactionRepo,
		propertyRepo:    propertyRepo,
		reportRepo:      reportRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		taxBuckets:      taxBuckets,
	}
}

// Execute generates a tax report for the given calendar year.
func (uc *GetTaxReportUseCase) Execute(
	ctx context.Context,
	input GetTaxReportInput,
) (*TaxStatement, error) {
	if input.Year < 1900 || input.Year > time.Now().Year()+1 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportYear,
			"year is out of range",
			domainerror.ErrInvalidReportYear,
		)
	}

	if _, err := verifyPropertyScope(ctx, uc.propertyRepo, input.UserID, input.PropertyID); err != nil {
		return nil, err
	}

	period := valueobject.YearPeriod(input.Year, time.UTC)

	txns, err := fetchScopedTransactions(ctx, uc.transactionRepo, input.UserID, input.PropertyID, period)
	if err != nil {
		return nil, err
	}

	statement := buildTaxReport(txns, input.Year, period, uc.taxBuckets)

	recordStatement(ctx, uc.reportRepo, entity.ReportKindTax, input.UserID, input.PropertyID, period, statement)
	uc.notifyReady(ctx, input.UserID, input.Year)

	return statement, nil
}

// notifyReady emails the user that the tax report is available. Best
// effort: failures are logged and swallowed.
func (uc *GetTaxReportUseCase) notifyReady(ctx context.Context, userID uuid.UUID, year int) {
	if uc.notifier == nil || uc.userRepo == nil {
		return
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		slog.Warn("failed to load user for report notification", "user_id", userID, "error", err)
		return
	}

	if err := uc.notifier.NotifyReportReady(ctx, user.Email, user.Name, entity.ReportKindTax, year); err != nil {
		slog.Warn("failed to send report notification", "user_id", userID, "error", err)
	}
}

// buildTaxReport is the pure tax report builder. Only expense transactions
// contribute to the buckets; income is summed independently for the
// summary. The bucket partition is exhaustive: every expense lands in
// exactly one bucket, so the bucket totals always add up to the period's
// total expenses.
func buildTaxReport(
	txns []*entity.Transaction,
	year int,
	period valueobject.Period,
	taxBuckets *valueobject.TaxBucketTable,
) *TaxStatement {
	summary := summarize(txns)
	_, expenses := partitionByType(txns)

	bucketBreakdowns := breakdownBy(expenses,
		func(t *entity.Transaction) string { return taxBuckets.Resolve(t.TaxCategoryName()) },
		func(t *entity.Transaction) string { return taxBuckets.Resolve(t.TaxCategoryName()) },
	)

	buckets := make([]TaxBucketBreakdown, 0, len(bucketBreakdowns))
	flattened := make([]TaxCategorySummary, 0, len(bucketBreakdowns))
	for _, b := range bucketBreakdowns {
		buckets = append(buckets, TaxBucketBreakdown{
			Bucket: b.Category,
			Total:  b.Total,
			Items:  b.Items,
		})
		flattened = append(flattened, TaxCategorySummary{
			Category:  b.Category,
			Amount:    b.Total,
			ItemCount: len(b.Items),
		})
	}

	return &TaxStatement{
		Year:          year,
		Period:        newPeriodInfo(period),
		Summary:       summary,
		Buckets:       buckets,
		TaxCategories: flattened,
	}
}
