package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func txn(txnType entity.TransactionType, amount int64, category string, taxCategory *string, day time.Time) *entity.Transaction {
	return entity.NewTransaction(
		uuid.New(), nil, txnType,
		decimal.NewFromInt(amount), category, "", "", day, taxCategory,
	)
}

func strPtr(s string) *string { return &s }

func testPeriod() valueobject.Period {
	return valueobject.NewPeriod(date(2024, time.January, 1), date(2025, time.January, 1))
}

func TestBuildProfitLoss(t *testing.T) {
	taxBuckets := valueobject.NewTaxBucketTable()

	t.Run("income and expense totals", func(t *testing.T) {
		txns := []*entity.Transaction{
			txn(entity.TransactionTypeIncome, 1000, "Rent", nil, date(2024, time.March, 1)),
			txn(entity.TransactionTypeExpense, 300, "Maintenance & Repairs", nil, date(2024, time.March, 10)),
		}

		statement := buildProfitLoss(txns, testPeriod(), taxBuckets)

		if !statement.Summary.TotalIncome.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected income 1000, got %s", statement.Summary.TotalIncome)
		}
		if !statement.Summary.TotalExpenses.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected expenses 300, got %s", statement.Summary.TotalExpenses)
		}
		if !statement.Summary.NetIncome.Equal(decimal.NewFromInt(700)) {
			t.Errorf("expected net 700, got %s", statement.Summary.NetIncome)
		}
		if !statement.Summary.ProfitMargin.Equal(decimal.NewFromInt(70)) {
			t.Errorf("expected margin 70, got %s", statement.Summary.ProfitMargin)
		}
	})

	t.Run("empty period yields zero statement", func(t *testing.T) {
		statement := buildProfitLoss(nil, testPeriod(), taxBuckets)

		if !statement.Summary.TotalIncome.IsZero() || !statement.Summary.NetIncome.IsZero() {
			t.Errorf("expected zero summary, got %+v", statement.Summary)
		}
		if !statement.Summary.ProfitMargin.IsZero() {
			t.Errorf("expected zero margin, got %s", statement.Summary.ProfitMargin)
		}
		if len(statement.Income) != 0 || len(statement.Expenses) != 0 {
			t.Error("expected empty breakdowns")
		}
	})

	t.Run("expenses grouped by resolved tax bucket", func(t *testing.T) {
		txns := []*entity.Transaction{
			txn(entity.TransactionTypeExpense, 200, "Plumbing", strPtr("Repairs & Maintenance"), date(2024, time.April, 1)),
			txn(entity.TransactionTypeExpense, 100, "Landscaping", strPtr("Gardening"), date(2024, time.April, 2)),
			txn(entity.TransactionTypeExpense, 50, "Misc", nil, date(2024, time.April, 3)),
		}

		statement := buildProfitLoss(txns, testPeriod(), taxBuckets)

		if len(statement.Expenses) != 2 {
			t.Fatalf("expected 2 expense buckets, got %d", len(statement.Expenses))
		}
		if statement.Expenses[0].Category != "Repairs & Maintenance" {
			t.Errorf("unexpected first bucket: %s", statement.Expenses[0].Category)
		}
		// The unknown tax category and the absent one share the fallback.
		if statement.Expenses[1].Category != valueobject.FallbackTaxBucket {
			t.Errorf("unexpected second bucket: %s", statement.Expenses[1].Category)
		}
		if !statement.Expenses[1].Total.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected fallback total 150, got %s", statement.Expenses[1].Total)
		}
	})
}

func TestBuildTaxReportBucketPartition(t *testing.T) {
	taxBuckets := valueobject.NewTaxBucketTable()

	txns := []*entity.Transaction{
		txn(entity.TransactionTypeIncome, 5000, "Rent", nil, date(2024, time.February, 1)),
		txn(entity.TransactionTypeExpense, 250, "Plumbing", strPtr("Repairs & Maintenance"), date(2024, time.May, 5)),
		txn(entity.TransactionTypeExpense, 500, "Premium", strPtr("Insurance"), date(2024, time.June, 1)),
		txn(entity.TransactionTypeExpense, 90, "Misc", nil, date(2024, time.July, 1)),
	}

	statement := buildTaxReport(txns, 2024, valueobject.YearPeriod(2024, time.UTC), taxBuckets)

	if statement.Year != 2024 {
		t.Errorf("expected year 2024, got %d", statement.Year)
	}

	// Income never contributes to buckets.
	bucketTotal := decimal.Zero
	for _, b := range statement.Buckets {
		bucketTotal = bucketTotal.Add(b.Total)
	}
	if !bucketTotal.Equal(statement.Summary.TotalExpenses) {
		t.Errorf("bucket totals %s must sum to total expenses %s", bucketTotal, statement.Summary.TotalExpenses)
	}
	if !statement.Summary.TotalIncome.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected income 5000, got %s", statement.Summary.TotalIncome)
	}

	if len(statement.TaxCategories) != len(statement.Buckets) {
		t.Error("flattened view should mirror the buckets")
	}
}

func TestBuildCashFlowMonthlyNets(t *testing.T) {
	txns := []*entity.Transaction{
		txn(entity.TransactionTypeIncome, 1000, "Rent", nil, date(2024, time.January, 5)),
		txn(entity.TransactionTypeExpense, 200, "Utilities", nil, date(2024, time.January, 20)),
		txn(entity.TransactionTypeIncome, 1000, "Rent", nil, date(2024, time.February, 5)),
		txn(entity.TransactionTypeExpense, 1500, "Roof", nil, date(2024, time.February, 10)),
	}

	statement := buildCashFlow(txns, testPeriod())

	if len(statement.Months) != 2 {
		t.Fatalf("expected 2 months, got %d", len(statement.Months))
	}

	january := statement.Months[0]
	if january.Month != "2024-01" || !january.NetCashFlow.Equal(decimal.NewFromInt(800)) {
		t.Errorf("expected 2024-01 net 800, got %s net %s", january.Month, january.NetCashFlow)
	}

	// Monthly nets are per-month, not cumulative: February stands alone.
	february := statement.Months[1]
	if !february.NetCashFlow.Equal(decimal.NewFromInt(-500)) {
		t.Errorf("expected 2024-02 net -500, got %s", february.NetCashFlow)
	}

	if !statement.Summary.NetCashFlow.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected summary net 300, got %s", statement.Summary.NetCashFlow)
	}
}

func TestBuildCashFlowOrdersMonthsAscending(t *testing.T) {
	// The store hands out rows newest first.
	txns := []*entity.Transaction{
		txn(entity.TransactionTypeIncome, 10, "Rent", nil, date(2024, time.March, 1)),
		txn(entity.TransactionTypeIncome, 10, "Rent", nil, date(2024, time.January, 1)),
	}

	statement := buildCashFlow(txns, testPeriod())

	if statement.Months[0].Month != "2024-01" || statement.Months[1].Month != "2024-03" {
		t.Errorf("expected ascending months, got %s then %s",
			statement.Months[0].Month, statement.Months[1].Month)
	}
}

func TestBuildIncomeStatement(t *testing.T) {
	t.Run("both sides keyed by raw category", func(t *testing.T) {
		// Tax categories must not leak into the grouping here.
		txns := []*entity.Transaction{
			txn(entity.TransactionTypeIncome, 1200, "Rent", nil, date(2024, time.March, 1)),
			txn(entity.TransactionTypeIncome, 50, "Parking", nil, date(2024, time.March, 2)),
			txn(entity.TransactionTypeExpense, 200, "Plumbing", strPtr("Repairs & Maintenance"), date(2024, time.March, 5)),
			txn(entity.TransactionTypeExpense, 100, "Landscaping", strPtr("Repairs & Maintenance"), date(2024, time.March, 6)),
		}

		statement := buildIncomeStatement(txns, nil, testPeriod())

		if len(statement.Income) != 2 {
			t.Fatalf("expected 2 income categories, got %d", len(statement.Income))
		}
		if statement.Income[0].Category != "Rent" || statement.Income[1].Category != "Parking" {
			t.Errorf("unexpected income categories: %s, %s",
				statement.Income[0].Category, statement.Income[1].Category)
		}

		// The two expenses share a tax bucket but keep separate categories.
		if len(statement.Expenses) != 2 {
			t.Fatalf("expected 2 expense categories, got %d", len(statement.Expenses))
		}
		if statement.Expenses[0].Category != "Plumbing" || statement.Expenses[1].Category != "Landscaping" {
			t.Errorf("unexpected expense categories: %s, %s",
				statement.Expenses[0].Category, statement.Expenses[1].Category)
		}

		if !statement.Summary.NetIncome.Equal(decimal.NewFromInt(950)) {
			t.Errorf("expected net 950, got %s", statement.Summary.NetIncome)
		}
	})

	t.Run("property context applies value and rent defaults", func(t *testing.T) {
		bare := entity.NewProperty(
			uuid.New(), "Elm Street", "12 Elm St", entity.PropertyTypeSingleFamily,
			decimal.NewFromInt(250000), nil, nil, 1, nil,
		)
		rent := decimal.NewFromInt(1800)
		estimate := decimal.NewFromInt(310000)
		appraised := entity.NewProperty(
			uuid.New(), "Oak Duplex", "4 Oak Ave", entity.PropertyTypeMultiFamily,
			decimal.NewFromInt(280000), &estimate, &rent, 2, nil,
		)

		statement := buildIncomeStatement(nil, []*entity.Property{bare, appraised}, testPeriod())

		if len(statement.Properties) != 2 {
			t.Fatalf("expected 2 property contexts, got %d", len(statement.Properties))
		}

		first := statement.Properties[0]
		if !first.EstimatedValue.Equal(decimal.NewFromInt(250000)) {
			t.Errorf("no estimate recorded, value should fall back to purchase price, got %s", first.EstimatedValue)
		}
		if !first.MonthlyRent.IsZero() {
			t.Errorf("no rent recorded, expected zero, got %s", first.MonthlyRent)
		}

		second := statement.Properties[1]
		if !second.EstimatedValue.Equal(estimate) || !second.MonthlyRent.Equal(rent) {
			t.Errorf("recorded values must pass through, got %s / %s",
				second.EstimatedValue, second.MonthlyRent)
		}
	})
}

// Fakes for the Execute paths.

type fakeTransactionRepo struct {
	txns []*entity.Transaction
	err  error
}

func (f *fakeTransactionRepo) Create(context.Context, *entity.Transaction) error { return nil }
func (f *fakeTransactionRepo) FindByID(context.Context, uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}
func (f *fakeTransactionRepo) FindByFilter(context.Context, adapter.TransactionFilter) ([]*entity.Transaction, error) {
	return f.txns, f.err
}
func (f *fakeTransactionRepo) Update(context.Context, *entity.Transaction) error { return nil }
func (f *fakeTransactionRepo) Delete(context.Context, uuid.UUID) error           { return nil }

type fakePropertyRepo struct {
	property *entity.Property
}

func (f *fakePropertyRepo) Create(context.Context, *entity.Property) error { return nil }
func (f *fakePropertyRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Property, error) {
	if f.property != nil && f.property.ID == id {
		return f.property, nil
	}
	return nil, domainerror.ErrPropertyNotFound
}
func (f *fakePropertyRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.Property, error) {
	if f.property == nil {
		return nil, nil
	}
	return []*entity.Property{f.property}, nil
}
func (f *fakePropertyRepo) Update(context.Context, *entity.Property) error { return nil }
func (f *fakePropertyRepo) Delete(context.Context, uuid.UUID) error        { return nil }

type fakeReportRepo struct {
	saved []*entity.ReportRecord
	err   error
}

func (f *fakeReportRepo) Save(_ context.Context, record *entity.ReportRecord) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, record)
	return nil
}

func TestGetProfitLossExecute(t *testing.T) {
	userID := uuid.New()
	taxBuckets := valueobject.NewTaxBucketTable()

	t.Run("records an audit snapshot", func(t *testing.T) {
		reportRepo := &fakeReportRepo{}
		uc := NewGetProfitLossUseCase(
			&fakeTransactionRepo{txns: []*entity.Transaction{
				txn(entity.TransactionTypeIncome, 100, "Rent", nil, date(2024, time.March, 1)),
			}},
			&fakePropertyRepo{}, reportRepo, taxBuckets,
		)

		_, err := uc.Execute(context.Background(), GetProfitLossInput{
			UserID: userID,
			Period: testPeriod(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reportRepo.saved) != 1 {
			t.Fatalf("expected 1 audit record, got %d", len(reportRepo.saved))
		}
		if reportRepo.saved[0].Kind != entity.ReportKindProfitLoss {
			t.Errorf("unexpected record kind: %s", reportRepo.saved[0].Kind)
		}
	})

	t.Run("audit failure never fails the report", func(t *testing.T) {
		uc := NewGetProfitLossUseCase(
			&fakeTransactionRepo{},
			&fakePropertyRepo{},
			&fakeReportRepo{err: errors.New("audit store down")},
			taxBuckets,
		)

		statement, err := uc.Execute(context.Background(), GetProfitLossInput{
			UserID: userID,
			Period: testPeriod(),
		})
		if err != nil {
			t.Fatalf("report must succeed despite audit failure, got %v", err)
		}
		if statement == nil {
			t.Fatal("expected a statement")
		}
	})

	t.Run("inverted period is rejected", func(t *testing.T) {
		uc := NewGetProfitLossUseCase(
			&fakeTransactionRepo{}, &fakePropertyRepo{}, &fakeReportRepo{}, taxBuckets)

		_, err := uc.Execute(context.Background(), GetProfitLossInput{
			UserID: userID,
			Period: valueobject.NewPeriod(date(2024, time.June, 1), date(2024, time.January, 1)),
		})

		var reportErr *domainerror.ReportError
		if !errors.As(err, &reportErr) || reportErr.Code != domainerror.ErrCodeInvalidReportPeriod {
			t.Fatalf("expected invalid period error, got %v", err)
		}
	})

	t.Run("another user's property reads as not found", func(t *testing.T) {
		other := entity.NewProperty(
			uuid.New(), "Not Mine", "", entity.PropertyTypeSingleFamily,
			decimal.NewFromInt(100000), nil, nil, 1, nil,
		)
		uc := NewGetProfitLossUseCase(
			&fakeTransactionRepo{}, &fakePropertyRepo{property: other}, &fakeReportRepo{}, taxBuckets)

		_, err := uc.Execute(context.Background(), GetProfitLossInput{
			UserID:     userID,
			PropertyID: &other.ID,
			Period:     testPeriod(),
		})

		var reportErr *domainerror.ReportError
		if !errors.As(err, &reportErr) || reportErr.Code != domainerror.ErrCodeReportPropertyNotFound {
			t.Fatalf("expected property not found error, got %v", err)
		}
	})
}

func TestGetTaxReportExecuteYearBounds(t *testing.T) {
	uc := NewGetTaxReportUseCase(
		&fakeTransactionRepo{}, &fakePropertyRepo{}, &fakeReportRepo{},
		nil, nil, valueobject.NewTaxBucketTable(),
	)

	for _, year := range []int{1899, time.Now().Year() + 2} {
		_, err := uc.Execute(context.Background(), GetTaxReportInput{
			UserID: uuid.New(),
			Year:   year,
		})
		var reportErr *domainerror.ReportError
		if !errors.As(err, &reportErr) || reportErr.Code != domainerror.ErrCodeInvalidReportYear {
			t.Errorf("year %d: expected invalid year error, got %v", year, err)
		}
	}
}
