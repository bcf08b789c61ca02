package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
	"github.com/rentfolio/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&model.UserModel{}, &model.PropertyModel{}, &model.TransactionModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        userID.String() + "@example.com",
		PasswordHash: "hash",
		Name:         "Test User",
		Plan:         "free",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return userID
}

func seedTransaction(t *testing.T, repo adapter.TransactionRepository, userID uuid.UUID, txnType entity.TransactionType, amount int64, date time.Time) *entity.Transaction {
	t.Helper()

	txn := entity.NewTransaction(userID, nil, txnType, decimal.NewFromInt(amount), "", "", "", date, nil)
	if err := repo.Create(context.Background(), txn); err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}
	return txn
}

func TestTransactionRepositoryCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	userID := seedUser(t, db)

	created := seedTransaction(t, repo, userID, entity.TransactionTypeIncome, 1200, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))

	found, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != userID {
		t.Errorf("expected user %s, got %s", userID, found.UserID)
	}
	if !found.Amount.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected amount 1200, got %s", found.Amount)
	}
	if found.Category != entity.DefaultIncomeCategory {
		t.Errorf("expected defaulted category, got %q", found.Category)
	}
}

func TestTransactionRepositoryFindByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestTransactionRepositoryFilterDateBounds(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	userID := seedUser(t, db)

	before := seedTransaction(t, repo, userID, entity.TransactionTypeIncome, 100, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC))
	onStart := seedTransaction(t, repo, userID, entity.TransactionTypeIncome, 200, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	inside := seedTransaction(t, repo, userID, entity.TransactionTypeExpense, 300, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC))
	onEnd := seedTransaction(t, repo, userID, entity.TransactionTypeIncome, 400, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	results, err := repo.FindByFilter(context.Background(), adapter.TransactionFilter{
		UserID:    userID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := map[uuid.UUID]bool{}
	for _, txn := range results {
		got[txn.ID] = true
	}
	if !got[onStart.ID] {
		t.Error("start bound must be inclusive")
	}
	if !got[inside.ID] {
		t.Error("expected entry inside the period")
	}
	if got[onEnd.ID] {
		t.Error("end bound must be exclusive")
	}
	if got[before.ID] {
		t.Error("entry before the period must be excluded")
	}
	if len(results) != 2 {
		t.Errorf("expected 2 entries, got %d", len(results))
	}
}

func TestTransactionRepositoryFilterByTypeAndUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	userID := seedUser(t, db)
	otherID := seedUser(t, db)

	seedTransaction(t, repo, userID, entity.TransactionTypeIncome, 1000, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))
	expense := seedTransaction(t, repo, userID, entity.TransactionTypeExpense, 250, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	seedTransaction(t, repo, otherID, entity.TransactionTypeExpense, 999, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))

	expenseType := entity.TransactionTypeExpense
	results, err := repo.FindByFilter(context.Background(), adapter.TransactionFilter{
		UserID: userID,
		Type:   &expenseType,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(results))
	}
	if results[0].ID != expense.ID {
		t.Errorf("expected the owner's expense, got %s", results[0].ID)
	}
}

func TestTransactionRepositoryOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	userID := seedUser(t, db)

	older := seedTransaction(t, repo, userID, entity.TransactionTypeIncome, 100, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := seedTransaction(t, repo, userID, entity.TransactionTypeIncome, 200, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	results, err := repo.FindByFilter(context.Background(), adapter.TransactionFilter{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(results))
	}
	if results[0].ID != newer.ID || results[1].ID != older.ID {
		t.Error("expected entries ordered newest first")
	}
}

func TestTransactionRepositoryNormalizesStoredSign(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	userID := seedUser(t, db)

	// A row written before sign normalization, inserted behind the
	// repository's back.
	now := time.Now().UTC()
	row := &model.TransactionModel{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      string(entity.TransactionTypeExpense),
		Amount:    decimal.NewFromInt(-300),
		Category:  "Roof",
		Date:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to seed row: %v", err)
	}

	found, err := repo.FindByID(context.Background(), row.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found.Amount.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected magnitude 300, got %s", found.Amount)
	}
	if !found.SignedAmount().Equal(decimal.NewFromInt(-300)) {
		t.Errorf("expected signed amount -300, got %s", found.SignedAmount())
	}

	filtered, err := repo.FindByFilter(context.Background(), adapter.TransactionFilter{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filtered) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(filtered))
	}
	if filtered[0].Amount.IsNegative() {
		t.Errorf("filter path handed out a negative magnitude: %s", filtered[0].Amount)
	}
}

func TestTransactionRepositoryDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	userID := seedUser(t, db)

	txn := seedTransaction(t, repo, userID, entity.TransactionTypeExpense, 50, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	if err := repo.Delete(context.Background(), txn.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), txn.ID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound after delete, got %v", err)
	}

	t.Run("deleting a missing transaction reports not found", func(t *testing.T) {
		if err := repo.Delete(context.Background(), uuid.New()); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}
