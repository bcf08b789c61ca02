package usage

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/domain/entity"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// countingFake counts how many times each counter was consulted.
type countingFake struct {
	properties   int64
	transactions int64
	documents    int64
	calls        int
	err          error
}

func (f *countingFake) CountProperties(context.Context, uuid.UUID) (int64, error) {
	f.calls++
	return f.properties, f.err
}

func (f *countingFake) CountTransactions(context.Context, uuid.UUID) (int64, error) {
	f.calls++
	return f.transactions, f.err
}

func (f *countingFake) CountDocuments(context.Context, uuid.UUID) (int64, error) {
	f.calls++
	return f.documents, f.err
}

func TestCheckLimitsFreePlan(t *testing.T) {
	counter := &countingFake{properties: 0, transactions: 10, documents: 4}
	uc := NewCheckLimitsUseCase(counter, valueobject.NewPlanLimitTable())

	out, err := uc.Execute(context.Background(), CheckLimitsInput{
		UserID: uuid.New(),
		Plan:   entity.PlanFree,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.CanAddProperty {
		t.Error("0 of 1 properties used, adding should be allowed")
	}
	// The cap is reached exactly, not exceeded.
	if out.CanAddTransaction {
		t.Error("10 of 10 transactions used, adding should be denied")
	}
	if !out.CanAddDocument {
		t.Error("4 of 5 documents used, adding should be allowed")
	}

	if out.Transactions.Current != 10 || out.Transactions.Max != 10 {
		t.Errorf("unexpected transaction usage: %+v", out.Transactions)
	}
	if out.Properties.Unlimited || out.Transactions.Unlimited || out.Documents.Unlimited {
		t.Error("free plan resources are never unlimited")
	}
}

func TestCheckLimitsEnterpriseSkipsCounting(t *testing.T) {
	counter := &countingFake{err: errors.New("store must not be consulted")}
	uc := NewCheckLimitsUseCase(counter, valueobject.NewPlanLimitTable())

	out, err := uc.Execute(context.Background(), CheckLimitsInput{
		UserID: uuid.New(),
		Plan:   entity.PlanEnterprise,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if counter.calls != 0 {
		t.Errorf("unlimited plan must not fetch counts, got %d calls", counter.calls)
	}
	if !out.CanAddProperty || !out.CanAddTransaction || !out.CanAddDocument {
		t.Error("everything is allowed on an unlimited plan")
	}
	if !out.Properties.Unlimited || !out.Transactions.Unlimited || !out.Documents.Unlimited {
		t.Error("all resources should report unlimited")
	}
	if out.Properties.Current != 0 {
		t.Error("current count is never fetched for unlimited resources")
	}
}

func TestCheckLimitsUnknownPlanFallsBackToFree(t *testing.T) {
	counter := &countingFake{properties: 1}
	uc := NewCheckLimitsUseCase(counter, valueobject.NewPlanLimitTable())

	out, err := uc.Execute(context.Background(), CheckLimitsInput{
		UserID: uuid.New(),
		Plan:   entity.SubscriptionPlan("gold"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.CanAddProperty {
		t.Error("unknown plans use the free tier's single property cap")
	}
}

func TestAllowQueriesOnlyTheGatedResource(t *testing.T) {
	counter := &countingFake{properties: 1, transactions: 3}
	uc := NewCheckLimitsUseCase(counter, valueobject.NewPlanLimitTable())

	allowed, err := uc.Allow(context.Background(), uuid.New(), entity.PlanFree, ResourceTransaction)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Error("3 of 10 transactions used, adding should be allowed")
	}
	if counter.calls != 1 {
		t.Errorf("gating one create should cost one count query, got %d", counter.calls)
	}

	t.Run("denies at the cap", func(t *testing.T) {
		allowed, err := uc.Allow(context.Background(), uuid.New(), entity.PlanFree, ResourceProperty)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if allowed {
			t.Error("1 of 1 properties used, adding should be denied")
		}
	})

	t.Run("unlimited plan skips the counter", func(t *testing.T) {
		failing := &countingFake{err: errors.New("store must not be consulted")}
		uc := NewCheckLimitsUseCase(failing, valueobject.NewPlanLimitTable())

		allowed, err := uc.Allow(context.Background(), uuid.New(), entity.PlanEnterprise, ResourceDocument)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed || failing.calls != 0 {
			t.Errorf("expected allowed without counting, got allowed=%v calls=%d", allowed, failing.calls)
		}
	})
}

func TestCheckLimitsCounterFailure(t *testing.T) {
	counter := &countingFake{err: errors.New("db down")}
	uc := NewCheckLimitsUseCase(counter, valueobject.NewPlanLimitTable())

	_, err := uc.Execute(context.Background(), CheckLimitsInput{
		UserID: uuid.New(),
		Plan:   entity.PlanBasic,
	})
	if err == nil {
		t.Fatal("expected an error when the counter fails")
	}
}
