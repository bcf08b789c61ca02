// Package usage contains the subscription usage limit gate.
package usage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// CheckLimitsInput represents the input for a gate check.
type CheckLimitsInput struct {
	UserID uuid.UUID
	Plan   entity.SubscriptionPlan
}

// Resource identifies one counted resource kind for a single-resource
// gate check.
type Resource int

const (
	ResourceProperty Resource = iota
	ResourceTransaction
	ResourceDocument
)

// ResourceUsage is the usage snapshot for one resource kind. When the
// plan is unlimited for the resource, Current is zero and was never
// fetched.
type ResourceUsage struct {
	Current   int64 `json:"current"`
	Max       int   `json:"max"`
	Unlimited bool  `json:"unlimited"`
}

// CheckLimitsOutput is the gate decision. It is derived fresh on every
// check and must never be cached.
type CheckLimitsOutput struct {
	CanAddProperty    bool          `json:"can_add_property"`
	CanAddTransaction bool          `json:"can_add_transaction"`
	CanAddDocument    bool          `json:"can_add_document"`
	Properties        ResourceUsage `json:"properties"`
	Transactions      ResourceUsage `json:"transactions"`
	Documents         ResourceUsage `json:"documents"`
}

// CheckLimitsUseCase decides whether new resources may be created under
// the user's subscription plan.
//
// The count-then-compare here is not transactionally atomic with the
// insert that follows it: two concurrent requests can both pass and both
// insert, overshooting the cap by the number of concurrent requests minus
// one. This best-effort semantics is accepted; closing it would require a
// conditional insert in the store.
type CheckLimitsUseCase struct {
	counter adapter.UsageCounter
	limits  *valueobject.PlanLimitTable
}

// NewCheckLimitsUseCase creates a new CheckLimitsUseCase instance.
func NewCheckLimitsUseCase(counter adapter.UsageCounter, limits *valueobject.PlanLimitTable) *CheckLimitsUseCase {
	return &CheckLimitsUseCase{
		counter: counter,
		limits:  limits,
	}
}

// Execute evaluates the gate for all three resource kinds. Unlimited
// resources short-circuit: the live count is not fetched at all.
func (uc *CheckLimitsUseCase) Execute(ctx context.Context, input CheckLimitsInput) (*CheckLimitsOutput, error) {
	limits := uc.limits.LimitsFor(input.Plan)

	properties, err := uc.checkResource(ctx, input.UserID, limits.MaxProperties, uc.counter.CountProperties)
	if err != nil {
		return nil, fmt.Errorf("failed to count properties: %w", err)
	}

	transactions, err := uc.checkResource(ctx, input.UserID, limits.MaxTransactions, uc.counter.CountTransactions)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	documents, err := uc.checkResource(ctx, input.UserID, limits.MaxDocuments, uc.counter.CountDocuments)
	if err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	return &CheckLimitsOutput{
		CanAddProperty:    properties.allowed,
		CanAddTransaction: transactions.allowed,
		CanAddDocument:    documents.allowed,
		Properties:        properties.usage,
		Transactions:      transactions.usage,
		Documents:         documents.usage,
	}, nil
}

// Allow evaluates the gate for a single resource kind. Gating one
// create costs at most one count query; Execute remains the full
// snapshot for the usage endpoint.
func (uc *CheckLimitsUseCase) Allow(
	ctx context.Context,
	userID uuid.UUID,
	plan entity.SubscriptionPlan,
	resource Resource,
) (bool, error) {
	limits := uc.limits.LimitsFor(plan)

	var max int
	var count func(context.Context, uuid.UUID) (int64, error)
	switch resource {
	case ResourceProperty:
		max, count = limits.MaxProperties, uc.counter.CountProperties
	case ResourceTransaction:
		max, count = limits.MaxTransactions, uc.counter.CountTransactions
	case ResourceDocument:
		max, count = limits.MaxDocuments, uc.counter.CountDocuments
	default:
		return false, fmt.Errorf("unknown resource kind %d", resource)
	}

	decision, err := uc.checkResource(ctx, userID, max, count)
	if err != nil {
		return false, fmt.Errorf("failed to count usage: %w", err)
	}
	return decision.allowed, nil
}

type resourceDecision struct {
	allowed bool
	usage   ResourceUsage
}

func (uc *CheckLimitsUseCase) checkResource(
	ctx context.Context,
	userID uuid.UUID,
	max int,
	count func(context.Context, uuid.UUID) (int64, error),
) (resourceDecision, error) {
	if valueobject.IsUnlimited(max) {
		return resourceDecision{
			allowed: true,
			usage:   ResourceUsage{Max: max, Unlimited: true},
		}, nil
	}

	current, err := count(ctx, userID)
	if err != nil {
		return resourceDecision{}, err
	}

	return resourceDecision{
		allowed: current < int64(max),
		usage:   ResourceUsage{Current: current, Max: max},
	}, nil
}
