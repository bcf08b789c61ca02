// Package valueobject defines immutable domain value objects.
package valueobject

import "github.com/rentfolio/backend/internal/domain/entity"

// UnlimitedResources is the sentinel meaning a plan places no cap on a
// resource.
const UnlimitedResources = -1

// PlanLimits holds the per-resource caps for one subscription plan.
type PlanLimits struct {
	MaxProperties   int
	MaxTransactions int
	MaxDocuments    int
}

// PlanLimitTable maps subscription plans to their resource caps. It is
// built once at construction time and never mutated afterwards.
type PlanLimitTable struct {
	limits map[entity.SubscriptionPlan]PlanLimits
}

// NewPlanLimitTable builds the static plan limit table.
func NewPlanLimitTable() *PlanLimitTable {
	return &PlanLimitTable{
		limits: map[entity.SubscriptionPlan]PlanLimits{
			entity.PlanFree:    {MaxProperties: 1, MaxTransactions: 10, MaxDocuments: 5},
			entity.PlanBasic:   {MaxProperties: 5, MaxTransactions: 100, MaxDocuments: 50},
			entity.PlanPremium: {MaxProperties: 25, MaxTransactions: 1000, MaxDocuments: 500},
			entity.PlanEnterprise: {
				MaxProperties:   UnlimitedResources,
				MaxTransactions: UnlimitedResources,
				MaxDocuments:    UnlimitedResources,
			},
		},
	}
}

// LimitsFor returns the caps for the given plan. Unknown plans fall back
// to the free tier, the most restrictive limits.
func (t *PlanLimitTable) LimitsFor(plan entity.SubscriptionPlan) PlanLimits {
	if limits, ok := t.limits[plan]; ok {
		return limits
	}
	return t.limits[entity.PlanFree]
}

// IsUnlimited reports whether a cap carries the unlimited sentinel.
func IsUnlimited(max int) bool {
	return max == UnlimitedResources
}
