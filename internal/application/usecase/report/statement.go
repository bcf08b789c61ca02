// Package report contains the financial statement builders. The builders
// themselves are pure functions over already-scoped transaction slices;
// the use cases around them do the fetching and the best-effort audit
// persistence.
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/domain/aggregate"
	"github.com/rentfolio/backend/internal/domain/entity"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// PeriodInfo is the period echo included in every statement.
type PeriodInfo struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func newPeriodInfo(p valueobject.Period) PeriodInfo {
	return PeriodInfo{Start: p.Start, End: p.End}
}

// Summary holds the totals every statement shape shares.
type Summary struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetIncome     decimal.Decimal `json:"net_income"`
}

// LineItem is a single transaction as it appears inside a statement
// breakdown. Statements embed copies of the transaction data, not
// references.
type LineItem struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	TaxBucket   string          `json:"tax_bucket,omitempty"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
}

// CategoryBreakdown is one bucket of a statement breakdown, with its line
// items in original transaction order.
type CategoryBreakdown struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Items    []LineItem      `json:"items"`
}

func lineItemFrom(txn *entity.Transaction, taxBucket string) LineItem {
	return LineItem{
		ID:          txn.ID,
		Description: txn.Description,
		Category:    txn.CategoryOrDefault(),
		TaxBucket:   taxBucket,
		Date:        txn.Date,
		Amount:      txn.Amount,
	}
}

// breakdownBy groups transactions by the supplied key and turns each group
// into a CategoryBreakdown. Group order is first-seen; item order within a
// group is the input order.
func breakdownBy(
	txns []*entity.Transaction,
	key func(*entity.Transaction) string,
	taxBucket func(*entity.Transaction) string,
) []CategoryBreakdown {
	keys, groups := aggregate.GroupBy(txns, key)

	breakdowns := make([]CategoryBreakdown, 0, len(keys))
	for _, k := range keys {
		group := groups[k]
		items := make([]LineItem, 0, len(group))
		total := decimal.Zero
		for _, txn := range group {
			bucket := ""
			if taxBucket != nil {
				bucket = taxBucket(txn)
			}
			items = append(items, lineItemFrom(txn, bucket))
			total = total.Add(txn.Amount)
		}
		breakdowns = append(breakdowns, CategoryBreakdown{
			Category: k,
			Total:    total,
			Items:    items,
		})
	}
	return breakdowns
}

// summarize computes the shared totals over a transaction slice.
func summarize(txns []*entity.Transaction) Summary {
	amount := func(t *entity.Transaction) decimal.Decimal { return t.Amount }

	totalIncome := aggregate.SumWhere(txns, amount, (*entity.Transaction).IsIncome)
	totalExpenses := aggregate.SumWhere(txns, amount, (*entity.Transaction).IsExpense)

	return Summary{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetIncome:     totalIncome.Sub(totalExpenses),
	}
}

// ratioPercent returns part/whole*100, or zero when the denominator is
// zero. Same zero-guard policy as the growth rate primitive.
func ratioPercent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100))
}

// sortedByDateAsc returns a date-ascending copy of the slice. The store
// hands out rows newest first; builders that bucket by month want oldest
// first.
func sortedByDateAsc(txns []*entity.Transaction) []*entity.Transaction {
	sorted := make([]*entity.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

func partitionByType(txns []*entity.Transaction) (income, expenses []*entity.Transaction) {
	for _, txn := range txns {
		if txn.IsIncome() {
			income = append(income, txn)
		} else {
			expenses = append(expenses, txn)
		}
	}
	return income, expenses
}
