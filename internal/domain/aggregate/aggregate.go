// Package aggregate provides the reusable numeric folds the reporting and
// analytics builders are composed from. Everything here is pure: no I/O,
// no state, and explicit zero-value policies instead of NaN/Infinity.
package aggregate

import (
	"time"

	"github.com/shopspring/decimal"
)

// SumWhere sums the extracted amount over items satisfying the predicate.
// An empty input sums to zero.
func SumWhere[T any](items []T, amount func(T) decimal.Decimal, pred func(T) bool) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if pred(item) {
			total = total.Add(amount(item))
		}
	}
	return total
}

// GroupBy groups items by the extracted key. Keys are returned in
// first-seen order; items within each group keep the input order.
func GroupBy[T any, K comparable](items []T, key func(T) K) ([]K, map[K][]T) {
	keys := make([]K, 0)
	groups := make(map[K][]T)
	for _, item := range items {
		k := key(item)
		if _, seen := groups[k]; !seen {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], item)
	}
	return keys, groups
}

// Average returns the mean of the values. An empty input averages to zero;
// returning zero instead of NaN keeps downstream formatting safe.
func Average(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	return decimal.Avg(values[0], values[1:]...)
}

// MonthKey formats a date as "YYYY-MM" using its local calendar year and
// zero-padded month.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// Sample is a dated value in a metric series.
type Sample struct {
	Date  time.Time
	Value decimal.Decimal
}

// TrendPoint is one month of a trend series.
type TrendPoint struct {
	Month string          `json:"month"`
	Value decimal.Decimal `json:"value"`
}

// BucketByMonth groups samples by calendar month and reduces each bucket
// to the MEAN of its values, not the sum: the metrics rolled up this way
// (occupancy rate, ROI, cap rate) are point-in-time ratios, and averaging
// multiple samples within a month is the correct rollup. Months with no
// samples are absent from the output, not zero-filled. Output order
// follows first-seen month order of the input, which callers keep sorted
// ascending by date.
func BucketByMonth(samples []Sample) []TrendPoint {
	months, buckets := GroupBy(samples, func(s Sample) string {
		return MonthKey(s.Date)
	})

	points := make([]TrendPoint, 0, len(months))
	for _, month := range months {
		values := make([]decimal.Decimal, 0, len(buckets[month]))
		for _, s := range buckets[month] {
			values = append(values, s.Value)
		}
		points = append(points, TrendPoint{Month: month, Value: Average(values)})
	}
	return points
}

// GrowthRate returns the percentage growth between the first and last
// sample of an ascending-sorted series. It is exactly zero when fewer than
// two samples exist or when the first value is zero; the latter is a
// deliberate policy to avoid division by zero, not a numerical accident.
func GrowthRate(sortedAsc []Sample) decimal.Decimal {
	if len(sortedAsc) < 2 {
		return decimal.Zero
	}

	first := sortedAsc[0].Value
	last := sortedAsc[len(sortedAsc)-1].Value
	if first.IsZero() {
		return decimal.Zero
	}

	return last.Sub(first).Div(first).Mul(decimal.NewFromInt(100))
}
