// Package valueobject defines immutable domain value objects.
package valueobject

import "time"

// Period is a half-open date interval [Start, End). All report scoping is
// expressed through periods.
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod creates a period from explicit bounds.
func NewPeriod(start, end time.Time) Period {
	return Period{Start: start, End: end}
}

// DefaultPeriod returns the period used when a caller supplies none:
// January 1 of the current year through now.
func DefaultPeriod(now time.Time) Period {
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	return Period{Start: start, End: now}
}

// YearPeriod returns the full calendar year used by tax reports.
func YearPeriod(year int, loc *time.Location) Period {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return Period{Start: start, End: start.AddDate(1, 0, 0)}
}

// TrailingWindow returns the trailing N-month period ending now.
func TrailingWindow(now time.Time, months int) Period {
	return Period{Start: now.AddDate(0, -months, 0), End: now}
}

// Contains reports whether t falls inside the half-open interval.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// IsZero reports whether neither bound has been set.
func (p Period) IsZero() bool {
	return p.Start.IsZero() && p.End.IsZero()
}

// Valid reports whether the bounds are ordered.
func (p Period) Valid() bool {
	return !p.End.Before(p.Start)
}
