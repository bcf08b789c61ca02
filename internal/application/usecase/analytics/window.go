// Package analytics contains portfolio analytics use cases.
package analytics

import (
	domainerror "github.com/rentfolio/backend/internal/domain/error"
)

// Window is a trailing period selector relative to "now", as opposed to a
// fixed calendar period.
type Window string

const (
	Window3Months  Window = "3months"
	Window6Months  Window = "6months"
	Window12Months Window = "12months"
)

// DefaultWindow is applied when a caller supplies no window token.
const DefaultWindow = Window6Months

// ParseWindow validates a window token, applying the default for the
// empty string.
func ParseWindow(token string) (Window, error) {
	switch Window(token) {
	case "":
		return DefaultWindow, nil
	case Window3Months, Window6Months, Window12Months:
		return Window(token), nil
	default:
		return "", domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidTrendWindow,
			"window must be: 3months, 6months, or 12months",
			domainerror.ErrInvalidTrendWindow,
		)
	}
}

// Months returns the window length in months.
func (w Window) Months() int {
	switch w {
	case Window3Months:
		return 3
	case Window12Months:
		return 12
	default:
		return 6
	}
}
