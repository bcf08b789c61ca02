package analytics

import (
	"errors"
	"testing"

	domainerror "github.com/rentfolio/backend/internal/domain/error"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		token string
		want  Window
	}{
		{"", DefaultWindow},
		{"3months", Window3Months},
		{"6months", Window6Months},
		{"12months", Window12Months},
	}

	for _, tt := range tests {
		got, err := ParseWindow(tt.token)
		if err != nil {
			t.Errorf("token %q: unexpected error: %v", tt.token, err)
			continue
		}
		if got != tt.want {
			t.Errorf("token %q: expected %s, got %s", tt.token, tt.want, got)
		}
	}

	t.Run("invalid token", func(t *testing.T) {
		_, err := ParseWindow("90days")

		var analyticsErr *domainerror.AnalyticsError
		if !errors.As(err, &analyticsErr) || analyticsErr.Code != domainerror.ErrCodeInvalidTrendWindow {
			t.Fatalf("expected invalid window error, got %v", err)
		}
	})
}

func TestWindowMonths(t *testing.T) {
	if Window3Months.Months() != 3 || Window6Months.Months() != 6 || Window12Months.Months() != 12 {
		t.Error("unexpected month lengths")
	}
}
