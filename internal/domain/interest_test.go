package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harisblablabla/go-bank-system/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthsHeld(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"day before anniversary", date(2024, time.January, 15), date(2024, time.July, 14), 5},
		{"on anniversary", date(2024, time.January, 15), date(2024, time.July, 15), 6},
		{"end before start", date(2024, time.January, 15), date(2024, time.January, 10), 0},
		{"same day", date(2024, time.March, 1), date(2024, time.March, 1), 0},
		{"same month later day", date(2024, time.March, 1), date(2024, time.March, 31), 0},
		{"across years", date(2022, time.November, 20), date(2024, time.November, 20), 24},
		{"across years day before", date(2022, time.November, 20), date(2024, time.November, 19), 23},
		{"end in earlier month of later year", date(2023, time.December, 31), date(2024, time.January, 30), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain.MonthsHeld(tt.start, tt.end); got != tt.want {
				t.Errorf("MonthsHeld(%s, %s) = %d, want %d",
					tt.start.Format("2006-01-02"), tt.end.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestAccrue(t *testing.T) {
	principal := decimal.NewFromInt(1_000_000)
	rate := decimal.NewFromFloat(6.0)

	result := domain.Accrue(principal, rate, 6)

	// monthlyRate = 0.005; 1_000_000 * 1.005^6 = 1_030_377.509393765625
	wantEnding := decimal.RequireFromString("1030377.51")
	wantInterest := decimal.RequireFromString("30377.51")

	if result.MonthsHeld != 6 {
		t.Errorf("months held = %d, want 6", result.MonthsHeld)
	}
	if !result.EndingBalance.Equal(wantEnding) {
		t.Errorf("ending balance = %s, want %s", result.EndingBalance, wantEnding)
	}
	if !result.InterestEarned.Equal(wantInterest) {
		t.Errorf("interest earned = %s, want %s", result.InterestEarned, wantInterest)
	}
}

func TestAccrueZeroMonths(t *testing.T) {
	principal := decimal.RequireFromString("1234.56")

	result := domain.Accrue(principal, decimal.NewFromFloat(5.5), 0)

	if !result.InterestEarned.IsZero() {
		t.Errorf("interest for 0 months = %s, want 0", result.InterestEarned)
	}
	if !result.EndingBalance.Equal(principal) {
		t.Errorf("ending balance for 0 months = %s, want %s", result.EndingBalance, principal)
	}
}

func TestAccrueZeroRate(t *testing.T) {
	principal := decimal.NewFromInt(500)

	result := domain.Accrue(principal, decimal.Zero, 12)

	if !result.InterestEarned.IsZero() {
		t.Errorf("interest at 0%% = %s, want 0", result.InterestEarned)
	}
	if !result.EndingBalance.Equal(principal) {
		t.Errorf("ending balance at 0%% = %s, want %s", result.EndingBalance, principal)
	}
}

func TestAccrueBetween(t *testing.T) {
	principal := decimal.NewFromInt(1_000_000)
	rate := decimal.NewFromFloat(6.0)

	result := domain.AccrueBetween(principal, rate, date(2024, time.January, 15), date(2024, time.July, 15))

	if result.MonthsHeld != 6 {
		t.Errorf("months held = %d, want 6", result.MonthsHeld)
	}
	if !result.EndingBalance.Equal(decimal.RequireFromString("1030377.51")) {
		t.Errorf("ending balance = %s", result.EndingBalance)
	}
}
