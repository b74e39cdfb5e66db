package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const monthsPerYear = 12

// InterestResult holds the outcome of one accrual computation.
type InterestResult struct {
	MonthsHeld     int
	InterestEarned decimal.Decimal
	EndingBalance  decimal.Decimal
}

// MonthsHeld returns the number of whole calendar months between start and
// end. A month counts only once its day-of-month anniversary has passed, so
// partial months are truncated. Never negative.
func MonthsHeld(start, end time.Time) int {
	months := (end.Year()-start.Year())*monthsPerYear + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// Accrue compounds principal at yearlyReturnPercent/12/100 per month over
// months. EndingBalance and InterestEarned are each rounded to 2 decimal
// places independently, half away from zero.
func Accrue(principal, yearlyReturnPercent decimal.Decimal, months int) InterestResult {
	if months <= 0 {
		return InterestResult{
			MonthsHeld:     0,
			InterestEarned: decimal.Zero,
			EndingBalance:  principal,
		}
	}

	monthlyRate := yearlyReturnPercent.Div(decimal.NewFromInt(monthsPerYear * 100))
	factor := decimal.NewFromInt(1).Add(monthlyRate).Pow(decimal.NewFromInt(int64(months)))
	ending := principal.Mul(factor)

	return InterestResult{
		MonthsHeld:     months,
		InterestEarned: ending.Sub(principal).Round(2),
		EndingBalance:  ending.Round(2),
	}
}

// AccrueBetween computes the interest owed on principal deposited at
// depositDate and withdrawn at withdrawalDate.
func AccrueBetween(principal, yearlyReturnPercent decimal.Decimal, depositDate, withdrawalDate time.Time) InterestResult {
	return Accrue(principal, yearlyReturnPercent, MonthsHeld(depositDate, withdrawalDate))
}
