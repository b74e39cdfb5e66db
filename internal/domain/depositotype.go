package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositoType defines the yearly return rate applied to accounts of that
// type. Immutable from the core's point of view.
type DepositoType struct {
	ID           string
	Name         string
	YearlyReturn decimal.Decimal // percent, 0-100
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MonthlyRate converts the yearly percentage to a monthly decimal fraction.
func (d *DepositoType) MonthlyRate() decimal.Decimal {
	return d.YearlyReturn.Div(decimal.NewFromInt(monthsPerYear * 100))
}
