package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a savings account tied to a deposito type.
// Balance is the only field the transaction orchestrator mutates; everything
// else is owned by the account-management collaborator.
type Account struct {
	ID             string
	CustomerID     string
	DepositoTypeID string
	Packet         string
	Balance        decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ValidateWithdrawal checks that amount can be withdrawn from the current
// balance. Interest is credited only after this check passes, so a request
// above the raw balance always fails regardless of accrual.
func (a *Account) ValidateWithdrawal(amount decimal.Decimal) error {
	if amount.GreaterThan(a.Balance) {
		return &InsufficientBalanceError{
			Available: a.Balance,
			Requested: amount,
		}
	}
	return nil
}

// ApplyDeposit returns the new balance after crediting amount.
func (a *Account) ApplyDeposit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}
