package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// Lookup errors
	ErrAccountNotFound      = errors.New("account not found")
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrDepositoTypeNotFound = errors.New("deposito type not found")
	ErrTransactionNotFound  = errors.New("transaction not found")

	// Transaction errors
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrLockTimeout         = errors.New("timed out waiting for account lock")

	// Generic operational failures. Storage errors are logged with full
	// detail and surfaced to callers as one of these.
	ErrDepositFailed    = errors.New("deposit transaction failed")
	ErrWithdrawalFailed = errors.New("withdrawal transaction failed")
)

// InsufficientBalanceError reports how much was available versus requested.
// It unwraps to ErrInsufficientBalance for errors.Is checks.
type InsufficientBalanceError struct {
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: available %s, requested %s",
		e.Available.StringFixed(2), e.Requested.StringFixed(2))
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}
