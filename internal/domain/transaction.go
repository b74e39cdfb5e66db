package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind discriminates the two balance-mutating operations.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "DEPOSIT"
	KindWithdrawal TransactionKind = "WITHDRAWAL"
)

// Transaction is the immutable record of one balance change. It is appended
// exactly once per successful operation and never updated or deleted on its
// own; deleting an account cascades its transactions.
type Transaction struct {
	ID              string
	AccountID       string
	Kind            TransactionKind
	Amount          decimal.Decimal
	TransactionDate time.Time
	BalanceBefore   decimal.Decimal
	BalanceAfter    decimal.Decimal
	MonthsHeld      int
	InterestEarned  decimal.Decimal
	CreatedAt       time.Time
}

// SignedAmount is the net balance delta this transaction applied. For a
// withdrawal the interest credit lands before the debit, so the delta is
// interest minus amount.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == KindWithdrawal {
		return t.InterestEarned.Sub(t.Amount)
	}
	return t.Amount
}

// Validate checks the internal consistency of a transaction record.
func (t *Transaction) Validate() error {
	if t.Kind != KindDeposit && t.Kind != KindWithdrawal {
		return fmt.Errorf("invalid transaction kind %q", t.Kind)
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if t.MonthsHeld < 0 {
		return fmt.Errorf("months held must not be negative, got %d", t.MonthsHeld)
	}
	if t.InterestEarned.IsNegative() {
		return fmt.Errorf("interest earned must not be negative, got %s", t.InterestEarned)
	}
	if !t.BalanceAfter.Equal(t.BalanceBefore.Add(t.SignedAmount())) {
		return fmt.Errorf("balance after %s does not equal balance before %s plus signed amount %s",
			t.BalanceAfter, t.BalanceBefore, t.SignedAmount())
	}
	return nil
}

// ReplayBalance folds a transaction history over a zero starting balance.
// For a consistent ledger the result equals the account's stored balance.
func ReplayBalance(transactions []*Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range transactions {
		balance = balance.Add(t.SignedAmount())
	}
	return balance
}
