package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/harisblablabla/go-bank-system/internal/domain"
)

var (
	// ErrInconsistentLedger is returned when replaying an account's
	// transaction log does not reproduce its stored balance.
	ErrInconsistentLedger = errors.New("ledger is inconsistent: replayed transactions do not match balance")
)

// LedgerUseCase verifies per-account ledger consistency.
type LedgerUseCase struct {
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(accountRepo AccountRepository, transactionRepo TransactionRepository) *LedgerUseCase {
	return &LedgerUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// VerificationResult reports a consistency check outcome.
type VerificationResult struct {
	AccountID       string
	Consistent      bool
	StoredBalance   decimal.Decimal
	ReplayedBalance decimal.Decimal
	Transactions    int
}

// VerifyAccount replays the account's full transaction history from a zero
// balance and compares the result with the stored balance. Runs lock-free;
// a check racing an in-flight write can observe a stale but internally
// consistent snapshot.
func (uc *LedgerUseCase) VerifyAccount(ctx context.Context, accountID string) (*VerificationResult, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	var history []*domain.Transaction

	const pageSize = 500
	for offset := 0; ; offset += pageSize {
		page, err := uc.transactionRepo.ListByAccount(ctx, accountID, pageSize, offset)
		if err != nil {
			return nil, err
		}

		history = append(history, page...)
		if len(page) < pageSize {
			break
		}
	}

	replayed := domain.ReplayBalance(history)

	result := &VerificationResult{
		AccountID:       accountID,
		Consistent:      replayed.Equal(account.Balance),
		StoredBalance:   account.Balance,
		ReplayedBalance: replayed,
		Transactions:    len(history),
	}

	if !result.Consistent {
		return result, ErrInconsistentLedger
	}

	return result, nil
}
