package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/harisblablabla/go-bank-system/internal/domain"
)

// TransactionUseCase orchestrates deposits and withdrawals. Each operation
// runs under the account's keyed mutex and a single database transaction, so
// the balance write and the log append commit together or not at all.
type TransactionUseCase struct {
	txManager        TransactionManager
	accountRepo      AccountRepository
	transactionRepo  TransactionRepository
	depositoTypeRepo DepositoTypeRepository
	locker           AccountLocker
	idGen            IDGenerator
	retrier          Retrier
	metrics          OperationMetrics
	logger           zerolog.Logger
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	depositoTypeRepo DepositoTypeRepository,
	locker AccountLocker,
	idGen IDGenerator,
	retrier Retrier,
	metrics OperationMetrics,
	logger zerolog.Logger,
) *TransactionUseCase {
	return &TransactionUseCase{
		txManager:        txManager,
		accountRepo:      accountRepo,
		transactionRepo:  transactionRepo,
		depositoTypeRepo: depositoTypeRepo,
		locker:           locker,
		idGen:            idGen,
		retrier:          retrier,
		metrics:          metrics,
		logger:           logger,
	}
}

// DepositInput represents input for a deposit.
type DepositInput struct {
	AccountID       string
	Amount          decimal.Decimal
	TransactionDate time.Time
}

// WithdrawInput represents input for a withdrawal.
type WithdrawInput struct {
	AccountID       string
	Amount          decimal.Decimal
	TransactionDate time.Time
}

// WithdrawResult is the withdrawal variant of a transaction result: the
// appended record plus the interest-credited ending balance and a
// human-readable summary.
type WithdrawResult struct {
	Transaction   *domain.Transaction
	EndingBalance decimal.Decimal
	Summary       string
}

// Deposit credits amount to the account and appends a DEPOSIT record.
func (uc *TransactionUseCase) Deposit(ctx context.Context, input DepositInput) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	release, err := uc.acquireLock(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	defer release()

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	txn, err := uc.runDeposit(ctx, input)
	if err != nil {
		return nil, uc.surface("deposit", input.AccountID, err, domain.ErrDepositFailed)
	}

	uc.metrics.ObserveDeposit(txn.Amount)
	uc.logger.Info().
		Str("account_id", txn.AccountID).
		Str("transaction_id", txn.ID).
		Str("amount", txn.Amount.StringFixed(2)).
		Msg("deposit successful")

	return txn, nil
}

func (uc *TransactionUseCase) runDeposit(ctx context.Context, input DepositInput) (*domain.Transaction, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, input.AccountID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	balanceBefore := account.Balance
	balanceAfter := account.ApplyDeposit(input.Amount)

	if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, balanceAfter, now); err != nil {
		return nil, err
	}

	txn := &domain.Transaction{
		ID:              uc.idGen.Generate(),
		AccountID:       account.ID,
		Kind:            domain.KindDeposit,
		Amount:          input.Amount,
		TransactionDate: input.TransactionDate,
		BalanceBefore:   balanceBefore,
		BalanceAfter:    balanceAfter,
		MonthsHeld:      0,
		InterestEarned:  decimal.Zero,
		CreatedAt:       now,
	}

	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Create(ctx, tx, txn); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return txn, nil
}

// Withdraw debits amount from the account after crediting compound interest
// accrued since the most recent deposit, and appends a WITHDRAWAL record.
//
// The entire current balance accrues from the single most recent DEPOSIT's
// transaction date; earlier deposits do not accrue independently. This
// mirrors the documented product behavior.
func (uc *TransactionUseCase) Withdraw(ctx context.Context, input WithdrawInput) (*WithdrawResult, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	release, err := uc.acquireLock(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	defer release()

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	result, err := uc.runWithdraw(ctx, input)
	if err != nil {
		return nil, uc.surface("withdrawal", input.AccountID, err, domain.ErrWithdrawalFailed)
	}

	uc.metrics.ObserveWithdrawal(result.Transaction.Amount, result.Transaction.InterestEarned, result.Transaction.MonthsHeld)
	uc.logger.Info().
		Str("account_id", result.Transaction.AccountID).
		Str("transaction_id", result.Transaction.ID).
		Str("amount", result.Transaction.Amount.StringFixed(2)).
		Str("interest_earned", result.Transaction.InterestEarned.StringFixed(2)).
		Int("months_held", result.Transaction.MonthsHeld).
		Msg("withdrawal successful")

	return result, nil
}

func (uc *TransactionUseCase) runWithdraw(ctx context.Context, input WithdrawInput) (*WithdrawResult, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, input.AccountID)
	if err != nil {
		return nil, err
	}

	if err := account.ValidateWithdrawal(input.Amount); err != nil {
		return nil, err
	}

	depositoType, err := uc.depositoTypeRepo.GetByID(ctx, account.DepositoTypeID)
	if err != nil {
		return nil, err
	}

	accrual, err := uc.accrueFromAnchor(ctx, tx, account, depositoType, input.TransactionDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	balanceAfter := accrual.EndingBalance.Sub(input.Amount)

	if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, balanceAfter, now); err != nil {
		return nil, err
	}

	txn := &domain.Transaction{
		ID:              uc.idGen.Generate(),
		AccountID:       account.ID,
		Kind:            domain.KindWithdrawal,
		Amount:          input.Amount,
		TransactionDate: input.TransactionDate,
		BalanceBefore:   account.Balance,
		BalanceAfter:    balanceAfter,
		MonthsHeld:      accrual.MonthsHeld,
		InterestEarned:  accrual.InterestEarned,
		CreatedAt:       now,
	}

	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Create(ctx, tx, txn); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &WithdrawResult{
		Transaction:   txn,
		EndingBalance: accrual.EndingBalance,
		Summary: fmt.Sprintf("Successfully withdrawn %s with %s interest earned over %d months",
			input.Amount.StringFixed(2), accrual.InterestEarned.StringFixed(2), accrual.MonthsHeld),
	}, nil
}

// accrueFromAnchor computes the interest owed on the current balance since
// the most recent deposit. An account with no prior deposit accrues nothing.
func (uc *TransactionUseCase) accrueFromAnchor(
	ctx context.Context,
	tx Transaction,
	account *domain.Account,
	depositoType *domain.DepositoType,
	withdrawalDate time.Time,
) (domain.InterestResult, error) {
	anchor, err := uc.transactionRepo.LastDeposit(ctx, tx, account.ID)
	if errors.Is(err, domain.ErrTransactionNotFound) {
		return domain.InterestResult{
			MonthsHeld:     0,
			InterestEarned: decimal.Zero,
			EndingBalance:  account.Balance,
		}, nil
	}
	if err != nil {
		return domain.InterestResult{}, err
	}

	return domain.AccrueBetween(account.Balance, depositoType.YearlyReturn, anchor.TransactionDate, withdrawalDate), nil
}

func (uc *TransactionUseCase) acquireLock(ctx context.Context, accountID string) (func(), error) {
	lockStart := time.Now()

	release, err := uc.locker.Acquire(ctx, accountID)
	if err != nil {
		uc.metrics.IncOperationError("lock")
		return nil, err
	}

	uc.metrics.ObserveLockWait(time.Since(lockStart))

	return release, nil
}

// surface passes domain errors through untouched and hides storage failures
// behind a generic operational error after logging the full detail.
func (uc *TransactionUseCase) surface(operation, accountID string, err, generic error) error {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrDepositoTypeNotFound),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInvalidAmount):
		return err
	}

	uc.metrics.IncOperationError(operation)
	uc.logger.Error().
		Err(err).
		Str("account_id", accountID).
		Str("operation", operation).
		Msg("transaction rolled back")

	return generic
}

// GetTransaction retrieves a transaction by ID. Read-only, lock-free.
func (uc *TransactionUseCase) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	var txn *domain.Transaction

	err := uc.retrier.Retry(ctx, func() error {
		var err error
		txn, err = uc.transactionRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return txn, nil
}

// ListTransactionsInput represents input for listing transactions.
type ListTransactionsInput struct {
	AccountID string // empty lists across all accounts
	Limit     int
	Offset    int
}

// ListTransactions lists transactions ordered by transaction date
// descending. Read-only, lock-free; may trail an in-flight write.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context, input ListTransactionsInput) ([]*domain.Transaction, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	var transactions []*domain.Transaction

	err := uc.retrier.Retry(ctx, func() error {
		var err error
		if input.AccountID != "" {
			transactions, err = uc.transactionRepo.ListByAccount(ctx, input.AccountID, limit, offset)
		} else {
			transactions, err = uc.transactionRepo.List(ctx, limit, offset)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
