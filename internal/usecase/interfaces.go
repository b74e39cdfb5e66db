package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harisblablabla/go-bank-system/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Account, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	Update(ctx context.Context, account *domain.Account) error
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*domain.Account, error)
	Delete(ctx context.Context, id string) error
}

// TransactionRepository defines data access for the append-only transaction log.
type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction, txn *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error)
	// LastDeposit returns the most recent DEPOSIT transaction for the account
	// ordered by transaction date, or domain.ErrTransactionNotFound if the
	// account has never received a deposit. Runs inside tx so the anchor is
	// read under the same row lock as the balance.
	LastDeposit(ctx context.Context, tx Transaction, accountID string) (*domain.Transaction, error)
}

// DepositoTypeRepository defines data access for deposito types.
type DepositoTypeRepository interface {
	Create(ctx context.Context, depositoType *domain.DepositoType) error
	GetByID(ctx context.Context, id string) (*domain.DepositoType, error)
	List(ctx context.Context, limit, offset int) ([]*domain.DepositoType, error)
	Update(ctx context.Context, depositoType *domain.DepositoType) error
	Delete(ctx context.Context, id string) error
}

// CustomerRepository defines data access for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id string) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// AccountLocker serializes balance-mutating operations per account.
// Acquire blocks until the account's lock is free, the context is done, or
// the configured wait bound elapses (domain.ErrLockTimeout). The returned
// release function must be called exactly once on every exit path.
type AccountLocker interface {
	Acquire(ctx context.Context, accountID string) (release func(), err error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// ErrCacheMiss is returned by Cache.Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// Retrier retries side-effect-free operations on transient storage errors.
// Never used around Deposit or Withdraw: retrying a mutation without an
// idempotency key could double-apply it.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// OperationMetrics records business-level metrics from the orchestrator.
type OperationMetrics interface {
	ObserveDeposit(amount decimal.Decimal)
	ObserveWithdrawal(amount, interest decimal.Decimal, monthsHeld int)
	ObserveLockWait(d time.Duration)
	IncOperationError(operation string)
}
