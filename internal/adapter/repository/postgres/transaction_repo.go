package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harisblablabla/go-bank-system/internal/domain"
	"github.com/harisblablabla/go-bank-system/internal/infrastructure/postgres/generated"
	"github.com/harisblablabla/go-bank-system/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository. The
// transactions table is append-only: there is no update or delete path.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create appends a transaction record inside tx.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateTransaction(ctx, generated.CreateTransactionParams{
		ID:              txn.ID,
		AccountID:       txn.AccountID,
		Kind:            string(txn.Kind),
		Amount:          decimalToNumeric(txn.Amount),
		TransactionDate: timeToPgTimestamptz(txn.TransactionDate),
		BalanceBefore:   decimalToNumeric(txn.BalanceBefore),
		BalanceAfter:    decimalToNumeric(txn.BalanceAfter),
		MonthsHeld:      int32(txn.MonthsHeld),
		InterestEarned:  decimalToNumeric(txn.InterestEarned),
		CreatedAt:       timeToPgTimestamptz(txn.CreatedAt),
	})

	return err
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	row, err := r.queries.GetTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return rowToTransaction(row), nil
}

// ListByAccount lists an account's transactions, newest first.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error) {
	rows, err := r.queries.ListTransactionsByAccount(ctx, generated.ListTransactionsByAccountParams{
		AccountID: accountID,
		Limit:     int32(limit),
		Offset:    int32(offset),
	})
	if err != nil {
		return nil, err
	}

	return rowsToTransactions(rows), nil
}

// List lists transactions across all accounts, newest first.
func (r *TransactionRepository) List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error) {
	rows, err := r.queries.ListTransactions(ctx, generated.ListTransactionsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	return rowsToTransactions(rows), nil
}

// LastDeposit retrieves the account's most recent DEPOSIT by transaction
// date. Runs inside tx so the anchor is read under the account's row lock.
func (r *TransactionRepository) LastDeposit(ctx context.Context, tx usecase.Transaction, accountID string) (*domain.Transaction, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetLastDeposit(ctx, accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return rowToTransaction(row), nil
}

func rowToTransaction(row generated.Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:              row.ID,
		AccountID:       row.AccountID,
		Kind:            domain.TransactionKind(row.Kind),
		Amount:          numericToDecimal(row.Amount),
		TransactionDate: row.TransactionDate.Time,
		BalanceBefore:   numericToDecimal(row.BalanceBefore),
		BalanceAfter:    numericToDecimal(row.BalanceAfter),
		MonthsHeld:      int(row.MonthsHeld),
		InterestEarned:  numericToDecimal(row.InterestEarned),
		CreatedAt:       row.CreatedAt.Time,
	}
}

func rowsToTransactions(rows []generated.Transaction) []*domain.Transaction {
	transactions := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, rowToTransaction(row))
	}

	return transactions
}
