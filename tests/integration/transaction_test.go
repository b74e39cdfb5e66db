package integration

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/harisblablabla/go-bank-system/internal/adapter/lock"
	"github.com/harisblablabla/go-bank-system/internal/adapter/repository/postgres"
	"github.com/harisblablabla/go-bank-system/internal/usecase"
	"github.com/harisblablabla/go-bank-system/tests/testutil"
)

func newTransactionUseCase(t *testing.T, testDB *testutil.TestDB) *usecase.TransactionUseCase {
	t.Helper()

	pool := testDB.Pool

	return usecase.NewTransactionUseCase(
		postgres.NewTxManager(pool),
		postgres.NewAccountRepository(pool),
		postgres.NewTransactionRepository(pool),
		postgres.NewDepositoTypeRepository(pool),
		lock.NewKeyedMutex(5*time.Second),
		postgres.NewULIDGenerator(),
		postgres.NewRetrier(zerolog.Nop()),
		usecase.NewNopMetrics(),
		zerolog.Nop(),
	)
}

func TestDepositAndWithdrawWithInterest(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	customer := testDB.CreateTestCustomer(ctx, "Budi", "budi@example.com")
	depositoType := testDB.CreateTestDepositoType(ctx, "premium", decimal.RequireFromString("6.0"))
	account := testDB.CreateTestAccount(ctx, customer.ID, depositoType.ID, decimal.Zero)

	txUC := newTransactionUseCase(t, testDB)

	depositDate := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	txn, err := txUC.Deposit(ctx, usecase.DepositInput{
		AccountID:       account.ID,
		Amount:          decimal.NewFromInt(1000000),
		TransactionDate: depositDate,
	})
	if err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	if !txn.BalanceAfter.Equal(decimal.NewFromInt(1000000)) {
		t.Fatalf("balance after deposit = %s, want 1000000", txn.BalanceAfter)
	}

	withdrawDate := time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)
	result, err := txUC.Withdraw(ctx, usecase.WithdrawInput{
		AccountID:       account.ID,
		Amount:          decimal.NewFromInt(500000),
		TransactionDate: withdrawDate,
	})
	if err != nil {
		t.Fatalf("withdraw failed: %v", err)
	}

	if result.Transaction.MonthsHeld != 6 {
		t.Fatalf("monthsHeld = %d, want 6", result.Transaction.MonthsHeld)
	}
	if !result.Transaction.InterestEarned.Equal(decimal.RequireFromString("30377.51")) {
		t.Fatalf("interest = %s, want 30377.51", result.Transaction.InterestEarned)
	}
	if !result.EndingBalance.Equal(decimal.RequireFromString("1030377.51")) {
		t.Fatalf("ending balance = %s, want 1030377.51", result.EndingBalance)
	}
	if !result.Transaction.BalanceAfter.Equal(decimal.RequireFromString("530377.51")) {
		t.Fatalf("balance after withdrawal = %s, want 530377.51", result.Transaction.BalanceAfter)
	}

	pool := testDB.Pool
	ledgerUC := usecase.NewLedgerUseCase(
		postgres.NewAccountRepository(pool),
		postgres.NewTransactionRepository(pool),
	)

	verification, err := ledgerUC.VerifyAccount(ctx, account.ID)
	if err != nil {
		t.Fatalf("verification failed: %v", err)
	}
	if !verification.Consistent {
		t.Fatalf("ledger inconsistent: stored %s, replayed %s",
			verification.StoredBalance, verification.ReplayedBalance)
	}
}

func TestWithdrawInsufficientBalanceLeavesNoTrace(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	customer := testDB.CreateTestCustomer(ctx, "Sari", "sari@example.com")
	depositoType := testDB.CreateTestDepositoType(ctx, "basic", decimal.RequireFromString("3.0"))
	account := testDB.CreateTestAccount(ctx, customer.ID, depositoType.ID, decimal.NewFromInt(100))

	txUC := newTransactionUseCase(t, testDB)

	_, err := txUC.Withdraw(ctx, usecase.WithdrawInput{
		AccountID:       account.ID,
		Amount:          decimal.NewFromInt(1000000),
		TransactionDate: time.Now().UTC(),
	})
	if err == nil {
		t.Fatal("expected insufficient balance error")
	}

	var count int
	if err := testDB.Pool.QueryRow(ctx,
		"SELECT count(*) FROM transactions WHERE account_id = $1", account.ID).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected withdrawal must not be logged, found %d rows", count)
	}
}
