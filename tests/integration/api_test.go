package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	adaptershttp "github.com/harisblablabla/go-bank-system/internal/adapter/http"
	"github.com/harisblablabla/go-bank-system/internal/adapter/http/dto"
	"github.com/harisblablabla/go-bank-system/internal/adapter/http/handler"
	"github.com/harisblablabla/go-bank-system/internal/adapter/repository/postgres"
	redisrepo "github.com/harisblablabla/go-bank-system/internal/adapter/repository/redis"
	infraredis "github.com/harisblablabla/go-bank-system/internal/infrastructure/redis"
	"github.com/harisblablabla/go-bank-system/internal/usecase"
	"github.com/harisblablabla/go-bank-system/tests/testutil"
)

func newTestRouter(t *testing.T, testDB *testutil.TestDB) http.Handler {
	t.Helper()

	ctx := context.Background()
	pool := testDB.Pool

	mr := miniredis.RunT(t)
	redisClient, err := infraredis.NewClient(ctx, fmt.Sprintf("redis://%s", mr.Addr()))
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	accountRepo := postgres.NewAccountRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	depositoTypeRepo := postgres.NewDepositoTypeRepository(pool)
	idGen := postgres.NewULIDGenerator()
	retrier := postgres.NewRetrier(zerolog.Nop())

	txUC := newTransactionUseCase(t, testDB)
	accountUC := usecase.NewAccountUseCase(accountRepo, customerRepo, depositoTypeRepo, idGen, retrier)
	customerUC := usecase.NewCustomerUseCase(customerRepo, idGen)
	depositoTypeUC := usecase.NewDepositoTypeUseCase(depositoTypeRepo, idGen)
	ledgerUC := usecase.NewLedgerUseCase(accountRepo, transactionRepo)

	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		CustomerHandler:     handler.NewCustomerHandler(customerUC),
		DepositoTypeHandler: handler.NewDepositoTypeHandler(depositoTypeUC),
		AccountHandler:      handler.NewAccountHandler(accountUC, ledgerUC),
		TransactionHandler:  handler.NewTransactionHandler(txUC),
		HealthHandler:       handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:    redisrepo.NewIdempotencyStore(redisClient),
		Logger:              zerolog.Nop(),
	})
}

func TestDepositWithdrawOverHTTP(t *testing.T) {
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

	router := newTestRouter(t, testDB)

	depositDate := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	depositBody, _ := json.Marshal(map[string]any{
		"account_id":       account.ID,
		"amount":           "1000000",
		"transaction_date": depositDate.Format(time.RFC3339),
	})

	r := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/deposit", bytes.NewReader(depositBody))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Idempotency-Key", "dep-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("deposit: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// Replay with the same key must not double-credit.
	r = httptest.NewRequest(http.MethodPost, "/api/v1/transactions/deposit", bytes.NewReader(depositBody))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Idempotency-Key", "dep-1")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Header().Get("X-Idempotency-Replay") != "true" {
		t.Fatalf("expected replayed response, got status %d", w.Code)
	}

	withdrawDate := time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)
	withdrawBody, _ := json.Marshal(map[string]any{
		"account_id":       account.ID,
		"amount":           "500000",
		"transaction_date": withdrawDate.Format(time.RFC3339),
	})

	r = httptest.NewRequest(http.MethodPost, "/api/v1/transactions/withdraw", bytes.NewReader(withdrawBody))
	r.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("withdraw: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var withdrawal dto.WithdrawalResponse
	if err := json.Unmarshal(w.Body.Bytes(), &withdrawal); err != nil {
		t.Fatalf("failed to decode withdrawal: %v", err)
	}
	if withdrawal.MonthsHeld != 6 {
		t.Fatalf("monthsHeld = %d, want 6", withdrawal.MonthsHeld)
	}
	if !withdrawal.InterestEarned.Equal(decimal.RequireFromString("30377.51")) {
		t.Fatalf("interest = %s, want 30377.51", withdrawal.InterestEarned)
	}

	r = httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+account.ID+"/verify", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("verify: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var verification dto.VerificationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &verification); err != nil {
		t.Fatalf("failed to decode verification: %v", err)
	}
	if !verification.Consistent {
		t.Fatalf("ledger inconsistent: %+v", verification)
	}
}
