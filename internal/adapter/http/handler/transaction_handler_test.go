package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harisblablabla/go-bank-system/internal/adapter/http/dto"
	"github.com/harisblablabla/go-bank-system/internal/domain"
	"github.com/harisblablabla/go-bank-system/internal/usecase"
)

type transactionServiceStub struct {
	depositFn  func(ctx context.Context, input usecase.DepositInput) (*domain.Transaction, error)
	withdrawFn func(ctx context.Context, input usecase.WithdrawInput) (*usecase.WithdrawResult, error)
	getFn      func(ctx context.Context, id string) (*domain.Transaction, error)
	listFn     func(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error)
}

func (s *transactionServiceStub) Deposit(ctx context.Context, input usecase.DepositInput) (*domain.Transaction, error) {
	return s.depositFn(ctx, input)
}

func (s *transactionServiceStub) Withdraw(ctx context.Context, input usecase.WithdrawInput) (*usecase.WithdrawResult, error) {
	return s.withdrawFn(ctx, input)
}

func (s *transactionServiceStub) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return s.getFn(ctx, id)
}

func (s *transactionServiceStub) ListTransactions(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error) {
	return s.listFn(ctx, input)
}

func TestTransactionHandler_Deposit_Success(t *testing.T) {
	txn := &domain.Transaction{
		ID:        "txn-1",
		AccountID: "acc-1",
		Kind:      domain.KindDeposit,
		Amount:    decimal.NewFromInt(500),
	}
	var captured usecase.DepositInput

	h := NewTransactionHandler(&transactionServiceStub{
		depositFn: func(ctx context.Context, input usecase.DepositInput) (*domain.Transaction, error) {
			captured = input
			return txn, nil
		},
	})

	body, _ := json.Marshal(dto.DepositRequest{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(500),
	})

	req := httptest.NewRequest(http.MethodPost, "/transactions/deposit", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Deposit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if captured.AccountID != "acc-1" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}
	if captured.TransactionDate.IsZero() {
		t.Fatal("expected omitted transaction date to default to now")
	}

	var resp dto.TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "txn-1" || resp.Kind != "DEPOSIT" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestTransactionHandler_Deposit_InvalidBody(t *testing.T) {
	h := NewTransactionHandler(&transactionServiceStub{})

	req := httptest.NewRequest(http.MethodPost, "/transactions/deposit", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()

	h.Deposit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Deposit_AccountNotFound(t *testing.T) {
	h := NewTransactionHandler(&transactionServiceStub{
		depositFn: func(ctx context.Context, input usecase.DepositInput) (*domain.Transaction, error) {
			return nil, domain.ErrAccountNotFound
		},
	})

	body, _ := json.Marshal(dto.DepositRequest{AccountID: "missing", Amount: decimal.NewFromInt(1)})
	req := httptest.NewRequest(http.MethodPost, "/transactions/deposit", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Deposit(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTransactionHandler_Withdraw_Success(t *testing.T) {
	when := time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)
	result := &usecase.WithdrawResult{
		Transaction: &domain.Transaction{
			ID:             "txn-2",
			AccountID:      "acc-1",
			Kind:           domain.KindWithdrawal,
			Amount:         decimal.RequireFromString("500000"),
			MonthsHeld:     6,
			InterestEarned: decimal.RequireFromString("30377.51"),
			BalanceAfter:   decimal.RequireFromString("530377.51"),
		},
		EndingBalance: decimal.RequireFromString("1030377.51"),
		Summary:       "Successfully withdrawn 500000.00 with 30377.51 interest earned over 6 months",
	}

	h := NewTransactionHandler(&transactionServiceStub{
		withdrawFn: func(ctx context.Context, input usecase.WithdrawInput) (*usecase.WithdrawResult, error) {
			return result, nil
		},
	})

	body, _ := json.Marshal(dto.WithdrawRequest{
		AccountID:       "acc-1",
		Amount:          decimal.RequireFromString("500000"),
		TransactionDate: &when,
	})
	req := httptest.NewRequest(http.MethodPost, "/transactions/withdraw", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Withdraw(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp dto.WithdrawalResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Summary != result.Summary {
		t.Fatalf("summary = %q, want %q", resp.Summary, result.Summary)
	}
	if !resp.EndingBalance.Equal(result.EndingBalance) {
		t.Fatalf("endingBalance = %s, want %s", resp.EndingBalance, result.EndingBalance)
	}
	if resp.MonthsHeld != 6 {
		t.Fatalf("monthsHeld = %d, want 6", resp.MonthsHeld)
	}
}

func TestTransactionHandler_Withdraw_InsufficientBalance(t *testing.T) {
	h := NewTransactionHandler(&transactionServiceStub{
		withdrawFn: func(ctx context.Context, input usecase.WithdrawInput) (*usecase.WithdrawResult, error) {
			return nil, &domain.InsufficientBalanceError{
				Available: decimal.NewFromInt(100),
				Requested: decimal.NewFromInt(500),
			}
		},
	})

	body, _ := json.Marshal(dto.WithdrawRequest{AccountID: "acc-1", Amount: decimal.NewFromInt(500)})
	req := httptest.NewRequest(http.MethodPost, "/transactions/withdraw", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Withdraw(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestTransactionHandler_Withdraw_LockTimeout(t *testing.T) {
	h := NewTransactionHandler(&transactionServiceStub{
		withdrawFn: func(ctx context.Context, input usecase.WithdrawInput) (*usecase.WithdrawResult, error) {
			return nil, domain.ErrLockTimeout
		},
	})

	body, _ := json.Marshal(dto.WithdrawRequest{AccountID: "acc-1", Amount: decimal.NewFromInt(5)})
	req := httptest.NewRequest(http.MethodPost, "/transactions/withdraw", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Withdraw(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}
