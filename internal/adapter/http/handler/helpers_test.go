package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/harisblablabla/go-bank-system/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"account not found", domain.ErrAccountNotFound, http.StatusNotFound},
		{"customer not found", domain.ErrCustomerNotFound, http.StatusNotFound},
		{"deposito type not found", domain.ErrDepositoTypeNotFound, http.StatusNotFound},
		{"transaction not found", domain.ErrTransactionNotFound, http.StatusNotFound},
		{"insufficient balance sentinel", domain.ErrInsufficientBalance, http.StatusUnprocessableEntity},
		{
			"insufficient balance with amounts",
			&domain.InsufficientBalanceError{
				Available: decimal.NewFromInt(10),
				Requested: decimal.NewFromInt(20),
			},
			http.StatusUnprocessableEntity,
		},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"amount too large", domain.ErrAmountTooLarge, http.StatusBadRequest},
		{"invalid email", domain.ErrInvalidEmail, http.StatusBadRequest},
		{"lock timeout", domain.ErrLockTimeout, http.StatusConflict},
		{"wrapped domain error", fmt.Errorf("deposit: %w", domain.ErrAccountNotFound), http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.want {
				t.Fatalf("mapDomainError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestParseIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=15&bad=abc", nil)

	if got := parseIntQuery(req, "limit", 20); got != 15 {
		t.Fatalf("limit = %d, want 15", got)
	}
	if got := parseIntQuery(req, "missing", 20); got != 20 {
		t.Fatalf("missing = %d, want default 20", got)
	}
	if got := parseIntQuery(req, "bad", 20); got != 20 {
		t.Fatalf("bad = %d, want default 20", got)
	}
}
