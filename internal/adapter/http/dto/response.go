package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/harisblablabla/go-bank-system/internal/domain"
	"github.com/harisblablabla/go-bank-system/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerFromDomain converts a domain customer to a response.
func CustomerFromDomain(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CustomersFromDomain converts domain customers to responses.
func CustomersFromDomain(customers []*domain.Customer) []*CustomerResponse {
	result := make([]*CustomerResponse, len(customers))
	for i, c := range customers {
		result[i] = CustomerFromDomain(c)
	}
	return result
}

// DepositoTypeResponse represents a deposito type in API responses.
type DepositoTypeResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	YearlyReturn decimal.Decimal `json:"yearly_return"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// DepositoTypeFromDomain converts a domain deposito type to a response.
func DepositoTypeFromDomain(d *domain.DepositoType) *DepositoTypeResponse {
	return &DepositoTypeResponse{
		ID:           d.ID,
		Name:         d.Name,
		YearlyReturn: d.YearlyReturn,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// DepositoTypesFromDomain converts domain deposito types to responses.
func DepositoTypesFromDomain(depositoTypes []*domain.DepositoType) []*DepositoTypeResponse {
	result := make([]*DepositoTypeResponse, len(depositoTypes))
	for i, d := range depositoTypes {
		result[i] = DepositoTypeFromDomain(d)
	}
	return result
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID             string          `json:"id"`
	CustomerID     string          `json:"customer_id"`
	DepositoTypeID string          `json:"deposito_type_id"`
	Packet         string          `json:"packet"`
	Balance        decimal.Decimal `json:"balance"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:             a.ID,
		CustomerID:     a.CustomerID,
		DepositoTypeID: a.DepositoTypeID,
		Packet:         a.Packet,
		Balance:        a.Balance,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID              string          `json:"id"`
	AccountID       string          `json:"account_id"`
	Kind            string          `json:"kind"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transaction_date"`
	BalanceBefore   decimal.Decimal `json:"balance_before"`
	BalanceAfter    decimal.Decimal `json:"balance_after"`
	MonthsHeld      int             `json:"months_held"`
	InterestEarned  decimal.Decimal `json:"interest_earned"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:              t.ID,
		AccountID:       t.AccountID,
		Kind:            string(t.Kind),
		Amount:          t.Amount,
		TransactionDate: t.TransactionDate,
		BalanceBefore:   t.BalanceBefore,
		BalanceAfter:    t.BalanceAfter,
		MonthsHeld:      t.MonthsHeld,
		InterestEarned:  t.InterestEarned,
		CreatedAt:       t.CreatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// WithdrawalResponse represents a completed withdrawal, including the
// interest-credited ending balance and a human-readable summary.
type WithdrawalResponse struct {
	TransactionResponse

	EndingBalance decimal.Decimal `json:"ending_balance"`
	Summary       string          `json:"summary"`
}

// WithdrawalFromResult converts a withdrawal result to a response.
func WithdrawalFromResult(result *usecase.WithdrawResult) *WithdrawalResponse {
	return &WithdrawalResponse{
		TransactionResponse: *TransactionFromDomain(result.Transaction),
		EndingBalance:       result.EndingBalance,
		Summary:             result.Summary,
	}
}

// VerificationResponse represents a ledger verification outcome.
type VerificationResponse struct {
	AccountID       string          `json:"account_id"`
	Consistent      bool            `json:"consistent"`
	StoredBalance   decimal.Decimal `json:"stored_balance"`
	ReplayedBalance decimal.Decimal `json:"replayed_balance"`
	Transactions    int             `json:"transactions"`
}

// VerificationFromResult converts a verification result to a response.
func VerificationFromResult(result *usecase.VerificationResult) *VerificationResponse {
	return &VerificationResponse{
		AccountID:       result.AccountID,
		Consistent:      result.Consistent,
		StoredBalance:   result.StoredBalance,
		ReplayedBalance: result.ReplayedBalance,
		Transactions:    result.Transactions,
	}
}
