package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/harisblablabla/go-bank-system/internal/usecase"
)

// CreateCustomerRequest represents a request to create a customer.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCustomerRequest) ToUseCaseInput() usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
}

// UpdateCustomerRequest represents a request to update a customer. Omitted
// fields are left unchanged.
type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateCustomerRequest) ToUseCaseInput() usecase.UpdateCustomerInput {
	return usecase.UpdateCustomerInput{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
}

// CreateDepositoTypeRequest represents a request to create a deposito type.
type CreateDepositoTypeRequest struct {
	Name         string          `json:"name"`
	YearlyReturn decimal.Decimal `json:"yearly_return"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateDepositoTypeRequest) ToUseCaseInput() usecase.CreateDepositoTypeInput {
	return usecase.CreateDepositoTypeInput{
		Name:         r.Name,
		YearlyReturn: r.YearlyReturn,
	}
}

// UpdateDepositoTypeRequest represents a request to update a deposito type.
type UpdateDepositoTypeRequest struct {
	Name         *string          `json:"name,omitempty"`
	YearlyReturn *decimal.Decimal `json:"yearly_return,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateDepositoTypeRequest) ToUseCaseInput() usecase.UpdateDepositoTypeInput {
	return usecase.UpdateDepositoTypeInput{
		Name:         r.Name,
		YearlyReturn: r.YearlyReturn,
	}
}

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	CustomerID     string `json:"customer_id"`
	DepositoTypeID string `json:"deposito_type_id"`
	Packet         string `json:"packet"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		CustomerID:     r.CustomerID,
		DepositoTypeID: r.DepositoTypeID,
		Packet:         r.Packet,
	}
}

// UpdateAccountRequest represents a request to update an account.
type UpdateAccountRequest struct {
	Packet         *string `json:"packet,omitempty"`
	DepositoTypeID *string `json:"deposito_type_id,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateAccountRequest) ToUseCaseInput() usecase.UpdateAccountInput {
	return usecase.UpdateAccountInput{
		Packet:         r.Packet,
		DepositoTypeID: r.DepositoTypeID,
	}
}

// DepositRequest represents a request to deposit into an account.
type DepositRequest struct {
	AccountID       string          `json:"account_id"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate *time.Time      `json:"transaction_date,omitempty"`
}

// ToUseCaseInput converts to use case input, defaulting the transaction date
// to now.
func (r *DepositRequest) ToUseCaseInput() usecase.DepositInput {
	return usecase.DepositInput{
		AccountID:       r.AccountID,
		Amount:          r.Amount,
		TransactionDate: effectiveDate(r.TransactionDate),
	}
}

// WithdrawRequest represents a request to withdraw from an account.
type WithdrawRequest struct {
	AccountID       string          `json:"account_id"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate *time.Time      `json:"transaction_date,omitempty"`
}

// ToUseCaseInput converts to use case input, defaulting the transaction date
// to now.
func (r *WithdrawRequest) ToUseCaseInput() usecase.WithdrawInput {
	return usecase.WithdrawInput{
		AccountID:       r.AccountID,
		Amount:          r.Amount,
		TransactionDate: effectiveDate(r.TransactionDate),
	}
}

func effectiveDate(t *time.Time) time.Time {
	if t != nil {
		return t.UTC()
	}
	return time.Now().UTC()
}
