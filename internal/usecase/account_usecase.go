package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harisblablabla/go-bank-system/internal/domain"
)

// AccountUseCase handles account management. It never mutates balances; that
// is the transaction orchestrator's job.
type AccountUseCase struct {
	accountRepo      AccountRepository
	customerRepo     CustomerRepository
	depositoTypeRepo DepositoTypeRepository
	idGen            IDGenerator
	retrier          Retrier
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(
	accountRepo AccountRepository,
	customerRepo CustomerRepository,
	depositoTypeRepo DepositoTypeRepository,
	idGen IDGenerator,
	retrier Retrier,
) *AccountUseCase {
	return &AccountUseCase{
		accountRepo:      accountRepo,
		customerRepo:     customerRepo,
		depositoTypeRepo: depositoTypeRepo,
		idGen:            idGen,
		retrier:          retrier,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	CustomerID     string
	DepositoTypeID string
	Packet         string
}

// CreateAccount creates a new account with a zero balance.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if _, err := uc.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	if _, err := uc.depositoTypeRepo.GetByID(ctx, input.DepositoTypeID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	account := &domain.Account{
		ID:             uc.idGen.Generate(),
		CustomerID:     input.CustomerID,
		DepositoTypeID: input.DepositoTypeID,
		Packet:         input.Packet,
		Balance:        decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	var account *domain.Account

	err := uc.retrier.Retry(ctx, func() error {
		var err error
		account, err = uc.accountRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	CustomerID string // empty lists across all customers
	Limit      int
	Offset     int
}

// ListAccounts lists accounts with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	if input.CustomerID != "" {
		return uc.accountRepo.ListByCustomer(ctx, input.CustomerID, limit, offset)
	}

	return uc.accountRepo.List(ctx, limit, offset)
}

// UpdateAccountInput represents input for updating an account. Nil fields
// are left unchanged; the update written to storage is fully specified.
type UpdateAccountInput struct {
	Packet         *string
	DepositoTypeID *string
}

// UpdateAccount updates an account's packet or deposito type.
func (uc *AccountUseCase) UpdateAccount(ctx context.Context, id string, input UpdateAccountInput) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Packet != nil {
		account.Packet = *input.Packet
	}

	if input.DepositoTypeID != nil {
		if _, err := uc.depositoTypeRepo.GetByID(ctx, *input.DepositoTypeID); err != nil {
			return nil, err
		}
		account.DepositoTypeID = *input.DepositoTypeID
	}

	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// DeleteAccount deletes an account. Its transactions cascade with it.
func (uc *AccountUseCase) DeleteAccount(ctx context.Context, id string) error {
	if _, err := uc.accountRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.accountRepo.Delete(ctx, id)
}
