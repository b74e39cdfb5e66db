package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harisblablabla/go-bank-system/internal/domain"
)

// DepositoTypeUseCase handles deposito type management.
type DepositoTypeUseCase struct {
	depositoTypeRepo DepositoTypeRepository
	idGen            IDGenerator
}

// NewDepositoTypeUseCase creates a new DepositoTypeUseCase.
func NewDepositoTypeUseCase(depositoTypeRepo DepositoTypeRepository, idGen IDGenerator) *DepositoTypeUseCase {
	return &DepositoTypeUseCase{
		depositoTypeRepo: depositoTypeRepo,
		idGen:            idGen,
	}
}

// CreateDepositoTypeInput represents input for creating a deposito type.
type CreateDepositoTypeInput struct {
	Name         string
	YearlyReturn decimal.Decimal
}

// CreateDepositoType creates a new deposito type.
func (uc *DepositoTypeUseCase) CreateDepositoType(ctx context.Context, input CreateDepositoTypeInput) (*domain.DepositoType, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	if err := domain.ValidateYearlyReturn(input.YearlyReturn); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	depositoType := &domain.DepositoType{
		ID:           uc.idGen.Generate(),
		Name:         input.Name,
		YearlyReturn: input.YearlyReturn,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.depositoTypeRepo.Create(ctx, depositoType); err != nil {
		return nil, err
	}

	return depositoType, nil
}

// GetDepositoType retrieves a deposito type by ID.
func (uc *DepositoTypeUseCase) GetDepositoType(ctx context.Context, id string) (*domain.DepositoType, error) {
	return uc.depositoTypeRepo.GetByID(ctx, id)
}

// ListDepositoTypes lists deposito types with pagination.
func (uc *DepositoTypeUseCase) ListDepositoTypes(ctx context.Context, limit, offset int) ([]*domain.DepositoType, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.depositoTypeRepo.List(ctx, limit, offset)
}

// UpdateDepositoTypeInput represents input for updating a deposito type.
type UpdateDepositoTypeInput struct {
	Name         *string
	YearlyReturn *decimal.Decimal
}

// UpdateDepositoType updates a deposito type. Withdrawals in flight read the
// rate under their own transaction, so a rate change never tears one.
func (uc *DepositoTypeUseCase) UpdateDepositoType(ctx context.Context, id string, input UpdateDepositoTypeInput) (*domain.DepositoType, error) {
	depositoType, err := uc.depositoTypeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := domain.ValidateName(*input.Name); err != nil {
			return nil, err
		}
		depositoType.Name = *input.Name
	}

	if input.YearlyReturn != nil {
		if err := domain.ValidateYearlyReturn(*input.YearlyReturn); err != nil {
			return nil, err
		}
		depositoType.YearlyReturn = *input.YearlyReturn
	}

	depositoType.UpdatedAt = time.Now().UTC()

	if err := uc.depositoTypeRepo.Update(ctx, depositoType); err != nil {
		return nil, err
	}

	return depositoType, nil
}

// DeleteDepositoType deletes a deposito type.
func (uc *DepositoTypeUseCase) DeleteDepositoType(ctx context.Context, id string) error {
	if _, err := uc.depositoTypeRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.depositoTypeRepo.Delete(ctx, id)
}
