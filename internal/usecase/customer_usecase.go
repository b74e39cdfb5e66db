package usecase

import (
	"context"
	"time"

	"github.com/harisblablabla/go-bank-system/internal/domain"
)

// CustomerUseCase handles customer management.
type CustomerUseCase struct {
	customerRepo CustomerRepository
	idGen        IDGenerator
}

// NewCustomerUseCase creates a new CustomerUseCase.
func NewCustomerUseCase(customerRepo CustomerRepository, idGen IDGenerator) *CustomerUseCase {
	return &CustomerUseCase{
		customerRepo: customerRepo,
		idGen:        idGen,
	}
}

// CreateCustomerInput represents input for creating a customer.
type CreateCustomerInput struct {
	Name  string
	Email string
	Phone string
}

// CreateCustomer creates a new customer.
func (uc *CustomerUseCase) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	customer := &domain.Customer{
		ID:        uc.idGen.Generate(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID.
func (uc *CustomerUseCase) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return uc.customerRepo.GetByID(ctx, id)
}

// ListCustomers lists customers with pagination.
func (uc *CustomerUseCase) ListCustomers(ctx context.Context, limit, offset int) ([]*domain.Customer, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.customerRepo.List(ctx, limit, offset)
}

// UpdateCustomerInput represents input for updating a customer.
type UpdateCustomerInput struct {
	Name  *string
	Email *string
	Phone *string
}

// UpdateCustomer updates a customer.
func (uc *CustomerUseCase) UpdateCustomer(ctx context.Context, id string, input UpdateCustomerInput) (*domain.Customer, error) {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := domain.ValidateName(*input.Name); err != nil {
			return nil, err
		}
		customer.Name = *input.Name
	}

	if input.Email != nil {
		if err := domain.ValidateEmail(*input.Email); err != nil {
			return nil, err
		}
		customer.Email = *input.Email
	}

	if input.Phone != nil {
		customer.Phone = *input.Phone
	}

	customer.UpdatedAt = time.Now().UTC()

	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer deletes a customer and cascades their accounts.
func (uc *CustomerUseCase) DeleteCustomer(ctx context.Context, id string) error {
	if _, err := uc.customerRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.customerRepo.Delete(ctx, id)
}
