package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harisblablabla/go-bank-system/internal/domain"
	"github.com/harisblablabla/go-bank-system/internal/infrastructure/postgres/generated"
)

// CustomerRepository implements usecase.CustomerRepository.
type CustomerRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new customer.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	_, err := r.queries.CreateCustomer(ctx, generated.CreateCustomerParams{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     textToPgText(customer.Phone),
		CreatedAt: timeToPgTimestamptz(customer.CreatedAt),
		UpdatedAt: timeToPgTimestamptz(customer.UpdatedAt),
	})

	return err
}

// GetByID retrieves a customer by ID.
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	row, err := r.queries.GetCustomerByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}

		return nil, err
	}

	return rowToCustomer(row), nil
}

// List lists customers with pagination.
func (r *CustomerRepository) List(ctx context.Context, limit, offset int) ([]*domain.Customer, error) {
	rows, err := r.queries.ListCustomers(ctx, generated.ListCustomersParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	customers := make([]*domain.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, rowToCustomer(row))
	}

	return customers, nil
}

// Update updates a customer.
func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	return r.queries.UpdateCustomer(ctx, generated.UpdateCustomerParams{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     textToPgText(customer.Phone),
		UpdatedAt: timeToPgTimestamptz(customer.UpdatedAt),
	})
}

// Delete deletes a customer. Their accounts cascade at the schema level.
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	return r.queries.DeleteCustomer(ctx, id)
}

func rowToCustomer(row generated.Customer) *domain.Customer {
	return &domain.Customer{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     row.Phone.String,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
