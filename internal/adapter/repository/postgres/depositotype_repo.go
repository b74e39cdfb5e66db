package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harisblablabla/go-bank-system/internal/domain"
	"github.com/harisblablabla/go-bank-system/internal/infrastructure/postgres/generated"
)

// DepositoTypeRepository implements usecase.DepositoTypeRepository.
type DepositoTypeRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewDepositoTypeRepository creates a new DepositoTypeRepository.
func NewDepositoTypeRepository(pool *pgxpool.Pool) *DepositoTypeRepository {
	return &DepositoTypeRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new deposito type.
func (r *DepositoTypeRepository) Create(ctx context.Context, depositoType *domain.DepositoType) error {
	_, err := r.queries.CreateDepositoType(ctx, generated.CreateDepositoTypeParams{
		ID:           depositoType.ID,
		Name:         depositoType.Name,
		YearlyReturn: decimalToNumeric(depositoType.YearlyReturn),
		CreatedAt:    timeToPgTimestamptz(depositoType.CreatedAt),
		UpdatedAt:    timeToPgTimestamptz(depositoType.UpdatedAt),
	})

	return err
}

// GetByID retrieves a deposito type by ID.
func (r *DepositoTypeRepository) GetByID(ctx context.Context, id string) (*domain.DepositoType, error) {
	row, err := r.queries.GetDepositoTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDepositoTypeNotFound
		}

		return nil, err
	}

	return rowToDepositoType(row), nil
}

// List lists deposito types with pagination.
func (r *DepositoTypeRepository) List(ctx context.Context, limit, offset int) ([]*domain.DepositoType, error) {
	rows, err := r.queries.ListDepositoTypes(ctx, generated.ListDepositoTypesParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	depositoTypes := make([]*domain.DepositoType, 0, len(rows))
	for _, row := range rows {
		depositoTypes = append(depositoTypes, rowToDepositoType(row))
	}

	return depositoTypes, nil
}

// Update updates a deposito type.
func (r *DepositoTypeRepository) Update(ctx context.Context, depositoType *domain.DepositoType) error {
	return r.queries.UpdateDepositoType(ctx, generated.UpdateDepositoTypeParams{
		ID:           depositoType.ID,
		Name:         depositoType.Name,
		YearlyReturn: decimalToNumeric(depositoType.YearlyReturn),
		UpdatedAt:    timeToPgTimestamptz(depositoType.UpdatedAt),
	})
}

// Delete deletes a deposito type.
func (r *DepositoTypeRepository) Delete(ctx context.Context, id string) error {
	return r.queries.DeleteDepositoType(ctx, id)
}

func rowToDepositoType(row generated.DepositoType) *domain.DepositoType {
	return &domain.DepositoType{
		ID:           row.ID,
		Name:         row.Name,
		YearlyReturn: numericToDecimal(row.YearlyReturn),
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
}
