package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/harisblablabla/go-bank-system/internal/domain"
	"github.com/harisblablabla/go-bank-system/internal/usecase"
)

// DepositoTypeCache is a read-through cache in front of a
// DepositoTypeRepository. Deposito types change rarely but are read on every
// withdrawal, so GetByID is served from Redis when possible. Writes go to the
// inner repository and invalidate the cached entry.
type DepositoTypeCache struct {
	inner  usecase.DepositoTypeRepository
	cache  usecase.Cache
	ttl    time.Duration
	logger zerolog.Logger
}

// NewDepositoTypeCache creates a new DepositoTypeCache.
func NewDepositoTypeCache(inner usecase.DepositoTypeRepository, cache usecase.Cache, ttl time.Duration, logger zerolog.Logger) *DepositoTypeCache {
	return &DepositoTypeCache{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func depositoTypeKey(id string) string {
	return "deposito_type:" + id
}

// Create creates a deposito type through the inner repository.
func (c *DepositoTypeCache) Create(ctx context.Context, depositoType *domain.DepositoType) error {
	return c.inner.Create(ctx, depositoType)
}

// GetByID serves from cache when possible, falling back to the inner
// repository. Cache failures degrade to a direct read.
func (c *DepositoTypeCache) GetByID(ctx context.Context, id string) (*domain.DepositoType, error) {
	cached, err := c.cache.Get(ctx, depositoTypeKey(id))
	if err == nil {
		var depositoType domain.DepositoType
		if err := json.Unmarshal([]byte(cached), &depositoType); err == nil {
			return &depositoType, nil
		}
	} else if !errors.Is(err, usecase.ErrCacheMiss) {
		c.logger.Warn().Err(err).Str("deposito_type_id", id).Msg("deposito type cache read failed")
	}

	depositoType, err := c.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(depositoType); err == nil {
		if err := c.cache.Set(ctx, depositoTypeKey(id), string(encoded), c.ttl); err != nil {
			c.logger.Warn().Err(err).Str("deposito_type_id", id).Msg("deposito type cache write failed")
		}
	}

	return depositoType, nil
}

// List always reads through to the inner repository.
func (c *DepositoTypeCache) List(ctx context.Context, limit, offset int) ([]*domain.DepositoType, error) {
	return c.inner.List(ctx, limit, offset)
}

// Update updates through the inner repository and drops the cached entry.
func (c *DepositoTypeCache) Update(ctx context.Context, depositoType *domain.DepositoType) error {
	if err := c.inner.Update(ctx, depositoType); err != nil {
		return err
	}

	if err := c.cache.Delete(ctx, depositoTypeKey(depositoType.ID)); err != nil {
		c.logger.Warn().Err(err).Str("deposito_type_id", depositoType.ID).Msg("deposito type cache invalidation failed")
	}

	return nil
}

// Delete deletes through the inner repository and drops the cached entry.
func (c *DepositoTypeCache) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}

	if err := c.cache.Delete(ctx, depositoTypeKey(id)); err != nil {
		c.logger.Warn().Err(err).Str("deposito_type_id", id).Msg("deposito type cache invalidation failed")
	}

	return nil
}
