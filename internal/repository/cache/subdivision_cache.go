package cache

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/domain/repository"
	"github.com/address-microservice/internal/pkg/metrics"
)

type cachedSubdivisionRepository struct {
	inner repository.SubdivisionRepository
	rt    readThrough
}

// NewCachedSubdivisionRepository - кеширующая обёртка над источником подразделений.
// Отсутствующие подразделения тоже кешируются (как null).
func NewCachedSubdivisionRepository(
	inner repository.SubdivisionRepository,
	cache repository.CacheRepository,
	ttl time.Duration,
	m *metrics.Metrics,
	logger *zap.Logger,
) repository.SubdivisionRepository {
	return &cachedSubdivisionRepository{inner: inner, rt: newReadThrough(cache, ttl, m, logger)}
}

func (r *cachedSubdivisionRepository) Depth(ctx context.Context, countryCode string) (int, error) {
	return getOrLoad(ctx, r.rt, "subdivision_depth", subdivisionDepthKey(countryCode), func() (int, error) {
		return r.inner.Depth(ctx, countryCode)
	})
}

func (r *cachedSubdivisionRepository) GetList(ctx context.Context, countryCode, parentID, locale string) ([]*domain.Subdivision, error) {
	list, err := getOrLoad(ctx, r.rt, "subdivisions", subdivisionListKey(countryCode, parentID, locale), func() ([]*domain.Subdivision, error) {
		return r.inner.GetList(ctx, countryCode, parentID, locale)
	})
	if err == nil && list == nil {
		list = []*domain.Subdivision{}
	}
	return list, err
}

func (r *cachedSubdivisionRepository) Get(ctx context.Context, id, locale string) (*domain.Subdivision, error) {
	if _, ok := domain.SubdivisionCountry(id); !ok {
		return nil, nil
	}
	return getOrLoad(ctx, r.rt, "subdivision", subdivisionKey(id, locale), func() (*domain.Subdivision, error) {
		return r.inner.Get(ctx, id, locale)
	})
}
