package cache

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/domain/repository"
	"github.com/address-microservice/internal/pkg/metrics"
)

type cachedCountryRepository struct {
	inner repository.CountryRepository
	rt    readThrough
}

func NewCachedCountryRepository(
	inner repository.CountryRepository,
	cache repository.CacheRepository,
	ttl time.Duration,
	m *metrics.Metrics,
	logger *zap.Logger,
) repository.CountryRepository {
	return &cachedCountryRepository{inner: inner, rt: newReadThrough(cache, ttl, m, logger)}
}

func (r *cachedCountryRepository) GetList(ctx context.Context, locale string) ([]*domain.Country, error) {
	return getOrLoad(ctx, r.rt, "countries", countryListKey(locale), func() ([]*domain.Country, error) {
		return r.inner.GetList(ctx, locale)
	})
}

func (r *cachedCountryRepository) Get(ctx context.Context, code, locale string) (*domain.Country, error) {
	return getOrLoad(ctx, r.rt, "country", countryKey(code, locale), func() (*domain.Country, error) {
		return r.inner.Get(ctx, code, locale)
	})
}
