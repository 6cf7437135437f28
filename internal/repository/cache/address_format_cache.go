package cache

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/domain/repository"
	"github.com/address-microservice/internal/pkg/metrics"
)

type cachedAddressFormatRepository struct {
	inner repository.AddressFormatRepository
	rt    readThrough
}

// NewCachedAddressFormatRepository - кеширующая обёртка над источником форматов
func NewCachedAddressFormatRepository(
	inner repository.AddressFormatRepository,
	cache repository.CacheRepository,
	ttl time.Duration,
	m *metrics.Metrics,
	logger *zap.Logger,
) repository.AddressFormatRepository {
	return &cachedAddressFormatRepository{inner: inner, rt: newReadThrough(cache, ttl, m, logger)}
}

func (r *cachedAddressFormatRepository) Get(ctx context.Context, countryCode, locale string) (*domain.AddressFormat, error) {
	return getOrLoad(ctx, r.rt, "format", formatKey(countryCode, locale), func() (*domain.AddressFormat, error) {
		return r.inner.Get(ctx, countryCode, locale)
	})
}

func (r *cachedAddressFormatRepository) GetAll(ctx context.Context, locale string) ([]*domain.AddressFormat, error) {
	return getOrLoad(ctx, r.rt, "formats", formatListKey(locale), func() ([]*domain.AddressFormat, error) {
		return r.inner.GetAll(ctx, locale)
	})
}
