package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/address-microservice/internal/domain/repository"
	"github.com/address-microservice/internal/pkg/metrics"
)

// readThrough - общая логика кеширующих обёрток. Ошибки кеша не прерывают чтение:
// данные берутся из источника, ошибка только логируется.
type readThrough struct {
	cache   repository.CacheRepository
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func newReadThrough(cache repository.CacheRepository, ttl time.Duration, m *metrics.Metrics, logger *zap.Logger) readThrough {
	if logger == nil {
		logger = zap.NewNop()
	}
	return readThrough{cache: cache, ttl: ttl, metrics: m, logger: logger}
}

func getOrLoad[T any](ctx context.Context, rt readThrough, entity, key string, load func() (T, error)) (T, error) {
	data, err := rt.cache.Get(ctx, key)
	if err != nil {
		rt.logger.Warn("Cache read failed, falling back to source", zap.String("key", key), zap.Error(err))
	} else if data != nil {
		var cached T
		if err := json.Unmarshal(data, &cached); err == nil {
			rt.metrics.IncCacheResult(entity, true)
			return cached, nil
		}
		rt.logger.Warn("Discarding undecodable cache entry", zap.String("key", key))
	}
	rt.metrics.IncCacheResult(entity, false)

	value, err := load()
	if err != nil {
		return value, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		rt.logger.Warn("Failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return value, nil
	}
	if err := rt.cache.Set(ctx, key, encoded, rt.ttl); err != nil {
		rt.logger.Warn("Failed to populate cache", zap.String("key", key), zap.Error(err))
	}
	return value, nil
}
