package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/address-microservice/internal/domain/repository"
)

// AvailableCountriesCache хранит списки доступных стран по явному ключу определения поля
type AvailableCountriesCache struct {
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

func NewAvailableCountriesCache(cache repository.CacheRepository, ttl time.Duration, logger *zap.Logger) *AvailableCountriesCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AvailableCountriesCache{cache: cache, ttl: ttl, logger: logger}
}

// Get возвращает сохранённый список; found=false при промахе
func (c *AvailableCountriesCache) Get(ctx context.Context, fieldDefinitionID string) ([]string, bool, error) {
	data, err := c.cache.Get(ctx, availableCountriesKey(fieldDefinitionID))
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return nil, false, nil
	}
	var codes []string
	if err := json.Unmarshal(data, &codes); err != nil {
		return nil, false, fmt.Errorf("decode available countries: %w", err)
	}
	return codes, true, nil
}

func (c *AvailableCountriesCache) Set(ctx context.Context, fieldDefinitionID string, codes []string) error {
	if codes == nil {
		codes = []string{}
	}
	data, err := json.Marshal(codes)
	if err != nil {
		return fmt.Errorf("encode available countries: %w", err)
	}
	return c.cache.Set(ctx, availableCountriesKey(fieldDefinitionID), data, c.ttl)
}

func (c *AvailableCountriesCache) Invalidate(ctx context.Context, fieldDefinitionID string) error {
	return c.cache.Delete(ctx, availableCountriesKey(fieldDefinitionID))
}
