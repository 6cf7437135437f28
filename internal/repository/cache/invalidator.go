package cache

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/address-microservice/internal/domain/repository"
)

type invalidator struct {
	cache  repository.CacheRepository
	logger *zap.Logger
}

func NewInvalidator(cache repository.CacheRepository, logger *zap.Logger) repository.CacheInvalidator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &invalidator{cache: cache, logger: logger}
}

func (i *invalidator) InvalidateFormat(ctx context.Context, countryCode string) error {
	return i.deletePatterns(ctx, FormatPatterns(countryCode))
}

func (i *invalidator) InvalidateSubdivisions(ctx context.Context, countryCode string) error {
	return i.deletePatterns(ctx, SubdivisionPatterns(countryCode))
}

func (i *invalidator) InvalidateAll(ctx context.Context) error {
	return i.deletePatterns(ctx, []string{AllPattern()})
}

func (i *invalidator) deletePatterns(ctx context.Context, patterns []string) error {
	total := 0
	for _, pattern := range patterns {
		n, err := i.cache.DeletePattern(ctx, pattern)
		if err != nil {
			return fmt.Errorf("invalidate %s: %w", pattern, err)
		}
		total += n
	}
	i.logger.Debug("Cache invalidated", zap.Strings("patterns", patterns), zap.Int("deleted", total))
	return nil
}

// noopInvalidator используется, когда кеш выключен
type noopInvalidator struct{}

func NewNoopInvalidator() repository.CacheInvalidator {
	return noopInvalidator{}
}

func (noopInvalidator) InvalidateFormat(context.Context, string) error       { return nil }
func (noopInvalidator) InvalidateSubdivisions(context.Context, string) error { return nil }
func (noopInvalidator) InvalidateAll(context.Context) error                  { return nil }
