package repository

import "context"

// CacheInvalidator сбрасывает закешированные форматы и подразделения после изменений
type CacheInvalidator interface {
	InvalidateFormat(ctx context.Context, countryCode string) error
	InvalidateSubdivisions(ctx context.Context, countryCode string) error
	InvalidateAll(ctx context.Context) error
}
