package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/domain/repository"
	"github.com/address-microservice/internal/pkg/metrics"
)

// SubdivisionResolver - чтение иерархии подразделений
type SubdivisionResolver struct {
	subdivisions repository.SubdivisionRepository
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

func NewSubdivisionResolver(
	subdivisions repository.SubdivisionRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *SubdivisionResolver {
	return &SubdivisionResolver{
		subdivisions: subdivisions,
		metrics:      m,
		logger:       logger,
	}
}

// Depth - число уровней иерархии страны, от 0 до domain.MaxSubdivisionDepth
func (r *SubdivisionResolver) Depth(ctx context.Context, countryCode string) (int, error) {
	countryCode = strings.ToUpper(strings.TrimSpace(countryCode))
	if !domain.IsCountryCode(countryCode) {
		return 0, nil
	}
	return r.subdivisions.Depth(ctx, countryCode)
}

// ListChildren возвращает прямых потомков parentID, отсортированных по id.
// Неизвестный или чужой родитель даёт пустой список.
func (r *SubdivisionResolver) ListChildren(ctx context.Context, countryCode, parentID, locale string) ([]*domain.Subdivision, error) {
	countryCode = strings.ToUpper(strings.TrimSpace(countryCode))
	if !domain.IsCountryCode(countryCode) {
		return []*domain.Subdivision{}, nil
	}
	if parentID != "" {
		if country, ok := domain.SubdivisionCountry(parentID); !ok || country != countryCode {
			return []*domain.Subdivision{}, nil
		}
	}
	return r.subdivisions.GetList(ctx, countryCode, parentID, locale)
}

// Get возвращает подразделение или nil; неразборный id считается ненайденным
func (r *SubdivisionResolver) Get(ctx context.Context, id, locale string) (*domain.Subdivision, error) {
	if _, ok := domain.SubdivisionCountry(id); !ok {
		return nil, nil
	}
	return r.subdivisions.Get(ctx, id, locale)
}

// HasChildren сообщает, есть ли у подразделения предопределённые потомки
func (r *SubdivisionResolver) HasChildren(ctx context.Context, id string) (bool, error) {
	sub, err := r.Get(ctx, id, "")
	if err != nil || sub == nil {
		return false, err
	}
	return sub.HasChildren, nil
}

// Lookup ищет подразделение по значению поля адреса: значение может быть полным id
// или кодом относительно родителя. Найденное должно принадлежать стране и родителю.
func (r *SubdivisionResolver) Lookup(ctx context.Context, countryCode, parentID, value, locale string) (*domain.Subdivision, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	for _, id := range domain.SubdivisionIDCandidates(countryCode, parentID, value) {
		sub, err := r.Get(ctx, id, locale)
		if err != nil {
			return nil, err
		}
		if sub != nil && sub.CountryCode == countryCode && sub.ParentID == parentID {
			r.metrics.IncSubdivisionLookup("found")
			return sub, nil
		}
	}

	r.metrics.IncSubdivisionLookup("not_found")
	return nil, nil
}
