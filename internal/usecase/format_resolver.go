package usecase

import (
	"context"
	stderrors "errors"
	"strings"

	"go.uber.org/zap"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/domain/repository"
	"github.com/address-microservice/internal/pkg/errors"
	"github.com/address-microservice/internal/pkg/metrics"
)

// FormatResolver выбирает формат страны; для неизвестной страны возвращается общий формат ZZ
type FormatResolver struct {
	formats repository.AddressFormatRepository
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewFormatResolver(
	formats repository.AddressFormatRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *FormatResolver {
	return &FormatResolver{
		formats: formats,
		metrics: m,
		logger:  logger,
	}
}

// Resolve никогда не возвращает ErrAddressFormatNotFound: отсутствие формата страны
// означает переход на ZZ, а отсутствие ZZ - повреждённый источник данных.
func (r *FormatResolver) Resolve(ctx context.Context, countryCode, locale string) (*domain.AddressFormat, error) {
	countryCode = strings.ToUpper(strings.TrimSpace(countryCode))

	if domain.IsCountryCode(countryCode) && countryCode != domain.GenericCountryCode {
		format, err := r.formats.Get(ctx, countryCode, locale)
		if err == nil {
			return format, nil
		}
		if !stderrors.Is(err, errors.ErrAddressFormatNotFound) {
			return nil, err
		}
		r.logger.Debug("Address format not found, using generic format", zap.String("country_code", countryCode))
	}
	if countryCode != domain.GenericCountryCode {
		r.metrics.IncFormatFallback()
	}

	format, err := r.formats.Get(ctx, domain.GenericCountryCode, locale)
	if stderrors.Is(err, errors.ErrAddressFormatNotFound) {
		r.logger.Error("Generic address format is missing")
		return nil, errors.NewDataSourceError("resolve generic format", err)
	}
	if err != nil {
		return nil, err
	}
	return format, nil
}
