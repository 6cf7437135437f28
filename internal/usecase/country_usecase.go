package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/domain/repository"
	"github.com/address-microservice/internal/usecase/dto"
)

// AvailableCountriesStore - кеш списков доступных стран по id определения поля
type AvailableCountriesStore interface {
	Get(ctx context.Context, fieldDefinitionID string) ([]string, bool, error)
	Set(ctx context.Context, fieldDefinitionID string, codes []string) error
	Invalidate(ctx context.Context, fieldDefinitionID string) error
}

type CountryUseCase struct {
	countries repository.CountryRepository
	available AvailableCountriesStore
	logger    *zap.Logger
}

// NewCountryUseCase - available может быть nil, тогда списки не кешируются
func NewCountryUseCase(
	countries repository.CountryRepository,
	available AvailableCountriesStore,
	logger *zap.Logger,
) *CountryUseCase {
	return &CountryUseCase{
		countries: countries,
		available: available,
		logger:    logger,
	}
}

func (uc *CountryUseCase) List(ctx context.Context, locale string) (*dto.CountryListResponse, error) {
	countries, err := uc.countries.GetList(ctx, locale)
	if err != nil {
		uc.logger.Error("Failed to list countries", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CountryDTO, 0, len(countries))
	for _, c := range countries {
		result = append(result, dto.CountryDTO{Code: c.Code, Name: c.Name})
	}
	return &dto.CountryListResponse{
		Countries: result,
		Total:     len(result),
	}, nil
}

// Name - название страны на языке локали; пусто для неизвестного кода
func (uc *CountryUseCase) Name(ctx context.Context, code, locale string) (string, error) {
	country, err := uc.countries.Get(ctx, strings.ToUpper(code), locale)
	if err != nil || country == nil {
		return "", err
	}
	return country.Name, nil
}

// AvailableCountries - коды стран, доступных для определения поля. Пустой configured
// означает все страны; неизвестные коды отбрасываются. Результат кешируется по
// fieldDefinitionID, пустой id отключает кеш.
func (uc *CountryUseCase) AvailableCountries(ctx context.Context, fieldDefinitionID string, configured []string) ([]string, error) {
	useCache := uc.available != nil && fieldDefinitionID != ""
	if useCache {
		codes, found, err := uc.available.Get(ctx, fieldDefinitionID)
		if err != nil {
			uc.logger.Warn("Failed to read available countries from cache",
				zap.String("field_definition_id", fieldDefinitionID),
				zap.Error(err))
		} else if found {
			return codes, nil
		}
	}

	all, err := uc.countries.GetList(ctx, "")
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(all))
	for _, c := range all {
		known[c.Code] = true
	}

	var codes []string
	if len(configured) == 0 {
		codes = make([]string, 0, len(all))
		for _, c := range all {
			codes = append(codes, c.Code)
		}
	} else {
		codes = make([]string, 0, len(configured))
		for _, code := range configured {
			code = strings.ToUpper(strings.TrimSpace(code))
			if known[code] {
				codes = append(codes, code)
			}
		}
	}

	if useCache {
		if err := uc.available.Set(ctx, fieldDefinitionID, codes); err != nil {
			uc.logger.Warn("Failed to cache available countries",
				zap.String("field_definition_id", fieldDefinitionID),
				zap.Error(err))
		}
	}
	return codes, nil
}

// ResetAvailableCountries сбрасывает кеш после изменения настроек поля
func (uc *CountryUseCase) ResetAvailableCountries(ctx context.Context, fieldDefinitionID string) error {
	if uc.available == nil || fieldDefinitionID == "" {
		return nil
	}
	return uc.available.Invalidate(ctx, fieldDefinitionID)
}

func isCountryKnown(ctx context.Context, countries repository.CountryRepository, code string) (bool, error) {
	if !domain.IsCountryCode(code) {
		return false, nil
	}
	country, err := countries.Get(ctx, code, "")
	if err != nil {
		return false, err
	}
	return country != nil, nil
}
