package usecase

import (
	"context"
	stderrors "errors"
	"strings"

	"go.uber.org/zap"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/domain/repository"
	"github.com/address-microservice/internal/pkg/errors"
	"github.com/address-microservice/internal/usecase/dto"
)

// FormatUseCase - чтение и администрирование форматов адресов
type FormatUseCase struct {
	resolver     *FormatResolver
	subdivisions *SubdivisionResolver
	store        repository.AddressFormatStore
	invalidator  repository.CacheInvalidator
	logger       *zap.Logger
}

func NewFormatUseCase(
	resolver *FormatResolver,
	subdivisions *SubdivisionResolver,
	store repository.AddressFormatStore,
	invalidator repository.CacheInvalidator,
	logger *zap.Logger,
) *FormatUseCase {
	return &FormatUseCase{
		resolver:     resolver,
		subdivisions: subdivisions,
		store:        store,
		invalidator:  invalidator,
		logger:       logger,
	}
}

// Get возвращает формат страны (или ZZ) с производными метаданными полей
func (uc *FormatUseCase) Get(ctx context.Context, countryCode, locale string) (*dto.FormatResponse, error) {
	format, err := uc.resolver.Resolve(ctx, countryCode, locale)
	if err != nil {
		return nil, err
	}

	depth := 0
	if !format.IsGeneric() {
		depth, err = uc.subdivisions.Depth(ctx, format.CountryCode)
		if err != nil {
			return nil, err
		}
	}

	grouped := make([][]string, 0)
	for _, group := range format.GroupedFields() {
		grouped = append(grouped, dto.FieldNames(group))
	}
	labels := make(map[string]string)
	for f, l := range domain.FieldLabels(format) {
		labels[string(f)] = l
	}

	resp := &dto.FormatResponse{
		AddressFormat:     format,
		UsedFields:        dto.FieldNames(format.UsedFields()),
		GroupedFields:     grouped,
		SubdivisionFields: dto.FieldNames(format.UsedSubdivisionFields()),
		Labels:            labels,
		SubdivisionDepth:  depth,
	}
	if requested := strings.ToUpper(countryCode); requested != format.CountryCode {
		resp.RequestedCountryCode = requested
	}
	return resp, nil
}

func (uc *FormatUseCase) List(ctx context.Context, locale string) (*dto.FormatListResponse, error) {
	formats, err := uc.store.GetAll(ctx, locale)
	if err != nil {
		uc.logger.Error("Failed to list address formats", zap.Error(err))
		return nil, err
	}
	return &dto.FormatListResponse{
		Formats: formats,
		Total:   len(formats),
	}, nil
}

// Save создаёт или обновляет формат. Код страны берётся из пути и не может быть изменён телом запроса.
func (uc *FormatUseCase) Save(ctx context.Context, countryCode string, req dto.SaveFormatRequest) (*domain.AddressFormat, error) {
	countryCode = strings.ToUpper(strings.TrimSpace(countryCode))
	if !domain.IsCountryCode(countryCode) {
		return nil, errors.ErrInvalidCountryCode
	}
	if code := strings.ToUpper(strings.TrimSpace(req.CountryCode)); code != "" && code != countryCode {
		return nil, errors.ErrCountryCodeImmutable
	}

	format := &domain.AddressFormat{
		CountryCode:            countryCode,
		Format:                 strings.ReplaceAll(req.Format, "\r\n", "\n"),
		RequiredFields:         toFields(req.RequiredFields),
		UppercaseFields:        toFields(req.UppercaseFields),
		AdministrativeAreaType: domain.AdministrativeAreaType(req.AdministrativeAreaType),
		LocalityType:           domain.LocalityType(req.LocalityType),
		DependentLocalityType:  domain.DependentLocalityType(req.DependentLocalityType),
		PostalCodeType:         domain.PostalCodeType(req.PostalCodeType),
		PostalCodePattern:      req.PostalCodePattern,
		PostalCodePrefix:       req.PostalCodePrefix,
	}
	if err := format.Validate(); err != nil {
		return nil, errors.ErrInvalidAddressFormat.WithMessage(err.Error())
	}

	if err := uc.store.Save(ctx, format); err != nil {
		uc.logger.Error("Failed to save address format", zap.String("country_code", countryCode), zap.Error(err))
		return nil, err
	}
	uc.invalidateFormat(ctx, countryCode)

	uc.logger.Info("Address format saved", zap.String("country_code", countryCode))
	return format, nil
}

// Delete удаляет формат и все подразделения страны; общий формат ZZ удалить нельзя
func (uc *FormatUseCase) Delete(ctx context.Context, countryCode string) error {
	countryCode = strings.ToUpper(strings.TrimSpace(countryCode))
	if countryCode == domain.GenericCountryCode {
		return errors.ErrGenericFormatDeletion
	}
	if !domain.IsCountryCode(countryCode) {
		return errors.ErrInvalidCountryCode
	}

	if err := uc.store.Delete(ctx, countryCode); err != nil {
		if !stderrors.Is(err, errors.ErrAddressFormatNotFound) {
			uc.logger.Error("Failed to delete address format", zap.String("country_code", countryCode), zap.Error(err))
		}
		return err
	}
	uc.invalidateFormat(ctx, countryCode)

	uc.logger.Info("Address format deleted", zap.String("country_code", countryCode))
	return nil
}

// invalidateFormat: ошибка кеша не откатывает изменение, записи истекут по TTL
func (uc *FormatUseCase) invalidateFormat(ctx context.Context, countryCode string) {
	if err := uc.invalidator.InvalidateFormat(ctx, countryCode); err != nil {
		uc.logger.Warn("Failed to invalidate format cache", zap.String("country_code", countryCode), zap.Error(err))
	}
}

func toFields(names []string) []domain.Field {
	fields := make([]domain.Field, 0, len(names))
	for _, name := range names {
		fields = append(fields, domain.Field(name))
	}
	return fields
}
