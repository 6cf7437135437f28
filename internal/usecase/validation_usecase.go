package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/domain/repository"
	"github.com/address-microservice/internal/usecase/dto"
)

// ValidationOptions - ограничения, заданные определением поля
type ValidationOptions struct {
	Locale string
	// AvailableCountries - допустимые страны; пусто - все
	AvailableCountries []string
}

// AddressValidator проверяет адрес по формату страны. Нарушения возвращаются списком.
type AddressValidator struct {
	formats      *FormatResolver
	subdivisions *SubdivisionResolver
	countries    repository.CountryRepository
	logger       *zap.Logger
}

func NewAddressValidator(
	formats *FormatResolver,
	subdivisions *SubdivisionResolver,
	countries repository.CountryRepository,
	logger *zap.Logger,
) *AddressValidator {
	return &AddressValidator{
		formats:      formats,
		subdivisions: subdivisions,
		countries:    countries,
		logger:       logger,
	}
}

// Validate возвращает нарушения; ошибка означает сбой источника данных
func (v *AddressValidator) Validate(ctx context.Context, addr *domain.Address, opts ValidationOptions) ([]domain.Violation, error) {
	violations := []domain.Violation{}
	countryCode := strings.ToUpper(strings.TrimSpace(addr.CountryCode))
	if countryCode == "" {
		return violations, nil
	}

	known, err := isCountryKnown(ctx, v.countries, countryCode)
	if err != nil {
		return nil, err
	}
	if !known {
		return append(violations, domain.Violation{
			Field:        domain.ViolationFieldCountry,
			Message:      fmt.Sprintf("The country %s is not valid.", addr.CountryCode),
			InvalidValue: addr.CountryCode,
		}), nil
	}
	if len(opts.AvailableCountries) > 0 && !containsString(opts.AvailableCountries, countryCode) {
		return append(violations, domain.Violation{
			Field:        domain.ViolationFieldCountry,
			Message:      fmt.Sprintf("The country %s is not available.", countryCode),
			InvalidValue: addr.CountryCode,
		}), nil
	}

	tag := opts.Locale
	if tag == "" {
		tag = addr.Locale
	}
	format, err := v.formats.Resolve(ctx, countryCode, tag)
	if err != nil {
		return nil, err
	}
	labels := domain.FieldLabels(format)

	for _, field := range domain.AllFields() {
		value := strings.TrimSpace(addr.Value(field))
		switch {
		case !format.IsUsed(field) && value != "":
			violations = append(violations, domain.Violation{
				Field:        field.PropertyName(),
				Message:      fmt.Sprintf("%s field is not used by this country.", labels[field]),
				InvalidValue: value,
			})
		case format.IsUsed(field) && format.IsRequired(field) && value == "":
			violations = append(violations, domain.Violation{
				Field:   field.PropertyName(),
				Message: fmt.Sprintf("%s field is required.", labels[field]),
			})
		}
	}

	selected, subdivisionViolation, err := v.validateSubdivisions(ctx, format, countryCode, addr, tag, labels)
	if err != nil {
		return nil, err
	}
	if subdivisionViolation != nil {
		violations = append(violations, *subdivisionViolation)
	}

	postalCode := strings.TrimSpace(addr.PostalCode)
	if format.IsUsed(domain.FieldPostalCode) && postalCode != "" {
		if !format.MatchesPostalCode(postalCode) {
			violations = append(violations, domain.Violation{
				Field:        domain.FieldPostalCode.PropertyName(),
				Message:      fmt.Sprintf("%s field is not in the right format.", labels[domain.FieldPostalCode]),
				InvalidValue: postalCode,
			})
		} else if selected != nil && !selected.MatchesPostalCodePrefix(postalCode) {
			violations = append(violations, domain.Violation{
				Field:        domain.FieldPostalCode.PropertyName(),
				Message:      fmt.Sprintf("%s field does not match %s.", labels[domain.FieldPostalCode], selected.Name),
				InvalidValue: postalCode,
			})
		}
	}

	return violations, nil
}

// validateSubdivisions проходит уровни как рендерер. Значение уровня с предопределёнными
// потомками обязано быть одним из них. Возвращает самое глубокое выбранное подразделение
// с собственным шаблоном индекса.
func (v *AddressValidator) validateSubdivisions(
	ctx context.Context,
	format *domain.AddressFormat,
	countryCode string,
	addr *domain.Address,
	tag string,
	labels map[domain.Field]string,
) (*domain.Subdivision, *domain.Violation, error) {
	var withPattern *domain.Subdivision
	parentID := ""
	for _, field := range format.UsedSubdivisionFields() {
		value := strings.TrimSpace(addr.Value(field))
		if value == "" {
			break
		}
		children, err := v.subdivisions.ListChildren(ctx, countryCode, parentID, tag)
		if err != nil {
			return nil, nil, err
		}
		if len(children) == 0 {
			break
		}
		sub, err := v.subdivisions.Lookup(ctx, countryCode, parentID, value, tag)
		if err != nil {
			return nil, nil, err
		}
		if sub == nil {
			return withPattern, &domain.Violation{
				Field:        field.PropertyName(),
				Message:      fmt.Sprintf("%s field is not valid.", labels[field]),
				InvalidValue: value,
			}, nil
		}
		if sub.PostalCodePattern != "" {
			withPattern = sub
		}
		if !sub.HasChildren {
			break
		}
		parentID = sub.ID
	}
	return withPattern, nil, nil
}

// ValidationUseCase - проверка адресов для HTTP API
type ValidationUseCase struct {
	validator *AddressValidator
	countries *CountryUseCase
	logger    *zap.Logger
}

func NewValidationUseCase(validator *AddressValidator, countries *CountryUseCase, logger *zap.Logger) *ValidationUseCase {
	return &ValidationUseCase{
		validator: validator,
		countries: countries,
		logger:    logger,
	}
}

func (uc *ValidationUseCase) Validate(ctx context.Context, req dto.ValidateAddressRequest) (*dto.ValidationResponse, error) {
	available := req.AvailableCountries
	if req.FieldDefinitionID != "" {
		codes, err := uc.countries.AvailableCountries(ctx, req.FieldDefinitionID, req.AvailableCountries)
		if err != nil {
			return nil, err
		}
		available = codes
	}

	violations, err := uc.validator.Validate(ctx, req.Address.ToDomain(), ValidationOptions{
		Locale:             req.Locale,
		AvailableCountries: available,
	})
	if err != nil {
		uc.logger.Error("Failed to validate address", zap.Error(err))
		return nil, err
	}
	return &dto.ValidationResponse{
		Valid:      len(violations) == 0,
		Violations: violations,
	}, nil
}

func containsString(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
