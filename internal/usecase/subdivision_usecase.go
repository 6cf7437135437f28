package usecase

import (
	"context"
	stderrors "errors"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/domain/repository"
	"github.com/address-microservice/internal/pkg/errors"
	"github.com/address-microservice/internal/usecase/dto"
)

// SubdivisionUseCase - чтение и администрирование подразделений
type SubdivisionUseCase struct {
	resolver    *SubdivisionResolver
	store       repository.SubdivisionStore
	formats     repository.AddressFormatRepository
	invalidator repository.CacheInvalidator
	logger      *zap.Logger
}

func NewSubdivisionUseCase(
	resolver *SubdivisionResolver,
	store repository.SubdivisionStore,
	formats repository.AddressFormatRepository,
	invalidator repository.CacheInvalidator,
	logger *zap.Logger,
) *SubdivisionUseCase {
	return &SubdivisionUseCase{
		resolver:    resolver,
		store:       store,
		formats:     formats,
		invalidator: invalidator,
		logger:      logger,
	}
}

func (uc *SubdivisionUseCase) Children(ctx context.Context, countryCode, parentID, locale string) (*dto.SubdivisionListResponse, error) {
	countryCode = strings.ToUpper(strings.TrimSpace(countryCode))
	list, err := uc.resolver.ListChildren(ctx, countryCode, parentID, locale)
	if err != nil {
		uc.logger.Error("Failed to list subdivisions",
			zap.String("country_code", countryCode),
			zap.String("parent_id", parentID),
			zap.Error(err))
		return nil, err
	}
	items := dto.ConvertSubdivisions(list)
	return &dto.SubdivisionListResponse{
		CountryCode: countryCode,
		ParentID:    parentID,
		Items:       items,
		Total:       len(items),
	}, nil
}

func (uc *SubdivisionUseCase) Depth(ctx context.Context, countryCode string) (*dto.SubdivisionDepthResponse, error) {
	countryCode = strings.ToUpper(strings.TrimSpace(countryCode))
	depth, err := uc.resolver.Depth(ctx, countryCode)
	if err != nil {
		return nil, err
	}
	return &dto.SubdivisionDepthResponse{CountryCode: countryCode, Depth: depth}, nil
}

func (uc *SubdivisionUseCase) Get(ctx context.Context, id, locale string) (*domain.Subdivision, error) {
	sub, err := uc.resolver.Get(ctx, id, locale)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, errors.ErrSubdivisionNotFound
	}
	return sub, nil
}

// Save создаёт или обновляет подразделение. Формат страны и родитель должны существовать,
// id должен продолжать id родителя, глубина не превышает domain.MaxSubdivisionDepth.
func (uc *SubdivisionUseCase) Save(ctx context.Context, id string, req dto.SaveSubdivisionRequest) (*domain.Subdivision, error) {
	countryCode, ok := domain.SubdivisionCountry(id)
	if !ok {
		return nil, errors.ErrInvalidSubdivision.WithMessage("Malformed subdivision id")
	}

	sub := &domain.Subdivision{
		ID:                id,
		CountryCode:       countryCode,
		ParentID:          req.ParentID,
		Code:              strings.TrimSpace(req.Code),
		Name:              strings.TrimSpace(req.Name),
		PostalCodePattern: req.PostalCodePattern,
	}
	if len(req.Translations) > 0 {
		sub.Translations = make(map[string]domain.SubdivisionTranslation, len(req.Translations))
		for tag, t := range req.Translations {
			sub.Translations[tag] = domain.SubdivisionTranslation{Code: t.Code, Name: t.Name}
		}
	}
	if err := sub.Validate(); err != nil {
		return nil, errors.ErrInvalidSubdivision.WithMessage(err.Error())
	}
	if sub.PostalCodePattern != "" {
		if _, err := regexp.Compile(sub.PostalCodePattern); err != nil {
			return nil, errors.ErrInvalidSubdivision.WithMessage("Invalid postal code pattern")
		}
	}

	if _, err := uc.formats.Get(ctx, countryCode, ""); err != nil {
		return nil, err
	}
	if err := uc.checkParent(ctx, sub); err != nil {
		return nil, err
	}

	if err := uc.store.Save(ctx, sub); err != nil {
		uc.logger.Error("Failed to save subdivision", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	uc.invalidate(ctx, countryCode)

	uc.logger.Info("Subdivision saved", zap.String("id", id))
	return sub, nil
}

// checkParent проверяет родителя и глубину новой ветки
func (uc *SubdivisionUseCase) checkParent(ctx context.Context, sub *domain.Subdivision) error {
	level := 1
	for parentID := sub.ParentID; parentID != ""; level++ {
		if parentID == sub.ID {
			return errors.ErrInvalidSubdivision.WithMessage("Subdivision cannot be its own ancestor")
		}
		parent, err := uc.store.Get(ctx, parentID, "")
		if err != nil {
			return err
		}
		if parent == nil {
			return errors.ErrSubdivisionNotFound.WithMessage("Parent subdivision not found")
		}
		if parent.CountryCode != sub.CountryCode {
			return errors.ErrInvalidSubdivision.WithMessage("Parent subdivision belongs to another country")
		}
		parentID = parent.ParentID
	}
	if level > domain.MaxSubdivisionDepth {
		return errors.ErrInvalidSubdivision.WithMessage("Subdivision hierarchy is too deep")
	}
	return nil
}

// Delete удаляет подразделение вместе с потомками
func (uc *SubdivisionUseCase) Delete(ctx context.Context, id string) error {
	countryCode, ok := domain.SubdivisionCountry(id)
	if !ok {
		return errors.ErrSubdivisionNotFound
	}

	if err := uc.store.Delete(ctx, id); err != nil {
		if !stderrors.Is(err, errors.ErrSubdivisionNotFound) {
			uc.logger.Error("Failed to delete subdivision", zap.String("id", id), zap.Error(err))
		}
		return err
	}
	uc.invalidate(ctx, countryCode)

	uc.logger.Info("Subdivision deleted", zap.String("id", id))
	return nil
}

func (uc *SubdivisionUseCase) invalidate(ctx context.Context, countryCode string) {
	if err := uc.invalidator.InvalidateSubdivisions(ctx, countryCode); err != nil {
		uc.logger.Warn("Failed to invalidate subdivision cache", zap.String("country_code", countryCode), zap.Error(err))
	}
}
