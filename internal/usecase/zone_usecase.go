package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/domain/repository"
	"github.com/address-microservice/internal/pkg/errors"
	"github.com/address-microservice/internal/usecase/dto"
)

type ZoneUseCase struct {
	zones  repository.ZoneRepository
	logger *zap.Logger
}

func NewZoneUseCase(zones repository.ZoneRepository, logger *zap.Logger) *ZoneUseCase {
	return &ZoneUseCase{
		zones:  zones,
		logger: logger,
	}
}

func (uc *ZoneUseCase) List(ctx context.Context) (*dto.ZoneListResponse, error) {
	zones, err := uc.zones.List(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ZoneListResponse{Zones: zones, Total: len(zones)}, nil
}

func (uc *ZoneUseCase) Get(ctx context.Context, id string) (*domain.Zone, error) {
	zone, err := uc.zones.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if zone == nil {
		return nil, errors.ErrZoneNotFound
	}
	return zone, nil
}

// Match проверяет адрес по зоне. Зоны загружаются одним снимком, чтобы ссылки
// между зонами разрешались без повторных обращений к хранилищу.
func (uc *ZoneUseCase) Match(ctx context.Context, zoneID string, addr *domain.Address) (*dto.ZoneMatchResponse, error) {
	zones, err := uc.zones.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to load zones", zap.Error(err))
		return nil, err
	}
	byID := make(map[string]*domain.Zone, len(zones))
	for _, z := range zones {
		byID[z.ID] = z
	}

	zone, ok := byID[zoneID]
	if !ok {
		return nil, errors.ErrZoneNotFound
	}
	matched := zone.Match(addr, func(id string) *domain.Zone { return byID[id] })

	return &dto.ZoneMatchResponse{ZoneID: zoneID, Matched: matched}, nil
}

func (uc *ZoneUseCase) Save(ctx context.Context, zone *domain.Zone) error {
	if err := zone.Validate(); err != nil {
		return errors.ErrInvalidZone.WithMessage(err.Error())
	}
	if err := uc.zones.Save(ctx, zone); err != nil {
		uc.logger.Error("Failed to save zone", zap.String("zone_id", zone.ID), zap.Error(err))
		return err
	}
	return nil
}

func (uc *ZoneUseCase) Delete(ctx context.Context, id string) error {
	return uc.zones.Delete(ctx, id)
}
