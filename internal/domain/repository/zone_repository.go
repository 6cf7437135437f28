package repository

import (
	"context"

	"github.com/address-microservice/internal/domain"
)

// ZoneRepository - хранилище зон
type ZoneRepository interface {
	// Get возвращает зону; (nil, nil), если не найдена
	Get(ctx context.Context, id string) (*domain.Zone, error)

	List(ctx context.Context) ([]*domain.Zone, error)

	Save(ctx context.Context, zone *domain.Zone) error

	Delete(ctx context.Context, id string) error
}
