package repository

import (
	"context"

	"github.com/address-microservice/internal/domain"
)

// CountryRepository - справочник стран
type CountryRepository interface {
	// GetList возвращает страны, отсортированные по коду, с названиями для локали
	GetList(ctx context.Context, locale string) ([]*domain.Country, error)

	// Get возвращает страну; (nil, nil), если код неизвестен
	Get(ctx context.Context, code, locale string) (*domain.Country, error)
}
