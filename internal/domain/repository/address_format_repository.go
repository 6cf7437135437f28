package repository

import (
	"context"

	"github.com/address-microservice/internal/domain"
)

// AddressFormatRepository - источник форматов адресов
type AddressFormatRepository interface {
	// Get возвращает формат страны с шаблоном для локали.
	// Если формата нет - errors.ErrAddressFormatNotFound.
	Get(ctx context.Context, countryCode, locale string) (*domain.AddressFormat, error)

	// GetAll возвращает все форматы, отсортированные по коду страны
	GetAll(ctx context.Context, locale string) ([]*domain.AddressFormat, error)
}

// AddressFormatStore - изменяемое хранилище форматов
type AddressFormatStore interface {
	AddressFormatRepository

	// Save создаёт или перезаписывает формат
	Save(ctx context.Context, format *domain.AddressFormat) error

	// SaveTranslation сохраняет переведённый шаблон для локали
	SaveTranslation(ctx context.Context, countryCode, locale, template string) error

	// Delete удаляет формат вместе со всеми подразделениями страны
	Delete(ctx context.Context, countryCode string) error
}
