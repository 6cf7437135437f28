package repository

import (
	"context"

	"github.com/address-microservice/internal/domain"
)

// SubdivisionRepository - источник иерархии подразделений
type SubdivisionRepository interface {
	// Depth возвращает число уровней иерархии страны (0, если данных нет)
	Depth(ctx context.Context, countryCode string) (int, error)

	// GetList возвращает прямых потомков parentID (пустой parentID - верхний уровень),
	// отсортированных по id. Неизвестный родитель даёт пустой список.
	GetList(ctx context.Context, countryCode, parentID, locale string) ([]*domain.Subdivision, error)

	// Get возвращает подразделение по id; (nil, nil), если не найдено
	Get(ctx context.Context, id, locale string) (*domain.Subdivision, error)
}

// SubdivisionStore - изменяемое хранилище подразделений
type SubdivisionStore interface {
	SubdivisionRepository

	// GetAll возвращает все подразделения страны без локализации
	GetAll(ctx context.Context, countryCode string) ([]*domain.Subdivision, error)

	// Save создаёт или перезаписывает подразделение
	Save(ctx context.Context, subdivision *domain.Subdivision) error

	// Delete удаляет подразделение и всех потомков
	Delete(ctx context.Context, id string) error
}
