package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/address-microservice/internal/domain"
)

// MockAddressFormatRepository - мок AddressFormatStore
type MockAddressFormatRepository struct {
	mock.Mock
}

func (m *MockAddressFormatRepository) Get(ctx context.Context, countryCode, locale string) (*domain.AddressFormat, error) {
	args := m.Called(ctx, countryCode, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AddressFormat), args.Error(1)
}

func (m *MockAddressFormatRepository) GetAll(ctx context.Context, locale string) ([]*domain.AddressFormat, error) {
	args := m.Called(ctx, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AddressFormat), args.Error(1)
}

func (m *MockAddressFormatRepository) Save(ctx context.Context, format *domain.AddressFormat) error {
	return m.Called(ctx, format).Error(0)
}

func (m *MockAddressFormatRepository) SaveTranslation(ctx context.Context, countryCode, locale, template string) error {
	return m.Called(ctx, countryCode, locale, template).Error(0)
}

func (m *MockAddressFormatRepository) Delete(ctx context.Context, countryCode string) error {
	return m.Called(ctx, countryCode).Error(0)
}

// MockSubdivisionRepository - мок SubdivisionStore
type MockSubdivisionRepository struct {
	mock.Mock
}

func (m *MockSubdivisionRepository) Depth(ctx context.Context, countryCode string) (int, error) {
	args := m.Called(ctx, countryCode)
	return args.Int(0), args.Error(1)
}

func (m *MockSubdivisionRepository) GetList(ctx context.Context, countryCode, parentID, locale string) ([]*domain.Subdivision, error) {
	args := m.Called(ctx, countryCode, parentID, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Subdivision), args.Error(1)
}

func (m *MockSubdivisionRepository) Get(ctx context.Context, id, locale string) (*domain.Subdivision, error) {
	args := m.Called(ctx, id, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subdivision), args.Error(1)
}

func (m *MockSubdivisionRepository) GetAll(ctx context.Context, countryCode string) ([]*domain.Subdivision, error) {
	args := m.Called(ctx, countryCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Subdivision), args.Error(1)
}

func (m *MockSubdivisionRepository) Save(ctx context.Context, sub *domain.Subdivision) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *MockSubdivisionRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockCountryRepository - мок CountryRepository
type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) GetList(ctx context.Context, locale string) ([]*domain.Country, error) {
	args := m.Called(ctx, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Country), args.Error(1)
}

func (m *MockCountryRepository) Get(ctx context.Context, code, locale string) (*domain.Country, error) {
	args := m.Called(ctx, code, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}

// MockStreamRepository - мок StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	return m.Called(ctx, stream, group, messageID).Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	return m.Called(ctx, stream, group).Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) (string, error) {
	args := m.Called(ctx, stream, data)
	return args.String(0), args.Error(1)
}

// MockCacheInvalidator - мок CacheInvalidator
type MockCacheInvalidator struct {
	mock.Mock
}

func (m *MockCacheInvalidator) InvalidateFormat(ctx context.Context, countryCode string) error {
	return m.Called(ctx, countryCode).Error(0)
}

func (m *MockCacheInvalidator) InvalidateSubdivisions(ctx context.Context, countryCode string) error {
	return m.Called(ctx, countryCode).Error(0)
}

func (m *MockCacheInvalidator) InvalidateAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockAvailableCountries - мок кеша доступных стран
type MockAvailableCountries struct {
	mock.Mock
}

func (m *MockAvailableCountries) Get(ctx context.Context, fieldDefinitionID string) ([]string, bool, error) {
	args := m.Called(ctx, fieldDefinitionID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]string), args.Bool(1), args.Error(2)
}

func (m *MockAvailableCountries) Set(ctx context.Context, fieldDefinitionID string, codes []string) error {
	return m.Called(ctx, fieldDefinitionID, codes).Error(0)
}

func (m *MockAvailableCountries) Invalidate(ctx context.Context, fieldDefinitionID string) error {
	return m.Called(ctx, fieldDefinitionID).Error(0)
}
