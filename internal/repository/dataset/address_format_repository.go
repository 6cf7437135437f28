package dataset

import (
	"context"
	"sort"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/domain/repository"
	"github.com/address-microservice/internal/pkg/errors"
	"github.com/address-microservice/internal/pkg/locale"
)

type addressFormatRepository struct {
	ds *Dataset
}

func NewAddressFormatRepository(ds *Dataset) repository.AddressFormatStore {
	return &addressFormatRepository{ds: ds}
}

func (r *addressFormatRepository) Get(ctx context.Context, countryCode, tag string) (*domain.AddressFormat, error) {
	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	rec, ok := r.ds.formats[countryCode]
	if !ok {
		return nil, errors.ErrAddressFormatNotFound
	}
	return rec.localized(tag), nil
}

func (r *addressFormatRepository) GetAll(ctx context.Context, tag string) ([]*domain.AddressFormat, error) {
	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	formats := make([]*domain.AddressFormat, 0, len(r.ds.formats))
	for _, rec := range r.ds.formats {
		formats = append(formats, rec.localized(tag))
	}
	sort.Slice(formats, func(i, j int) bool {
		return formats[i].CountryCode < formats[j].CountryCode
	})
	return formats, nil
}

func (r *addressFormatRepository) Save(ctx context.Context, format *domain.AddressFormat) error {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	rec := &formatRecord{AddressFormat: cloneFormat(format)}
	rec.Locale = ""
	if existing, ok := r.ds.formats[format.CountryCode]; ok {
		rec.Translations = existing.Translations
	}
	r.ds.formats[format.CountryCode] = rec
	return nil
}

func (r *addressFormatRepository) SaveTranslation(ctx context.Context, countryCode, tag, template string) error {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	rec, ok := r.ds.formats[countryCode]
	if !ok {
		return errors.ErrAddressFormatNotFound
	}
	if rec.Translations == nil {
		rec.Translations = make(map[string]string)
	}
	rec.Translations[locale.Normalize(tag)] = template
	return nil
}

func (r *addressFormatRepository) Delete(ctx context.Context, countryCode string) error {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	if _, ok := r.ds.formats[countryCode]; !ok {
		return errors.ErrAddressFormatNotFound
	}
	delete(r.ds.formats, countryCode)
	for id, sub := range r.ds.subdivisions {
		if sub.CountryCode == countryCode {
			delete(r.ds.subdivisions, id)
		}
	}
	r.ds.rebuildChildren()
	return nil
}

// localized возвращает независимую копию формата с шаблоном для локали
func (rec *formatRecord) localized(tag string) *domain.AddressFormat {
	format := cloneFormat(&rec.AddressFormat)
	format.Locale = ""
	if template, matched, ok := locale.Lookup(rec.Translations, tag); ok {
		format.Format = template
		format.Locale = matched
	}
	return &format
}

func cloneFormat(f *domain.AddressFormat) domain.AddressFormat {
	cp := *f
	cp.RequiredFields = append([]domain.Field(nil), f.RequiredFields...)
	cp.UppercaseFields = append([]domain.Field(nil), f.UppercaseFields...)
	return cp
}
