package dataset

import (
	"context"
	"sort"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/domain/repository"
)

type countryRepository struct {
	ds *Dataset
}

func NewCountryRepository(ds *Dataset) repository.CountryRepository {
	return &countryRepository{ds: ds}
}

func (r *countryRepository) GetList(ctx context.Context, tag string) ([]*domain.Country, error) {
	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	list := make([]*domain.Country, 0, len(r.ds.countries))
	for _, c := range r.ds.countries {
		list = append(list, c.Localized(tag))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list, nil
}

func (r *countryRepository) Get(ctx context.Context, code, tag string) (*domain.Country, error) {
	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	c, ok := r.ds.countries[code]
	if !ok {
		return nil, nil
	}
	return c.Localized(tag), nil
}
