package dataset

import (
	"context"
	"sort"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/domain/repository"
	"github.com/address-microservice/internal/pkg/errors"
)

type subdivisionRepository struct {
	ds *Dataset
}

func NewSubdivisionRepository(ds *Dataset) repository.SubdivisionStore {
	return &subdivisionRepository{ds: ds}
}

func (r *subdivisionRepository) Depth(ctx context.Context, countryCode string) (int, error) {
	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	return r.ds.depth(countryCode, "", 0), nil
}

func (r *subdivisionRepository) GetList(ctx context.Context, countryCode, parentID, tag string) ([]*domain.Subdivision, error) {
	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	if parentID != "" {
		parent, ok := r.ds.subdivisions[parentID]
		if !ok || parent.CountryCode != countryCode {
			return []*domain.Subdivision{}, nil
		}
	}

	ids := r.ds.children[childKey{country: countryCode, parent: parentID}]
	list := make([]*domain.Subdivision, 0, len(ids))
	for _, id := range ids {
		list = append(list, r.ds.subdivisionView(r.ds.subdivisions[id], tag))
	}
	return list, nil
}

func (r *subdivisionRepository) Get(ctx context.Context, id, tag string) (*domain.Subdivision, error) {
	if _, ok := domain.SubdivisionCountry(id); !ok {
		return nil, nil
	}

	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	sub, ok := r.ds.subdivisions[id]
	if !ok {
		return nil, nil
	}
	return r.ds.subdivisionView(sub, tag), nil
}

func (r *subdivisionRepository) GetAll(ctx context.Context, countryCode string) ([]*domain.Subdivision, error) {
	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	var list []*domain.Subdivision
	for _, sub := range r.ds.subdivisions {
		if sub.CountryCode == countryCode {
			list = append(list, r.ds.subdivisionView(sub, ""))
		}
	}
	// родитель всегда раньше потомков: id потомка длиннее и начинается с id родителя
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *subdivisionRepository) Save(ctx context.Context, sub *domain.Subdivision) error {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	if sub.ParentID != "" {
		if _, ok := r.ds.subdivisions[sub.ParentID]; !ok {
			return errors.ErrSubdivisionNotFound.WithMessage("Parent subdivision not found")
		}
	}

	cp := *sub
	cp.HasChildren = false
	cp.Locale = ""
	if len(sub.Translations) > 0 {
		cp.Translations = normalizeSubdivisionKeys(sub.Translations)
	}
	r.ds.subdivisions[cp.ID] = &cp
	r.ds.rebuildChildren()
	return nil
}

func (r *subdivisionRepository) Delete(ctx context.Context, id string) error {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	sub, ok := r.ds.subdivisions[id]
	if !ok {
		return errors.ErrSubdivisionNotFound
	}
	for _, descendantID := range r.ds.descendants(sub) {
		delete(r.ds.subdivisions, descendantID)
	}
	r.ds.rebuildChildren()
	return nil
}
