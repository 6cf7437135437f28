package dataset

import (
	"context"
	"sort"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/domain/repository"
	"github.com/address-microservice/internal/pkg/errors"
)

type zoneRepository struct {
	ds *Dataset
}

func NewZoneRepository(ds *Dataset) repository.ZoneRepository {
	return &zoneRepository{ds: ds}
}

func (r *zoneRepository) Get(ctx context.Context, id string) (*domain.Zone, error) {
	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	z, ok := r.ds.zones[id]
	if !ok {
		return nil, nil
	}
	return cloneZone(z), nil
}

func (r *zoneRepository) List(ctx context.Context) ([]*domain.Zone, error) {
	r.ds.mu.RLock()
	defer r.ds.mu.RUnlock()

	list := make([]*domain.Zone, 0, len(r.ds.zones))
	for _, z := range r.ds.zones {
		list = append(list, cloneZone(z))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *zoneRepository) Save(ctx context.Context, zone *domain.Zone) error {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	r.ds.zones[zone.ID] = cloneZone(zone)
	return nil
}

func (r *zoneRepository) Delete(ctx context.Context, id string) error {
	r.ds.mu.Lock()
	defer r.ds.mu.Unlock()

	if _, ok := r.ds.zones[id]; !ok {
		return errors.ErrZoneNotFound
	}
	delete(r.ds.zones, id)
	return nil
}

func cloneZone(z *domain.Zone) *domain.Zone {
	cp := *z
	cp.Members = append([]domain.ZoneMember(nil), z.Members...)
	return &cp
}
