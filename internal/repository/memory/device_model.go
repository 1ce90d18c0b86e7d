package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/model"
)

var _ model.DeviceModelStore = (*DeviceModelRepository)(nil)

type DeviceModelRepository struct {
	s *Store
}

// withBrand fills the denormalised brand name. Lock held.
func (r *DeviceModelRepository) withBrand(m model.DeviceModel) model.DeviceModel {
	m.BrandName = r.s.brands[m.BrandID].Name
	return m
}

func (r *DeviceModelRepository) List(_ context.Context, filter model.DeviceModelFilter) ([]model.DeviceModel, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	models := []model.DeviceModel{}
	for _, m := range r.s.models {
		if filter.BrandID != uuid.Nil && m.BrandID != filter.BrandID {
			continue
		}
		models = append(models, r.withBrand(m))
	}
	sort.Slice(models, func(i, j int) bool {
		return models[i].Name < models[j].Name
	})
	return models, nil
}

func (r *DeviceModelRepository) GetByID(_ context.Context, id uuid.UUID) (model.DeviceModel, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.models[id]
	if !ok {
		return model.DeviceModel{}, model.ErrNotFound
	}
	return r.withBrand(m), nil
}

func (r *DeviceModelRepository) GetBySlug(_ context.Context, brandID uuid.UUID, slug string) (model.DeviceModel, error) {
	return r.find(func(m model.DeviceModel) bool { return m.BrandID == brandID && m.Slug == slug })
}

func (r *DeviceModelRepository) GetByName(_ context.Context, brandID uuid.UUID, name string) (model.DeviceModel, error) {
	return r.find(func(m model.DeviceModel) bool { return m.BrandID == brandID && m.Name == name })
}

func (r *DeviceModelRepository) find(match func(model.DeviceModel) bool) (model.DeviceModel, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, m := range r.s.models {
		if match(m) {
			return r.withBrand(m), nil
		}
	}
	return model.DeviceModel{}, model.ErrNotFound
}

func (r *DeviceModelRepository) Create(_ context.Context, dm model.DeviceModel) (model.DeviceModel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.brands[dm.BrandID]; !ok {
		return model.DeviceModel{}, model.ErrConflict
	}
	if _, ok := r.s.models[dm.ID]; ok || r.clashes(dm) {
		return model.DeviceModel{}, model.ErrConflict
	}
	r.s.models[dm.ID] = dm
	return r.withBrand(dm), nil
}

func (r *DeviceModelRepository) Update(_ context.Context, dm model.DeviceModel) (model.DeviceModel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.models[dm.ID]
	if !ok {
		return model.DeviceModel{}, model.ErrNotFound
	}
	if _, ok := r.s.brands[dm.BrandID]; !ok {
		return model.DeviceModel{}, model.ErrConflict
	}
	if r.clashes(dm) {
		return model.DeviceModel{}, model.ErrConflict
	}
	dm.CreatedAt = existing.CreatedAt
	r.s.models[dm.ID] = dm
	return r.withBrand(dm), nil
}

func (r *DeviceModelRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.models[id]; !ok {
		return model.ErrNotFound
	}
	for _, p := range r.s.products {
		if p.ModelID == id {
			return model.ErrConflict
		}
	}
	delete(r.s.models, id)
	return nil
}

func (r *DeviceModelRepository) CountByBrand(_ context.Context, brandID uuid.UUID) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, m := range r.s.models {
		if m.BrandID == brandID {
			n++
		}
	}
	return n, nil
}

func (r *DeviceModelRepository) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return len(r.s.models), nil
}

// clashes enforces (brand, name) and (brand, slug) uniqueness. Lock held.
func (r *DeviceModelRepository) clashes(dm model.DeviceModel) bool {
	for id, m := range r.s.models {
		if id == dm.ID || m.BrandID != dm.BrandID {
			continue
		}
		if m.Name == dm.Name || m.Slug == dm.Slug {
			return true
		}
	}
	return false
}
