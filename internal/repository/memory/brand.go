package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/model"
)

var _ model.BrandStore = (*BrandRepository)(nil)

type BrandRepository struct {
	s *Store
}

func (r *BrandRepository) List(_ context.Context) ([]model.Brand, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	brands := make([]model.Brand, 0, len(r.s.brands))
	for _, b := range r.s.brands {
		brands = append(brands, b)
	}
	sort.Slice(brands, func(i, j int) bool {
		return brands[i].Name < brands[j].Name
	})
	return brands, nil
}

func (r *BrandRepository) GetByID(_ context.Context, id uuid.UUID) (model.Brand, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.brands[id]
	if !ok {
		return model.Brand{}, model.ErrNotFound
	}
	return b, nil
}

func (r *BrandRepository) GetBySlug(_ context.Context, slug string) (model.Brand, error) {
	return r.find(func(b model.Brand) bool { return b.Slug == slug })
}

func (r *BrandRepository) GetByName(_ context.Context, name string) (model.Brand, error) {
	return r.find(func(b model.Brand) bool { return b.Name == name })
}

func (r *BrandRepository) find(match func(model.Brand) bool) (model.Brand, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, b := range r.s.brands {
		if match(b) {
			return b, nil
		}
	}
	return model.Brand{}, model.ErrNotFound
}

func (r *BrandRepository) Create(_ context.Context, brand model.Brand) (model.Brand, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.brands[brand.ID]; ok || r.clashes(brand) {
		return model.Brand{}, model.ErrConflict
	}
	r.s.brands[brand.ID] = brand
	return brand, nil
}

func (r *BrandRepository) Update(_ context.Context, brand model.Brand) (model.Brand, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.brands[brand.ID]
	if !ok {
		return model.Brand{}, model.ErrNotFound
	}
	if r.clashes(brand) {
		return model.Brand{}, model.ErrConflict
	}
	brand.CreatedAt = existing.CreatedAt
	r.s.brands[brand.ID] = brand
	return brand, nil
}

func (r *BrandRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.brands[id]; !ok {
		return model.ErrNotFound
	}
	for _, m := range r.s.models {
		if m.BrandID == id {
			return model.ErrConflict
		}
	}
	for _, p := range r.s.products {
		if p.BrandID == id {
			return model.ErrConflict
		}
	}
	delete(r.s.brands, id)
	return nil
}

func (r *BrandRepository) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return len(r.s.brands), nil
}

// clashes reports a name or slug collision with another brand. Lock held.
func (r *BrandRepository) clashes(brand model.Brand) bool {
	for id, b := range r.s.brands {
		if id == brand.ID {
			continue
		}
		if b.Name == brand.Name || b.Slug == brand.Slug {
			return true
		}
	}
	return false
}
