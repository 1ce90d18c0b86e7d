package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/model"
)

var _ model.ProductStore = (*ProductRepository)(nil)

type ProductRepository struct {
	s *Store
}

// populate fills brand and model names and copies the features map. Lock held.
func (r *ProductRepository) populate(p model.Product) model.Product {
	p.BrandName = r.s.brands[p.BrandID].Name
	p.ModelName = r.s.models[p.ModelID].Name
	features := make(model.Features, len(p.Features))
	for k, v := range p.Features {
		features[k] = v
	}
	p.Features = features
	return p
}

func (r *ProductRepository) List(_ context.Context, filter model.ProductFilter) ([]model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	products := []model.Product{}
	for _, p := range r.s.products {
		if filter.BrandID != uuid.Nil && p.BrandID != filter.BrandID {
			continue
		}
		if filter.ModelID != uuid.Nil && p.ModelID != filter.ModelID {
			continue
		}
		products = append(products, r.populate(p))
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (r *ProductRepository) GetByID(_ context.Context, id uuid.UUID) (model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.products[id]
	if !ok {
		return model.Product{}, model.ErrNotFound
	}
	return r.populate(p), nil
}

func (r *ProductRepository) GetBySlug(_ context.Context, slug string) (model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.products {
		if p.Slug == slug {
			return r.populate(p), nil
		}
	}
	return model.Product{}, model.ErrNotFound
}

func (r *ProductRepository) Create(_ context.Context, product model.Product) (model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[product.ID]; ok || !r.referencesExist(product) || r.slugTaken(product) {
		return model.Product{}, model.ErrConflict
	}
	r.s.products[product.ID] = r.populate(product)
	return r.populate(product), nil
}

func (r *ProductRepository) Update(_ context.Context, product model.Product) (model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.products[product.ID]
	if !ok {
		return model.Product{}, model.ErrNotFound
	}
	if !r.referencesExist(product) || r.slugTaken(product) {
		return model.Product{}, model.ErrConflict
	}
	product.CreatedAt = existing.CreatedAt
	r.s.products[product.ID] = r.populate(product)
	return r.populate(product), nil
}

func (r *ProductRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[id]; !ok {
		return model.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

func (r *ProductRepository) CountByModel(_ context.Context, modelID uuid.UUID) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, p := range r.s.products {
		if p.ModelID == modelID {
			n++
		}
	}
	return n, nil
}

func (r *ProductRepository) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return len(r.s.products), nil
}

func (r *ProductRepository) referencesExist(p model.Product) bool {
	_, brandOK := r.s.brands[p.BrandID]
	_, modelOK := r.s.models[p.ModelID]
	return brandOK && modelOK
}

func (r *ProductRepository) slugTaken(product model.Product) bool {
	for id, p := range r.s.products {
		if id != product.ID && p.Slug == product.Slug {
			return true
		}
	}
	return false
}
