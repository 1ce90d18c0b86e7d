package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/apierror"
	"github.com/dtroode/storefront/internal/model"
)

// Catalog serves the public storefront pages and the admin dashboard counts.
type Catalog struct {
	brandStore   model.BrandStore
	modelStore   model.DeviceModelStore
	productStore model.ProductStore
	userStore    model.UserStore
}

func NewCatalog(
	brandStore model.BrandStore,
	modelStore model.DeviceModelStore,
	productStore model.ProductStore,
	userStore model.UserStore,
) *Catalog {
	return &Catalog{
		brandStore:   brandStore,
		modelStore:   modelStore,
		productStore: productStore,
		userStore:    userStore,
	}
}

func (s *Catalog) Brands(ctx context.Context) ([]model.Brand, error) {
	brands, err := s.brandStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return brands, nil
}

func (s *Catalog) BrandPage(ctx context.Context, brandSlug string) (model.BrandPage, error) {
	brand, err := s.brandStore.GetBySlug(ctx, brandSlug)
	if errors.Is(err, model.ErrNotFound) {
		return model.BrandPage{}, apierror.NewErrNotFound("brand")
	}
	if err != nil {
		return model.BrandPage{}, fmt.Errorf("failed to get brand by slug: %w", err)
	}

	models, err := s.modelStore.List(ctx, model.DeviceModelFilter{BrandID: brand.ID})
	if err != nil {
		return model.BrandPage{}, fmt.Errorf("failed to list models: %w", err)
	}

	products, err := s.productStore.List(ctx, model.ProductFilter{BrandID: brand.ID})
	if err != nil {
		return model.BrandPage{}, fmt.Errorf("failed to list products: %w", err)
	}

	return model.BrandPage{
		Brand:    brand,
		Models:   models,
		Products: products,
	}, nil
}

func (s *Catalog) ModelPage(ctx context.Context, brandSlug, modelSlug string) (model.ModelPage, error) {
	brand, err := s.brandStore.GetBySlug(ctx, brandSlug)
	if errors.Is(err, model.ErrNotFound) {
		return model.ModelPage{}, apierror.NewErrNotFound("brand")
	}
	if err != nil {
		return model.ModelPage{}, fmt.Errorf("failed to get brand by slug: %w", err)
	}

	m, err := s.modelStore.GetBySlug(ctx, brand.ID, modelSlug)
	if errors.Is(err, model.ErrNotFound) {
		return model.ModelPage{}, apierror.NewErrNotFound("model")
	}
	if err != nil {
		return model.ModelPage{}, fmt.Errorf("failed to get model by slug: %w", err)
	}

	products, err := s.productStore.List(ctx, model.ProductFilter{BrandID: brand.ID, ModelID: m.ID})
	if err != nil {
		return model.ModelPage{}, fmt.Errorf("failed to list products: %w", err)
	}

	return model.ModelPage{
		Brand:    brand,
		Model:    m,
		Products: products,
	}, nil
}

func (s *Catalog) Product(ctx context.Context, id uuid.UUID) (model.Product, error) {
	p, err := s.productStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Product{}, apierror.NewErrNotFound("product")
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

func (s *Catalog) Stats(ctx context.Context) (model.CatalogStats, error) {
	var (
		stats model.CatalogStats
		err   error
	)

	if stats.Brands, err = s.brandStore.Count(ctx); err != nil {
		return model.CatalogStats{}, fmt.Errorf("failed to count brands: %w", err)
	}
	if stats.Models, err = s.modelStore.Count(ctx); err != nil {
		return model.CatalogStats{}, fmt.Errorf("failed to count models: %w", err)
	}
	if stats.Products, err = s.productStore.Count(ctx); err != nil {
		return model.CatalogStats{}, fmt.Errorf("failed to count products: %w", err)
	}
	if stats.Users, err = s.userStore.Count(ctx); err != nil {
		return model.CatalogStats{}, fmt.Errorf("failed to count users: %w", err)
	}

	return stats, nil
}
