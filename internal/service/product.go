package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/apierror"
	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
)

const productFieldsRequired = "name, brand, model, price and stock are required"

var productMessages = messages{
	"required":  productFieldsRequired,
	"Price.min": "price must not be negative",
	"Price.max": "price must be at most 9999999999.99",
	"Stock.min": "stock must not be negative",
	"Stock.max": "stock must be at most 2147483647",
}

type Product struct {
	productStore model.ProductStore
	brandStore   model.BrandStore
	modelStore   model.DeviceModelStore
	logger       *logger.Logger
	now          func() time.Time
}

func NewProduct(
	productStore model.ProductStore,
	brandStore model.BrandStore,
	modelStore model.DeviceModelStore,
	logger *logger.Logger,
) *Product {
	return &Product{
		productStore: productStore,
		brandStore:   brandStore,
		modelStore:   modelStore,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *Product) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	products, err := s.productStore.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *Product) Get(ctx context.Context, id uuid.UUID) (model.Product, error) {
	p, err := s.productStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Product{}, apierror.NewErrNotFound("product")
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

func (s *Product) Create(ctx context.Context, in model.ProductInput) (model.Product, error) {
	name, productSlug, err := s.validate(ctx, in)
	if err != nil {
		return model.Product{}, err
	}

	if err := s.ensureSlugFree(ctx, name, productSlug, uuid.Nil); err != nil {
		return model.Product{}, err
	}

	now := s.now()
	product := model.Product{
		ID:          uuid.New(),
		Name:        name,
		Slug:        productSlug,
		BrandID:     in.BrandID,
		ModelID:     in.ModelID,
		Price:       *in.Price,
		Stock:       *in.Stock,
		Description: in.Description,
		Features:    featuresOrEmpty(in.Features),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Image != nil {
		product.Image = *in.Image
	}

	saved, err := s.productStore.Create(ctx, product)
	if errors.Is(err, model.ErrConflict) {
		return model.Product{}, apierror.NewErrProductNameIsTaken(name)
	}
	if err != nil {
		s.logger.Error("Product service: failed to create product",
			"name", name,
			"error", err.Error())
		return model.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("Product service: product created",
		"product_id", saved.ID,
		"slug", saved.Slug)

	return saved, nil
}

func (s *Product) Update(ctx context.Context, id uuid.UUID, in model.ProductInput) (model.Product, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return model.Product{}, err
	}

	name, productSlug, err := s.validate(ctx, in)
	if err != nil {
		return model.Product{}, err
	}

	if err := s.ensureSlugFree(ctx, name, productSlug, id); err != nil {
		return model.Product{}, err
	}

	current.Name = name
	current.Slug = productSlug
	current.BrandID = in.BrandID
	current.ModelID = in.ModelID
	current.Price = *in.Price
	current.Stock = *in.Stock
	current.Description = in.Description
	current.Features = featuresOrEmpty(in.Features)
	if in.Image != nil {
		current.Image = *in.Image
	}
	current.UpdatedAt = s.now()

	saved, err := s.productStore.Update(ctx, current)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.Product{}, apierror.NewErrNotFound("product")
	case errors.Is(err, model.ErrConflict):
		return model.Product{}, apierror.NewErrProductNameIsTaken(name)
	case err != nil:
		return model.Product{}, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info("Product service: product updated",
		"product_id", saved.ID)

	return saved, nil
}

func (s *Product) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.productStore.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apierror.NewErrNotFound("product")
	}
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info("Product service: product deleted",
		"product_id", id)

	return nil
}

// validate checks required fields, ranges and that the model belongs to the
// brand. It returns the trimmed name and its slug.
func (s *Product) validate(ctx context.Context, in model.ProductInput) (string, string, error) {
	if err := checkInput(in, productMessages); err != nil {
		return "", "", err
	}
	name, productSlug, err := nameAndSlug(in.Name, productFieldsRequired)
	if err != nil {
		return "", "", err
	}

	if _, err := s.brandStore.GetByID(ctx, in.BrandID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", "", apierror.NewErrNotFound("brand")
		}
		return "", "", fmt.Errorf("failed to get brand: %w", err)
	}

	m, err := s.modelStore.GetByID(ctx, in.ModelID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", "", apierror.NewErrNotFound("model")
		}
		return "", "", fmt.Errorf("failed to get model: %w", err)
	}
	if m.BrandID != in.BrandID {
		return "", "", apierror.NewErrValidation("model does not belong to the selected brand")
	}

	return name, productSlug, nil
}

func (s *Product) ensureSlugFree(ctx context.Context, name, productSlug string, self uuid.UUID) error {
	existing, err := s.productStore.GetBySlug(ctx, productSlug)
	if errors.Is(err, model.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get product by slug: %w", err)
	}
	if existing.ID != self {
		return apierror.NewErrProductNameIsTaken(name)
	}
	return nil
}

func featuresOrEmpty(f model.Features) model.Features {
	if f == nil {
		return model.Features{}
	}
	return f
}
