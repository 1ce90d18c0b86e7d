package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/apierror"
	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
	"github.com/dtroode/storefront/internal/slug"
)

const brandNameRequired = "brand name is required"

type Brand struct {
	brandStore model.BrandStore
	modelStore model.DeviceModelStore
	logger     *logger.Logger
	now        func() time.Time
}

func NewBrand(brandStore model.BrandStore, modelStore model.DeviceModelStore, logger *logger.Logger) *Brand {
	return &Brand{
		brandStore: brandStore,
		modelStore: modelStore,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *Brand) List(ctx context.Context) ([]model.Brand, error) {
	brands, err := s.brandStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return brands, nil
}

func (s *Brand) Get(ctx context.Context, id uuid.UUID) (model.Brand, error) {
	brand, err := s.brandStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Brand{}, apierror.NewErrNotFound("brand")
	}
	if err != nil {
		return model.Brand{}, fmt.Errorf("failed to get brand: %w", err)
	}
	return brand, nil
}

func (s *Brand) Create(ctx context.Context, in model.BrandInput) (model.Brand, error) {
	name, brandSlug, err := s.validate(in)
	if err != nil {
		return model.Brand{}, err
	}

	if err := s.ensureUnique(ctx, name, brandSlug, uuid.Nil); err != nil {
		return model.Brand{}, err
	}

	now := s.now()
	brand := model.Brand{
		ID:          uuid.New(),
		Name:        name,
		Slug:        brandSlug,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Logo != nil && *in.Logo != "" {
		brand.Logo = *in.Logo
	}

	saved, err := s.brandStore.Create(ctx, brand)
	if errors.Is(err, model.ErrConflict) {
		return model.Brand{}, apierror.NewErrBrandNameIsTaken(name)
	}
	if err != nil {
		s.logger.Error("Brand service: failed to create brand",
			"name", name,
			"error", err.Error())
		return model.Brand{}, fmt.Errorf("failed to create brand: %w", err)
	}

	s.logger.Info("Brand service: brand created",
		"brand_id", saved.ID,
		"slug", saved.Slug)

	return saved, nil
}

func (s *Brand) Update(ctx context.Context, id uuid.UUID, in model.BrandInput) (model.Brand, error) {
	name, brandSlug, err := s.validate(in)
	if err != nil {
		return model.Brand{}, err
	}

	brand, err := s.Get(ctx, id)
	if err != nil {
		return model.Brand{}, err
	}

	if err := s.ensureUnique(ctx, name, brandSlug, id); err != nil {
		return model.Brand{}, err
	}

	brand.Name = name
	brand.Slug = brandSlug
	brand.Description = in.Description
	if in.Logo != nil && *in.Logo != "" {
		brand.Logo = *in.Logo
	}
	brand.UpdatedAt = s.now()

	saved, err := s.brandStore.Update(ctx, brand)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.Brand{}, apierror.NewErrNotFound("brand")
	case errors.Is(err, model.ErrConflict):
		return model.Brand{}, apierror.NewErrBrandNameIsTaken(name)
	case err != nil:
		return model.Brand{}, fmt.Errorf("failed to update brand: %w", err)
	}

	s.logger.Info("Brand service: brand updated",
		"brand_id", saved.ID)

	return saved, nil
}

// Delete refuses to remove a brand that still has models and reports how
// many there are.
func (s *Brand) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	count, err := s.modelStore.CountByBrand(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count brand models: %w", err)
	}
	if count > 0 {
		s.logger.Info("Brand service: delete refused, brand has models",
			"brand_id", id,
			"models", count)
		return apierror.NewErrBrandHasModels(count)
	}

	err = s.brandStore.Delete(ctx, id)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return apierror.NewErrNotFound("brand")
	case errors.Is(err, model.ErrConflict):
		// A model was added after the count.
		return apierror.NewErrBrandHasModels(1)
	case err != nil:
		return fmt.Errorf("failed to delete brand: %w", err)
	}

	s.logger.Info("Brand service: brand deleted",
		"brand_id", id)

	return nil
}

func (s *Brand) ensureUnique(ctx context.Context, name, brandSlug string, self uuid.UUID) error {
	byName, err := s.brandStore.GetByName(ctx, name)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get brand by name: %w", err)
	}
	if err == nil && byName.ID != self {
		return apierror.NewErrBrandNameIsTaken(name)
	}

	bySlug, err := s.brandStore.GetBySlug(ctx, brandSlug)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get brand by slug: %w", err)
	}
	if err == nil && bySlug.ID != self {
		return apierror.NewErrBrandNameIsTaken(name)
	}

	return nil
}

func (s *Brand) validate(in model.BrandInput) (string, string, error) {
	if err := checkInput(in, messages{"required": brandNameRequired}); err != nil {
		return "", "", err
	}
	return nameAndSlug(in.Name, brandNameRequired)
}

// nameAndSlug trims the name and derives its slug. A name without any
// letters or digits has no usable slug and is rejected.
func nameAndSlug(raw, requiredMsg string) (string, string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", "", apierror.NewErrValidation(requiredMsg)
	}
	s := slug.Make(name)
	if s == "" {
		return "", "", apierror.NewErrValidation("name must contain letters or digits")
	}
	return name, s, nil
}
