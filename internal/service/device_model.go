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

// DeviceModel manages the models of each brand.
type DeviceModel struct {
	modelStore   model.DeviceModelStore
	brandStore   model.BrandStore
	productStore model.ProductStore
	logger       *logger.Logger
	now          func() time.Time
}

func NewDeviceModel(
	modelStore model.DeviceModelStore,
	brandStore model.BrandStore,
	productStore model.ProductStore,
	logger *logger.Logger,
) *DeviceModel {
	return &DeviceModel{
		modelStore:   modelStore,
		brandStore:   brandStore,
		productStore: productStore,
		logger:       logger,
		now:          time.Now,
	}
}

// List returns all models, or only those of brandID when it is set.
func (s *DeviceModel) List(ctx context.Context, brandID uuid.UUID) ([]model.DeviceModel, error) {
	models, err := s.modelStore.List(ctx, model.DeviceModelFilter{BrandID: brandID})
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	return models, nil
}

// ListForBrand is List for a brand that must exist.
func (s *DeviceModel) ListForBrand(ctx context.Context, brandID uuid.UUID) ([]model.DeviceModel, error) {
	if _, err := s.brand(ctx, brandID); err != nil {
		return nil, err
	}
	return s.List(ctx, brandID)
}

func (s *DeviceModel) Get(ctx context.Context, id uuid.UUID) (model.DeviceModel, error) {
	m, err := s.modelStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.DeviceModel{}, apierror.NewErrNotFound("model")
	}
	if err != nil {
		return model.DeviceModel{}, fmt.Errorf("failed to get model: %w", err)
	}
	return m, nil
}

func (s *DeviceModel) Create(ctx context.Context, in model.DeviceModelInput) (model.DeviceModel, error) {
	name, modelSlug, err := s.validate(in)
	if err != nil {
		return model.DeviceModel{}, err
	}

	if _, err := s.brand(ctx, in.BrandID); err != nil {
		return model.DeviceModel{}, err
	}

	if err := s.ensureUnique(ctx, in.BrandID, name, modelSlug, uuid.Nil); err != nil {
		return model.DeviceModel{}, err
	}

	now := s.now()
	saved, err := s.modelStore.Create(ctx, model.DeviceModel{
		ID:          uuid.New(),
		Name:        name,
		Slug:        modelSlug,
		BrandID:     in.BrandID,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if errors.Is(err, model.ErrConflict) {
		return model.DeviceModel{}, apierror.NewErrModelNameIsTaken(name)
	}
	if err != nil {
		s.logger.Error("Model service: failed to create model",
			"name", name,
			"brand_id", in.BrandID,
			"error", err.Error())
		return model.DeviceModel{}, fmt.Errorf("failed to create model: %w", err)
	}

	s.logger.Info("Model service: model created",
		"model_id", saved.ID,
		"brand_id", saved.BrandID,
		"slug", saved.Slug)

	return saved, nil
}

func (s *DeviceModel) Update(ctx context.Context, id uuid.UUID, in model.DeviceModelInput) (model.DeviceModel, error) {
	name, modelSlug, err := s.validate(in)
	if err != nil {
		return model.DeviceModel{}, err
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return model.DeviceModel{}, err
	}

	if _, err := s.brand(ctx, in.BrandID); err != nil {
		return model.DeviceModel{}, err
	}

	if err := s.ensureUnique(ctx, in.BrandID, name, modelSlug, id); err != nil {
		return model.DeviceModel{}, err
	}

	current.Name = name
	current.Slug = modelSlug
	current.BrandID = in.BrandID
	current.Description = in.Description
	current.UpdatedAt = s.now()

	saved, err := s.modelStore.Update(ctx, current)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.DeviceModel{}, apierror.NewErrNotFound("model")
	case errors.Is(err, model.ErrConflict):
		return model.DeviceModel{}, apierror.NewErrModelNameIsTaken(name)
	case err != nil:
		return model.DeviceModel{}, fmt.Errorf("failed to update model: %w", err)
	}

	s.logger.Info("Model service: model updated",
		"model_id", saved.ID)

	return saved, nil
}

// Delete refuses to remove a model that products still reference.
func (s *DeviceModel) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	count, err := s.productStore.CountByModel(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count model products: %w", err)
	}
	if count > 0 {
		s.logger.Info("Model service: delete refused, model has products",
			"model_id", id,
			"products", count)
		return apierror.NewErrModelHasProducts(count)
	}

	err = s.modelStore.Delete(ctx, id)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return apierror.NewErrNotFound("model")
	case errors.Is(err, model.ErrConflict):
		return apierror.NewErrModelHasProducts(1)
	case err != nil:
		return fmt.Errorf("failed to delete model: %w", err)
	}

	s.logger.Info("Model service: model deleted",
		"model_id", id)

	return nil
}

func (s *DeviceModel) validate(in model.DeviceModelInput) (string, string, error) {
	if err := checkInput(in, messages{"required": "model name and brand id are required"}); err != nil {
		return "", "", err
	}
	return nameAndSlug(in.Name, "model name and brand id are required")
}

func (s *DeviceModel) brand(ctx context.Context, id uuid.UUID) (model.Brand, error) {
	brand, err := s.brandStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Brand{}, apierror.NewErrNotFound("brand")
	}
	if err != nil {
		return model.Brand{}, fmt.Errorf("failed to get brand: %w", err)
	}
	return brand, nil
}

func (s *DeviceModel) ensureUnique(ctx context.Context, brandID uuid.UUID, name, modelSlug string, self uuid.UUID) error {
	byName, err := s.modelStore.GetByName(ctx, brandID, name)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get model by name: %w", err)
	}
	if err == nil && byName.ID != self {
		return apierror.NewErrModelNameIsTaken(name)
	}

	bySlug, err := s.modelStore.GetBySlug(ctx, brandID, modelSlug)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get model by slug: %w", err)
	}
	if err == nil && bySlug.ID != self {
		return apierror.NewErrModelNameIsTaken(name)
	}

	return nil
}
