package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DeviceModelStore defines persistence operations for models of a brand.
type DeviceModelStore interface {
	// List returns models ordered by name, optionally restricted to one brand.
	List(ctx context.Context, filter DeviceModelFilter) ([]DeviceModel, error)
	GetByID(ctx context.Context, id uuid.UUID) (DeviceModel, error)
	GetBySlug(ctx context.Context, brandID uuid.UUID, slug string) (DeviceModel, error)
	GetByName(ctx context.Context, brandID uuid.UUID, name string) (DeviceModel, error)
	Create(ctx context.Context, m DeviceModel) (DeviceModel, error)
	Update(ctx context.Context, m DeviceModel) (DeviceModel, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByBrand(ctx context.Context, brandID uuid.UUID) (int, error)
	Count(ctx context.Context) (int, error)
}

// DeviceModelFilter narrows DeviceModelStore.List. uuid.Nil means no filter.
type DeviceModelFilter struct {
	BrandID uuid.UUID
}

// DeviceModel is a product line of a brand, e.g. "ROG" for "Asus".
// BrandName is populated on reads.
type DeviceModel struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	BrandID     uuid.UUID
	BrandName   string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
