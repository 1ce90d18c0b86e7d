package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BrandStore defines persistence operations for brands.
type BrandStore interface {
	// List returns all brands ordered by name.
	List(ctx context.Context) ([]Brand, error)
	GetByID(ctx context.Context, id uuid.UUID) (Brand, error)
	GetBySlug(ctx context.Context, slug string) (Brand, error)
	GetByName(ctx context.Context, name string) (Brand, error)
	Create(ctx context.Context, brand Brand) (Brand, error)
	Update(ctx context.Context, brand Brand) (Brand, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

// Brand is the top level of the catalog.
type Brand struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Logo        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
