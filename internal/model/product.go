package model

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ProductStore defines persistence operations for products.
type ProductStore interface {
	// List returns products ordered by creation time, newest first.
	List(ctx context.Context, filter ProductFilter) ([]Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (Product, error)
	GetBySlug(ctx context.Context, slug string) (Product, error)
	Create(ctx context.Context, product Product) (Product, error)
	Update(ctx context.Context, product Product) (Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByModel(ctx context.Context, modelID uuid.UUID) (int, error)
	Count(ctx context.Context) (int, error)
}

// ProductFilter narrows ProductStore.List. uuid.Nil fields are ignored.
type ProductFilter struct {
	BrandID uuid.UUID
	ModelID uuid.UUID
}

// Product is a sellable item. BrandName and ModelName are populated on reads.
type Product struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	BrandID     uuid.UUID
	BrandName   string
	ModelID     uuid.UUID
	ModelName   string
	Price       float64
	Stock       int
	Image       string
	Description string
	Features    Features
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Features is a free-form attribute map stored as JSONB.
type Features map[string]string

// Value implements driver.Valuer.
func (f Features) Value() (driver.Value, error) {
	if f == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(f)
}

// Scan implements sql.Scanner.
func (f *Features) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*f = Features{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported features type %T", src)
	}

	out := Features{}
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("failed to decode features: %w", err)
	}
	*f = out
	return nil
}
