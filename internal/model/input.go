package model

import "github.com/google/uuid"

// BrandInput carries the writable fields of a brand. A nil Logo leaves the
// stored logo unchanged on update.
type BrandInput struct {
	Name        string `validate:"required"`
	Logo        *string
	Description string
}

// DeviceModelInput carries the writable fields of a model.
type DeviceModelInput struct {
	Name        string    `validate:"required"`
	BrandID     uuid.UUID `validate:"required"`
	Description string
}

// ProductInput carries the writable fields of a product. Price and Stock are
// pointers so that a missing value can be told apart from zero. Their upper
// bounds are those of the NUMERIC(12,2) and INTEGER columns.
type ProductInput struct {
	Name        string    `validate:"required"`
	BrandID     uuid.UUID `validate:"required"`
	ModelID     uuid.UUID `validate:"required"`
	Price       *float64  `validate:"required,min=0,max=9999999999.99"`
	Stock       *int      `validate:"required,min=0,max=2147483647"`
	Image       *string
	Description string
	Features    Features
}

// UserInput is the admin view of a user write. Role is the raw requested
// role; only the exact string "admin" grants admin. An empty Password keeps
// the stored hash on update.
type UserInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email_shape"`
	Password string `validate:"required,min=6"`
	Role     string
}

// ProfileInput is a self-service account update. The password changes only
// when both CurrentPassword and NewPassword are set.
type ProfileInput struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,email_shape"`
	CurrentPassword string
	NewPassword     string
}
