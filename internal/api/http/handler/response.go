package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/model"
)

type refResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type userResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func newUserResponse(u model.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func newUserResponses(users []model.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}
	return out
}

type brandResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Logo        string    `json:"logo"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newBrandResponse(b model.Brand) brandResponse {
	return brandResponse{
		ID:          b.ID,
		Name:        b.Name,
		Slug:        b.Slug,
		Logo:        b.Logo,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func newBrandResponses(brands []model.Brand) []brandResponse {
	out := make([]brandResponse, 0, len(brands))
	for _, b := range brands {
		out = append(out, newBrandResponse(b))
	}
	return out
}

type modelResponse struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Brand       refResponse `json:"brand"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func newModelResponse(m model.DeviceModel) modelResponse {
	return modelResponse{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Brand:       refResponse{ID: m.BrandID, Name: m.BrandName},
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func newModelResponses(models []model.DeviceModel) []modelResponse {
	out := make([]modelResponse, 0, len(models))
	for _, m := range models {
		out = append(out, newModelResponse(m))
	}
	return out
}

type productResponse struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Brand       refResponse    `json:"brand"`
	Model       refResponse    `json:"model"`
	Price       float64        `json:"price"`
	Stock       int            `json:"stock"`
	Image       string         `json:"image"`
	Description string         `json:"description"`
	Features    model.Features `json:"features"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func newProductResponse(p model.Product) productResponse {
	features := p.Features
	if features == nil {
		features = model.Features{}
	}
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Brand:       refResponse{ID: p.BrandID, Name: p.BrandName},
		Model:       refResponse{ID: p.ModelID, Name: p.ModelName},
		Price:       p.Price,
		Stock:       p.Stock,
		Image:       p.Image,
		Description: p.Description,
		Features:    features,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func newProductResponses(products []model.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, newProductResponse(p))
	}
	return out
}
