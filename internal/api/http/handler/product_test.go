package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/storefront/internal/mocks"
	"github.com/dtroode/storefront/internal/model"
	"github.com/dtroode/storefront/internal/testutil"
)

func productRoutes(svc *mocks.ProductService, claim *model.SessionClaim) http.Handler {
	h := NewProduct(svc, contextManager, testutil.MakeNoopLogger())
	engine := newEngine(claim)
	engine.GET("/api/products", h.List)
	engine.POST("/api/products", h.Create)
	engine.GET("/api/products/:id", h.Get)
	engine.PUT("/api/products/:id", h.Update)
	engine.DELETE("/api/products/:id", h.Delete)
	return engine
}

func TestProduct_Create(t *testing.T) {
	t.Parallel()

	brandID, modelID := uuid.New(), uuid.New()
	price, stock := 1999.9, 0

	svc := mocks.NewProductService(t)
	svc.On("Create", mock.Anything, model.ProductInput{
		Name:     "ROG Strix G16",
		BrandID:  brandID,
		ModelID:  modelID,
		Price:    &price,
		Stock:    &stock,
		Features: model.Features{"ram": "16GB"},
	}).Return(model.Product{
		ID:        uuid.New(),
		Name:      "ROG Strix G16",
		Slug:      "rog-strix-g16",
		BrandID:   brandID,
		BrandName: "Asus",
		ModelID:   modelID,
		ModelName: "ROG",
		Price:     price,
		Features:  model.Features{"ram": "16GB"},
	}, nil)

	rec := doJSON(t, productRoutes(svc, claimFor(model.RoleAdmin)), http.MethodPost, "/api/products", map[string]any{
		"name":     "ROG Strix G16",
		"brandId":  brandID.String(),
		"modelId":  modelID.String(),
		"price":    price,
		"stock":    stock,
		"features": map[string]string{"ram": "16GB"},
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	product := decode(t, rec)["product"].(map[string]any)
	assert.Equal(t, "rog-strix-g16", product["slug"])
	assert.Equal(t, map[string]any{"id": brandID.String(), "name": "Asus"}, product["brand"])
	assert.Equal(t, map[string]any{"id": modelID.String(), "name": "ROG"}, product["model"])
}

func TestProduct_Create_MissingPriceIsNil(t *testing.T) {
	t.Parallel()

	svc := mocks.NewProductService(t)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(in model.ProductInput) bool {
		return in.Price == nil && in.Stock != nil && *in.Stock == 0
	})).Return(model.Product{}, nil)

	rec := doJSON(t, productRoutes(svc, claimFor(model.RoleAdmin)), http.MethodPost, "/api/products", map[string]any{
		"name":  "Strix",
		"stock": 0,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestProduct_ListFilters(t *testing.T) {
	t.Parallel()

	brandID, modelID := uuid.New(), uuid.New()
	svc := mocks.NewProductService(t)
	svc.On("List", mock.Anything, model.ProductFilter{BrandID: brandID, ModelID: modelID}).
		Return([]model.Product{{ID: uuid.New(), Name: "Strix"}}, nil)

	target := "/api/products?brandId=" + brandID.String() + "&modelId=" + modelID.String()
	rec := doJSON(t, productRoutes(svc, claimFor(model.RoleAdmin)), http.MethodGet, target, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	products := decode(t, rec)["products"].([]any)
	assert.Equal(t, map[string]any{}, products[0].(map[string]any)["features"])
}

func TestProduct_Delete(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	svc := mocks.NewProductService(t)
	svc.On("Delete", mock.Anything, id).Return(nil)

	rec := doJSON(t, productRoutes(svc, claimFor(model.RoleAdmin)), http.MethodDelete, "/api/products/"+id.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id.String(), decode(t, rec)["deletedId"])
}
