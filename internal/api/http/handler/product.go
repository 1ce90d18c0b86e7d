package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
)

// ProductService defines product management operations.
type ProductService interface {
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	Get(ctx context.Context, id uuid.UUID) (model.Product, error)
	Create(ctx context.Context, in model.ProductInput) (model.Product, error)
	Update(ctx context.Context, id uuid.UUID, in model.ProductInput) (model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productRequest struct {
	Name        string         `json:"name"`
	BrandID     string         `json:"brandId"`
	ModelID     string         `json:"modelId"`
	Price       *float64       `json:"price"`
	Stock       *int           `json:"stock"`
	Image       *string        `json:"image"`
	Description string         `json:"description"`
	Features    model.Features `json:"features"`
}

func (r productRequest) input() (model.ProductInput, error) {
	brandID, err := optionalID(r.BrandID, "brand")
	if err != nil {
		return model.ProductInput{}, err
	}
	modelID, err := optionalID(r.ModelID, "model")
	if err != nil {
		return model.ProductInput{}, err
	}
	return model.ProductInput{
		Name:        r.Name,
		BrandID:     brandID,
		ModelID:     modelID,
		Price:       r.Price,
		Stock:       r.Stock,
		Image:       r.Image,
		Description: r.Description,
		Features:    r.Features,
	}, nil
}

// Product handles the /api/products endpoints.
type Product struct {
	productService ProductService
	guard          sessionGuard
	logger         *logger.Logger
}

// NewProduct creates a new Product handler.
func NewProduct(productService ProductService, contextManager model.ContextManager, logger *logger.Logger) *Product {
	return &Product{
		productService: productService,
		guard:          sessionGuard{contextManager: contextManager},
		logger:         logger,
	}
}

// List serves GET /api/products with optional brandId and modelId filters.
func (h *Product) List(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	brandID, err := optionalID(c.Query("brandId"), "brand")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	modelID, err := optionalID(c.Query("modelId"), "model")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	products, err := h.productService.List(c.Request.Context(), model.ProductFilter{BrandID: brandID, ModelID: modelID})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": newProductResponses(products)})
}

func (h *Product) Create(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	var req productRequest
	if err := bindJSON(c, &req); err != nil {
		handleError(c, h.logger, err)
		return
	}
	in, err := req.input()
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	product, err := h.productService.Create(c.Request.Context(), in)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "product created successfully",
		"product": newProductResponse(product),
	})
}

func (h *Product) Get(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	id, err := pathID(c, "id", "product")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": newProductResponse(product)})
}

func (h *Product) Update(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	id, err := pathID(c, "id", "product")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	var req productRequest
	if err := bindJSON(c, &req); err != nil {
		handleError(c, h.logger, err)
		return
	}
	in, err := req.input()
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, in)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "product updated successfully",
		"product": newProductResponse(product),
	})
}

func (h *Product) Delete(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	id, err := pathID(c, "id", "product")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "product deleted successfully",
		"deletedId": id,
	})
}
