package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
)

// BrandService defines brand management operations.
type BrandService interface {
	List(ctx context.Context) ([]model.Brand, error)
	Get(ctx context.Context, id uuid.UUID) (model.Brand, error)
	Create(ctx context.Context, in model.BrandInput) (model.Brand, error)
	Update(ctx context.Context, id uuid.UUID, in model.BrandInput) (model.Brand, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type brandRequest struct {
	Name        string  `json:"name"`
	Logo        *string `json:"logo"`
	Description string  `json:"description"`
}

func (r brandRequest) input() model.BrandInput {
	return model.BrandInput{
		Name:        r.Name,
		Logo:        r.Logo,
		Description: r.Description,
	}
}

// Brand handles the /api/brands endpoints.
type Brand struct {
	brandService BrandService
	guard        sessionGuard
	logger       *logger.Logger
}

// NewBrand creates a new Brand handler.
func NewBrand(brandService BrandService, contextManager model.ContextManager, logger *logger.Logger) *Brand {
	return &Brand{
		brandService: brandService,
		guard:        sessionGuard{contextManager: contextManager},
		logger:       logger,
	}
}

func (h *Brand) List(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	brands, err := h.brandService.List(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"brands": newBrandResponses(brands)})
}

func (h *Brand) Create(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	var req brandRequest
	if err := bindJSON(c, &req); err != nil {
		handleError(c, h.logger, err)
		return
	}

	brand, err := h.brandService.Create(c.Request.Context(), req.input())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "brand created successfully",
		"brand":   newBrandResponse(brand),
	})
}

func (h *Brand) Get(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	id, err := pathID(c, "id", "brand")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	brand, err := h.brandService.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"brand": newBrandResponse(brand)})
}

func (h *Brand) Update(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	id, err := pathID(c, "id", "brand")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	var req brandRequest
	if err := bindJSON(c, &req); err != nil {
		handleError(c, h.logger, err)
		return
	}

	brand, err := h.brandService.Update(c.Request.Context(), id, req.input())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "brand updated successfully",
		"brand":   newBrandResponse(brand),
	})
}

func (h *Brand) Delete(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	id, err := pathID(c, "id", "brand")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	if err := h.brandService.Delete(c.Request.Context(), id); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "brand deleted successfully"})
}
