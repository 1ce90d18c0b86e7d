package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
)

// DeviceModelService defines model management operations.
type DeviceModelService interface {
	List(ctx context.Context, brandID uuid.UUID) ([]model.DeviceModel, error)
	ListForBrand(ctx context.Context, brandID uuid.UUID) ([]model.DeviceModel, error)
	Get(ctx context.Context, id uuid.UUID) (model.DeviceModel, error)
	Create(ctx context.Context, in model.DeviceModelInput) (model.DeviceModel, error)
	Update(ctx context.Context, id uuid.UUID, in model.DeviceModelInput) (model.DeviceModel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type modelRequest struct {
	Name        string `json:"name"`
	BrandID     string `json:"brandId"`
	Description string `json:"description"`
}

func (r modelRequest) input() (model.DeviceModelInput, error) {
	brandID, err := optionalID(r.BrandID, "brand")
	if err != nil {
		return model.DeviceModelInput{}, err
	}
	return model.DeviceModelInput{
		Name:        r.Name,
		BrandID:     brandID,
		Description: r.Description,
	}, nil
}

// DeviceModel handles /api/models and the models nested under a brand.
type DeviceModel struct {
	modelService DeviceModelService
	guard        sessionGuard
	logger       *logger.Logger
}

// NewDeviceModel creates a new DeviceModel handler.
func NewDeviceModel(modelService DeviceModelService, contextManager model.ContextManager, logger *logger.Logger) *DeviceModel {
	return &DeviceModel{
		modelService: modelService,
		guard:        sessionGuard{contextManager: contextManager},
		logger:       logger,
	}
}

// List serves GET /api/models with an optional brandId filter.
func (h *DeviceModel) List(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	brandID, err := optionalID(c.Query("brandId"), "brand")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	models, err := h.modelService.List(c.Request.Context(), brandID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"models": newModelResponses(models)})
}

// ListForBrand serves GET /api/brands/:id/models.
func (h *DeviceModel) ListForBrand(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	brandID, err := pathID(c, "id", "brand")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	models, err := h.modelService.ListForBrand(c.Request.Context(), brandID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"models": newModelResponses(models)})
}

func (h *DeviceModel) Create(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	var req modelRequest
	if err := bindJSON(c, &req); err != nil {
		handleError(c, h.logger, err)
		return
	}
	in, err := req.input()
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	h.create(c, in)
}

// CreateForBrand serves POST /api/brands/:id/models. The brand comes from the path.
func (h *DeviceModel) CreateForBrand(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	brandID, err := pathID(c, "id", "brand")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	var req modelRequest
	if err := bindJSON(c, &req); err != nil {
		handleError(c, h.logger, err)
		return
	}

	h.create(c, model.DeviceModelInput{
		Name:        req.Name,
		BrandID:     brandID,
		Description: req.Description,
	})
}

func (h *DeviceModel) create(c *gin.Context, in model.DeviceModelInput) {
	m, err := h.modelService.Create(c.Request.Context(), in)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "model created successfully",
		"model":   newModelResponse(m),
	})
}

func (h *DeviceModel) Get(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	id, err := pathID(c, "id", "model")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	m, err := h.modelService.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"model": newModelResponse(m)})
}

func (h *DeviceModel) Update(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	id, err := pathID(c, "id", "model")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	var req modelRequest
	if err := bindJSON(c, &req); err != nil {
		handleError(c, h.logger, err)
		return
	}
	in, err := req.input()
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	m, err := h.modelService.Update(c.Request.Context(), id, in)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "model updated successfully",
		"model":   newModelResponse(m),
	})
}

func (h *DeviceModel) Delete(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	id, err := pathID(c, "id", "model")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	if err := h.modelService.Delete(c.Request.Context(), id); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "model deleted successfully"})
}
