package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/apierror"
	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
)

// maxMultipartOverhead leaves room for the multipart envelope around the file.
const maxMultipartOverhead = 1 << 20

// MediaService defines image upload and retrieval.
type MediaService interface {
	UploadProductImage(ctx context.Context, productID uuid.UUID, r io.Reader) (model.Product, error)
	UploadBrandLogo(ctx context.Context, brandID uuid.UUID, r io.Reader) (model.Brand, error)
	Open(ctx context.Context, key string) (io.ReadCloser, model.ObjectInfo, error)
}

// Media handles image uploads and serves stored objects under /media.
type Media struct {
	mediaService MediaService
	maxUpload    int64
	guard        sessionGuard
	logger       *logger.Logger
}

// NewMedia creates a new Media handler. maxUpload bounds the image itself.
func NewMedia(mediaService MediaService, maxUpload int64, contextManager model.ContextManager, logger *logger.Logger) *Media {
	return &Media{
		mediaService: mediaService,
		maxUpload:    maxUpload,
		guard:        sessionGuard{contextManager: contextManager},
		logger:       logger,
	}
}

// UploadProductImage serves POST /api/products/:id/image.
func (h *Media) UploadProductImage(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	id, err := pathID(c, "id", "product")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	file, err := h.formFile(c)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	defer file.Close()

	product, err := h.mediaService.UploadProductImage(c.Request.Context(), id, file)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "image uploaded successfully",
		"product": newProductResponse(product),
	})
}

// UploadBrandLogo serves POST /api/brands/:id/logo.
func (h *Media) UploadBrandLogo(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	id, err := pathID(c, "id", "brand")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	file, err := h.formFile(c)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	defer file.Close()

	brand, err := h.mediaService.UploadBrandLogo(c.Request.Context(), id, file)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "logo uploaded successfully",
		"brand":   newBrandResponse(brand),
	})
}

// Serve streams GET /media/*key.
func (h *Media) Serve(c *gin.Context) {
	rc, info, err := h.mediaService.Open(c.Request.Context(), c.Param("key"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, info.Size, info.ContentType, rc, map[string]string{
		"Cache-Control": "public, max-age=31536000, immutable",
	})
}

func (h *Media) formFile(c *gin.Context) (io.ReadCloser, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload+maxMultipartOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apierror.NewErrValidation("image must be at most 10 MiB")
		}
		return nil, apierror.NewErrValidation("file is required")
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	return file, nil
}
