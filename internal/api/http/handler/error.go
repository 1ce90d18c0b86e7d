package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/storefront/internal/apierror"
	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
)

const internalErrorMessage = "internal server error"

// handleError writes err as a {"message": ...} response. Storage errors are
// logged and never reach the client.
func handleError(c *gin.Context, logger *logger.Logger, err error) {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		body := gin.H{"message": apiErr.Message}
		for k, v := range apiErr.Fields {
			body[k] = v
		}
		c.JSON(apiErr.Kind.HTTPStatus(), body)
		return
	}

	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		invalid := apierror.NewErrInvalidCredentials()
		c.JSON(invalid.Kind.HTTPStatus(), gin.H{"message": invalid.Message})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "record not found"})
	case errors.Is(err, model.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"message": "record conflicts with existing data"})
	default:
		logger.Error("HTTP handler: request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": internalErrorMessage})
	}
}
