package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
)

// ProfileService defines self-service account operations.
type ProfileService interface {
	Get(ctx context.Context, id uuid.UUID) (model.User, error)
	Update(ctx context.Context, id uuid.UUID, in model.ProfileInput) (model.User, error)
}

type profileRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Profile handles /api/profile. Any signed-in user may call it.
type Profile struct {
	profileService ProfileService
	guard          sessionGuard
	logger         *logger.Logger
}

// NewProfile creates a new Profile handler.
func NewProfile(profileService ProfileService, contextManager model.ContextManager, logger *logger.Logger) *Profile {
	return &Profile{
		profileService: profileService,
		guard:          sessionGuard{contextManager: contextManager},
		logger:         logger,
	}
}

func (h *Profile) Get(c *gin.Context) {
	claim, err := h.guard.session(c)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	user, err := h.profileService.Get(c.Request.Context(), claim.UserID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

func (h *Profile) Update(c *gin.Context) {
	claim, err := h.guard.session(c)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	var req profileRequest
	if err := bindJSON(c, &req); err != nil {
		handleError(c, h.logger, err)
		return
	}

	user, err := h.profileService.Update(c.Request.Context(), claim.UserID, model.ProfileInput{
		Name:            req.Name,
		Email:           req.Email,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "profile updated successfully",
		"user":    newUserResponse(user),
	})
}
