package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
)

// UserService defines admin account management operations.
type UserService interface {
	List(ctx context.Context, search string) ([]model.User, error)
	Get(ctx context.Context, id uuid.UUID) (model.User, error)
	Create(ctx context.Context, in model.UserInput) (model.User, error)
	Update(ctx context.Context, id uuid.UUID, in model.UserInput) (model.User, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}

type userRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r userRequest) input() model.UserInput {
	return model.UserInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}

// User handles the /api/users endpoints.
type User struct {
	userService UserService
	guard       sessionGuard
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		guard:       sessionGuard{contextManager: contextManager},
		logger:      logger,
	}
}

// List serves GET /api/users with an optional search term.
func (h *User) List(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	users, err := h.userService.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": newUserResponses(users)})
}

func (h *User) Create(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	var req userRequest
	if err := bindJSON(c, &req); err != nil {
		handleError(c, h.logger, err)
		return
	}

	user, err := h.userService.Create(c.Request.Context(), req.input())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user created successfully",
		"user":    newUserResponse(user),
	})
}

func (h *User) Get(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	id, err := pathID(c, "id", "user")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

func (h *User) Update(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		handleError(c, h.logger, err)
		return
	}

	id, err := pathID(c, "id", "user")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	var req userRequest
	if err := bindJSON(c, &req); err != nil {
		handleError(c, h.logger, err)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, req.input())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "user updated successfully",
		"user":    newUserResponse(user),
	})
}

func (h *User) Delete(c *gin.Context) {
	claim, err := h.guard.admin(c)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	id, err := pathID(c, "id", "user")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	if err := h.userService.Delete(c.Request.Context(), claim.UserID, id); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted successfully"})
}
