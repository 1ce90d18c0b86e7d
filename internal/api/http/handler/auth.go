package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/csrf"

	"github.com/dtroode/storefront/internal/apierror"
	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
)

// AuthService defines registration and credential verification.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (model.SessionClaim, error)
	Register(ctx context.Context, name, email, password string) (model.User, error)
	CurrentUser(ctx context.Context, id uuid.UUID) (model.User, error)
}

// SessionService issues and verifies session tokens.
type SessionService interface {
	Issue(claim model.SessionClaim) (string, time.Time, error)
	Verify(token string) (model.SessionClaim, error)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type credentialsRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type sessionUser struct {
	ID    uuid.UUID  `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

type sessionResponse struct {
	User    sessionUser `json:"user"`
	Expires time.Time   `json:"expires"`
}

func newSessionResponse(u model.User, expires time.Time) sessionResponse {
	return sessionResponse{
		User: sessionUser{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  u.Role,
		},
		Expires: expires,
	}
}

// Auth handles the /api/auth namespace.
type Auth struct {
	authService AuthService
	sessions    SessionService
	cookie      SessionCookie
	guard       sessionGuard
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(
	authService AuthService,
	sessions SessionService,
	cookie SessionCookie,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		authService: authService,
		sessions:    sessions,
		cookie:      cookie,
		guard:       sessionGuard{contextManager: contextManager},
		logger:      logger,
	}
}

// Register serves POST /api/auth/register.
func (h *Auth) Register(c *gin.Context) {
	var req registerRequest
	if err := bindJSON(c, &req); err != nil {
		handleError(c, h.logger, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "registration successful",
		"user":    newUserResponse(user),
	})
}

// Session serves GET /api/auth/session. Without a session it returns {}.
func (h *Auth) Session(c *gin.Context) {
	claim, err := h.guard.session(c)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), claim.UserID)
	if err != nil {
		var apiErr *apierror.APIError
		if errors.As(err, &apiErr) && apiErr.Kind == apierror.KindNotFound {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newSessionResponse(user, claim.ExpiresAt))
}

// Providers serves GET /api/auth/providers.
func (h *Auth) Providers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"credentials": gin.H{
			"id":          "credentials",
			"name":        "Credentials",
			"type":        "credentials",
			"signinUrl":   "/auth/login",
			"callbackUrl": "/api/auth/callback/credentials",
		},
	})
}

// CSRF serves GET /api/auth/csrf. The token is empty when CSRF protection is off.
func (h *Auth) CSRF(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"csrfToken": csrf.Token(c.Request)})
}

// Credentials serves POST /api/auth/callback/credentials.
func (h *Auth) Credentials(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		handleError(c, h.logger, apierror.NewErrValidation("invalid request body"))
		return
	}

	claim, err := h.authService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	token, expiresAt, err := h.sessions.Issue(claim)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), claim.UserID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	h.cookie.set(c.Writer, token, expiresAt)
	h.logger.Info("Auth handler: signed in",
		"user_id", claim.UserID,
		"role", claim.Role.String())

	c.JSON(http.StatusOK, newSessionResponse(user, expiresAt))
}

// SignOut serves POST /api/auth/signout.
func (h *Auth) SignOut(c *gin.Context) {
	h.cookie.clear(c.Writer)
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}
