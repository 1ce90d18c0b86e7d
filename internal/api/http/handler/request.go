package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/apierror"
	"github.com/dtroode/storefront/internal/model"
)

// bindJSON decodes the request body. A malformed body is a validation error.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apierror.NewErrValidation("invalid request body")
	}
	return nil
}

// pathID parses the :name path parameter as a UUID.
func pathID(c *gin.Context, name, entity string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apierror.NewErrInvalidID(entity)
	}
	return id, nil
}

// optionalID parses an id coming from a body or query. Empty means uuid.Nil.
func optionalID(raw, entity string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apierror.NewErrInvalidID(entity)
	}
	return id, nil
}

// sessionGuard re-checks the gate's decision inside JSON handlers.
type sessionGuard struct {
	contextManager model.ContextManager
}

// session returns the caller's claim or a 401 error.
func (g sessionGuard) session(c *gin.Context) (model.SessionClaim, error) {
	claim, ok := g.contextManager.GetSessionFromContext(c.Request.Context())
	if !ok {
		return model.SessionClaim{}, apierror.NewErrAuthenticationRequired()
	}
	return claim, nil
}

// admin returns the caller's claim, a 401 without a session or a 403 for non-admins.
func (g sessionGuard) admin(c *gin.Context) (model.SessionClaim, error) {
	claim, err := g.session(c)
	if err != nil {
		return model.SessionClaim{}, err
	}
	if !claim.IsAdmin() {
		return model.SessionClaim{}, apierror.NewErrForbidden()
	}
	return claim, nil
}
