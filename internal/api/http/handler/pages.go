package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/csrf"

	"github.com/dtroode/storefront/internal/apierror"
	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
)

// CatalogService serves the read side of the storefront.
type CatalogService interface {
	Brands(ctx context.Context) ([]model.Brand, error)
	BrandPage(ctx context.Context, brandSlug string) (model.BrandPage, error)
	ModelPage(ctx context.Context, brandSlug, modelSlug string) (model.ModelPage, error)
	Product(ctx context.Context, id uuid.UUID) (model.Product, error)
	Stats(ctx context.Context) (model.CatalogStats, error)
}

// Pages renders the HTML storefront, the login and register forms, the
// admin dashboard and the profile page.
type Pages struct {
	catalog   CatalogService
	auth      AuthService
	sessions  SessionService
	profile   ProfileService
	templates *TemplateCache
	flash     *Flash
	cookie    SessionCookie
	guard     sessionGuard
	logger    *logger.Logger
}

// PagesDeps groups the collaborators of the Pages handler.
type PagesDeps struct {
	Catalog        CatalogService
	Auth           AuthService
	Sessions       SessionService
	Profile        ProfileService
	Templates      *TemplateCache
	Flash          *Flash
	Cookie         SessionCookie
	ContextManager model.ContextManager
	Logger         *logger.Logger
}

// NewPages creates a new Pages handler.
func NewPages(deps PagesDeps) *Pages {
	return &Pages{
		catalog:   deps.Catalog,
		auth:      deps.Auth,
		sessions:  deps.Sessions,
		profile:   deps.Profile,
		templates: deps.Templates,
		flash:     deps.Flash,
		cookie:    deps.Cookie,
		guard:     sessionGuard{contextManager: deps.ContextManager},
		logger:    deps.Logger,
	}
}

func (h *Pages) Home(c *gin.Context) {
	brands, err := h.catalog.Brands(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "home", gin.H{"Brands": brands})
}

func (h *Pages) Brands(c *gin.Context) {
	brands, err := h.catalog.Brands(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "brands", gin.H{"Brands": brands})
}

func (h *Pages) Brand(c *gin.Context) {
	page, err := h.catalog.BrandPage(c.Request.Context(), c.Param("brandSlug"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "brand", gin.H{"Page": page})
}

func (h *Pages) Model(c *gin.Context) {
	page, err := h.catalog.ModelPage(c.Request.Context(), c.Param("brandSlug"), c.Param("modelSlug"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "model", gin.H{"Page": page})
}

func (h *Pages) Product(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.fail(c, apierror.NewErrNotFound("product"))
		return
	}

	product, err := h.catalog.Product(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "product", gin.H{"Product": product})
}

func (h *Pages) LoginForm(c *gin.Context) {
	h.render(c, http.StatusOK, "login", gin.H{"CallbackURL": safeCallback(c.Query("callbackUrl"))})
}

// Login handles the form post of /auth/login. On success it follows a local
// callbackUrl, anything else sends the user home.
func (h *Pages) Login(c *gin.Context) {
	callback := safeCallback(c.PostForm("callbackUrl"))

	claim, err := h.auth.Authenticate(c.Request.Context(), c.PostForm("email"), c.PostForm("password"))
	if err != nil {
		h.flash.add(c.Writer, c.Request, "error", h.messageFor(err))
		c.Redirect(http.StatusSeeOther, "/auth/login?callbackUrl="+url.QueryEscape(callback))
		return
	}

	token, expiresAt, err := h.sessions.Issue(claim)
	if err != nil {
		h.flash.add(c.Writer, c.Request, "error", h.messageFor(err))
		c.Redirect(http.StatusSeeOther, "/auth/login?callbackUrl="+url.QueryEscape(callback))
		return
	}

	h.cookie.set(c.Writer, token, expiresAt)
	c.Redirect(http.StatusSeeOther, callback)
}

func (h *Pages) RegisterForm(c *gin.Context) {
	h.render(c, http.StatusOK, "register", gin.H{})
}

func (h *Pages) Register(c *gin.Context) {
	_, err := h.auth.Register(c.Request.Context(), c.PostForm("name"), c.PostForm("email"), c.PostForm("password"))
	if err != nil {
		h.flash.add(c.Writer, c.Request, "error", h.messageFor(err))
		c.Redirect(http.StatusSeeOther, "/auth/register")
		return
	}

	h.flash.add(c.Writer, c.Request, "success", "registration successful, you can now sign in")
	c.Redirect(http.StatusSeeOther, "/auth/login")
}

func (h *Pages) Logout(c *gin.Context) {
	h.cookie.clear(c.Writer)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Pages) Admin(c *gin.Context) {
	if _, err := h.guard.admin(c); err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	stats, err := h.catalog.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "admin", gin.H{"Stats": stats})
}

func (h *Pages) Profile(c *gin.Context) {
	claim, err := h.guard.session(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/auth/login?callbackUrl="+url.QueryEscape("/profile"))
		return
	}

	user, err := h.profile.Get(c.Request.Context(), claim.UserID)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "profile", gin.H{"User": user})
}

func (h *Pages) UpdateProfile(c *gin.Context) {
	claim, err := h.guard.session(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/auth/login?callbackUrl="+url.QueryEscape("/profile"))
		return
	}

	_, err = h.profile.Update(c.Request.Context(), claim.UserID, model.ProfileInput{
		Name:            c.PostForm("name"),
		Email:           c.PostForm("email"),
		CurrentPassword: c.PostForm("currentPassword"),
		NewPassword:     c.PostForm("newPassword"),
	})
	if err != nil {
		h.flash.add(c.Writer, c.Request, "error", h.messageFor(err))
	} else {
		h.flash.add(c.Writer, c.Request, "success", "profile updated successfully")
	}
	c.Redirect(http.StatusSeeOther, "/profile")
}

// render adds the session, flash messages and CSRF field every page needs.
func (h *Pages) render(c *gin.Context, status int, page string, data gin.H) {
	if claim, ok := h.guard.contextManager.GetSessionFromContext(c.Request.Context()); ok {
		data["Session"] = &claim
	}
	data["Flashes"] = h.flash.pop(c.Writer, c.Request)
	data["CsrfField"] = csrf.TemplateField(c.Request)

	if err := h.templates.Render(c.Writer, status, page, data); err != nil {
		h.logger.Error("Pages handler: failed to render page",
			"page", page,
			"error", err.Error())
		c.String(http.StatusInternalServerError, internalErrorMessage)
	}
}

func (h *Pages) fail(c *gin.Context, err error) {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) && apiErr.Kind == apierror.KindNotFound {
		h.render(c, http.StatusNotFound, "not_found", gin.H{"Message": apiErr.Message})
		return
	}

	h.logger.Error("Pages handler: request failed",
		"path", c.Request.URL.Path,
		"error", err.Error())
	c.String(http.StatusInternalServerError, internalErrorMessage)
}

// messageFor turns a service error into text safe to show in a form.
func (h *Pages) messageFor(err error) string {
	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, model.ErrInvalidCredentials):
		return apierror.NewErrInvalidCredentials().Message
	default:
		h.logger.Error("Pages handler: form submission failed", "error", err.Error())
		return "something went wrong, please try again"
	}
}

// safeCallback keeps redirects on this site. Browsers drop tabs and
// newlines and read a backslash as a slash, so "/\t/evil.com" would still
// leave the site; any of them rejects the target outright.
func safeCallback(raw string) string {
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return "/"
	}
	for _, r := range raw {
		if r < 0x20 || r == 0x7f || r == '\\' {
			return "/"
		}
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return raw
}
