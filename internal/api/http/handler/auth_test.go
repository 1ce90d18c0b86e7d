package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/storefront/internal/apierror"
	"github.com/dtroode/storefront/internal/mocks"
	"github.com/dtroode/storefront/internal/model"
	"github.com/dtroode/storefront/internal/testutil"
)

func authRoutes(authService *mocks.AuthService, sessions *mocks.SessionService, claim *model.SessionClaim) http.Handler {
	h := NewAuth(authService, sessions, SessionCookie{}, contextManager, testutil.MakeNoopLogger())
	engine := newEngine(claim)
	engine.POST("/api/auth/register", h.Register)
	engine.GET("/api/auth/session", h.Session)
	engine.GET("/api/auth/providers", h.Providers)
	engine.GET("/api/auth/csrf", h.CSRF)
	engine.POST("/api/auth/callback/credentials", h.Credentials)
	engine.POST("/api/auth/signout", h.SignOut)
	return engine
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == model.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "created",
			wantStatus: http.StatusCreated,
			wantMsg:    "registration successful",
		},
		{
			name:       "email taken",
			err:        apierror.NewErrEmailIsTaken(),
			wantStatus: http.StatusConflict,
			wantMsg:    "email is already registered",
		},
		{
			name:       "short password",
			err:        apierror.NewErrValidation("password must be at least 6 characters"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "password must be at least 6 characters",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			authService := mocks.NewAuthService(t)
			authService.On("Register", mock.Anything, "Alice", "alice@example.com", "secret1").
				Return(model.User{ID: uuid.New(), Name: "Alice", Role: model.RoleUser}, tt.err)

			rec := doJSON(t, authRoutes(authService, mocks.NewSessionService(t), nil), http.MethodPost, "/api/auth/register", map[string]any{
				"name":     "Alice",
				"email":    "alice@example.com",
				"password": "secret1",
			})
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decode(t, rec)["message"])
		})
	}
}

func TestAuth_Credentials(t *testing.T) {
	t.Parallel()

	t.Run("success sets the cookie", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		claim := model.SessionClaim{UserID: userID, Role: model.RoleUser}
		expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

		authService := mocks.NewAuthService(t)
		authService.On("Authenticate", mock.Anything, "alice@example.com", "secret1").Return(claim, nil)
		authService.On("CurrentUser", mock.Anything, userID).
			Return(model.User{ID: userID, Name: "Alice", Email: "alice@example.com", Role: model.RoleUser}, nil)
		sessions := mocks.NewSessionService(t)
		sessions.On("Issue", claim).Return("signed.jwt.token", expires, nil)

		rec := doJSON(t, authRoutes(authService, sessions, nil), http.MethodPost, "/api/auth/callback/credentials", map[string]any{
			"email":    "alice@example.com",
			"password": "secret1",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		cookie := sessionCookie(rec)
		require.NotNil(t, cookie)
		assert.Equal(t, "signed.jwt.token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

		user := decode(t, rec)["user"].(map[string]any)
		assert.Equal(t, "user", user["role"])
		assert.Equal(t, "Alice", user["name"])
	})

	t.Run("form encoded body", func(t *testing.T) {
		t.Parallel()

		claim := model.SessionClaim{UserID: uuid.New(), Role: model.RoleAdmin}
		authService := mocks.NewAuthService(t)
		authService.On("Authenticate", mock.Anything, "root@example.com", "secret1").Return(claim, nil)
		authService.On("CurrentUser", mock.Anything, claim.UserID).Return(model.User{ID: claim.UserID, Role: model.RoleAdmin}, nil)
		sessions := mocks.NewSessionService(t)
		sessions.On("Issue", claim).Return("token", time.Now().Add(time.Hour), nil)

		req := newFormRequest(http.MethodPost, "/api/auth/callback/credentials", "email=root%40example.com&password=secret1")
		rec := serve(authRoutes(authService, sessions, nil), req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotNil(t, sessionCookie(rec))
	})

	t.Run("wrong password sets no cookie", func(t *testing.T) {
		t.Parallel()

		authService := mocks.NewAuthService(t)
		authService.On("Authenticate", mock.Anything, "alice@example.com", "wrong").
			Return(model.SessionClaim{}, apierror.NewErrInvalidCredentials())

		rec := doJSON(t, authRoutes(authService, mocks.NewSessionService(t), nil), http.MethodPost, "/api/auth/callback/credentials", map[string]any{
			"email":    "alice@example.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid email or password", decode(t, rec)["message"])
		assert.Nil(t, sessionCookie(rec))
	})

	t.Run("signing failure", func(t *testing.T) {
		t.Parallel()

		claim := model.SessionClaim{UserID: uuid.New(), Role: model.RoleUser}
		authService := mocks.NewAuthService(t)
		authService.On("Authenticate", mock.Anything, "alice@example.com", "secret1").Return(claim, nil)
		sessions := mocks.NewSessionService(t)
		sessions.On("Issue", claim).Return("", time.Time{}, errors.New("boom"))

		rec := doJSON(t, authRoutes(authService, sessions, nil), http.MethodPost, "/api/auth/callback/credentials", map[string]any{
			"email":    "alice@example.com",
			"password": "secret1",
		})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "boom")
		assert.Nil(t, sessionCookie(rec))
	})
}

func TestAuth_Session(t *testing.T) {
	t.Parallel()

	t.Run("anonymous", func(t *testing.T) {
		t.Parallel()

		rec := doJSON(t, authRoutes(mocks.NewAuthService(t), mocks.NewSessionService(t), nil), http.MethodGet, "/api/auth/session", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
	})

	t.Run("deleted user", func(t *testing.T) {
		t.Parallel()

		claim := claimFor(model.RoleUser)
		authService := mocks.NewAuthService(t)
		authService.On("CurrentUser", mock.Anything, claim.UserID).Return(model.User{}, apierror.NewErrNotFound("user"))

		rec := doJSON(t, authRoutes(authService, mocks.NewSessionService(t), claim), http.MethodGet, "/api/auth/session", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
	})

	t.Run("signed in", func(t *testing.T) {
		t.Parallel()

		claim := claimFor(model.RoleAdmin)
		authService := mocks.NewAuthService(t)
		authService.On("CurrentUser", mock.Anything, claim.UserID).
			Return(model.User{ID: claim.UserID, Name: "Root", Email: "root@example.com", Role: model.RoleAdmin}, nil)

		rec := doJSON(t, authRoutes(authService, mocks.NewSessionService(t), claim), http.MethodGet, "/api/auth/session", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		body := decode(t, rec)
		assert.Equal(t, "admin", body["user"].(map[string]any)["role"])
		assert.NotEmpty(t, body["expires"])
	})
}

func TestAuth_SignOut(t *testing.T) {
	t.Parallel()

	rec := doJSON(t, authRoutes(mocks.NewAuthService(t), mocks.NewSessionService(t), nil), http.MethodPost, "/api/auth/signout", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "", cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestAuth_Providers(t *testing.T) {
	t.Parallel()

	rec := doJSON(t, authRoutes(mocks.NewAuthService(t), mocks.NewSessionService(t), nil), http.MethodGet, "/api/auth/providers", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `"type":"credentials"`))
}

func TestAuth_CSRFWithoutProtection(t *testing.T) {
	t.Parallel()

	rec := doJSON(t, authRoutes(mocks.NewAuthService(t), mocks.NewSessionService(t), nil), http.MethodGet, "/api/auth/csrf", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"csrfToken":""}`, rec.Body.String())
}
