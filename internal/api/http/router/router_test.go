package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpContext "github.com/dtroode/storefront/internal/api/http/context"
	"github.com/dtroode/storefront/internal/model"
	"github.com/dtroode/storefront/internal/password"
	"github.com/dtroode/storefront/internal/repository/memory"
	"github.com/dtroode/storefront/internal/service"
	"github.com/dtroode/storefront/internal/testutil"
	"github.com/dtroode/storefront/internal/token"
	"github.com/dtroode/storefront/web"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type app struct {
	handler http.Handler
	users   *service.User
}

func newApp(t *testing.T) app {
	t.Helper()

	log := testutil.MakeNoopLogger()
	store := memory.New()
	hasher := password.NewBcrypt(4)
	sessions := service.NewSession(token.NewJWT("test-secret"), time.Hour)
	users := service.NewUser(store.Users(), hasher, log)

	services := Services{
		Auth:        service.NewAuth(store.Users(), hasher, log),
		Session:     sessions,
		Brand:       service.NewBrand(store.Brands(), store.DeviceModels(), log),
		DeviceModel: service.NewDeviceModel(store.DeviceModels(), store.Brands(), store.Products(), log),
		Product:     service.NewProduct(store.Products(), store.Brands(), store.DeviceModels(), log),
		User:        users,
		Profile:     service.NewProfile(store.Users(), hasher, log),
		Catalog:     service.NewCatalog(store.Brands(), store.DeviceModels(), store.Products(), store.Users()),
	}

	h, err := New(services, httpContext.NewManager(), web.FS, Options{
		FlashKey:      []byte("0123456789abcdef0123456789abcdef"),
		PlaintextHTTP: true,
	}, log).Register()
	require.NoError(t, err)

	return app{handler: h, users: users}
}

func (a app) do(t *testing.T, method, target string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a app) signIn(t *testing.T, email, pass string) (*httptest.ResponseRecorder, *http.Cookie) {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/api/auth/callback/credentials", map[string]string{
		"email":    email,
		"password": pass,
	}, nil)
	for _, c := range rec.Result().Cookies() {
		if c.Name == model.SessionCookieName && c.Value != "" {
			return rec, c
		}
	}
	return rec, nil
}

func body(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func field(t *testing.T, rec *httptest.ResponseRecorder, object, name string) string {
	t.Helper()

	obj, ok := body(t, rec)[object].(map[string]any)
	require.True(t, ok, rec.Body.String())
	value, _ := obj[name].(string)
	return value
}

func TestRouter_RegisterAndSignIn(t *testing.T) {
	t.Parallel()

	a := newApp(t)

	rec := a.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret1",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "registration successful", body(t, rec)["message"])

	rec = a.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Alice again",
		"email":    "alice@example.com",
		"password": "secret1",
	}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, cookie := a.signIn(t, "alice@example.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, cookie)

	rec, cookie = a.signIn(t, "nobody@example.com", "secret1")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid email or password", body(t, rec)["message"])
	assert.Nil(t, cookie)

	rec, cookie = a.signIn(t, "alice@example.com", "secret1")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, cookie)
	assert.Equal(t, "user", field(t, rec, "user", "role"))

	rec = a.do(t, http.MethodGet, "/api/auth/session", nil, cookie)
	assert.Equal(t, "alice@example.com", field(t, rec, "user", "email"))

	rec = a.do(t, http.MethodGet, "/admin", nil, cookie)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	rec = a.do(t, http.MethodGet, "/api/brands", nil, cookie)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestRouter_AdminCatalog(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	_, err := a.users.Create(context.Background(), model.UserInput{
		Name:     "Root",
		Email:    "root@example.com",
		Password: "secret1",
		Role:     "admin",
	})
	require.NoError(t, err)

	rec, admin := a.signIn(t, "root@example.com", "secret1")
	require.NotNil(t, admin, rec.Body.String())
	assert.Equal(t, "admin", field(t, rec, "user", "role"))

	rec = a.do(t, http.MethodPost, "/api/brands", map[string]any{"name": "Asus"}, admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "asus", field(t, rec, "brand", "slug"))
	brandID := field(t, rec, "brand", "id")

	rec = a.do(t, http.MethodPost, "/api/brands", map[string]any{"name": "Asus"}, admin)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = a.do(t, http.MethodPost, "/api/brands/"+brandID+"/models", map[string]any{"name": "ROG"}, admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "rog", field(t, rec, "model", "slug"))
	modelID := field(t, rec, "model", "id")

	product := map[string]any{
		"name":     "ROG Strix G16",
		"brandId":  brandID,
		"modelId":  modelID,
		"price":    1999.99,
		"stock":    5,
		"features": map[string]string{"ram": "16GB"},
	}
	rec = a.do(t, http.MethodPost, "/api/products", product, admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "rog-strix-g16", field(t, rec, "product", "slug"))
	productID := field(t, rec, "product", "id")

	rec = a.do(t, http.MethodPost, "/api/products", product, admin)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = a.do(t, http.MethodDelete, "/api/brands/"+brandID, nil, admin)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.EqualValues(t, 1, body(t, rec)["relatedModelsCount"])

	rec = a.do(t, http.MethodDelete, "/api/models/"+modelID, nil, admin)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.EqualValues(t, 1, body(t, rec)["relatedProductsCount"])

	rec = a.do(t, http.MethodGet, "/products/asus/rog", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ROG Strix G16")

	rec = a.do(t, http.MethodDelete, "/api/products/"+productID, nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, productID, body(t, rec)["deletedId"])

	rec = a.do(t, http.MethodDelete, "/api/models/"+modelID, nil, admin)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(t, http.MethodDelete, "/api/brands/"+brandID, nil, admin)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func (a app) postForm(target, form string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func TestRouter_AdminPages(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	_, err := a.users.Create(context.Background(), model.UserInput{
		Name:     "Root",
		Email:    "root@example.com",
		Password: "secret1",
		Role:     "admin",
	})
	require.NoError(t, err)
	_, admin := a.signIn(t, "root@example.com", "secret1")
	require.NotNil(t, admin)

	rec := a.postForm("/admin/brands", "name=Asus&description=Gaming", admin)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/brands", rec.Header().Get("Location"))

	rec = a.do(t, http.MethodGet, "/admin/brands", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Asus")

	rec = a.do(t, http.MethodGet, "/admin/brands/new", nil, admin)
	assert.Equal(t, http.StatusOK, rec.Code)

	for _, target := range []string{"/admin/models", "/admin/products", "/admin/users?search=root", "/admin/users/new", "/admin/products/new"} {
		rec = a.do(t, http.MethodGet, target, nil, admin)
		assert.Equal(t, http.StatusOK, rec.Code, target)
	}

	rec = a.do(t, http.MethodGet, "/admin/users?search=root", nil, admin)
	assert.Contains(t, rec.Body.String(), "root@example.com")
}

func TestRouter_AdminPagesGate(t *testing.T) {
	t.Parallel()

	a := newApp(t)

	rec := a.postForm("/admin/brands", "name=Asus", nil)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/auth/login?callbackUrl=%2Fadmin%2Fbrands", rec.Header().Get("Location"))

	_, err := a.users.Create(context.Background(), model.UserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	_, user := a.signIn(t, "alice@example.com", "secret1")
	require.NotNil(t, user)

	rec = a.do(t, http.MethodGet, "/admin/users", nil, user)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestRouter_AdminCannotDeleteSelf(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	root, err := a.users.Create(context.Background(), model.UserInput{
		Name:     "Root",
		Email:    "root@example.com",
		Password: "secret1",
		Role:     "admin",
	})
	require.NoError(t, err)

	_, admin := a.signIn(t, "root@example.com", "secret1")
	require.NotNil(t, admin)

	rec := a.do(t, http.MethodDelete, "/api/users/"+root.ID.String(), nil, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "you cannot delete your own account", body(t, rec)["message"])
}

func TestRouter_Gate(t *testing.T) {
	t.Parallel()

	a := newApp(t)

	tests := []struct {
		name         string
		method       string
		target       string
		wantStatus   int
		wantLocation string
	}{
		{name: "home", method: http.MethodGet, target: "/", wantStatus: http.StatusOK},
		{name: "login form", method: http.MethodGet, target: "/auth/login", wantStatus: http.StatusOK},
		{name: "stylesheet", method: http.MethodGet, target: "/static/style.css", wantStatus: http.StatusOK},
		{name: "providers", method: http.MethodGet, target: "/api/auth/providers", wantStatus: http.StatusOK},
		{name: "anonymous session", method: http.MethodGet, target: "/api/auth/session", wantStatus: http.StatusOK},
		{
			name:         "product detail",
			method:       http.MethodGet,
			target:       "/product/42?ref=home",
			wantStatus:   http.StatusTemporaryRedirect,
			wantLocation: "/auth/login?callbackUrl=%2Fproduct%2F42%3Fref%3Dhome",
		},
		{
			name:         "admin console",
			method:       http.MethodGet,
			target:       "/admin",
			wantStatus:   http.StatusTemporaryRedirect,
			wantLocation: "/auth/login?callbackUrl=%2Fadmin",
		},
		{
			name:         "admin api",
			method:       http.MethodGet,
			target:       "/api/users",
			wantStatus:   http.StatusTemporaryRedirect,
			wantLocation: "/auth/login?callbackUrl=%2Fapi%2Fusers",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := a.do(t, tt.method, tt.target, nil, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		})
	}
}

func TestRouter_ForgedCookieIsAnonymous(t *testing.T) {
	t.Parallel()

	a := newApp(t)
	forged := &http.Cookie{Name: model.SessionCookieName, Value: "not-a-jwt"}

	rec := a.do(t, http.MethodGet, "/api/brands", nil, forged)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/auth/login?callbackUrl=%2Fapi%2Fbrands", rec.Header().Get("Location"))
}
