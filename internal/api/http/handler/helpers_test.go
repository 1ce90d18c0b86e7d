package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	httpContext "github.com/dtroode/storefront/internal/api/http/context"
	"github.com/dtroode/storefront/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var contextManager = httpContext.NewManager()

func claimFor(role model.Role) *model.SessionClaim {
	return &model.SessionClaim{
		UserID:    uuid.New(),
		Role:      role,
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// newEngine returns an engine that injects claim the way the gate does.
func newEngine(claim *model.SessionClaim) *gin.Engine {
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		if claim != nil {
			c.Request = c.Request.WithContext(contextManager.SetSessionToContext(c.Request.Context(), *claim))
		}
		c.Next()
	})
	return engine
}

func doJSON(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func newFormRequest(method, target, form string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
