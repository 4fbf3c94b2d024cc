package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-delivery-api/internal/config"
	"food-delivery-api/internal/handler"
	"food-delivery-api/internal/middleware"
	"food-delivery-api/internal/model"
)

// newTestRouter mounts handlers without services; only paths that never
// reach a service are exercised.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newTestRouterWithStatic(t, t.TempDir())
}

func newTestRouterWithStatic(t *testing.T, staticDir string) http.Handler {
	t.Helper()

	cfg := &config.Config{
		RequestTimeout:   5 * time.Second,
		CORSOrigins:      []string{"*"},
		RateLimitRPM:     1000,
		AuthRateLimitRPM: 1000,
		MaxJSONBody:      1024,
		MaxUploadSize:    1024,
		StaticDir:        staticDir,
	}

	return New(cfg, middleware.NewAuthMiddleware(nil, nil), Handlers{
		Auth:       handler.NewAuthHandler(nil, nil, handler.CookieConfig{}),
		User:       handler.NewUserHandler(nil, nil),
		Category:   handler.NewCategoryHandler(nil, nil),
		Restaurant: handler.NewRestaurantHandler(nil, nil),
		Food:       handler.NewFoodHandler(nil, nil),
		Order:      handler.NewOrderHandler(nil),
		Health:     handler.NewHealthHandler(nil),
	}, prometheus.NewRegistry())
}

func TestRoutesAreRegistered(t *testing.T) {
	t.Parallel()

	routes, ok := newTestRouter(t).(chi.Routes)
	require.True(t, ok)

	got := map[string]bool{}
	require.NoError(t, chi.Walk(routes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got[method+" "+route] = true
		return nil
	}))

	for _, want := range []string{
		"POST /api/v1/users/register",
		"POST /api/v1/users/login",
		"POST /api/v1/users/refresh-token",
		"POST /api/v1/users/logout",
		"GET /api/v1/users/me",
		"PATCH /api/v1/users/update",
		"PATCH /api/v1/users/update-avatar",
		"PATCH /api/v1/users/update-password",
		"POST /api/v1/categories/create",
		"GET /api/v1/categories/getAll",
		"PATCH /api/v1/categories/updateImage/{categoryId}",
		"PATCH /api/v1/categories/updateTitle/{categoryId}",
		"DELETE /api/v1/categories/delete/{categoryId}",
		"POST /api/v1/restaurants/create",
		"GET /api/v1/restaurants/getAll",
		"GET /api/v1/restaurants/get/{id}",
		"DELETE /api/v1/restaurants/delete/{id}",
		"POST /api/v1/foods/create",
		"GET /api/v1/foods/getAll",
		"GET /api/v1/foods/getFoodById/{code}",
		"PUT /api/v1/foods/updateFoodItem/{code}",
		"PUT /api/v1/foods/updateFoodImage/{code}",
		"DELETE /api/v1/foods/deleteFoodItem/{code}",
		"POST /api/v1/orders/placeOrder",
		"GET /api/v1/orders/my",
		"GET /ping",
		"GET /health",
	} {
		assert.True(t, got[want], want)
	}
}

func TestGuardedRoutesRequireToken(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)

	for _, target := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/users/me"},
		{http.MethodPost, "/api/v1/categories/create"},
		{http.MethodGet, "/api/v1/foods/getAll"},
		{http.MethodPost, "/api/v1/orders/placeOrder"},
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(target.method, target.path, nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code, target.path)
		var env model.APIResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Equal(t, "access token is required", env.Message)
	}
}

func TestPingMetricsAndFallbacks(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Content-Type-Options"))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `http_requests_total{method="GET",route="/ping",status="200"}`))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nothing-here", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var env model.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/ping", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestStaticServesFilesWithoutListings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "temp"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "temp", "staged.png"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.txt"), []byte("hello"), 0o644))
	r := newTestRouterWithStatic(t, dir)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/logo.txt", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", rec.Body.String())

	for _, p := range []string{"/static/", "/static/temp/"} {
		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, p)
		assert.NotContains(t, rec.Body.String(), "staged.png")
	}
}
