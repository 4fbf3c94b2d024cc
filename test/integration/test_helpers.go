//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/http/cookiejar"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"food-delivery-api/internal/config"
	"food-delivery-api/internal/database"
	"food-delivery-api/internal/handler"
	"food-delivery-api/internal/middleware"
	"food-delivery-api/internal/repository"
	"food-delivery-api/internal/router"
	"food-delivery-api/internal/service"
	"food-delivery-api/internal/storage"
)

// memoryStore stands in for S3. Like the real store it consumes the staged file.
type memoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: map[string][]byte{}}
}

func (s *memoryStore) Upload(_ context.Context, localPath string) (storage.UploadResult, error) {
	defer os.Remove(localPath)

	data, err := os.ReadFile(localPath)
	if err != nil {
		return storage.UploadResult{}, err
	}

	key := "uploads/" + filepath.Base(localPath)
	s.mu.Lock()
	s.objects[key] = data
	s.mu.Unlock()

	return storage.UploadResult{URL: "http://objects.test/images/" + key, Key: key}, nil
}

func (s *memoryStore) DeleteByURL(_ context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, url[len("http://objects.test/images/"):])
	return nil
}

func (s *memoryStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

func startPostgres(t *testing.T) *database.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("food_e2e"),
		postgres.WithUsername("food"),
		postgres.WithPassword("food"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.New(ctx, connStr, 4, 1)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate(ctx))
	return db
}

func newServer(t *testing.T) (*httptest.Server, *memoryStore) {
	t.Helper()

	db := startPostgres(t)
	pool := db.Pool
	images := newMemoryStore()

	cfg := &config.Config{
		ServerPort:         "8080",
		RequestTimeout:     30 * time.Second,
		AccessTokenSecret:  "access-secret",
		AccessTokenTTL:     15 * time.Minute,
		RefreshTokenSecret: "refresh-secret",
		RefreshTokenTTL:    24 * time.Hour,
		CORSOrigins:        []string{"*"},
		RateLimitRPM:       1000,
		AuthRateLimitRPM:   1000,
		MaxJSONBody:        16 * 1024,
		MaxUploadSize:      1 << 20,
		UploadTempDir:      t.TempDir(),
	}

	users := repository.NewUserRepository(pool)
	categories := repository.NewCategoryRepository(pool)
	restaurants := repository.NewRestaurantRepository(pool)
	foods := repository.NewFoodRepository(pool)
	orders := repository.NewOrderRepository(pool)

	stager, err := storage.NewStager(cfg.UploadTempDir, cfg.MaxUploadSize)
	require.NoError(t, err)
	tokens, err := service.NewTokenService(cfg.TokenSettings(), users)
	require.NoError(t, err)

	authService := service.NewAuthService(users, tokens, service.NewPasswordHasher(4), images)
	cookies := handler.CookieConfig{AccessTTL: cfg.AccessTokenTTL, RefreshTTL: cfg.RefreshTokenTTL}

	h := router.Handlers{
		Auth:       handler.NewAuthHandler(authService, stager, cookies),
		User:       handler.NewUserHandler(authService, stager),
		Category:   handler.NewCategoryHandler(service.NewCategoryService(categories, images), stager),
		Restaurant: handler.NewRestaurantHandler(service.NewRestaurantService(restaurants, images), stager),
		Food:       handler.NewFoodHandler(service.NewFoodService(foods, categories, restaurants, images), stager),
		Order:      handler.NewOrderHandler(service.NewOrderService(orders, foods)),
		Health:     handler.NewHealthHandler(db),
	}

	server := httptest.NewServer(router.New(cfg, middleware.NewAuthMiddleware(tokens, authService), h, prometheus.NewRegistry()))
	t.Cleanup(server.Close)

	return server, images
}

// newClient keeps cookies so login authenticates later requests.
func newClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
}

func doJSON(t *testing.T, client *http.Client, method string, url string, body any) (*http.Response, envelope) {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req, err := http.NewRequest(method, url, bytes.NewReader(payload))
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return doRequest(t, client, req)
}

func doMultipart(t *testing.T, client *http.Client, method string, url string, fields map[string]string, files ...string) (*http.Response, envelope) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, field := range files {
		part, err := writer.CreateFormFile(field, field+".png")
		require.NoError(t, err)
		require.NoError(t, png.Encode(part, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(method, url, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return doRequest(t, client, req)
}

func doRequest(t *testing.T, client *http.Client, req *http.Request) (*http.Response, envelope) {
	t.Helper()

	resp, err := client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.Equal(t, resp.StatusCode, env.StatusCode)
	return resp, env
}

func decodeData(t *testing.T, env envelope, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dst))
}
