package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"food-delivery-api/internal/config"
	"food-delivery-api/internal/database"
	"food-delivery-api/internal/handler"
	"food-delivery-api/internal/middleware"
	"food-delivery-api/internal/repository"
	"food-delivery-api/internal/router"
	"food-delivery-api/internal/service"
	"food-delivery-api/internal/storage"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	server       *http.Server
	db           *database.DB
	cleanupFuncs []func()
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	slog.Info("connecting to PostgreSQL")
	db, err := database.New(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	pool := db.Pool
	userRepo := repository.NewUserRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	restaurantRepo := repository.NewRestaurantRepository(pool)
	foodRepo := repository.NewFoodRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	slog.Info("database ready")

	images, err := storage.NewS3Store(ctx, storage.S3Config{
		Endpoint:      cfg.S3Endpoint,
		Region:        cfg.S3Region,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		Bucket:        cfg.S3Bucket,
		PublicBaseURL: cfg.S3PublicBaseURL,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize object store: %w", err)
	}

	stager, err := storage.NewStager(cfg.UploadTempDir, cfg.MaxUploadSize)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize upload staging: %w", err)
	}

	tokens, err := service.NewTokenService(cfg.TokenSettings(), userRepo)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	authService := service.NewAuthService(userRepo, tokens, service.NewPasswordHasher(service.DefaultBcryptCost), images)
	categoryService := service.NewCategoryService(categoryRepo, images)
	restaurantService := service.NewRestaurantService(restaurantRepo, images)
	foodService := service.NewFoodService(foodRepo, categoryRepo, restaurantRepo, images)
	orderService := service.NewOrderService(orderRepo, foodRepo)

	cookies := handler.CookieConfig{
		Secure:     cfg.CookieSecure,
		AccessTTL:  tokens.AccessTTL(),
		RefreshTTL: tokens.RefreshTTL(),
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	authMiddleware := middleware.NewAuthMiddleware(tokens, authService)
	appRouter := router.New(cfg, authMiddleware, router.Handlers{
		Auth:       handler.NewAuthHandler(authService, stager, cookies),
		User:       handler.NewUserHandler(authService, stager),
		Category:   handler.NewCategoryHandler(categoryService, stager),
		Restaurant: handler.NewRestaurantHandler(restaurantService, stager),
		Food:       handler.NewFoodHandler(foodService, stager),
		Order:      handler.NewOrderHandler(orderService),
		Health:     handler.NewHealthHandler(db),
	}, registry)

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{
		server: server,
		db:     db,
		cleanupFuncs: []func(){
			db.Close,
		},
	}, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		a.cleanup()
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := a.server.Shutdown(shutdownCtx)
	a.cleanup()
	if err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func (a *App) cleanup() {
	for _, fn := range a.cleanupFuncs {
		fn()
	}
}
