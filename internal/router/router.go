package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"food-delivery-api/internal/config"
	"food-delivery-api/internal/handler"
	"food-delivery-api/internal/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Category   *handler.CategoryHandler
	Restaurant *handler.RestaurantHandler
	Food       *handler.FoodHandler
	Order      *handler.OrderHandler
	Health     *handler.HealthHandler
}

func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	h Handlers,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)
	metrics := middleware.NewMetrics(registry)
	guard := authMiddleware.RequireAuth

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(metrics.Handler)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/ping", handler.Handle(h.Health.Ping))
	r.Get("/health", handler.Handle(h.Health.Health))
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	if cfg.StaticDir != "" {
		r.Handle("/static/*", staticHandler(cfg.StaticDir))
	}

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))
		api.Use(middleware.MaxBodySize(cfg.MaxJSONBody, cfg.MaxUploadSize))

		api.Route("/users", func(users chi.Router) {
			users.Post("/register", handler.Handle(h.Auth.Register))
			users.Post("/login", handler.Handle(h.Auth.Login))
			users.Post("/refresh-token", handler.Handle(h.Auth.RefreshToken))
			users.With(guard).Post("/logout", handler.Handle(h.Auth.Logout))
			users.With(guard).Get("/me", handler.Handle(h.User.Me))
			users.With(guard).Patch("/update", handler.Handle(h.User.Update))
			users.With(guard).Patch("/update-avatar", handler.Handle(h.User.UpdateAvatar))
			users.With(guard).Patch("/update-password", handler.Handle(h.User.UpdatePassword))
		})

		api.Route("/categories", func(categories chi.Router) {
			categories.Get("/getAll", handler.Handle(h.Category.List))
			categories.With(guard).Post("/create", handler.Handle(h.Category.Create))
			categories.With(guard).Patch("/updateImage/{categoryId}", handler.Handle(h.Category.UpdateImage))
			categories.With(guard).Patch("/updateTitle/{categoryId}", handler.Handle(h.Category.UpdateTitle))
			categories.With(guard).Delete("/delete/{categoryId}", handler.Handle(h.Category.Delete))
		})

		api.Route("/restaurants", func(restaurants chi.Router) {
			restaurants.Post("/create", handler.Handle(h.Restaurant.Create))
			restaurants.Get("/getAll", handler.Handle(h.Restaurant.List))
			restaurants.Get("/get/{id}", handler.Handle(h.Restaurant.Get))
			restaurants.Delete("/delete/{id}", handler.Handle(h.Restaurant.Delete))
		})

		api.Route("/foods", func(foods chi.Router) {
			foods.Use(guard)
			foods.Post("/create", handler.Handle(h.Food.Create))
			foods.Get("/getAll", handler.Handle(h.Food.List))
			foods.Get("/getFoodById/{code}", handler.Handle(h.Food.Get))
			foods.Put("/updateFoodItem/{code}", handler.Handle(h.Food.Update))
			foods.Put("/updateFoodImage/{code}", handler.Handle(h.Food.UpdateImage))
			foods.Delete("/deleteFoodItem/{code}", handler.Handle(h.Food.Delete))
		})

		api.Route("/orders", func(orders chi.Router) {
			orders.Use(guard)
			orders.Post("/placeOrder", handler.Handle(h.Order.Place))
			orders.Get("/my", handler.Handle(h.Order.ListMine))
		})
	})

	r.NotFound(handler.Handle(handler.NotFound))
	r.MethodNotAllowed(handler.Handle(handler.MethodNotAllowed))

	return r
}
