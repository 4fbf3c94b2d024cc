package handler

import (
	"context"
	"net/http"
	"time"

	"food-delivery-api/pkg/apierror"
)

type healthChecker interface {
	Health(ctx context.Context) error
}

type HealthHandler struct {
	db healthChecker
}

func NewHealthHandler(db healthChecker) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Ping(w http.ResponseWriter, _ *http.Request) error {
	writeSuccess(w, http.StatusOK, "pong", "pong")
	return nil
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Health(ctx); err != nil {
		return apierror.New(apierror.CodeInternal, "database unavailable", http.StatusServiceUnavailable).Wrap(err)
	}

	writeSuccess(w, http.StatusOK, map[string]string{"database": "ok"}, "healthy")
	return nil
}
