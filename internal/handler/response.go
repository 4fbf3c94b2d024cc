package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"food-delivery-api/internal/model"
	"food-delivery-api/pkg/apierror"
)

// HandlerFunc is an http handler that reports failure by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts fn to http.HandlerFunc. Every returned error is rendered by
// writeError, so handlers never write failure envelopes themselves.
func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			writeError(w, r, err)
		}
	}
}

func writeSuccess(w http.ResponseWriter, status int, data any, message string) {
	writeEnvelope(w, model.NewSuccess(status, data, message))
}

func writeEnvelope(w http.ResponseWriter, resp model.APIResponse) {
	body, status, err := resp.Encode()
	if err != nil {
		slog.Error("failed to encode response", "status", resp.StatusCode, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"
	var fieldErrors []apierror.FieldError

	var maxBytesErr *http.MaxBytesError
	if apiErr, ok := apierror.As(err); ok {
		status = apiErr.HTTPStatus
		message = apiErr.Message
		fieldErrors = apiErr.Errors
		if status >= http.StatusInternalServerError {
			slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		}
	} else if errors.As(err, &maxBytesErr) {
		status = http.StatusBadRequest
		message = "request body too large"
	} else if errors.Is(err, model.ErrInvalidToken) {
		status = http.StatusUnauthorized
		message = "invalid or expired token"
	} else {
		slog.Error("unhandled error in writeError", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	writeEnvelope(w, model.NewFailure(status, message, fieldErrors))
}

func NotFound(_ http.ResponseWriter, _ *http.Request) error {
	return apierror.NotFound("route not found")
}

func MethodNotAllowed(_ http.ResponseWriter, _ *http.Request) error {
	return apierror.New("METHOD_NOT_ALLOWED", "method not allowed", http.StatusMethodNotAllowed)
}
