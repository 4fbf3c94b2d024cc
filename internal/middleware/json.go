package middleware

import (
	"log/slog"
	"net/http"

	"food-delivery-api/internal/model"
)

// writeFailure answers with a failure envelope. Middleware cannot reach the
// handler package, so it keeps its own writer.
func writeFailure(w http.ResponseWriter, status int, message string) {
	body, code, err := model.NewFailure(status, message, nil).Encode()
	if err != nil {
		slog.Error("failed to encode failure envelope", "status", status, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}
