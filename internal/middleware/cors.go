package middleware

import (
	"net/http"
	"slices"

	"github.com/rs/cors"
)

// CORS allows credentialed requests, so a wildcard is served by echoing the
// request origin rather than "*".
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	options := cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Length", "X-Request-ID"},
		MaxAge:           3600,
		AllowCredentials: true,
	}

	if slices.Contains(origins, "*") {
		options.AllowedOrigins = nil
		options.AllowOriginFunc = func(string) bool { return true }
	}

	return cors.New(options).Handler
}
