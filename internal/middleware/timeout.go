package middleware

import (
	"net/http"
	"time"

	"food-delivery-api/internal/model"
)

// Timeout bounds handler run time. The timeout body is a failure envelope
// and the JSON content type is preset because http.TimeoutHandler would
// otherwise sniff it as text/plain.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	body, _, _ := model.NewFailure(http.StatusServiceUnavailable, "request timed out", nil).Encode()
	message := string(body)

	return func(next http.Handler) http.Handler {
		timed := http.TimeoutHandler(next, timeout, message)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			timed.ServeHTTP(w, r)
		})
	}
}
