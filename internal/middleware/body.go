package middleware

import (
	"mime"
	"net/http"
)

// MaxBodySize caps request bodies: multipart uploads get uploadLimit,
// everything else jsonLimit. Reads past the cap fail, which handlers
// surface as a 400 decode error.
func MaxBodySize(jsonLimit int64, uploadLimit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.Body != http.NoBody {
				limit := jsonLimit
				if isMultipart(r) {
					// Leave room for the multipart framing and text fields.
					limit = uploadLimit*2 + 1<<20
				}
				if limit > 0 {
					r.Body = http.MaxBytesReader(w, r.Body, limit)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}
