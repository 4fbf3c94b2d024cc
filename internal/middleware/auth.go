package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"food-delivery-api/internal/model"
	"food-delivery-api/pkg/apierror"
)

const AccessTokenCookie = "accessToken"

type tokenVerifier interface {
	Verify(tokenString string, class model.TokenClass) (*model.AuthClaims, error)
}

type principalLoader interface {
	Principal(ctx context.Context, userID string) (model.UserProjection, error)
}

type contextKey string

const userContextKey contextKey = "auth_user"

type AuthMiddleware struct {
	verifier   tokenVerifier
	principals principalLoader
}

func NewAuthMiddleware(verifier tokenVerifier, principals principalLoader) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, principals: principals}
}

// RequireAuth admits a request only with a valid access token whose subject
// still exists. The principal is attached to the request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractAccessToken(r)
		if token == "" {
			writeFailure(w, http.StatusUnauthorized, "access token is required")
			return
		}

		claims, err := m.verifier.Verify(token, model.AccessToken)
		if err != nil {
			writeFailure(w, http.StatusUnauthorized, "invalid or expired access token")
			return
		}

		user, err := m.principals.Principal(r.Context(), claims.UserID)
		if err != nil {
			if apierror.IsCode(err, apierror.CodeNotFound) {
				writeFailure(w, http.StatusUnauthorized, "user not found")
				return
			}
			slog.Error("auth principal lookup failed", "user_id", claims.UserID, "error", err)
			writeFailure(w, http.StatusInternalServerError, "internal server error")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, &user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func UserFromContext(ctx context.Context) (*model.UserProjection, bool) {
	user, ok := ctx.Value(userContextKey).(*model.UserProjection)
	return user, ok && user != nil
}

// WithUser returns ctx carrying user, as RequireAuth would leave it.
func WithUser(ctx context.Context, user *model.UserProjection) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func extractAccessToken(r *http.Request) string {
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil {
		if value := strings.TrimSpace(cookie.Value); value != "" {
			return value
		}
	}

	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}

	return ""
}
