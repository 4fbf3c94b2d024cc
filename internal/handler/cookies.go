package handler

import (
	"net/http"
	"time"

	"food-delivery-api/internal/middleware"
	"food-delivery-api/internal/model"
)

const refreshTokenCookie = "refreshToken"

type CookieConfig struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func (c CookieConfig) setSession(w http.ResponseWriter, pair model.TokenPair) {
	http.SetCookie(w, c.cookie(middleware.AccessTokenCookie, pair.AccessToken, c.AccessTTL))
	http.SetCookie(w, c.cookie(refreshTokenCookie, pair.RefreshToken, c.RefreshTTL))
}

func (c CookieConfig) clearSession(w http.ResponseWriter) {
	for _, name := range []string{middleware.AccessTokenCookie, refreshTokenCookie} {
		cookie := c.cookie(name, "", 0)
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
		http.SetCookie(w, cookie)
	}
}

func (c CookieConfig) cookie(name string, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
