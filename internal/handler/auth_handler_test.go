package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"food-delivery-api/internal/middleware"
	"food-delivery-api/internal/model"
	"food-delivery-api/internal/service"
	"food-delivery-api/pkg/apierror"
)

var testCookies = CookieConfig{Secure: true, AccessTTL: 15 * time.Minute, RefreshTTL: 240 * time.Hour}

var testPrincipal = model.UserProjection{ID: "5b0b1f8e-6a43-4c39-9d59-2f7f0a1b3c11", Email: "ana@example.com", FullName: "Ana"}

func cookieByName(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestRegisterStagesAvatarAndCleansUp(t *testing.T) {
	t.Parallel()

	accounts := new(MockAccountService)
	stager := newTestStager(t)
	h := NewAuthHandler(accounts, stager, testCookies)

	accounts.On("Register", mock.Anything, mock.MatchedBy(func(in service.RegisterInput) bool {
		_, err := os.Stat(in.AvatarPath)
		return in.FullName == "Ana" && in.Email == "ana@example.com" && in.Password == "secret123" && err == nil
	})).Return(testPrincipal, nil)

	req := multipartRequest(t, http.MethodPost, "/api/v1/users/register", map[string]string{
		"fullName": " Ana ",
		"email":    "ana@example.com",
		"password": "secret123",
	}, "avatar")

	rec := serve(h.Register, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "User created successfully", env.Message)
	assert.NotContains(t, string(env.Data), "password")

	entries, err := os.ReadDir(stager.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
	accounts.AssertExpectations(t)
}

func TestRegisterWithoutAvatarDefersToService(t *testing.T) {
	t.Parallel()

	accounts := new(MockAccountService)
	h := NewAuthHandler(accounts, newTestStager(t), testCookies)

	accounts.On("Register", mock.Anything, mock.MatchedBy(func(in service.RegisterInput) bool {
		return in.AvatarPath == ""
	})).Return(model.UserProjection{}, apierror.Validation("avatar is required"))

	req := multipartRequest(t, http.MethodPost, "/api/v1/users/register", map[string]string{
		"fullName": "Ana",
		"email":    "ana@example.com",
		"password": "secret123",
	})

	rec := serve(h.Register, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "avatar is required", decodeEnvelope(t, rec).Message)
}

func TestLoginSetsCookiesOnlyOnSuccess(t *testing.T) {
	t.Parallel()

	accounts := new(MockAccountService)
	h := NewAuthHandler(accounts, newTestStager(t), testCookies)

	accounts.On("Login", mock.Anything, "ana@example.com", "secret123").Return(model.LoginResult{
		User:         testPrincipal,
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
	}, nil)
	accounts.On("Login", mock.Anything, "ana@example.com", "wrong").
		Return(model.LoginResult{}, apierror.Unauthorized("password is incorrect"))

	rec := serve(h.Login, jsonRequest(t, http.MethodPost, "/api/v1/users/login", model.LoginRequest{Email: "ana@example.com", Password: "secret123"}))

	require.Equal(t, http.StatusOK, rec.Code)
	access := cookieByName(rec, middleware.AccessTokenCookie)
	require.NotNil(t, access)
	assert.Equal(t, "access-1", access.Value)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, "/", access.Path)
	assert.Equal(t, int((15 * time.Minute).Seconds()), access.MaxAge)

	refresh := cookieByName(rec, refreshTokenCookie)
	require.NotNil(t, refresh)
	assert.Equal(t, int((240 * time.Hour).Seconds()), refresh.MaxAge)

	rec = serve(h.Login, jsonRequest(t, http.MethodPost, "/api/v1/users/login", model.LoginRequest{Email: "ana@example.com", Password: "wrong"}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestRefreshTokenPrefersCookie(t *testing.T) {
	t.Parallel()

	accounts := new(MockAccountService)
	h := NewAuthHandler(accounts, newTestStager(t), testCookies)
	pair := model.TokenPair{AccessToken: "access-2", RefreshToken: "refresh-2"}

	accounts.On("RefreshSession", mock.Anything, "from-cookie").Return(pair, nil).Once()
	accounts.On("RefreshSession", mock.Anything, "from-body").Return(pair, nil).Once()

	req := jsonRequest(t, http.MethodPost, "/api/v1/users/refresh-token", model.RefreshRequest{RefreshToken: "from-body"})
	req.AddCookie(&http.Cookie{Name: refreshTokenCookie, Value: "from-cookie"})
	rec := serve(h.RefreshToken, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "refresh-2", cookieByName(rec, refreshTokenCookie).Value)

	rec = serve(h.RefreshToken, jsonRequest(t, http.MethodPost, "/api/v1/users/refresh-token", model.RefreshRequest{RefreshToken: "from-body"}))
	require.Equal(t, http.StatusOK, rec.Code)

	accounts.AssertExpectations(t)
}

func TestRefreshTokenRejectedKeepsCookiesUntouched(t *testing.T) {
	t.Parallel()

	accounts := new(MockAccountService)
	h := NewAuthHandler(accounts, newTestStager(t), testCookies)
	accounts.On("RefreshSession", mock.Anything, "").
		Return(model.TokenPair{}, apierror.Unauthorized("refresh token is required"))

	rec := serve(h.RefreshToken, httptest.NewRequest(http.MethodPost, "/api/v1/users/refresh-token", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogoutClearsCookies(t *testing.T) {
	t.Parallel()

	accounts := new(MockAccountService)
	h := NewAuthHandler(accounts, newTestStager(t), testCookies)
	accounts.On("Logout", mock.Anything, testPrincipal.ID).Return(nil)

	rec := serve(h.Logout, withUser(httptest.NewRequest(http.MethodPost, "/api/v1/users/logout", nil), testPrincipal))

	require.Equal(t, http.StatusOK, rec.Code)
	for _, name := range []string{middleware.AccessTokenCookie, refreshTokenCookie} {
		cookie := cookieByName(rec, name)
		require.NotNil(t, cookie, name)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	}
}

func TestLogoutWithoutPrincipal(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(new(MockAccountService), newTestStager(t), testCookies)

	rec := serve(h.Logout, httptest.NewRequest(http.MethodPost, "/api/v1/users/logout", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
