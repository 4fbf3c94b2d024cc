package handler

import (
	"context"
	"net/http"

	"food-delivery-api/internal/middleware"
	"food-delivery-api/internal/model"
	"food-delivery-api/internal/service"
	"food-delivery-api/pkg/apierror"
)

type accountService interface {
	Register(ctx context.Context, in service.RegisterInput) (model.UserProjection, error)
	Login(ctx context.Context, email string, password string) (model.LoginResult, error)
	RefreshSession(ctx context.Context, refreshToken string) (model.TokenPair, error)
	Logout(ctx context.Context, userID string) error
	UpdatePassword(ctx context.Context, userID string, current string, next string) error
	UpdateDetails(ctx context.Context, userID string, fullName string, email string) (model.UserProjection, error)
	UpdateAvatar(ctx context.Context, userID string, avatarPath string) (model.UserProjection, error)
}

// AuthHandler serves the unauthenticated half of /users plus logout.
type AuthHandler struct {
	accounts accountService
	stager   stager
	cookies  CookieConfig
}

func NewAuthHandler(accounts accountService, stager stager, cookies CookieConfig) *AuthHandler {
	return &AuthHandler{accounts: accounts, stager: stager, cookies: cookies}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) error {
	if err := parseMultipart(r); err != nil {
		return err
	}
	defer cleanupMultipart(r)

	avatarPath, err := stageFile(h.stager, r, "avatar")
	if err != nil {
		return err
	}
	defer h.stager.Discard(avatarPath)

	user, err := h.accounts.Register(r.Context(), service.RegisterInput{
		FullName:   formValue(r, "fullName"),
		Email:      formValue(r, "email"),
		Password:   r.FormValue("password"),
		AvatarPath: avatarPath,
	})
	if err != nil {
		return err
	}

	writeSuccess(w, http.StatusCreated, user, "User created successfully")
	return nil
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) error {
	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	result, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.cookies.setSession(w, model.TokenPair{AccessToken: result.AccessToken, RefreshToken: result.RefreshToken})
	writeSuccess(w, http.StatusOK, result, "Login successful")
	return nil
}

// RefreshToken prefers the refreshToken cookie and falls back to the JSON body.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) error {
	token := ""
	if cookie, err := r.Cookie(refreshTokenCookie); err == nil {
		token = cookie.Value
	}

	if token == "" && r.ContentLength != 0 {
		var req model.RefreshRequest
		if err := decodeJSON(r, &req); err != nil {
			return err
		}
		token = req.RefreshToken
	}

	pair, err := h.accounts.RefreshSession(r.Context(), token)
	if err != nil {
		return err
	}

	h.cookies.setSession(w, pair)
	writeSuccess(w, http.StatusOK, pair, "Access token refreshed")
	return nil
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}

	if err := h.accounts.Logout(r.Context(), user.ID); err != nil {
		return err
	}

	h.cookies.clearSession(w)
	writeSuccess(w, http.StatusOK, nil, "User logged out")
	return nil
}

func currentUser(r *http.Request) (*model.UserProjection, error) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		return nil, apierror.Unauthorized("unauthorized: user not found in request")
	}
	return user, nil
}
