package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"food-delivery-api/internal/model"
	"food-delivery-api/internal/storage"
	"food-delivery-api/pkg/apierror"
)

type RegisterInput struct {
	FullName   string
	Email      string
	Password   string
	AvatarPath string
}

type AuthService struct {
	users  UserStore
	tokens *TokenService
	hasher PasswordHasher
	images storage.ObjectStore
}

func NewAuthService(users UserStore, tokens *TokenService, hasher PasswordHasher, images storage.ObjectStore) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		images: images,
	}
}

func (s *AuthService) Tokens() *TokenService {
	return s.tokens
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (model.UserProjection, error) {
	fullName := strings.TrimSpace(in.FullName)
	email := strings.TrimSpace(in.Email)

	if fullName == "" || email == "" || strings.TrimSpace(in.Password) == "" {
		return model.UserProjection{}, apierror.Validation("all fields are required")
	}
	if !strings.Contains(email, "@") {
		return model.UserProjection{}, apierror.Validation("email is not valid")
	}
	if err := checkPasswordLength(in.Password); err != nil {
		return model.UserProjection{}, err
	}

	email = strings.ToLower(email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return model.UserProjection{}, err
	}
	if exists {
		return model.UserProjection{}, apierror.Conflict("user already exists with this email")
	}

	avatar, err := uploadImage(ctx, s.images, in.AvatarPath, "avatar is required", "failed to upload avatar")
	if err != nil {
		return model.UserProjection{}, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		discardImage(ctx, s.images, avatar, "register")
		return model.UserProjection{}, err
	}

	now := time.Now().UTC()
	user := model.User{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     fullName,
		Avatar:       avatar,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		discardImage(ctx, s.images, avatar, "register")
		if _, ok := apierror.As(err); ok {
			return model.UserProjection{}, err
		}
		return model.UserProjection{}, apierror.Internal("user creation failed").Wrap(err)
	}

	return user.Projection(), nil
}

// Login never rotates tokens unless the password matched.
func (s *AuthService) Login(ctx context.Context, email string, password string) (model.LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return model.LoginResult{}, apierror.Validation("email is required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return model.LoginResult{}, err
	}

	if !s.hasher.Matches(user.PasswordHash, password) {
		return model.LoginResult{}, apierror.Unauthorized("password is incorrect")
	}

	pair, err := s.tokens.RotateAndPersist(ctx, user.ID)
	if err != nil {
		return model.LoginResult{}, err
	}

	return model.LoginResult{
		User:         user.Projection(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// RefreshSession exchanges the live refresh token for a new pair. A token
// that verifies but no longer matches the stored one has already been used.
func (s *AuthService) RefreshSession(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return model.TokenPair{}, apierror.Unauthorized("refresh token is required")
	}

	claims, err := s.tokens.Verify(refreshToken, model.RefreshToken)
	if err != nil {
		return model.TokenPair{}, apierror.Unauthorized("invalid refresh token").Wrap(err)
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if apierror.IsCode(err, apierror.CodeNotFound) {
			return model.TokenPair{}, apierror.Unauthorized("invalid refresh token").Wrap(err)
		}
		return model.TokenPair{}, err
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return model.TokenPair{}, apierror.Unauthorized("refresh token is expired or used")
	}

	return s.tokens.RotateAndPersist(ctx, user.ID)
}

func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.users.SetRefreshToken(ctx, userID, nil)
}

// UpdatePassword leaves existing sessions alone.
func (s *AuthService) UpdatePassword(ctx context.Context, userID string, current string, next string) error {
	if current == "" || next == "" {
		return apierror.Validation("current password and new password are required")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !s.hasher.Matches(user.PasswordHash, current) {
		return apierror.Unauthorized("current password is incorrect")
	}

	hash, err := s.hasher.Hash(next)
	if err != nil {
		return err
	}

	return s.users.UpdatePassword(ctx, user.ID, hash)
}

func (s *AuthService) UpdateDetails(ctx context.Context, userID string, fullName string, email string) (model.UserProjection, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)

	if fullName == "" || email == "" {
		return model.UserProjection{}, apierror.Validation("all fields are required")
	}
	if !strings.Contains(email, "@") {
		return model.UserProjection{}, apierror.Validation("invalid email address")
	}

	user, err := s.users.UpdateDetails(ctx, userID, fullName, strings.ToLower(email))
	if err != nil {
		return model.UserProjection{}, err
	}

	return user.Projection(), nil
}

func (s *AuthService) UpdateAvatar(ctx context.Context, userID string, avatarPath string) (model.UserProjection, error) {
	if strings.TrimSpace(avatarPath) == "" {
		return model.UserProjection{}, apierror.Validation("avatar is required")
	}

	current, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return model.UserProjection{}, err
	}

	avatar, err := uploadImage(ctx, s.images, avatarPath, "avatar is required", "failed to upload avatar")
	if err != nil {
		return model.UserProjection{}, err
	}

	updated, err := s.users.UpdateAvatar(ctx, current.ID, avatar)
	if err != nil {
		discardImage(ctx, s.images, avatar, "update-avatar")
		return model.UserProjection{}, err
	}

	if current.Avatar != avatar {
		discardImage(ctx, s.images, current.Avatar, "user "+current.ID)
	}

	return updated.Projection(), nil
}

// Principal reloads the public view of userID.
func (s *AuthService) Principal(ctx context.Context, userID string) (model.UserProjection, error) {
	return s.users.FindProjectionByID(ctx, userID)
}
