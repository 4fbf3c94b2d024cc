package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"food-delivery-api/internal/config"
	"food-delivery-api/internal/model"
	"food-delivery-api/pkg/apierror"
)

const tokensNotGenerated = "access and refresh tokens were not generated"

type TokenService struct {
	accessSecret  []byte
	accessTTL     time.Duration
	refreshSecret []byte
	refreshTTL    time.Duration
	users         TokenStore
	now           func() time.Time
}

func NewTokenService(settings config.TokenSettings, users TokenStore) (*TokenService, error) {
	if settings.AccessSecret == "" || settings.RefreshSecret == "" {
		return nil, errors.New("token secrets cannot be empty")
	}
	if settings.AccessSecret == settings.RefreshSecret {
		return nil, errors.New("access and refresh secrets must differ")
	}
	if settings.AccessTTL <= 0 || settings.RefreshTTL <= 0 {
		return nil, errors.New("token lifetimes must be positive")
	}
	if users == nil {
		return nil, errors.New("token store is required")
	}

	return &TokenService{
		accessSecret:  []byte(settings.AccessSecret),
		accessTTL:     settings.AccessTTL,
		refreshSecret: []byte(settings.RefreshSecret),
		refreshTTL:    settings.RefreshTTL,
		users:         users,
		now:           time.Now,
	}, nil
}

func (s *TokenService) AccessTTL() time.Duration {
	return s.accessTTL
}

func (s *TokenService) RefreshTTL() time.Duration {
	return s.refreshTTL
}

func (s *TokenService) IssueAccessToken(userID string) (string, error) {
	return s.issue(userID, model.AccessToken)
}

func (s *TokenService) IssueRefreshToken(userID string) (string, error) {
	return s.issue(userID, model.RefreshToken)
}

// RotateAndPersist mints a fresh pair for userID and stores the refresh half
// on the principal, replacing whatever was there.
func (s *TokenService) RotateAndPersist(ctx context.Context, userID string) (model.TokenPair, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return model.TokenPair{}, apierror.Internal(tokensNotGenerated).Wrap(err)
	}

	accessToken, err := s.IssueAccessToken(user.ID)
	if err != nil {
		return model.TokenPair{}, apierror.Internal(tokensNotGenerated).Wrap(err)
	}

	refreshToken, err := s.IssueRefreshToken(user.ID)
	if err != nil {
		return model.TokenPair{}, apierror.Internal(tokensNotGenerated).Wrap(err)
	}

	if err := s.users.SetRefreshToken(ctx, user.ID, &refreshToken); err != nil {
		return model.TokenPair{}, apierror.Internal(tokensNotGenerated).Wrap(err)
	}

	return model.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Verify checks signature, expiry and token class. Every failure wraps
// model.ErrInvalidToken; the jwt cause stays in the chain.
func (s *TokenService) Verify(tokenString string, class model.TokenClass) (*model.AuthClaims, error) {
	secret, classErr := s.secretFor(class)
	if classErr != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidToken, classErr)
	}

	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidToken, err)
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("%w: unexpected claims", model.ErrInvalidToken)
	}

	typ, _ := claimsMap["typ"].(string)
	if model.TokenClass(typ) != class {
		return nil, fmt.Errorf("%w: token class %q, want %q", model.ErrInvalidToken, typ, class)
	}

	claims := &model.AuthClaims{Type: class}
	claims.UserID, _ = claimsMap["sub"].(string)
	claims.TokenID, _ = claimsMap["jti"].(string)
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing subject", model.ErrInvalidToken)
	}

	if iat, err := claimsMap.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := claimsMap.GetExpirationTime(); err == nil && exp != nil {
		claims.Expires = exp.Time
	}

	return claims, nil
}

func (s *TokenService) issue(userID string, class model.TokenClass) (string, error) {
	if userID == "" {
		return "", errors.New("user id cannot be empty")
	}

	secret, err := s.secretFor(class)
	if err != nil {
		return "", err
	}

	ttl := s.accessTTL
	if class == model.RefreshToken {
		ttl = s.refreshTTL
	}

	now := s.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"typ": string(class),
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})

	return token.SignedString(secret)
}

func (s *TokenService) secretFor(class model.TokenClass) ([]byte, error) {
	switch class {
	case model.AccessToken:
		return s.accessSecret, nil
	case model.RefreshToken:
		return s.refreshSecret, nil
	default:
		return nil, fmt.Errorf("unknown token class %q", class)
	}
}
