package model

import "time"

// User is the stored principal. Secrets never leave the process: both
// PasswordHash and RefreshToken are excluded from JSON.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	Avatar       string    `json:"avatar"`
	PasswordHash string    `json:"-"`
	RefreshToken *string   `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserProjection is the outward view of a principal.
type UserProjection struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u User) Projection() UserProjection {
	return UserProjection{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type TokenClass string

const (
	AccessToken  TokenClass = "access"
	RefreshToken TokenClass = "refresh"
)

type AuthClaims struct {
	UserID   string     `json:"sub"`
	Type     TokenClass `json:"typ"`
	TokenID  string     `json:"jti"`
	IssuedAt time.Time  `json:"iat"`
	Expires  time.Time  `json:"exp"`
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type LoginResult struct {
	User         UserProjection `json:"user"`
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
}
