package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"food-delivery-api/internal/model"
	"food-delivery-api/pkg/apierror"
)

const userColumns = `id, email, full_name, avatar, password_hash, refresh_token, created_at, updated_at`

const (
	userNotFound    = "user not found"
	userEmailExists = "user already exists with this email"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.Avatar, &u.PasswordHash, &u.RefreshToken, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return model.User{}, classify(err, "find user by id", userNotFound, userEmailExists)
	}
	return u, nil
}

// FindProjectionByID loads only the public columns; password hash and
// refresh token are never read.
func (r *UserRepository) FindProjectionByID(ctx context.Context, id string) (model.UserProjection, error) {
	var p model.UserProjection
	err := r.db.QueryRow(ctx,
		`SELECT id, email, full_name, avatar, created_at, updated_at FROM users WHERE id = $1`, id).
		Scan(&p.ID, &p.Email, &p.FullName, &p.Avatar, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return model.UserProjection{}, classify(err, "find user projection", userNotFound, userEmailExists)
	}
	return p, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, strings.TrimSpace(email)))
	if err != nil {
		return model.User{}, classify(err, "find user by email", userNotFound, userEmailExists)
	}
	return u, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1))`,
		strings.TrimSpace(email)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) Create(ctx context.Context, u model.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, full_name, avatar, password_hash, refresh_token, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.Email, u.FullName, u.Avatar, u.PasswordHash, u.RefreshToken, u.CreatedAt, u.UpdatedAt)
	return classify(err, "create user", userNotFound, userEmailExists)
}

func (r *UserRepository) UpdateDetails(ctx context.Context, id string, fullName string, email string) (model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`UPDATE users SET full_name = $2, email = $3, updated_at = $4 WHERE id = $1
		 RETURNING `+userColumns,
		id, fullName, email, time.Now().UTC()))
	if err != nil {
		return model.User{}, classify(err, "update user details", userNotFound, userEmailExists)
	}
	return u, nil
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, id string, avatar string) (model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`UPDATE users SET avatar = $2, updated_at = $3 WHERE id = $1
		 RETURNING `+userColumns,
		id, avatar, time.Now().UTC()))
	if err != nil {
		return model.User{}, classify(err, "update avatar", userNotFound, userEmailExists)
	}
	return u, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = $3 WHERE id = $1`,
		id, passwordHash, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.NotFound(userNotFound)
	}
	return nil
}

// SetRefreshToken overwrites the single live refresh token; nil clears it.
func (r *UserRepository) SetRefreshToken(ctx context.Context, id string, token *string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET refresh_token = $2, updated_at = $3 WHERE id = $1`,
		id, token, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("set refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.NotFound(userNotFound)
	}
	return nil
}
