package service

import (
	"context"

	"food-delivery-api/internal/model"
)

// The interfaces below are satisfied by the repository package. They are
// declared here so services can be tested with in-memory mocks.

type UserStore interface {
	FindByID(ctx context.Context, id string) (model.User, error)
	FindProjectionByID(ctx context.Context, id string) (model.UserProjection, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u model.User) error
	UpdateDetails(ctx context.Context, id string, fullName string, email string) (model.User, error)
	UpdateAvatar(ctx context.Context, id string, avatar string) (model.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	SetRefreshToken(ctx context.Context, id string, token *string) error
}

// TokenStore is the part of UserStore the token service needs.
type TokenStore interface {
	FindByID(ctx context.Context, id string) (model.User, error)
	SetRefreshToken(ctx context.Context, id string, token *string) error
}

type CategoryStore interface {
	Create(ctx context.Context, c model.Category) error
	FindByID(ctx context.Context, id string) (model.Category, error)
	FindByTitle(ctx context.Context, title string) (model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	UpdateImage(ctx context.Context, id string, imageURL string) (model.Category, error)
	UpdateTitle(ctx context.Context, id string, title string) (model.Category, error)
	Delete(ctx context.Context, id string) (model.Category, error)
}

type RestaurantStore interface {
	Create(ctx context.Context, r model.Restaurant) error
	FindByID(ctx context.Context, id string) (model.Restaurant, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	List(ctx context.Context) ([]model.Restaurant, error)
	Delete(ctx context.Context, id string) (model.Restaurant, error)
}

type FoodStore interface {
	Create(ctx context.Context, f model.Food) error
	FindByCode(ctx context.Context, code string) (model.Food, error)
	FindViewByCode(ctx context.Context, code string) (model.FoodView, error)
	ListViews(ctx context.Context) ([]model.FoodView, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.Food, error)
	Update(ctx context.Context, f model.Food) (model.Food, error)
	UpdateImage(ctx context.Context, code string, imageURL string) (model.Food, error)
	DeleteByCode(ctx context.Context, code string) (model.Food, error)
}

type OrderStore interface {
	Create(ctx context.Context, o model.Order) error
	ListByBuyer(ctx context.Context, buyerID string) ([]model.Order, error)
}
