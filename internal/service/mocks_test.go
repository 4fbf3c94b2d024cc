package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"food-delivery-api/internal/model"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) FindByID(ctx context.Context, id string) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) FindProjectionByID(ctx context.Context, id string) (model.UserProjection, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.UserProjection), args.Error(1)
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) Create(ctx context.Context, u model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserStore) UpdateDetails(ctx context.Context, id string, fullName string, email string) (model.User, error) {
	args := m.Called(ctx, id, fullName, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) UpdateAvatar(ctx context.Context, id string, avatar string) (model.User, error) {
	args := m.Called(ctx, id, avatar)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserStore) SetRefreshToken(ctx context.Context, id string, token *string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

type MockCategoryStore struct {
	mock.Mock
}

func (m *MockCategoryStore) Create(ctx context.Context, c model.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryStore) FindByID(ctx context.Context, id string) (model.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *MockCategoryStore) FindByTitle(ctx context.Context, title string) (model.Category, error) {
	args := m.Called(ctx, title)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *MockCategoryStore) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryStore) UpdateImage(ctx context.Context, id string, imageURL string) (model.Category, error) {
	args := m.Called(ctx, id, imageURL)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *MockCategoryStore) UpdateTitle(ctx context.Context, id string, title string) (model.Category, error) {
	args := m.Called(ctx, id, title)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *MockCategoryStore) Delete(ctx context.Context, id string) (model.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Category), args.Error(1)
}

type MockRestaurantStore struct {
	mock.Mock
}

func (m *MockRestaurantStore) Create(ctx context.Context, r model.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRestaurantStore) FindByID(ctx context.Context, id string) (model.Restaurant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Restaurant), args.Error(1)
}

func (m *MockRestaurantStore) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	args := m.Called(ctx, title)
	return args.Bool(0), args.Error(1)
}

func (m *MockRestaurantStore) List(ctx context.Context) ([]model.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Restaurant), args.Error(1)
}

func (m *MockRestaurantStore) Delete(ctx context.Context, id string) (model.Restaurant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Restaurant), args.Error(1)
}

type MockFoodStore struct {
	mock.Mock
}

func (m *MockFoodStore) Create(ctx context.Context, f model.Food) error {
	return m.Called(ctx, f).Error(0)
}

func (m *MockFoodStore) FindByCode(ctx context.Context, code string) (model.Food, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(model.Food), args.Error(1)
}

func (m *MockFoodStore) FindViewByCode(ctx context.Context, code string) (model.FoodView, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(model.FoodView), args.Error(1)
}

func (m *MockFoodStore) ListViews(ctx context.Context) ([]model.FoodView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodView), args.Error(1)
}

func (m *MockFoodStore) FindByIDs(ctx context.Context, ids []string) ([]model.Food, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Food), args.Error(1)
}

func (m *MockFoodStore) Update(ctx context.Context, f model.Food) (model.Food, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(model.Food), args.Error(1)
}

func (m *MockFoodStore) UpdateImage(ctx context.Context, code string, imageURL string) (model.Food, error) {
	args := m.Called(ctx, code, imageURL)
	return args.Get(0).(model.Food), args.Error(1)
}

func (m *MockFoodStore) DeleteByCode(ctx context.Context, code string) (model.Food, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(model.Food), args.Error(1)
}

type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) Create(ctx context.Context, o model.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderStore) ListByBuyer(ctx context.Context, buyerID string) ([]model.Order, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}
