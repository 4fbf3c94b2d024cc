package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"food-delivery-api/internal/model"
	"food-delivery-api/internal/service"
)

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, in service.RegisterInput) (model.UserProjection, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.UserProjection), args.Error(1)
}

func (m *MockAccountService) Login(ctx context.Context, email string, password string) (model.LoginResult, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.LoginResult), args.Error(1)
}

func (m *MockAccountService) RefreshSession(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	return args.Get(0).(model.TokenPair), args.Error(1)
}

func (m *MockAccountService) Logout(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockAccountService) UpdatePassword(ctx context.Context, userID string, current string, next string) error {
	return m.Called(ctx, userID, current, next).Error(0)
}

func (m *MockAccountService) UpdateDetails(ctx context.Context, userID string, fullName string, email string) (model.UserProjection, error) {
	args := m.Called(ctx, userID, fullName, email)
	return args.Get(0).(model.UserProjection), args.Error(1)
}

func (m *MockAccountService) UpdateAvatar(ctx context.Context, userID string, avatarPath string) (model.UserProjection, error) {
	args := m.Called(ctx, userID, avatarPath)
	return args.Get(0).(model.UserProjection), args.Error(1)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) Create(ctx context.Context, title string, imagePath string) (model.Category, error) {
	args := m.Called(ctx, title, imagePath)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *MockCategoryService) List(ctx context.Context) (model.CategoryList, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.CategoryList), args.Error(1)
}

func (m *MockCategoryService) UpdateImage(ctx context.Context, id string, imagePath string) (model.Category, error) {
	args := m.Called(ctx, id, imagePath)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *MockCategoryService) UpdateTitle(ctx context.Context, id string, title string) (model.Category, error) {
	args := m.Called(ctx, id, title)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockRestaurantService struct {
	mock.Mock
}

func (m *MockRestaurantService) Create(ctx context.Context, in service.RestaurantInput) (model.Restaurant, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) List(ctx context.Context) (model.RestaurantList, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.RestaurantList), args.Error(1)
}

func (m *MockRestaurantService) Get(ctx context.Context, id string) (model.Restaurant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockFoodService struct {
	mock.Mock
}

func (m *MockFoodService) Create(ctx context.Context, in service.FoodInput) (model.Food, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.Food), args.Error(1)
}

func (m *MockFoodService) List(ctx context.Context) (model.FoodList, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.FoodList), args.Error(1)
}

func (m *MockFoodService) Get(ctx context.Context, code string) (model.FoodView, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(model.FoodView), args.Error(1)
}

func (m *MockFoodService) Update(ctx context.Context, code string, patch model.FoodPatch) (model.Food, error) {
	args := m.Called(ctx, code, patch)
	return args.Get(0).(model.Food), args.Error(1)
}

func (m *MockFoodService) UpdateImage(ctx context.Context, code string, imagePath string) (model.Food, error) {
	args := m.Called(ctx, code, imagePath)
	return args.Get(0).(model.Food), args.Error(1)
}

func (m *MockFoodService) Delete(ctx context.Context, code string) error {
	return m.Called(ctx, code).Error(0)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Place(ctx context.Context, buyerID string, req model.PlaceOrderRequest) (model.Order, error) {
	args := m.Called(ctx, buyerID, req)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockOrderService) ListMine(ctx context.Context, buyerID string) ([]model.Order, error) {
	args := m.Called(ctx, buyerID)
	return args.Get(0).([]model.Order), args.Error(1)
}
