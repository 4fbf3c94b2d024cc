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

const (
	foodNotFound      = "food not found"
	defaultFoodRating = 1
	defaultFoodCount  = 5
)

// FoodInput is a parsed create request. Nil optional fields take defaults.
type FoodInput struct {
	Title        string
	Description  string
	Price        float64
	CategoryID   string
	RestaurantID string
	Code         string
	IsAvailable  *bool
	Rating       *float64
	CountRating  *int
	ImagePath    string
}

type FoodService struct {
	foods       FoodStore
	categories  CategoryStore
	restaurants RestaurantStore
	images      storage.ObjectStore
}

func NewFoodService(foods FoodStore, categories CategoryStore, restaurants RestaurantStore, images storage.ObjectStore) *FoodService {
	return &FoodService{
		foods:       foods,
		categories:  categories,
		restaurants: restaurants,
		images:      images,
	}
}

func (s *FoodService) Create(ctx context.Context, in FoodInput) (model.Food, error) {
	food := model.Food{
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Price:        in.Price,
		CategoryID:   strings.TrimSpace(in.CategoryID),
		RestaurantID: strings.TrimSpace(in.RestaurantID),
		Code:         strings.TrimSpace(in.Code),
		IsAvailable:  true,
		Rating:       defaultFoodRating,
		CountRating:  defaultFoodCount,
	}

	if food.Title == "" || food.Description == "" || food.CategoryID == "" || food.RestaurantID == "" || food.Code == "" {
		return model.Food{}, apierror.Validation("all fields are required")
	}
	if in.IsAvailable != nil {
		food.IsAvailable = *in.IsAvailable
	}
	if in.Rating != nil {
		food.Rating = *in.Rating
	}
	if in.CountRating != nil {
		food.CountRating = *in.CountRating
	}
	if err := validateFood(food); err != nil {
		return model.Food{}, err
	}

	if err := s.ensureReferences(ctx, food.CategoryID, food.RestaurantID); err != nil {
		return model.Food{}, err
	}

	if _, err := s.foods.FindByCode(ctx, food.Code); err == nil {
		return model.Food{}, apierror.Conflict("food with this code already exists")
	} else if !apierror.IsCode(err, apierror.CodeNotFound) {
		return model.Food{}, err
	}

	imageURL, err := uploadImage(ctx, s.images, in.ImagePath, "image is required", "image upload failed")
	if err != nil {
		return model.Food{}, err
	}

	now := time.Now().UTC()
	food.ID = uuid.NewString()
	food.ImageURL = imageURL
	food.CreatedAt = now
	food.UpdatedAt = now

	if err := s.foods.Create(ctx, food); err != nil {
		discardImage(ctx, s.images, imageURL, "food create")
		return model.Food{}, err
	}

	return food, nil
}

func (s *FoodService) List(ctx context.Context) (model.FoodList, error) {
	views, err := s.foods.ListViews(ctx)
	if err != nil {
		return model.FoodList{}, err
	}
	if len(views) == 0 {
		return model.FoodList{}, apierror.NotFound("no foods found")
	}

	return model.FoodList{TotalFoods: len(views), Data: views}, nil
}

func (s *FoodService) Get(ctx context.Context, code string) (model.FoodView, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return model.FoodView{}, apierror.Validation("code is required")
	}
	return s.foods.FindViewByCode(ctx, code)
}

func (s *FoodService) Update(ctx context.Context, code string, patch model.FoodPatch) (model.Food, error) {
	current, err := s.find(ctx, code)
	if err != nil {
		return model.Food{}, err
	}

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return model.Food{}, apierror.Validation("title cannot be empty")
	}

	categoryID, restaurantID := "", ""
	if patch.CategoryID != nil {
		categoryID = *patch.CategoryID
	}
	if patch.RestaurantID != nil {
		restaurantID = *patch.RestaurantID
	}
	if err := s.ensureReferences(ctx, categoryID, restaurantID); err != nil {
		return model.Food{}, err
	}

	next := patch.Apply(current)
	if err := validateFood(next); err != nil {
		return model.Food{}, err
	}

	return s.foods.Update(ctx, next)
}

func (s *FoodService) UpdateImage(ctx context.Context, code string, imagePath string) (model.Food, error) {
	current, err := s.find(ctx, code)
	if err != nil {
		return model.Food{}, err
	}

	imageURL, err := uploadImage(ctx, s.images, imagePath, "image is required", "image upload failed")
	if err != nil {
		return model.Food{}, err
	}

	updated, err := s.foods.UpdateImage(ctx, current.Code, imageURL)
	if err != nil {
		discardImage(ctx, s.images, imageURL, "food update")
		return model.Food{}, err
	}

	discardImage(ctx, s.images, current.ImageURL, "food "+current.Code)
	return updated, nil
}

func (s *FoodService) Delete(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return apierror.Validation("code is required")
	}

	deleted, err := s.foods.DeleteByCode(ctx, code)
	if err != nil {
		return err
	}

	discardImage(ctx, s.images, deleted.ImageURL, "food "+deleted.Code)
	return nil
}

func (s *FoodService) find(ctx context.Context, code string) (model.Food, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return model.Food{}, apierror.Validation("code is required")
	}
	return s.foods.FindByCode(ctx, code)
}

// ensureReferences checks the non-empty ids name existing records.
func (s *FoodService) ensureReferences(ctx context.Context, categoryID string, restaurantID string) error {
	if categoryID != "" {
		if err := checkID(categoryID, categoryNotFound); err != nil {
			return err
		}
		if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
			return err
		}
	}

	if restaurantID != "" {
		if err := checkID(restaurantID, restaurantNotFound); err != nil {
			return err
		}
		if _, err := s.restaurants.FindByID(ctx, restaurantID); err != nil {
			return err
		}
	}

	return nil
}

func validateFood(f model.Food) error {
	if !finite(f.Price) || !finite(f.Rating) {
		return apierror.Validation("price and rating must be finite numbers")
	}
	if f.Price < 0 {
		return apierror.Validation("price cannot be negative")
	}
	if f.Rating < 1 || f.Rating > 5 {
		return apierror.Validation("rating must be between 1 and 5")
	}
	if f.CountRating < 0 {
		return apierror.Validation("count rating cannot be negative")
	}
	return nil
}
