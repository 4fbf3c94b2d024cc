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

const restaurantNotFound = "restaurant not found"

type RestaurantInput struct {
	Title       string
	Description string
	Delivery    bool
	Rating      float64
	CountRating int
	ImagePath   string
	LogoPath    string
}

type RestaurantService struct {
	restaurants RestaurantStore
	images      storage.ObjectStore
}

func NewRestaurantService(restaurants RestaurantStore, images storage.ObjectStore) *RestaurantService {
	return &RestaurantService{restaurants: restaurants, images: images}
}

func (s *RestaurantService) Create(ctx context.Context, in RestaurantInput) (model.Restaurant, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if title == "" || description == "" {
		return model.Restaurant{}, apierror.Validation("all fields are required")
	}

	rating := in.Rating
	if rating == 0 {
		rating = 1
	}
	if !finite(rating) || rating < 1 || rating > 5 {
		return model.Restaurant{}, apierror.Validation("rating must be between 1 and 5")
	}
	if in.CountRating < 0 {
		return model.Restaurant{}, apierror.Validation("count rating cannot be negative")
	}

	exists, err := s.restaurants.ExistsByTitle(ctx, title)
	if err != nil {
		return model.Restaurant{}, err
	}
	if exists {
		return model.Restaurant{}, apierror.Conflict("restaurant with this title already exists")
	}

	if strings.TrimSpace(in.ImagePath) == "" || strings.TrimSpace(in.LogoPath) == "" {
		return model.Restaurant{}, apierror.Validation("image and logo are required")
	}

	imageURL, err := uploadImage(ctx, s.images, in.ImagePath, "image and logo are required", "failed to upload images")
	if err != nil {
		return model.Restaurant{}, err
	}

	logoURL, err := uploadImage(ctx, s.images, in.LogoPath, "image and logo are required", "failed to upload images")
	if err != nil {
		discardImage(ctx, s.images, imageURL, "restaurant create")
		return model.Restaurant{}, err
	}

	now := time.Now().UTC()
	restaurant := model.Restaurant{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		LogoURL:     logoURL,
		Delivery:    in.Delivery,
		Rating:      rating,
		CountRating: in.CountRating,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.restaurants.Create(ctx, restaurant); err != nil {
		discardImage(ctx, s.images, imageURL, "restaurant create")
		discardImage(ctx, s.images, logoURL, "restaurant create")
		return model.Restaurant{}, err
	}

	return restaurant, nil
}

func (s *RestaurantService) List(ctx context.Context) (model.RestaurantList, error) {
	restaurants, err := s.restaurants.List(ctx)
	if err != nil {
		return model.RestaurantList{}, err
	}
	if len(restaurants) == 0 {
		return model.RestaurantList{}, apierror.NotFound("no restaurants found")
	}

	return model.RestaurantList{TotalCount: len(restaurants), Data: restaurants}, nil
}

func (s *RestaurantService) Get(ctx context.Context, id string) (model.Restaurant, error) {
	if err := checkID(id, restaurantNotFound); err != nil {
		return model.Restaurant{}, err
	}
	return s.restaurants.FindByID(ctx, id)
}

func (s *RestaurantService) Delete(ctx context.Context, id string) error {
	if err := checkID(id, restaurantNotFound); err != nil {
		return err
	}

	deleted, err := s.restaurants.Delete(ctx, id)
	if err != nil {
		return err
	}

	discardImage(ctx, s.images, deleted.ImageURL, "restaurant "+deleted.ID)
	discardImage(ctx, s.images, deleted.LogoURL, "restaurant "+deleted.ID)
	return nil
}
