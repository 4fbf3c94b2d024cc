package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"food-delivery-api/internal/model"
	"food-delivery-api/internal/service"
)

type restaurantService interface {
	Create(ctx context.Context, in service.RestaurantInput) (model.Restaurant, error)
	List(ctx context.Context) (model.RestaurantList, error)
	Get(ctx context.Context, id string) (model.Restaurant, error)
	Delete(ctx context.Context, id string) error
}

type RestaurantHandler struct {
	restaurants restaurantService
	stager      stager
}

func NewRestaurantHandler(restaurants restaurantService, stager stager) *RestaurantHandler {
	return &RestaurantHandler{restaurants: restaurants, stager: stager}
}

func (h *RestaurantHandler) Create(w http.ResponseWriter, r *http.Request) error {
	if err := parseMultipart(r); err != nil {
		return err
	}
	defer cleanupMultipart(r)

	in, err := parseRestaurantForm(r)
	if err != nil {
		return err
	}

	if in.ImagePath, err = stageFile(h.stager, r, "imageUrl"); err != nil {
		return err
	}
	defer h.stager.Discard(in.ImagePath)

	if in.LogoPath, err = stageFile(h.stager, r, "logoUrl"); err != nil {
		return err
	}
	defer h.stager.Discard(in.LogoPath)

	restaurant, err := h.restaurants.Create(r.Context(), in)
	if err != nil {
		return err
	}

	writeSuccess(w, http.StatusCreated, restaurant, "Restaurant created successfully")
	return nil
}

func (h *RestaurantHandler) List(w http.ResponseWriter, r *http.Request) error {
	restaurants, err := h.restaurants.List(r.Context())
	if err != nil {
		return err
	}

	writeSuccess(w, http.StatusOK, restaurants, "Restaurants fetched successfully")
	return nil
}

func (h *RestaurantHandler) Get(w http.ResponseWriter, r *http.Request) error {
	restaurant, err := h.restaurants.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	writeSuccess(w, http.StatusOK, restaurant, "Restaurant fetched successfully")
	return nil
}

func (h *RestaurantHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	if err := h.restaurants.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}

	writeSuccess(w, http.StatusOK, nil, "Restaurant deleted successfully")
	return nil
}

func parseRestaurantForm(r *http.Request) (service.RestaurantInput, error) {
	in := service.RestaurantInput{
		Title:       formValue(r, "title"),
		Description: formValue(r, "description"),
	}

	delivery, err := formBool(r, "delivery")
	if err != nil {
		return in, err
	}
	rating, err := formFloat(r, "rating")
	if err != nil {
		return in, err
	}
	count, err := formInt(r, "countRating")
	if err != nil {
		return in, err
	}

	if delivery != nil {
		in.Delivery = *delivery
	}
	if rating != nil {
		in.Rating = *rating
	}
	if count != nil {
		in.CountRating = *count
	}
	return in, nil
}
