package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"food-delivery-api/internal/model"
	"food-delivery-api/internal/service"
	"food-delivery-api/pkg/apierror"
)

type foodService interface {
	Create(ctx context.Context, in service.FoodInput) (model.Food, error)
	List(ctx context.Context) (model.FoodList, error)
	Get(ctx context.Context, code string) (model.FoodView, error)
	Update(ctx context.Context, code string, patch model.FoodPatch) (model.Food, error)
	UpdateImage(ctx context.Context, code string, imagePath string) (model.Food, error)
	Delete(ctx context.Context, code string) error
}

type FoodHandler struct {
	foods  foodService
	stager stager
}

func NewFoodHandler(foods foodService, stager stager) *FoodHandler {
	return &FoodHandler{foods: foods, stager: stager}
}

func (h *FoodHandler) Create(w http.ResponseWriter, r *http.Request) error {
	if err := parseMultipart(r); err != nil {
		return err
	}
	defer cleanupMultipart(r)

	in, err := parseFoodForm(r)
	if err != nil {
		return err
	}

	if in.ImagePath, err = stageFile(h.stager, r, "imageUrl"); err != nil {
		return err
	}
	defer h.stager.Discard(in.ImagePath)

	food, err := h.foods.Create(r.Context(), in)
	if err != nil {
		return err
	}

	writeSuccess(w, http.StatusCreated, food, "Food created successfully")
	return nil
}

func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) error {
	foods, err := h.foods.List(r.Context())
	if err != nil {
		return err
	}

	writeSuccess(w, http.StatusOK, foods, "Foods fetched successfully")
	return nil
}

func (h *FoodHandler) Get(w http.ResponseWriter, r *http.Request) error {
	food, err := h.foods.Get(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		return err
	}

	writeSuccess(w, http.StatusOK, food, "Food fetched successfully")
	return nil
}

func (h *FoodHandler) Update(w http.ResponseWriter, r *http.Request) error {
	var patch model.FoodPatch
	if err := decodeJSON(r, &patch); err != nil {
		return err
	}

	food, err := h.foods.Update(r.Context(), chi.URLParam(r, "code"), patch)
	if err != nil {
		return err
	}

	writeSuccess(w, http.StatusOK, food, "Food updated successfully")
	return nil
}

func (h *FoodHandler) UpdateImage(w http.ResponseWriter, r *http.Request) error {
	if err := parseMultipart(r); err != nil {
		return err
	}
	defer cleanupMultipart(r)

	imagePath, err := stageFile(h.stager, r, "imageUrl")
	if err != nil {
		return err
	}
	defer h.stager.Discard(imagePath)

	food, err := h.foods.UpdateImage(r.Context(), chi.URLParam(r, "code"), imagePath)
	if err != nil {
		return err
	}

	writeSuccess(w, http.StatusOK, food, "Food image updated successfully")
	return nil
}

func (h *FoodHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	if err := h.foods.Delete(r.Context(), chi.URLParam(r, "code")); err != nil {
		return err
	}

	writeSuccess(w, http.StatusOK, nil, "Food deleted successfully")
	return nil
}

func parseFoodForm(r *http.Request) (service.FoodInput, error) {
	in := service.FoodInput{
		Title:        formValue(r, "title"),
		Description:  formValue(r, "description"),
		CategoryID:   formValue(r, "category"),
		RestaurantID: formValue(r, "restaurant"),
		Code:         formValue(r, "code"),
	}

	price, err := formFloat(r, "price")
	if err != nil {
		return in, err
	}
	if price == nil {
		return in, apierror.Validation("all fields are required")
	}
	in.Price = *price

	if in.IsAvailable, err = formBool(r, "isAvailable"); err != nil {
		return in, err
	}
	if in.Rating, err = formFloat(r, "rating"); err != nil {
		return in, err
	}
	if in.CountRating, err = formInt(r, "countRating"); err != nil {
		return in, err
	}
	return in, nil
}
