package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"food-delivery-api/internal/model"
)

type categoryService interface {
	Create(ctx context.Context, title string, imagePath string) (model.Category, error)
	List(ctx context.Context) (model.CategoryList, error)
	UpdateImage(ctx context.Context, id string, imagePath string) (model.Category, error)
	UpdateTitle(ctx context.Context, id string, title string) (model.Category, error)
	Delete(ctx context.Context, id string) error
}

type CategoryHandler struct {
	categories categoryService
	stager     stager
}

func NewCategoryHandler(categories categoryService, stager stager) *CategoryHandler {
	return &CategoryHandler{categories: categories, stager: stager}
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) error {
	if err := parseMultipart(r); err != nil {
		return err
	}
	defer cleanupMultipart(r)

	imagePath, err := stageFile(h.stager, r, "imageUrl")
	if err != nil {
		return err
	}
	defer h.stager.Discard(imagePath)

	category, err := h.categories.Create(r.Context(), formValue(r, "title"), imagePath)
	if err != nil {
		return err
	}

	writeSuccess(w, http.StatusCreated, category, "Category created successfully")
	return nil
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) error {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		return err
	}

	writeSuccess(w, http.StatusOK, categories, "Categories fetched successfully")
	return nil
}

func (h *CategoryHandler) UpdateImage(w http.ResponseWriter, r *http.Request) error {
	if err := parseMultipart(r); err != nil {
		return err
	}
	defer cleanupMultipart(r)

	imagePath, err := stageFile(h.stager, r, "imageUrl")
	if err != nil {
		return err
	}
	defer h.stager.Discard(imagePath)

	category, err := h.categories.UpdateImage(r.Context(), chi.URLParam(r, "categoryId"), imagePath)
	if err != nil {
		return err
	}

	writeSuccess(w, http.StatusOK, category, "Category image updated successfully")
	return nil
}

func (h *CategoryHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) error {
	var req model.UpdateTitleRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	category, err := h.categories.UpdateTitle(r.Context(), chi.URLParam(r, "categoryId"), req.Title)
	if err != nil {
		return err
	}

	writeSuccess(w, http.StatusOK, category, "Category title updated successfully")
	return nil
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	if err := h.categories.Delete(r.Context(), chi.URLParam(r, "categoryId")); err != nil {
		return err
	}

	writeSuccess(w, http.StatusOK, nil, "Category deleted successfully")
	return nil
}
