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

const categoryNotFound = "category not found"

type CategoryService struct {
	categories CategoryStore
	images     storage.ObjectStore
}

func NewCategoryService(categories CategoryStore, images storage.ObjectStore) *CategoryService {
	return &CategoryService{categories: categories, images: images}
}

func (s *CategoryService) Create(ctx context.Context, title string, imagePath string) (model.Category, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Category{}, apierror.Validation("title is required")
	}

	if err := s.ensureTitleFree(ctx, title, ""); err != nil {
		return model.Category{}, err
	}

	imageURL, err := uploadImage(ctx, s.images, imagePath, "image is required", "failed to upload image")
	if err != nil {
		return model.Category{}, err
	}

	now := time.Now().UTC()
	category := model.Category{
		ID:        uuid.NewString(),
		Title:     title,
		ImageURL:  imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.categories.Create(ctx, category); err != nil {
		discardImage(ctx, s.images, imageURL, "category create")
		return model.Category{}, err
	}

	return category, nil
}

func (s *CategoryService) List(ctx context.Context) (model.CategoryList, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return model.CategoryList{}, err
	}
	if len(categories) == 0 {
		return model.CategoryList{}, apierror.NotFound("no categories found")
	}

	return model.CategoryList{TotalCategory: len(categories), Data: categories}, nil
}

func (s *CategoryService) UpdateImage(ctx context.Context, id string, imagePath string) (model.Category, error) {
	if strings.TrimSpace(imagePath) == "" {
		return model.Category{}, apierror.Validation("image is required")
	}

	current, err := s.find(ctx, id)
	if err != nil {
		return model.Category{}, err
	}

	imageURL, err := uploadImage(ctx, s.images, imagePath, "image is required", "failed to upload image")
	if err != nil {
		return model.Category{}, err
	}

	updated, err := s.categories.UpdateImage(ctx, current.ID, imageURL)
	if err != nil {
		discardImage(ctx, s.images, imageURL, "category update")
		return model.Category{}, err
	}

	discardImage(ctx, s.images, current.ImageURL, "category "+current.ID)
	return updated, nil
}

func (s *CategoryService) UpdateTitle(ctx context.Context, id string, title string) (model.Category, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Category{}, apierror.Validation("title is required")
	}

	current, err := s.find(ctx, id)
	if err != nil {
		return model.Category{}, err
	}

	if err := s.ensureTitleFree(ctx, title, current.ID); err != nil {
		return model.Category{}, err
	}

	return s.categories.UpdateTitle(ctx, current.ID, title)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := checkID(id, categoryNotFound); err != nil {
		return err
	}

	deleted, err := s.categories.Delete(ctx, id)
	if err != nil {
		return err
	}

	discardImage(ctx, s.images, deleted.ImageURL, "category "+deleted.ID)
	return nil
}

func (s *CategoryService) find(ctx context.Context, id string) (model.Category, error) {
	if err := checkID(id, categoryNotFound); err != nil {
		return model.Category{}, err
	}
	return s.categories.FindByID(ctx, id)
}

// ensureTitleFree fails with Conflict when another category owns title.
func (s *CategoryService) ensureTitleFree(ctx context.Context, title string, selfID string) error {
	existing, err := s.categories.FindByTitle(ctx, title)
	switch {
	case apierror.IsCode(err, apierror.CodeNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != selfID:
		return apierror.Conflict("category with this title already exists")
	default:
		return nil
	}
}
