package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"food-delivery-api/internal/model"
)

const (
	categoryColumns     = `id, title, image_url, created_at, updated_at`
	categoryNotFound    = "category not found"
	categoryTitleExists = "category with this title already exists"
)

type CategoryRepository struct {
	db DBTX
}

func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func scanCategory(row pgx.Row) (model.Category, error) {
	var c model.Category
	err := row.Scan(&c.ID, &c.Title, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *CategoryRepository) Create(ctx context.Context, c model.Category) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO categories (id, title, image_url, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Title, c.ImageURL, c.CreatedAt, c.UpdatedAt)
	return classify(err, "create category", categoryNotFound, categoryTitleExists)
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (model.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	if err != nil {
		return model.Category{}, classify(err, "find category", categoryNotFound, categoryTitleExists)
	}
	return c, nil
}

func (r *CategoryRepository) FindByTitle(ctx context.Context, title string) (model.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE title = $1`, title))
	if err != nil {
		return model.Category{}, classify(err, "find category by title", categoryNotFound, categoryTitleExists)
	}
	return c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]model.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) UpdateImage(ctx context.Context, id string, imageURL string) (model.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx,
		`UPDATE categories SET image_url = $2, updated_at = $3 WHERE id = $1 RETURNING `+categoryColumns,
		id, imageURL, time.Now().UTC()))
	if err != nil {
		return model.Category{}, classify(err, "update category image", categoryNotFound, categoryTitleExists)
	}
	return c, nil
}

func (r *CategoryRepository) UpdateTitle(ctx context.Context, id string, title string) (model.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx,
		`UPDATE categories SET title = $2, updated_at = $3 WHERE id = $1 RETURNING `+categoryColumns,
		id, title, time.Now().UTC()))
	if err != nil {
		return model.Category{}, classify(err, "update category title", categoryNotFound, categoryTitleExists)
	}
	return c, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) (model.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx, `DELETE FROM categories WHERE id = $1 RETURNING `+categoryColumns, id))
	if err != nil {
		return model.Category{}, classify(err, "delete category", categoryNotFound, categoryTitleExists)
	}
	return c, nil
}
