package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"food-delivery-api/internal/model"
)

const (
	foodColumns = `id, title, description, image_url, price, category_id, restaurant_id,
		is_available, rating, count_rating, code, created_at, updated_at`
	foodNotFound   = "food not found"
	foodCodeExists = "food with this code already exists"
)

// foodViewQuery resolves category and restaurant display fields in one pass.
const foodViewQuery = `
	SELECT f.id, f.title, f.description, f.image_url, f.price,
	       c.id, c.title, c.image_url,
	       r.id, r.title, r.image_url, r.logo_url,
	       f.is_available, f.rating, f.count_rating, f.code, f.created_at, f.updated_at
	FROM foods f
	JOIN categories c ON c.id = f.category_id
	JOIN restaurants r ON r.id = f.restaurant_id`

type FoodRepository struct {
	db DBTX
}

func NewFoodRepository(db DBTX) *FoodRepository {
	return &FoodRepository{db: db}
}

func scanFood(row pgx.Row) (model.Food, error) {
	var f model.Food
	err := row.Scan(&f.ID, &f.Title, &f.Description, &f.ImageURL, &f.Price, &f.CategoryID, &f.RestaurantID,
		&f.IsAvailable, &f.Rating, &f.CountRating, &f.Code, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

func scanFoodView(row pgx.Row) (model.FoodView, error) {
	var v model.FoodView
	err := row.Scan(&v.ID, &v.Title, &v.Description, &v.ImageURL, &v.Price,
		&v.Category.ID, &v.Category.Title, &v.Category.ImageURL,
		&v.Restaurant.ID, &v.Restaurant.Title, &v.Restaurant.ImageURL, &v.Restaurant.LogoURL,
		&v.IsAvailable, &v.Rating, &v.CountRating, &v.Code, &v.CreatedAt, &v.UpdatedAt)
	return v, err
}

func (r *FoodRepository) Create(ctx context.Context, f model.Food) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO foods (`+foodColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		f.ID, f.Title, f.Description, f.ImageURL, f.Price, f.CategoryID, f.RestaurantID,
		f.IsAvailable, f.Rating, f.CountRating, f.Code, f.CreatedAt, f.UpdatedAt)
	return classify(err, "create food", foodNotFound, foodCodeExists)
}

func (r *FoodRepository) FindByCode(ctx context.Context, code string) (model.Food, error) {
	f, err := scanFood(r.db.QueryRow(ctx, `SELECT `+foodColumns+` FROM foods WHERE code = $1`, code))
	if err != nil {
		return model.Food{}, classify(err, "find food by code", foodNotFound, foodCodeExists)
	}
	return f, nil
}

func (r *FoodRepository) FindViewByCode(ctx context.Context, code string) (model.FoodView, error) {
	v, err := scanFoodView(r.db.QueryRow(ctx, foodViewQuery+` WHERE f.code = $1`, code))
	if err != nil {
		return model.FoodView{}, classify(err, "find food view", foodNotFound, foodCodeExists)
	}
	return v, nil
}

func (r *FoodRepository) ListViews(ctx context.Context) ([]model.FoodView, error) {
	rows, err := r.db.Query(ctx, foodViewQuery+` ORDER BY f.created_at`)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	defer rows.Close()

	foods := make([]model.FoodView, 0)
	for rows.Next() {
		v, err := scanFoodView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan food view: %w", err)
		}
		foods = append(foods, v)
	}
	return foods, rows.Err()
}

// FindByIDs returns the foods that exist among ids, in no particular order.
func (r *FoodRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Food, error) {
	rows, err := r.db.Query(ctx, `SELECT `+foodColumns+` FROM foods WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("find foods by ids: %w", err)
	}
	defer rows.Close()

	foods := make([]model.Food, 0, len(ids))
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

func (r *FoodRepository) Update(ctx context.Context, f model.Food) (model.Food, error) {
	updated, err := scanFood(r.db.QueryRow(ctx,
		`UPDATE foods SET title = $2, description = $3, price = $4, category_id = $5, restaurant_id = $6,
		        is_available = $7, rating = $8, count_rating = $9, updated_at = $10
		 WHERE code = $1 RETURNING `+foodColumns,
		f.Code, f.Title, f.Description, f.Price, f.CategoryID, f.RestaurantID,
		f.IsAvailable, f.Rating, f.CountRating, time.Now().UTC()))
	if err != nil {
		return model.Food{}, classify(err, "update food", foodNotFound, foodCodeExists)
	}
	return updated, nil
}

func (r *FoodRepository) UpdateImage(ctx context.Context, code string, imageURL string) (model.Food, error) {
	updated, err := scanFood(r.db.QueryRow(ctx,
		`UPDATE foods SET image_url = $2, updated_at = $3 WHERE code = $1 RETURNING `+foodColumns,
		code, imageURL, time.Now().UTC()))
	if err != nil {
		return model.Food{}, classify(err, "update food image", foodNotFound, foodCodeExists)
	}
	return updated, nil
}

func (r *FoodRepository) DeleteByCode(ctx context.Context, code string) (model.Food, error) {
	f, err := scanFood(r.db.QueryRow(ctx, `DELETE FROM foods WHERE code = $1 RETURNING `+foodColumns, code))
	if err != nil {
		return model.Food{}, classify(err, "delete food", foodNotFound, foodCodeExists)
	}
	return f, nil
}
