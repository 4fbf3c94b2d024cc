package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"food-delivery-api/internal/model"
)

const (
	restaurantColumns     = `id, title, description, image_url, logo_url, delivery, rating, count_rating, created_at, updated_at`
	restaurantNotFound    = "restaurant not found"
	restaurantTitleExists = "restaurant with this title already exists"
)

type RestaurantRepository struct {
	db DBTX
}

func NewRestaurantRepository(db DBTX) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

func scanRestaurant(row pgx.Row) (model.Restaurant, error) {
	var r model.Restaurant
	err := row.Scan(&r.ID, &r.Title, &r.Description, &r.ImageURL, &r.LogoURL, &r.Delivery,
		&r.Rating, &r.CountRating, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func (r *RestaurantRepository) Create(ctx context.Context, rest model.Restaurant) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO restaurants (`+restaurantColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rest.ID, rest.Title, rest.Description, rest.ImageURL, rest.LogoURL, rest.Delivery,
		rest.Rating, rest.CountRating, rest.CreatedAt, rest.UpdatedAt)
	return classify(err, "create restaurant", restaurantNotFound, restaurantTitleExists)
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id string) (model.Restaurant, error) {
	rest, err := scanRestaurant(r.db.QueryRow(ctx, `SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id))
	if err != nil {
		return model.Restaurant{}, classify(err, "find restaurant", restaurantNotFound, restaurantTitleExists)
	}
	return rest, nil
}

func (r *RestaurantRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM restaurants WHERE title = $1)`, title).Scan(&exists); err != nil {
		return false, fmt.Errorf("check restaurant title: %w", err)
	}
	return exists, nil
}

func (r *RestaurantRepository) List(ctx context.Context) ([]model.Restaurant, error) {
	rows, err := r.db.Query(ctx, `SELECT `+restaurantColumns+` FROM restaurants ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := make([]model.Restaurant, 0)
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *RestaurantRepository) Delete(ctx context.Context, id string) (model.Restaurant, error) {
	rest, err := scanRestaurant(r.db.QueryRow(ctx, `DELETE FROM restaurants WHERE id = $1 RETURNING `+restaurantColumns, id))
	if err != nil {
		return model.Restaurant{}, classify(err, "delete restaurant", restaurantNotFound, restaurantTitleExists)
	}
	return rest, nil
}
