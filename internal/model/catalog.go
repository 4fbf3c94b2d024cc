package model

import "time"

type Category struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Restaurant struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	LogoURL     string    `json:"logoUrl"`
	Delivery    bool      `json:"delivery"`
	Rating      float64   `json:"rating"`
	CountRating int       `json:"countRating"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Food struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	Price        float64   `json:"price"`
	CategoryID   string    `json:"categoryId"`
	RestaurantID string    `json:"restaurantId"`
	IsAvailable  bool      `json:"isAvailable"`
	Rating       float64   `json:"rating"`
	CountRating  int       `json:"countRating"`
	Code         string    `json:"code"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CategoryRef struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
}

type RestaurantRef struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	LogoURL  string `json:"logoUrl"`
}

// FoodView is a food with its category and restaurant expanded to display fields.
type FoodView struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	ImageURL    string        `json:"imageUrl"`
	Price       float64       `json:"price"`
	Category    CategoryRef   `json:"category"`
	Restaurant  RestaurantRef `json:"restaurant"`
	IsAvailable bool          `json:"isAvailable"`
	Rating      float64       `json:"rating"`
	CountRating int           `json:"countRating"`
	Code        string        `json:"code"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// FoodPatch carries a partial update; nil fields are left untouched.
type FoodPatch struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	CategoryID   *string  `json:"category"`
	RestaurantID *string  `json:"restaurant"`
	IsAvailable  *bool    `json:"isAvailable"`
	Rating       *float64 `json:"rating"`
	CountRating  *int     `json:"countRating"`
}

func (p FoodPatch) Apply(f Food) Food {
	if p.Title != nil {
		f.Title = *p.Title
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
	if p.Price != nil {
		f.Price = *p.Price
	}
	if p.CategoryID != nil {
		f.CategoryID = *p.CategoryID
	}
	if p.RestaurantID != nil {
		f.RestaurantID = *p.RestaurantID
	}
	if p.IsAvailable != nil {
		f.IsAvailable = *p.IsAvailable
	}
	if p.Rating != nil {
		f.Rating = *p.Rating
	}
	if p.CountRating != nil {
		f.CountRating = *p.CountRating
	}
	return f
}
