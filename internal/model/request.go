package model

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type UpdateUserRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type UpdateTitleRequest struct {
	Title string `json:"title"`
}

type PlaceOrderRequest struct {
	Foods         []string `json:"foods"`
	PaymentMethod string   `json:"paymentMethod"`
}

type CategoryList struct {
	TotalCategory int        `json:"totalCategory"`
	Data          []Category `json:"data"`
}

type RestaurantList struct {
	TotalCount int          `json:"totalCount"`
	Data       []Restaurant `json:"data"`
}

type FoodList struct {
	TotalFoods int        `json:"totalFoods"`
	Data       []FoodView `json:"data"`
}
