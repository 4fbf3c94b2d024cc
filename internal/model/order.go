package model

import "time"

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentCash || p == PaymentCard
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID            string        `json:"id"`
	BuyerID       string        `json:"buyer"`
	FoodIDs       []string      `json:"foods"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Status        OrderStatus   `json:"status"`
	TotalPrice    float64       `json:"totalPrice"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
