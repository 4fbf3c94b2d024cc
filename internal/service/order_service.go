package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"food-delivery-api/internal/model"
	"food-delivery-api/pkg/apierror"
)

const foodsNotFound = "one or more food items not found"

type OrderService struct {
	orders OrderStore
	foods  FoodStore
}

func NewOrderService(orders OrderStore, foods FoodStore) *OrderService {
	return &OrderService{orders: orders, foods: foods}
}

// Place prices an order as the sum over the requested list, so a food listed
// twice is charged twice. Every distinct id must exist. Repeated ids are
// resolved once and never counted as missing, so such a list is not a 404.
func (s *OrderService) Place(ctx context.Context, buyerID string, req model.PlaceOrderRequest) (model.Order, error) {
	if buyerID == "" {
		return model.Order{}, apierror.Unauthorized("unauthorized: buyer not found in request")
	}

	if len(req.Foods) == 0 {
		return model.Order{}, apierror.Validation("foods must be a non-empty array")
	}

	method := model.PaymentMethod(req.PaymentMethod)
	if method == "" {
		method = model.PaymentCash
	}
	if !method.Valid() {
		return model.Order{}, apierror.Validation("payment method must be cash or card").
			WithErrors(apierror.FieldError{Field: "paymentMethod", Message: "must be one of cash, card"})
	}

	distinct := make([]string, 0, len(req.Foods))
	seen := make(map[string]struct{}, len(req.Foods))
	for _, id := range req.Foods {
		if err := checkID(id, foodsNotFound); err != nil {
			return model.Order{}, err
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	found, err := s.foods.FindByIDs(ctx, distinct)
	if err != nil {
		return model.Order{}, err
	}
	if len(found) != len(distinct) {
		return model.Order{}, apierror.NotFound(foodsNotFound)
	}

	prices := make(map[string]float64, len(found))
	for _, f := range found {
		prices[f.ID] = f.Price
	}

	var total float64
	for _, id := range req.Foods {
		total += prices[id]
	}

	now := time.Now().UTC()
	order := model.Order{
		ID:            uuid.NewString(),
		BuyerID:       buyerID,
		FoodIDs:       append([]string(nil), req.Foods...),
		PaymentMethod: method,
		Status:        model.OrderPending,
		TotalPrice:    total,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return model.Order{}, err
	}

	return order, nil
}

func (s *OrderService) ListMine(ctx context.Context, buyerID string) ([]model.Order, error) {
	if buyerID == "" {
		return nil, apierror.Unauthorized("unauthorized: buyer not found in request")
	}

	orders, err := s.orders.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}
