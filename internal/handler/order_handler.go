package handler

import (
	"context"
	"net/http"

	"food-delivery-api/internal/middleware"
	"food-delivery-api/internal/model"
	"food-delivery-api/pkg/apierror"
)

type orderService interface {
	Place(ctx context.Context, buyerID string, req model.PlaceOrderRequest) (model.Order, error)
	ListMine(ctx context.Context, buyerID string) ([]model.Order, error)
}

type OrderHandler struct {
	orders orderService
}

func NewOrderHandler(orders orderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) error {
	buyer, err := currentBuyer(r)
	if err != nil {
		return err
	}

	var req model.PlaceOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	order, err := h.orders.Place(r.Context(), buyer.ID, req)
	if err != nil {
		return err
	}

	writeSuccess(w, http.StatusCreated, order, "Order created successfully")
	return nil
}

func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) error {
	buyer, err := currentBuyer(r)
	if err != nil {
		return err
	}

	orders, err := h.orders.ListMine(r.Context(), buyer.ID)
	if err != nil {
		return err
	}

	writeSuccess(w, http.StatusOK, orders, "Orders fetched successfully")
	return nil
}

func currentBuyer(r *http.Request) (*model.UserProjection, error) {
	buyer, ok := middleware.UserFromContext(r.Context())
	if !ok {
		return nil, apierror.Unauthorized("unauthorized: buyer not found in request")
	}
	return buyer, nil
}
