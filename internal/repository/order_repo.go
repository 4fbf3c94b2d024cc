package repository

import (
	"context"
	"fmt"

	"food-delivery-api/internal/model"
)

const orderColumns = `id, buyer_id, food_ids, payment_method, status, total_price, created_at, updated_at`

type OrderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o model.Order) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO orders (`+orderColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID, o.BuyerID, o.FoodIDs, string(o.PaymentMethod), string(o.Status), o.TotalPrice, o.CreatedAt, o.UpdatedAt)
	return classify(err, "create order", "order not found", "order already exists")
}

func (r *OrderRepository) ListByBuyer(ctx context.Context, buyerID string) ([]model.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE buyer_id = $1 ORDER BY created_at DESC`, buyerID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	for rows.Next() {
		var (
			o       model.Order
			payment string
			status  string
		)
		if err := rows.Scan(&o.ID, &o.BuyerID, &o.FoodIDs, &payment, &status, &o.TotalPrice, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.PaymentMethod = model.PaymentMethod(payment)
		o.Status = model.OrderStatus(status)
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
