package repository

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/model"
)

// ErrInsufficientStock is returned when a line item asks for more units
// than a product has left (or the product no longer exists).
var ErrInsufficientStock = errors.New("insufficient stock for product")

// OrderRepository defines operations for order data
type OrderRepository interface {
	CreateWithStockDecrement(ctx context.Context, order *model.Order, items []model.CartItem) error
	FindByUserName(ctx context.Context, name string) ([]model.Order, error)
}

type orderRepository struct {
	db DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateWithStockDecrement persists the order and applies every line
// item's stock decrement in a single transaction. Each decrement is
// conditional on enough stock remaining; if any line item cannot be
// satisfied the whole transaction rolls back, so an order and its
// stock effects are either both durably visible or neither is.
func (r *orderRepository) CreateWithStockDecrement(ctx context.Context, order *model.Order, items []model.CartItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin checkout transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	sql := `INSERT INTO orders (user_id, total, status, created_at)
            VALUES ($1, $2, $3, NOW()) RETURNING id, created_at`
	err = tx.QueryRow(ctx, sql, order.UserID, order.Total, order.Status).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	for _, item := range items {
		cmdTag, err := tx.Exec(ctx,
			`UPDATE products SET stock = stock - $2, updated_at = NOW() WHERE id = $1 AND stock >= $2`,
			item.ProductID, item.Quantity)
		if err != nil {
			return fmt.Errorf("failed to decrement stock for product %d: %w", item.ProductID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("product %d: %w", item.ProductID, ErrInsufficientStock)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit checkout: %w", err)
	}
	return nil
}

// FindByUserName retrieves a user's orders oldest first. The purchaser
// is matched through the users table, so order history follows the
// durable user id rather than a name copied into each row.
func (r *orderRepository) FindByUserName(ctx context.Context, name string) ([]model.Order, error) {
	sql := `SELECT o.id, o.user_id, u.name, o.total, o.status, o.created_at
            FROM orders o JOIN users u ON o.user_id = u.id
            WHERE u.name = $1 ORDER BY o.id`
	rows, err := r.db.Query(ctx, sql, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders by user name: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.UserName, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}
	return orders, nil
}
