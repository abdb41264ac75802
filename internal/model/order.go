package model

import "time"

// OrderStatusPending is the only status assigned in this service;
// fulfilment systems advance it elsewhere.
const OrderStatusPending = "pending"

// Order is a finalized checkout. Line items are not retained, only the
// aggregate total.
type Order struct {
	ID        int64     `json:"id"`
	UserID    int       `json:"user_id"`
	UserName  string    `json:"user_name"`
	Total     int64     `json:"total"` // In minor currency units
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CartItem is one (product, quantity) pair of a submitted cart
type CartItem struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

// CheckoutRequest is the client-submitted cart
type CheckoutRequest struct {
	UserName string     `json:"user_name" binding:"required"`
	Total    int64      `json:"total" binding:"min=0"`
	Items    []CartItem `json:"items" binding:"omitempty,dive"`
}
