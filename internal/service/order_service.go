package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/model"
	"storefront/internal/repository"
)

var ErrInsufficientStock = errors.New("insufficient stock to satisfy the cart")

// OrderService converts submitted carts into orders and serves order history
type OrderService interface {
	Checkout(ctx context.Context, req model.CheckoutRequest) (*model.Order, error)
	OrdersFor(ctx context.Context, userName string) ([]model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo repository.OrderRepository, userRepo repository.UserRepository) OrderService {
	return &orderService{orderRepo: orderRepo, userRepo: userRepo}
}

// Checkout validates the cart and commits the order together with its
// stock decrements. An empty cart is accepted and produces an order
// with no stock effects. No idempotency key exists: submitting the same
// cart twice creates two orders and decrements stock twice.
func (s *orderService) Checkout(ctx context.Context, req model.CheckoutRequest) (*model.Order, error) {
	if strings.TrimSpace(req.UserName) == "" {
		return nil, fmt.Errorf("purchaser name is required: %w", ErrValidation)
	}
	if req.Total < 0 {
		return nil, fmt.Errorf("total cannot be negative: %w", ErrValidation)
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("line item quantity must be positive: %w", ErrValidation)
		}
	}

	user, err := s.userRepo.FindByName(ctx, req.UserName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve purchaser: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	order := &model.Order{
		UserID:   user.ID,
		UserName: user.Name,
		Total:    req.Total,
		Status:   model.OrderStatusPending,
	}

	if err := s.orderRepo.CreateWithStockDecrement(ctx, order, req.Items); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, fmt.Errorf("%w: %v", ErrInsufficientStock, err)
		}
		return nil, fmt.Errorf("failed to commit checkout: %w", err)
	}
	return order, nil
}

// OrdersFor returns the order history of the named purchaser, oldest
// first. Unknown names yield an empty history rather than an error.
func (s *orderService) OrdersFor(ctx context.Context, userName string) ([]model.Order, error) {
	orders, err := s.orderRepo.FindByUserName(ctx, userName)
	if err != nil {
		return nil, fmt.Errorf("failed to get user orders from repo: %w", err)
	}
	return orders, nil
}
