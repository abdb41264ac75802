package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/model"
	"storefront/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogService defines operations on the product catalog
type CatalogService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, req model.CreateProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, productID int64, req model.UpdateProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}

type catalogService struct {
	repo repository.ProductRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(repo repository.ProductRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products from repo: %w", err)
	}
	return products, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, req model.CreateProductRequest) (*model.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("product name is required: %w", ErrValidation)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("product price must be positive: %w", ErrValidation)
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("product stock cannot be negative: %w", ErrValidation)
	}

	product := &model.Product{
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock, // Defaults to zero when the request omits it
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product in repo: %w", err)
	}
	return product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, productID int64, req model.UpdateProductRequest) (*model.Product, error) {
	existing, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product for update: %w", err)
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}

	// Apply updates
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("product name cannot be empty: %w", ErrValidation)
		}
		existing.Name = *req.Name
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, fmt.Errorf("product price must be positive: %w", ErrValidation)
		}
		existing.Price = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, fmt.Errorf("product stock cannot be negative: %w", ErrValidation)
		}
		existing.Stock = *req.Stock
	}
	if req.Description != nil { // handles setting to "" or null
		existing.Description = req.Description
	}
	if req.Image != nil {
		existing.Image = req.Image
	}
	if req.Category != nil {
		existing.Category = req.Category
	}
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			// Deleted between the read above and the write.
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product in repo: %w", err)
	}
	return existing, nil
}

// DeleteProduct removes a product. Deleting an id that does not exist
// succeeds, the operation is idempotent.
func (s *catalogService) DeleteProduct(ctx context.Context, productID int64) error {
	if err := s.repo.Delete(ctx, productID); err != nil {
		return fmt.Errorf("failed to delete product in repo: %w", err)
	}
	return nil
}
