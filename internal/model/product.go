package model

import "time"

// Product represents a catalog item and its remaining stock
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"` // In minor currency units (e.g. cents)
	Stock       int       `json:"stock"`
	Description *string   `json:"description,omitempty"` // Pointer for optional field
	Image       *string   `json:"image,omitempty"`
	Category    *string   `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProductRequest is used for creating a new catalog item
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       int64   `json:"price" binding:"required,gt=0"`
	Stock       int     `json:"stock" binding:"omitempty,min=0"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Category    *string `json:"category"`
}

type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty"` // Pointers to allow partial updates
	Price       *int64  `json:"price,omitempty" binding:"omitempty,gt=0"`
	Stock       *int    `json:"stock,omitempty" binding:"omitempty,min=0"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	Category    *string `json:"category,omitempty"`
}
