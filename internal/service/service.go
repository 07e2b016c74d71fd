package service

import (
	"context"

	"larek/internal/model"

	"github.com/google/uuid"
)

// ProductService defines read operations over the catalog.
type ProductService interface {
	// List retrieves the whole catalog.
	List(ctx context.Context) (*model.ListResponse[model.Product], error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Import upserts products into the catalog.
	Import(ctx context.Context, products []model.Product) error
}

// OrderService defines operations for order management.
type OrderService interface {
	// CreateOrder validates and stores an order.
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResult, error)

	// GetByID retrieves a stored order, or nil when it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrderDetails, error)
}
