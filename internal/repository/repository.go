package repository

import (
	"context"

	"larek/internal/model"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves the whole catalog ordered by insertion.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. It returns nil, nil when
	// the product does not exist.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetByIDs retrieves the products with the given IDs. Unknown IDs are
	// skipped.
	GetByIDs(ctx context.Context, ids []string) ([]model.Product, error)

	// Upsert inserts products, replacing existing rows with the same ID.
	Upsert(ctx context.Context, products []model.Product) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// CreateOrder stores an order and its items atomically.
	CreateOrder(ctx context.Context, order *model.Order, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items. It returns
	// nil, nil, nil when the order does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)
}
