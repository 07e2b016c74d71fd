package repository

import (
	"context"
	"errors"
	"fmt"

	"larek/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// CreateOrder inserts the order and its items in one transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, order *model.Order, items []model.OrderItem) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		// Rollback is a no-op after a successful commit.
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, address, email, phone, payment, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, order.ID, order.Address, order.Email, order.Phone, order.Payment, order.Total, order.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	if len(items) > 0 {
		batch := &pgx.Batch{}
		for _, item := range items {
			batch.Queue(`INSERT INTO order_items (order_id, position, product_id) VALUES ($1, $2, $3)`,
				item.OrderID, item.Position, item.ProductID)
		}

		results := tx.SendBatch(ctx, batch)
		for _, item := range items {
			if _, err := results.Exec(); err != nil {
				results.Close()
				r.logger.Error().
					Err(err).
					Str("order_id", item.OrderID.String()).
					Str("product_id", item.ProductID).
					Msg("failed to create order item")
				return fmt.Errorf("failed to create order item: %w", err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit order")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Int("items", len(items)).
		Msg("order created successfully")

	return nil
}

// GetByID retrieves an order by its ID along with its items.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, address, email, phone, payment, total, created_at
		FROM orders
		WHERE id = $1
	`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, nil, fmt.Errorf("failed to query order: %w", err)
	}

	order, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Order])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to scan order")
		return nil, nil, fmt.Errorf("failed to query order: %w", err)
	}

	rows, err = r.pool.Query(ctx, `
		SELECT order_id, position, product_id
		FROM order_items
		WHERE order_id = $1
		ORDER BY position
	`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order items")
		return nil, nil, fmt.Errorf("failed to query order items: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.OrderItem])
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to scan order item rows")
		return nil, nil, fmt.Errorf("failed to scan order items: %w", err)
	}

	return &order, items, nil
}
