package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"larek/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// sqliteOrderRepository implements OrderRepository over embedded SQLite.
type sqliteOrderRepository struct {
	db     *sqlx.DB
	logger zerolog.Logger
}

// NewSQLiteOrderRepository creates a SQLite-backed order repository.
func NewSQLiteOrderRepository(db *sqlx.DB, logger zerolog.Logger) OrderRepository {
	return &sqliteOrderRepository{
		db:     db,
		logger: logger.With().Str("repository", "order").Str("driver", "sqlite").Logger(),
	}
}

func (r *sqliteOrderRepository) CreateOrder(ctx context.Context, order *model.Order, items []model.OrderItem) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO orders (id, address, email, phone, payment, total, created_at)
		VALUES (:id, :address, :email, :phone, :payment, :total, :created_at)
	`, order)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	for _, item := range items {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO order_items (order_id, position, product_id)
			VALUES (:order_id, :position, :product_id)
		`, item)
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("order_id", item.OrderID.String()).
				Str("product_id", item.ProductID).
				Msg("failed to create order item")
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Int("items", len(items)).
		Msg("order created successfully")
	return nil
}

func (r *sqliteOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error) {
	var order model.Order
	err := r.db.GetContext(ctx, &order, `
		SELECT id, address, email, phone, payment, total, created_at
		FROM orders
		WHERE id = ?
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, nil, fmt.Errorf("failed to query order: %w", err)
	}

	items := []model.OrderItem{}
	err = r.db.SelectContext(ctx, &items, `
		SELECT order_id, position, product_id
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order items")
		return nil, nil, fmt.Errorf("failed to query order items: %w", err)
	}

	return &order, items, nil
}
