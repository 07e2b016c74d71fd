package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"larek/internal/model"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// sqliteProductRepository implements ProductRepository over embedded SQLite.
type sqliteProductRepository struct {
	db     *sqlx.DB
	logger zerolog.Logger
}

// NewSQLiteProductRepository creates a SQLite-backed product repository.
func NewSQLiteProductRepository(db *sqlx.DB, logger zerolog.Logger) ProductRepository {
	return &sqliteProductRepository{
		db:     db,
		logger: logger.With().Str("repository", "product").Str("driver", "sqlite").Logger(),
	}
}

func (r *sqliteProductRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.SelectContext(ctx, &products,
		`SELECT `+productColumns+` FROM products ORDER BY rowid`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	return products, nil
}

func (r *sqliteProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := r.db.GetContext(ctx, &p, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}
	return &p, nil
}

func (r *sqliteProductRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	query, args, err := sqlx.In(`SELECT `+productColumns+` FROM products WHERE id IN (?) ORDER BY rowid`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build products query: %w", err)
	}

	products := []model.Product{}
	if err := r.db.SelectContext(ctx, &products, r.db.Rebind(query), args...); err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query products by IDs")
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}
	return products, nil
}

func (r *sqliteProductRepository) Upsert(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareNamedContext(ctx, `
		INSERT INTO products (id, title, description, image, category, price)
		VALUES (:id, :title, :description, :image, :category, :price)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			image = excluded.image,
			category = excluded.category,
			price = excluded.price
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, p := range products {
		if _, err := stmt.ExecContext(ctx, p); err != nil {
			r.logger.Error().Err(err).Str("product_id", p.ID).Msg("failed to upsert product")
			return fmt.Errorf("failed to upsert product %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Debug().Int("count", len(products)).Msg("products upserted")
	return nil
}
