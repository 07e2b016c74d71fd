package repository

import (
	"context"
	"testing"
	"time"

	"larek/internal/database"
	"larek/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupSQLite opens an isolated in-memory store with the schema applied.
func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.OpenSQLite(context.Background(), "file::memory:", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testCatalog() []model.Product {
	return []model.Product{
		{ID: "854cef69", Title: "HEX", Description: "desc", Image: "/5_Dots.svg", Category: "другое", Price: model.Price(1450)},
		{ID: "c101ab44", Title: "+1 hour", Image: "/Asterisk_2.svg", Category: "софт-скил", Price: model.Price(750)},
		{ID: "b06cde61", Title: "Mythical", Image: "/Shell.svg", Category: "дополнительное"},
	}
}

func TestSQLiteProductRepository_UpsertAndGetAll(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteProductRepository(setupSQLite(t), zerolog.Nop())

	require.NoError(t, repo.Upsert(ctx, testCatalog()))

	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "854cef69", products[0].ID)
	assert.Equal(t, "desc", products[0].Description)
	require.NotNil(t, products[0].Price)
	assert.Equal(t, 1450.0, *products[0].Price)
	assert.Nil(t, products[2].Price, "priceless items keep a NULL price")
	assert.False(t, products[0].CreatedAt.IsZero())
}

func TestSQLiteProductRepository_UpsertReplaces(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteProductRepository(setupSQLite(t), zerolog.Nop())
	require.NoError(t, repo.Upsert(ctx, testCatalog()))

	updated := testCatalog()[0]
	updated.Title = "HEX v2"
	updated.Price = nil
	require.NoError(t, repo.Upsert(ctx, []model.Product{updated}))

	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "HEX v2", products[0].Title)
	assert.Nil(t, products[0].Price)
}

func TestSQLiteProductRepository_GetAllEmpty(t *testing.T) {
	repo := NewSQLiteProductRepository(setupSQLite(t), zerolog.Nop())

	products, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestSQLiteProductRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteProductRepository(setupSQLite(t), zerolog.Nop())
	require.NoError(t, repo.Upsert(ctx, testCatalog()))

	tests := []struct {
		name          string
		id            string
		expectedTitle string
		expectNil     bool
	}{
		{name: "Existing product", id: "c101ab44", expectedTitle: "+1 hour"},
		{name: "Priceless product", id: "b06cde61", expectedTitle: "Mythical"},
		{name: "Unknown product", id: "missing", expectNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := repo.GetByID(ctx, tt.id)

			require.NoError(t, err)
			if tt.expectNil {
				assert.Nil(t, p)
				return
			}
			require.NotNil(t, p)
			assert.Equal(t, tt.expectedTitle, p.Title)
		})
	}
}

func TestSQLiteProductRepository_GetByIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteProductRepository(setupSQLite(t), zerolog.Nop())
	require.NoError(t, repo.Upsert(ctx, testCatalog()))

	tests := []struct {
		name          string
		ids           []string
		expectedCount int
	}{
		{name: "All found", ids: []string{"854cef69", "b06cde61"}, expectedCount: 2},
		{name: "Unknown skipped", ids: []string{"854cef69", "missing"}, expectedCount: 1},
		{name: "Empty input", ids: nil, expectedCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := repo.GetByIDs(ctx, tt.ids)

			require.NoError(t, err)
			assert.Len(t, products, tt.expectedCount)
		})
	}
}

func TestSQLiteOrderRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	require.NoError(t, NewSQLiteProductRepository(db, zerolog.Nop()).Upsert(ctx, testCatalog()))
	repo := NewSQLiteOrderRepository(db, zerolog.Nop())

	order := &model.Order{
		ID:        uuid.New(),
		Address:   "Moscow",
		Email:     "e@x.com",
		Phone:     "+7 900",
		Payment:   model.PaymentCard,
		Total:     2200,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	items := []model.OrderItem{
		{OrderID: order.ID, Position: 0, ProductID: "854cef69"},
		{OrderID: order.ID, Position: 1, ProductID: "c101ab44"},
	}

	require.NoError(t, repo.CreateOrder(ctx, order, items))

	got, gotItems, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, "Moscow", got.Address)
	assert.Equal(t, 2200.0, got.Total)
	assert.True(t, order.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, items, gotItems)
}

func TestSQLiteOrderRepository_GetByIDNotFound(t *testing.T) {
	repo := NewSQLiteOrderRepository(setupSQLite(t), zerolog.Nop())

	order, items, err := repo.GetByID(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Nil(t, order)
	assert.Nil(t, items)
}

func TestSQLiteOrderRepository_RollbackOnBadItem(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	require.NoError(t, NewSQLiteProductRepository(db, zerolog.Nop()).Upsert(ctx, testCatalog()))
	repo := NewSQLiteOrderRepository(db, zerolog.Nop())

	order := &model.Order{
		ID:        uuid.New(),
		Address:   "Moscow",
		Email:     "e@x.com",
		Phone:     "+7 900",
		Payment:   model.PaymentCash,
		Total:     1450,
		CreatedAt: time.Now().UTC(),
	}
	items := []model.OrderItem{
		{OrderID: order.ID, Position: 0, ProductID: "854cef69"},
		{OrderID: order.ID, Position: 1, ProductID: "does-not-exist"},
	}

	err := repo.CreateOrder(ctx, order, items)
	require.Error(t, err)

	got, _, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "failed orders are rolled back")
}
