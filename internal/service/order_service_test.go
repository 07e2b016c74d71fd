package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"larek/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, order *model.Order, items []model.OrderItem) error {
	args := m.Called(ctx, order, items)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.Order), args.Get(1).([]model.OrderItem), args.Error(2)
}

func validRequest() *model.OrderRequest {
	return &model.OrderRequest{
		Items:   []string{"P001", "P002"},
		Address: "Moscow",
		Email:   "e@x.com",
		Phone:   "+7 900",
		Payment: model.PaymentCard,
		Total:   2200,
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		modify        func(r *model.OrderRequest)
		products      []model.Product
		productsErr   error
		createErr     error
		expectedError error
		errorContains string
		fetches       bool
		creates       bool
	}{
		{
			name:     "Success",
			modify:   func(r *model.OrderRequest) {},
			products: catalog[:2],
			fetches:  true,
			creates:  true,
		},
		{
			name:     "Success with cash and rounding noise",
			modify:   func(r *model.OrderRequest) { r.Payment = model.PaymentCash; r.Total = 2200.001 },
			products: catalog[:2],
			fetches:  true,
			creates:  true,
		},
		{
			name:          "Empty order",
			modify:        func(r *model.OrderRequest) { r.Items = nil },
			expectedError: model.ErrEmptyOrder,
		},
		{
			name:          "Missing email",
			modify:        func(r *model.OrderRequest) { r.Email = "" },
			expectedError: model.ErrMissingField,
		},
		{
			name:          "Missing payment",
			modify:        func(r *model.OrderRequest) { r.Payment = "" },
			expectedError: model.ErrMissingField,
		},
		{
			name:          "Unknown payment",
			modify:        func(r *model.OrderRequest) { r.Payment = "crypto" },
			expectedError: model.ErrInvalidPayment,
		},
		{
			name:          "Empty product id",
			modify:        func(r *model.OrderRequest) { r.Items = []string{""} },
			expectedError: model.ErrProductNotFound,
		},
		{
			name:          "Unknown product",
			modify:        func(r *model.OrderRequest) {},
			products:      catalog[:1],
			expectedError: model.ErrProductNotFound,
			fetches:       true,
		},
		{
			name: "Priceless product",
			modify: func(r *model.OrderRequest) {
				r.Items = []string{"P001", "P003"}
				r.Total = 1450
			},
			products:      []model.Product{catalog[0], catalog[2]},
			expectedError: model.ErrPricelessItem,
			fetches:       true,
		},
		{
			name:          "Total mismatch",
			modify:        func(r *model.OrderRequest) { r.Total = 100 },
			products:      catalog[:2],
			expectedError: model.ErrTotalMismatch,
			fetches:       true,
		},
		{
			name:          "Product lookup error",
			modify:        func(r *model.OrderRequest) {},
			productsErr:   errors.New("database error"),
			errorContains: "failed to retrieve products",
			fetches:       true,
		},
		{
			name:          "Create error",
			modify:        func(r *model.OrderRequest) {},
			products:      catalog[:2],
			createErr:     errors.New("database error"),
			errorContains: "failed to create order",
			fetches:       true,
			creates:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(req)

			productRepo := new(MockProductRepository)
			orderRepo := new(MockOrderRepository)
			if tt.fetches {
				productRepo.On("GetByIDs", ctx, req.Items).Return(tt.products, tt.productsErr)
			}
			if tt.creates {
				orderRepo.On("CreateOrder", ctx, mock.AnythingOfType("*model.Order"), mock.AnythingOfType("[]model.OrderItem")).
					Return(tt.createErr)
			}

			service := NewOrderService(orderRepo, productRepo, zerolog.Nop())
			result, err := service.CreateOrder(ctx, req)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			case tt.errorContains != "":
				assert.ErrorContains(t, err, tt.errorContains)
				assert.Nil(t, result)
			default:
				require.NoError(t, err)
				require.NotNil(t, result)
				_, parseErr := uuid.Parse(result.ID)
				assert.NoError(t, parseErr)
				assert.Equal(t, 2200.0, result.Total)
			}

			productRepo.AssertExpectations(t)
			orderRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_CreateOrderStoresItemsInOrder(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	productRepo.On("GetByIDs", ctx, []string{"P002", "P001"}).Return(catalog[:2], nil)

	var stored *model.Order
	var storedItems []model.OrderItem
	orderRepo.On("CreateOrder", ctx, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*model.Order)
			storedItems = args.Get(2).([]model.OrderItem)
		}).
		Return(nil)

	svc := NewOrderService(orderRepo, productRepo, zerolog.Nop()).(*orderService)
	svc.now = func() time.Time { return fixed }

	req := validRequest()
	req.Items = []string{"P002", "P001"}
	result, err := svc.CreateOrder(ctx, req)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, result.ID, stored.ID.String())
	assert.Equal(t, fixed, stored.CreatedAt)
	assert.Equal(t, "Moscow", stored.Address)
	assert.Equal(t, []model.OrderItem{
		{OrderID: stored.ID, Position: 0, ProductID: "P002"},
		{OrderID: stored.ID, Position: 1, ProductID: "P001"},
	}, storedItems)
}

func TestOrderService_CreateOrderNilRequest(t *testing.T) {
	service := NewOrderService(new(MockOrderRepository), new(MockProductRepository), zerolog.Nop())

	result, err := service.CreateOrder(context.Background(), nil)

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestOrderService_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("Found", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		orderRepo.On("GetByID", ctx, id).Return(
			&model.Order{ID: id, Address: "Moscow", Payment: model.PaymentCash, Total: 750},
			[]model.OrderItem{{OrderID: id, Position: 0, ProductID: "P002"}},
			nil,
		)

		service := NewOrderService(orderRepo, new(MockProductRepository), zerolog.Nop())
		details, err := service.GetByID(ctx, id)

		require.NoError(t, err)
		require.NotNil(t, details)
		assert.Equal(t, id, details.ID)
		assert.Equal(t, []string{"P002"}, details.Items)
	})

	t.Run("Not found", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		orderRepo.On("GetByID", ctx, id).Return(nil, nil, nil)

		service := NewOrderService(orderRepo, new(MockProductRepository), zerolog.Nop())
		details, err := service.GetByID(ctx, id)

		require.NoError(t, err)
		assert.Nil(t, details)
	})

	t.Run("Repository error", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		orderRepo.On("GetByID", ctx, id).Return(nil, nil, errors.New("database error"))

		service := NewOrderService(orderRepo, new(MockProductRepository), zerolog.Nop())
		details, err := service.GetByID(ctx, id)

		assert.ErrorContains(t, err, "failed to get order")
		assert.Nil(t, details)
	})
}
