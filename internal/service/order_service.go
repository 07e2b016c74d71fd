package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"larek/internal/model"
	"larek/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// totalTolerance absorbs float rounding when comparing order totals.
const totalTolerance = 0.005

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
	now         func() time.Time
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "order").Logger(),
		now:         time.Now,
	}
}

// CreateOrder validates the request against the catalog and stores it.
func (s *orderService) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResult, error) {
	if err := s.validateOrderRequest(req); err != nil {
		return nil, err
	}

	products, err := s.productRepo.GetByIDs(ctx, req.Items)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to retrieve ordered products")
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var sum float64
	for _, id := range req.Items {
		p, ok := byID[id]
		if !ok {
			s.logger.Warn().Str("product_id", id).Msg("ordered product does not exist")
			return nil, model.ErrProductNotFound
		}
		if p.Priceless() {
			s.logger.Warn().Str("product_id", id).Msg("ordered product is priceless")
			return nil, model.ErrPricelessItem
		}
		sum += *p.Price
	}

	if math.Abs(sum-req.Total) > totalTolerance {
		s.logger.Warn().
			Float64("expected", sum).
			Float64("provided", req.Total).
			Msg("order total mismatch")
		return nil, model.ErrTotalMismatch
	}

	order := &model.Order{
		ID:        uuid.New(),
		Address:   req.Address,
		Email:     req.Email,
		Phone:     req.Phone,
		Payment:   req.Payment,
		Total:     sum,
		CreatedAt: s.now().UTC(),
	}

	items := make([]model.OrderItem, len(req.Items))
	for i, id := range req.Items {
		items[i] = model.OrderItem{
			OrderID:   order.ID,
			Position:  i,
			ProductID: id,
		}
	}

	if err := s.orderRepo.CreateOrder(ctx, order, items); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("item_count", len(items)).
		Float64("total", sum).
		Msg("order created successfully")

	return &model.OrderResult{
		ID:    order.ID.String(),
		Total: sum,
	}, nil
}

// GetByID retrieves an order by its ID with its product ids.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.OrderDetails, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return nil, nil
	}

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ProductID
	}

	return &model.OrderDetails{Order: *order, Items: ids}, nil
}

// validateOrderRequest checks the request shape before touching the catalog.
func (s *orderService) validateOrderRequest(req *model.OrderRequest) error {
	if req == nil {
		return fmt.Errorf("order request is nil")
	}

	if len(req.Items) == 0 {
		return model.ErrEmptyOrder
	}

	for i, id := range req.Items {
		if id == "" {
			s.logger.Warn().Int("item_index", i).Msg("empty product id")
			return model.ErrProductNotFound
		}
	}

	if req.Address == "" || req.Email == "" || req.Phone == "" || req.Payment == "" {
		return model.ErrMissingField
	}

	if req.Payment != model.PaymentCard && req.Payment != model.PaymentCash {
		s.logger.Warn().Str("payment", req.Payment).Msg("invalid payment method")
		return model.ErrInvalidPayment
	}

	return nil
}
