package service

import (
	"context"
	"fmt"

	"larek/internal/model"
	"larek/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves the whole catalog wrapped in a list envelope.
func (s *productService) List(ctx context.Context) (*model.ListResponse[model.Product], error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	if products == nil {
		products = []model.Product{}
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return &model.ListResponse[model.Product]{
		Total: len(products),
		Items: products,
	}, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Import upserts products, skipping entries without an id.
func (s *productService) Import(ctx context.Context, products []model.Product) error {
	valid := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.ID == "" {
			s.logger.Warn().Str("title", p.Title).Msg("skipping product without id")
			continue
		}
		valid = append(valid, p)
	}

	if err := s.productRepo.Upsert(ctx, valid); err != nil {
		s.logger.Error().Err(err).Int("count", len(valid)).Msg("failed to import products")
		return fmt.Errorf("failed to import products: %w", err)
	}

	s.logger.Info().Int("count", len(valid)).Msg("products imported")
	return nil
}
