// Package client talks to the catalog API: it fetches products, rewriting
// their relative image paths onto the asset host, and submits orders.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"larek/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// API is the catalog API as seen by the storefront.
type API interface {
	// ProductList fetches the full catalog.
	ProductList(ctx context.Context) ([]model.Product, error)

	// Product fetches a single product by id.
	Product(ctx context.Context, id string) (model.Product, error)

	// Order submits an order.
	Order(ctx context.Context, order model.OrderRequest) (model.OrderResult, error)
}

// APIError is returned when the API answers with a non-2xx status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Config holds client settings.
type Config struct {
	// BaseURL is the API root, e.g. "https://larek-api.example/api/weblarek".
	BaseURL string
	// CDNURL prefixes relative product image paths.
	CDNURL string
	// Timeout bounds each request; zero means no timeout.
	Timeout time.Duration
	// APIKey is sent as X-API-Key when set.
	APIKey string
}

// Client implements API over HTTP.
type Client struct {
	baseURL string
	cdnURL  string
	apiKey  string
	http    *http.Client
	logger  zerolog.Logger
}

var _ API = (*Client)(nil)

// New creates a client.
func New(cfg Config, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		cdnURL:  strings.TrimRight(cfg.CDNURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger.With().Str("component", "api-client").Logger(),
	}
}

// ProductList fetches the full catalog.
func (c *Client) ProductList(ctx context.Context) ([]model.Product, error) {
	var resp model.ListResponse[model.Product]
	if err := c.do(ctx, http.MethodGet, "/product/", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	products := make([]model.Product, len(resp.Items))
	for i, p := range resp.Items {
		products[i] = c.withCDN(p)
	}

	c.logger.Debug().Int("count", len(products)).Msg("fetched product list")
	return products, nil
}

// Product fetches a single product by id.
func (c *Client) Product(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	if err := c.do(ctx, http.MethodGet, "/product/"+url.PathEscape(id), nil, &p); err != nil {
		return model.Product{}, fmt.Errorf("failed to fetch product %s: %w", id, err)
	}
	return c.withCDN(p), nil
}

// Order submits an order.
func (c *Client) Order(ctx context.Context, order model.OrderRequest) (model.OrderResult, error) {
	var result model.OrderResult
	if err := c.do(ctx, http.MethodPost, "/order", order, &result); err != nil {
		return model.OrderResult{}, fmt.Errorf("failed to submit order: %w", err)
	}

	c.logger.Info().
		Str("order_id", result.ID).
		Float64("total", result.Total).
		Msg("order submitted")
	return result, nil
}

// withCDN rewrites a relative image path onto the asset host.
func (c *Client) withCDN(p model.Product) model.Product {
	if p.Image != "" && !strings.Contains(p.Image, "://") {
		p.Image = c.cdnURL + "/" + strings.TrimLeft(p.Image, "/")
	}
	return p
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Msg("api request failed")
		return err
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Str("request_id", requestID).
		Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeError turns an error response into an *APIError, falling back to the
// status text when the body has no message.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	var body model.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
	}
	return apiErr
}
