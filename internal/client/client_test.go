package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"larek/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL + "/api/weblarek/", CDNURL: "https://cdn.example/content/weblarek"}, zerolog.Nop())
}

func TestClient_ProductList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/weblarek/product/", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total":2,"items":[
			{"id":"a","title":"HEX","image":"/5_Dots.svg","category":"другое","price":1450},
			{"id":"b","title":"Timer","image":"https://elsewhere.example/x.svg","category":"софт-скил","price":null}
		]}`))
	})

	products, err := c.ProductList(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "https://cdn.example/content/weblarek/5_Dots.svg", products[0].Image)
	require.NotNil(t, products[0].Price)
	assert.Equal(t, 1450.0, *products[0].Price)
	assert.Equal(t, "https://elsewhere.example/x.svg", products[1].Image, "absolute urls are kept")
	assert.Nil(t, products[1].Price)
}

func TestClient_Product(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/weblarek/product/854cef69", r.URL.Path)
		w.Write([]byte(`{"id":"854cef69","title":"+1 hour","image":"Asterisk_2.svg","price":750}`))
	})

	p, err := c.Product(context.Background(), "854cef69")

	require.NoError(t, err)
	assert.Equal(t, "+1 hour", p.Title)
	assert.Equal(t, "https://cdn.example/content/weblarek/Asterisk_2.svg", p.Image)
}

func TestClient_Order(t *testing.T) {
	req := model.OrderRequest{
		Items:   []string{"a"},
		Address: "Moscow",
		Email:   "e@x.com",
		Phone:   "123",
		Payment: model.PaymentCard,
		Total:   1450,
	}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/weblarek/order", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got model.OrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, req, got)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"28c57cb4","total":1450}`))
	})

	result, err := c.Order(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, model.OrderResult{ID: "28c57cb4", Total: 1450}, result)
}

func TestClient_APIKey(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get("X-API-Key"))
		w.Write([]byte(`{"total":0,"items":[]}`))
	}))
	t.Cleanup(srv.Close)

	_, err := New(Config{BaseURL: srv.URL, APIKey: "secret"}, zerolog.Nop()).ProductList(context.Background())
	require.NoError(t, err)
	_, err = New(Config{BaseURL: srv.URL}, zerolog.Nop()).ProductList(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"secret", ""}, got)
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		body            string
		expectedMessage string
	}{
		{name: "JSON error body", status: http.StatusBadRequest, body: `{"error":"Order total does not match item prices"}`, expectedMessage: "Order total does not match item prices"},
		{name: "Empty body", status: http.StatusInternalServerError, body: ``, expectedMessage: "Internal Server Error"},
		{name: "Non-JSON body", status: http.StatusBadGateway, body: `<html>`, expectedMessage: "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := c.Order(context.Background(), model.OrderRequest{})

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.expectedMessage, apiErr.Message)
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := New(Config{BaseURL: srv.URL}, zerolog.Nop())

	_, err := c.ProductList(context.Background())

	assert.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestClient_InvalidJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := c.ProductList(context.Background())

	assert.ErrorContains(t, err, "failed to decode response")
}
