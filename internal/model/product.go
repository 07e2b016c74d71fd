package model

import "time"

// Product represents an item in the storefront catalogue.
// A nil Price marks a priceless item that cannot be bought.
type Product struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Image       string    `json:"image" db:"image"`
	Category    string    `json:"category" db:"category"`
	Price       *float64  `json:"price" db:"price"`
	CreatedAt   time.Time `json:"-" db:"created_at"`
}

// Priceless reports whether the product has no price.
func (p Product) Priceless() bool {
	return p.Price == nil
}

// PriceOrZero returns the price, treating a missing price as zero.
func (p Product) PriceOrZero() float64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}

// ListResponse is the envelope returned by the product list endpoint.
type ListResponse[T any] struct {
	Total int `json:"total"`
	Items []T `json:"items"`
}

// Price returns a pointer to v, for building products in code.
func Price(v float64) *float64 {
	return &v
}
