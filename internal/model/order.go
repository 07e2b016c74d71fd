package model

import (
	"time"

	"github.com/google/uuid"
)

// Payment methods accepted at checkout.
const (
	PaymentCard = "card"
	PaymentCash = "cash"
)

// OrderRequest represents the payload submitted when placing an order.
type OrderRequest struct {
	Items   []string `json:"items"`
	Address string   `json:"address"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Payment string   `json:"payment"`
	Total   float64  `json:"total"`
}

// OrderResult is returned once an order has been accepted.
type OrderResult struct {
	ID    string  `json:"id"`
	Total float64 `json:"total"`
}

// Order represents a stored customer order.
type Order struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Address   string    `json:"address" db:"address"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Payment   string    `json:"payment" db:"payment"`
	Total     float64   `json:"total" db:"total"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// OrderItem represents a line item in a stored order.
type OrderItem struct {
	OrderID   uuid.UUID `json:"-" db:"order_id"`
	Position  int       `json:"position" db:"position"`
	ProductID string    `json:"productId" db:"product_id"`
}

// OrderDetails is a stored order together with its product ids in order.
type OrderDetails struct {
	Order
	Items []string `json:"items"`
}
