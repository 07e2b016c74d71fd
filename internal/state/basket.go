package state

import "larek/internal/model"

// Basket holds the products chosen for purchase, without duplicates.
type Basket struct {
	items []model.Product
}

// NewBasket creates an empty basket.
func NewBasket() *Basket {
	return &Basket{}
}

// Add appends product unless a product with the same id is already present.
func (b *Basket) Add(product model.Product) {
	if b.Contains(product.ID) {
		return
	}
	b.items = append(b.items, product)
}

// Remove drops the product with the given id, if present.
func (b *Basket) Remove(id string) {
	for i, p := range b.items {
		if p.ID == id {
			b.items = append(b.items[:i:i], b.items[i+1:]...)
			return
		}
	}
}

// Contains reports whether a product with the given id is in the basket.
func (b *Basket) Contains(id string) bool {
	for _, p := range b.items {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Clear empties the basket.
func (b *Basket) Clear() {
	b.items = nil
}

// Products returns the line items in insertion order.
func (b *Basket) Products() []model.Product {
	return append([]model.Product(nil), b.items...)
}

// IDs returns the line item ids in insertion order.
func (b *Basket) IDs() []string {
	ids := make([]string, len(b.items))
	for i, p := range b.items {
		ids[i] = p.ID
	}
	return ids
}

// Count returns the number of line items.
func (b *Basket) Count() int {
	return len(b.items)
}

// Total sums line item prices; priceless items count as zero.
func (b *Basket) Total() float64 {
	var total float64
	for _, p := range b.items {
		total += p.PriceOrZero()
	}
	return total
}
