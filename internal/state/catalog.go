package state

import (
	"larek/internal/events"
	"larek/internal/model"
)

// Catalog owns the fetched product list and the preview selection.
type Catalog struct {
	products []model.Product
	preview  string
	bus      Publisher
}

// NewCatalog creates an empty catalog.
func NewCatalog(bus Publisher) *Catalog {
	return &Catalog{bus: bus}
}

// SetProducts replaces the product list and publishes ProductsChanged.
// A preview that no longer resolves is dropped.
func (c *Catalog) SetProducts(products []model.Product) {
	c.products = append([]model.Product(nil), products...)
	if c.preview != "" && c.index(c.preview) < 0 {
		c.preview = ""
	}
	c.bus.Publish(events.ProductsChanged, c.Products())
}

// Products returns a copy of the product list.
func (c *Catalog) Products() []model.Product {
	return append([]model.Product(nil), c.products...)
}

// Product returns the product with the given id.
func (c *Catalog) Product(id string) (model.Product, error) {
	i := c.index(id)
	if i < 0 {
		return model.Product{}, model.ErrProductNotFound
	}
	return c.products[i], nil
}

// SetPreview selects a product for inspection and publishes PreviewChanged
// with it. An unknown id leaves the preview untouched and publishes nothing.
func (c *Catalog) SetPreview(id string) error {
	p, err := c.Product(id)
	if err != nil {
		return err
	}
	c.preview = id
	c.bus.Publish(events.PreviewChanged, p)
	return nil
}

// ClearPreview drops the selection and publishes PreviewChanged with a nil payload.
func (c *Catalog) ClearPreview() {
	c.preview = ""
	c.bus.Publish(events.PreviewChanged, nil)
}

// Preview returns the product under inspection, if any.
func (c *Catalog) Preview() (model.Product, bool) {
	if c.preview == "" {
		return model.Product{}, false
	}
	p, err := c.Product(c.preview)
	return p, err == nil
}

func (c *Catalog) index(id string) int {
	for i, p := range c.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
