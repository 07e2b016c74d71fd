package view

import (
	"strconv"

	"larek/internal/events"
	"larek/internal/model"
)

// CardLayout selects which product card template is built.
type CardLayout int

const (
	// CardCatalog is the clickable gallery tile.
	CardCatalog CardLayout = iota
	// CardPreview is the full card shown in the modal.
	CardPreview
	// CardBasket is the compact basket line item.
	CardBasket
)

func (l CardLayout) prefix() string {
	switch l {
	case CardPreview:
		return "preview"
	case CardBasket:
		return "basket-item"
	default:
		return "catalog"
	}
}

// categoryModifiers maps catalog category names to card CSS modifiers.
var categoryModifiers = map[string]string{
	"софт-скил":      "soft",
	"другое":         "other",
	"хард-скил":      "hard",
	"дополнительное": "additional",
	"кнопка":         "button",
}

// Button labels of the preview card.
const (
	buyLabel       = "Buy"
	removeLabel    = "Remove"
	notForSaleText = "Not for sale"
)

// CardOptions configure a product card.
type CardOptions struct {
	// InBasket chooses between the buy and remove actions. It is decided by
	// the caller; the card never inspects the basket.
	InBasket bool
	// Index is the 1-based position shown on basket line items.
	Index int
	// OnClick is invoked when a catalog tile is clicked.
	OnClick func()
}

// Card renders one product.
type Card struct {
	layout      CardLayout
	root        *Node
	title       *Node
	price       *Node
	category    *Node
	image       *Node
	description *Node
	index       *Node
	button      *Node
}

var _ View[model.Product] = (*Card)(nil)

// NewCard builds a card for product using the given layout.
func NewCard(layout CardLayout, product model.Product, opts CardOptions, bus Publisher) *Card {
	id := layout.prefix() + "-" + product.ID
	c := &Card{
		layout: layout,
		title:  N(id+"-title", "h2").Class("card__title"),
		price:  N(id+"-price", "span").Class("card__price"),
	}

	switch layout {
	case CardCatalog:
		c.category = N(id+"-category", "span").Class("card__category")
		c.image = N(id+"-image", "img").Class("card__image")
		c.root = N(id, "div").Class("gallery__item", "card").Child(c.category, c.title, c.image, c.price)
		c.root.OnClick = opts.OnClick

	case CardPreview:
		c.category = N(id+"-category", "span").Class("card__category")
		c.image = N(id+"-image", "img").Class("card__image")
		c.description = N(id+"-text", "p").Class("card__text")
		c.button = N(id+"-button", "button").Class("button", "card__button")
		c.root = N(id, "div").Class("card", "card_full").Child(
			c.image,
			N(id+"-column", "div").Class("card__column").Child(
				c.category, c.title, c.description,
				N(id+"-row", "div").Class("card__row").Child(c.button, c.price),
			),
		)
		c.bindAction(product, opts.InBasket, bus)

	case CardBasket:
		c.index = N(id+"-index", "span").Class("basket__item-index")
		c.button = N(id+"-delete", "button").Class("basket__item-delete").Prop("aria-label", "delete")
		c.button.OnClick = func() { bus.Publish(events.BasketDelete, product) }
		c.root = N(id, "li").Class("basket__item", "card", "card_compact").Child(c.index, c.title, c.price, c.button)
		c.SetIndex(opts.Index)
	}

	c.Render(product)
	return c
}

// bindAction wires the preview button to buy or remove the product.
func (c *Card) bindAction(product model.Product, inBasket bool, bus Publisher) {
	if product.Priceless() {
		c.button.SetText(notForSaleText)
		c.button.SetDisabled(true)
		return
	}
	if inBasket {
		c.button.SetText(removeLabel)
		c.button.OnClick = func() { bus.Publish(events.PreviewDelete, product) }
		return
	}
	c.button.SetText(buyLabel)
	c.button.OnClick = func() { bus.Publish(events.BasketAdd, product) }
}

// Render fills the card from product and returns its root.
func (c *Card) Render(product model.Product) *Node {
	c.title.SetText(product.Title)
	c.price.SetText(FormatPrice(product.Price))
	if c.category != nil {
		c.setCategory(product.Category)
	}
	if c.image != nil {
		c.image.Prop("src", product.Image).Prop("alt", product.Title)
	}
	if c.description != nil {
		c.description.SetText(product.Description)
	}
	return c.root
}

func (c *Card) setCategory(category string) {
	for _, mod := range categoryModifiers {
		c.category.ToggleClass("card__category_"+mod, false)
	}
	if mod, ok := categoryModifiers[category]; ok {
		c.category.ToggleClass("card__category_"+mod, true)
	}
	c.category.SetText(category)
}

// SetIndex sets the position shown on basket line items.
func (c *Card) SetIndex(i int) {
	if c.index != nil {
		c.index.SetText(strconv.Itoa(i))
	}
}

// Root returns the card root node.
func (c *Card) Root() *Node {
	return c.root
}

// Button returns the card's action button, or nil for catalog tiles.
func (c *Card) Button() *Node {
	return c.button
}
