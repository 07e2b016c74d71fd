package view

import "larek/internal/events"

// emptyBasketText is shown instead of line items when the basket is empty.
const emptyBasketText = "Basket is empty"

// BasketPatch updates the basket panel. Nil fields are left untouched.
type BasketPatch struct {
	Items []*Node
	Total *float64
}

// Basket is the basket panel shown in the modal.
type Basket struct {
	root   *Node
	list   *Node
	total  *Node
	button *Node
}

var _ View[BasketPatch] = (*Basket)(nil)

// NewBasket builds an empty basket panel. The checkout button publishes OrderOpen.
func NewBasket(bus Publisher) *Basket {
	b := &Basket{
		list:   N("basket-list", "ul").Class("basket__list"),
		total:  N("basket-price", "span").Class("basket__price"),
		button: N("basket-checkout", "button").Class("button", "basket__button").Text("Checkout"),
	}
	b.button.OnClick = func() { bus.Publish(events.OrderOpen, nil) }
	b.root = N("basket", "div").Class("basket").Child(
		N("basket-title", "h2").Class("modal__title").Text("Basket"),
		b.list,
		N("basket-actions", "div").Class("modal__actions").Child(b.button, b.total),
	)
	b.SetItems(nil)
	b.SetTotal(0)
	return b
}

// Render applies the patch and returns the panel root.
func (b *Basket) Render(patch BasketPatch) *Node {
	if patch.Items != nil {
		b.SetItems(patch.Items)
	}
	if patch.Total != nil {
		b.SetTotal(*patch.Total)
	}
	return b.root
}

// SetItems shows the line items, or a placeholder with checkout disabled
// when there are none.
func (b *Basket) SetItems(items []*Node) {
	if len(items) == 0 {
		b.list.SetChildren(N("basket-empty", "p").Text(emptyBasketText))
		b.button.SetDisabled(true)
		return
	}
	b.list.SetChildren(items...)
	b.button.SetDisabled(false)
}

// SetTotal shows the basket sum.
func (b *Basket) SetTotal(total float64) {
	b.total.SetText(FormatNumber(total) + " " + currency)
}

// Root returns the panel root node.
func (b *Basket) Root() *Node {
	return b.root
}
