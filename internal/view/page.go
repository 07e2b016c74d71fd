package view

import (
	"strconv"

	"larek/internal/events"
)

// PagePatch updates the page root. Nil fields are left untouched.
type PagePatch struct {
	Counter *int
	Cards   []*Node
	Locked  *bool
}

// Page is the catalog page: basket counter, product gallery and scroll lock.
type Page struct {
	root    *Node
	wrapper *Node
	basket  *Node
	counter *Node
	gallery *Node
}

var _ View[PagePatch] = (*Page)(nil)

// NewPage builds the page. Clicking the header basket publishes BasketOpen.
func NewPage(bus Publisher) *Page {
	p := &Page{
		counter: N("header-basket-counter", "span").Class("header__basket-counter").Text("0"),
		gallery: N("gallery", "main").Class("gallery"),
	}
	p.basket = N("header-basket", "div").Class("header__basket").Child(p.counter)
	p.basket.OnClick = func() { bus.Publish(events.BasketOpen, nil) }

	p.wrapper = N("page-wrapper", "div").Class("page__wrapper").Child(
		N("header", "header").Class("header").Child(
			N("header-logo", "span").Class("header__logo").Text("Web-larek"),
			p.basket,
		),
		p.gallery,
	)
	p.root = N("page", "div").Class("page").Child(p.wrapper)
	return p
}

// Render applies the patch and returns the page root.
func (p *Page) Render(patch PagePatch) *Node {
	if patch.Counter != nil {
		p.SetCounter(*patch.Counter)
	}
	if patch.Cards != nil {
		p.SetCards(patch.Cards)
	}
	if patch.Locked != nil {
		p.SetLocked(*patch.Locked)
	}
	return p.root
}

// SetCounter shows the number of basket line items.
func (p *Page) SetCounter(n int) {
	p.counter.SetText(strconv.Itoa(n))
}

// SetCards replaces the gallery contents.
func (p *Page) SetCards(cards []*Node) {
	p.gallery.SetChildren(cards...)
}

// SetLocked toggles the scroll lock used while a modal is open.
func (p *Page) SetLocked(locked bool) {
	p.wrapper.ToggleClass("page__wrapper_locked", locked)
}

// Locked reports whether scrolling is locked.
func (p *Page) Locked() bool {
	return p.wrapper.HasClass("page__wrapper_locked")
}

// Root returns the page root node.
func (p *Page) Root() *Node {
	return p.root
}
