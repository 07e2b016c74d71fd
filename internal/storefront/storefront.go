// Package storefront wires the models and views together over the event bus.
package storefront

import (
	"context"
	"errors"

	"larek/internal/client"
	"larek/internal/events"
	"larek/internal/model"
	"larek/internal/state"
	"larek/internal/view"

	"github.com/rs/zerolog"
)

// Storefront owns the storefront models and views and reacts to bus events.
// It is not safe for concurrent use.
type Storefront struct {
	bus    *events.Bus
	api    client.API
	logger zerolog.Logger

	catalog *state.Catalog
	basket  *state.Basket
	draft   *state.Draft

	page       *view.Page
	modal      *view.Modal
	basketView *view.Basket
	order      *view.OrderForm
	contacts   *view.OrderForm
	success    *view.Success
}

// New builds a storefront and registers its handlers on bus.
func New(bus *events.Bus, api client.API, logger zerolog.Logger) *Storefront {
	s := &Storefront{
		bus:        bus,
		api:        api,
		logger:     logger.With().Str("component", "storefront").Logger(),
		catalog:    state.NewCatalog(bus),
		basket:     state.NewBasket(),
		draft:      state.NewDraft(bus),
		page:       view.NewPage(bus),
		modal:      view.NewModal(bus),
		basketView: view.NewBasket(bus),
		order:      view.NewOrderForm(bus),
		contacts:   view.NewContactsForm(bus),
		success:    view.NewSuccess(bus),
	}
	s.register()
	return s
}

func (s *Storefront) register() {
	s.bus.OnAll(func(ev events.Event) {
		s.logger.Debug().Str("event", ev.Name).Interface("payload", ev.Payload).Msg("event")
	})

	s.bus.On(events.ProductsChanged, s.onProductsChanged)
	s.bus.On(events.ProductSelect, s.onProductSelect)
	s.bus.On(events.PreviewChanged, s.onPreviewChanged)
	s.bus.On(events.ModalOpen, func(events.Event) { s.page.SetLocked(true) })
	s.bus.On(events.ModalClose, func(events.Event) { s.page.SetLocked(false) })

	s.bus.On(events.BasketOpen, func(events.Event) {
		s.modal.Render(view.ModalPatch{Content: s.basketView.Root()})
	})
	s.bus.On(events.BasketChanged, s.onBasketChanged)
	s.bus.On(events.BasketAdd, s.onBasketAdd)
	s.bus.On(events.PreviewDelete, s.onPreviewDelete)
	s.bus.On(events.BasketDelete, s.onBasketDelete)

	s.bus.On(events.OrderOpen, func(events.Event) {
		s.openForm(s.order, state.FieldAddress, state.FieldPayment)
	})
	s.bus.On(events.OrderSubmit, func(events.Event) {
		s.openForm(s.contacts, state.FieldEmail, state.FieldPhone)
	})
	s.bus.On(events.FormErrorsChanged, s.onFormErrors)
	s.bus.On(events.PaymentSelect, s.onPaymentSelect)
	s.bus.Subscribe(events.FieldChanges(events.FormOrder), s.onFieldChange)
	s.bus.Subscribe(events.FieldChanges(events.FormContacts), s.onFieldChange)

	s.bus.On(events.ContactsSubmit, func(events.Event) {
		// Failures are logged by Submit and leave the checkout open for a retry.
		_ = s.Submit(context.Background())
	})
	s.bus.On(events.SuccessClose, func(events.Event) { s.modal.Close() })
}

// Load fetches the catalog. On failure nothing changes.
func (s *Storefront) Load(ctx context.Context) error {
	products, err := s.api.ProductList(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load catalog")
		return err
	}
	s.catalog.SetProducts(products)
	s.logger.Info().Int("count", len(products)).Msg("catalog loaded")
	return nil
}

// Submit posts the draft, which already carries the basket contents. On
// success it shows the confirmation and empties the basket and the draft; on
// failure nothing changes.
func (s *Storefront) Submit(ctx context.Context) error {
	order := s.draft.Order()
	total := order.Total

	result, err := s.api.Order(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to place order")
		return err
	}
	s.logger.Info().Str("order_id", result.ID).Float64("total", total).Msg("order placed")

	s.modal.Render(view.ModalPatch{Content: s.success.Render(view.SuccessPatch{Total: &total})})
	s.basket.Clear()
	s.order.ClearPayment()
	s.draft.Reset()
	s.bus.Publish(events.BasketChanged, nil)
	return nil
}

// Dispatch delivers a user action to the page or, failing that, the modal.
func (s *Storefront) Dispatch(a view.Action) error {
	err := view.Dispatch(s.page.Root(), a)
	if errors.Is(err, view.ErrNodeNotFound) {
		err = view.Dispatch(s.modal.Root(), a)
	}
	return err
}

// PageRoot returns the page node tree.
func (s *Storefront) PageRoot() *view.Node {
	return s.page.Root()
}

// ModalRoot returns the modal node tree.
func (s *Storefront) ModalRoot() *view.Node {
	return s.modal.Root()
}

// ModalOpen reports whether the modal is showing.
func (s *Storefront) ModalOpen() bool {
	return s.modal.IsOpen()
}

// Catalog returns the catalog model.
func (s *Storefront) Catalog() *state.Catalog { return s.catalog }

// Basket returns the basket model.
func (s *Storefront) Basket() *state.Basket { return s.basket }

// Draft returns the order draft.
func (s *Storefront) Draft() *state.Draft { return s.draft }

func (s *Storefront) onProductsChanged(ev events.Event) {
	products, _ := ev.Payload.([]model.Product)
	cards := make([]*view.Node, 0, len(products))
	for _, p := range products {
		product := p
		card := view.NewCard(view.CardCatalog, product, view.CardOptions{
			InBasket: s.basket.Contains(product.ID),
			OnClick:  func() { s.bus.Publish(events.ProductSelect, product) },
		}, s.bus)
		cards = append(cards, card.Root())
	}
	s.page.SetCards(cards)
}

func (s *Storefront) onProductSelect(ev events.Event) {
	p, ok := ev.Payload.(model.Product)
	if !ok {
		return
	}
	if err := s.catalog.SetPreview(p.ID); err != nil {
		s.logger.Debug().Err(err).Str("product_id", p.ID).Msg("ignoring selection")
	}
}

func (s *Storefront) onPreviewChanged(ev events.Event) {
	p, ok := ev.Payload.(model.Product)
	if !ok {
		s.modal.Close()
		return
	}
	s.showPreview(p)
}

func (s *Storefront) showPreview(p model.Product) {
	card := view.NewCard(view.CardPreview, p, view.CardOptions{InBasket: s.basket.Contains(p.ID)}, s.bus)
	s.modal.Render(view.ModalPatch{Content: card.Root()})
}

func (s *Storefront) onBasketChanged(events.Event) {
	products := s.basket.Products()
	items := make([]*view.Node, 0, len(products))
	for i, p := range products {
		card := view.NewCard(view.CardBasket, p, view.CardOptions{InBasket: true, Index: i + 1}, s.bus)
		items = append(items, card.Root())
	}

	s.page.SetCounter(s.basket.Count())
	s.basketView.SetTotal(s.basket.Total())
	s.basketView.SetItems(items)

	s.draft.SetItems(s.basket.IDs())
	s.draft.SetTotal(s.basket.Total())
}

func (s *Storefront) onBasketAdd(ev events.Event) {
	p, ok := ev.Payload.(model.Product)
	if !ok {
		return
	}
	s.changeBasket(func(b *state.Basket) { b.Add(p) })
	s.showPreview(p)
}

func (s *Storefront) onPreviewDelete(ev events.Event) {
	p, ok := ev.Payload.(model.Product)
	if !ok {
		return
	}
	s.changeBasket(func(b *state.Basket) { b.Remove(p.ID) })
	s.showPreview(p)
}

func (s *Storefront) onBasketDelete(ev events.Event) {
	p, ok := ev.Payload.(model.Product)
	if !ok {
		return
	}
	s.changeBasket(func(b *state.Basket) { b.Remove(p.ID) })
}

// changeBasket applies a basket mutation and announces it.
func (s *Storefront) changeBasket(mutate func(*state.Basket)) {
	mutate(s.basket)
	s.bus.Publish(events.BasketChanged, nil)
}

// openForm shows a checkout step filled from the draft, so the form never
// disagrees with what would be submitted. An untouched step shows no errors.
func (s *Storefront) openForm(form *view.OrderForm, fields ...state.Field) {
	values := make(map[string]string, len(fields))
	errs := s.draft.Errors()
	valid, touched := true, false
	var messages []string
	for _, f := range fields {
		v := s.draft.Value(f)
		values[string(f)] = v
		valid = valid && v != ""
		touched = touched || v != ""
		messages = append(messages, errs[f])
	}
	joined := ""
	if touched {
		joined = view.JoinErrors(messages...)
	}

	s.modal.Render(view.ModalPatch{Content: form.Render(view.FormPatch{
		Valid:  &valid,
		Errors: &joined,
		Values: values,
	})})
}

func (s *Storefront) onFormErrors(ev events.Event) {
	errs, _ := ev.Payload.(state.FormErrors)

	s.order.SetValid(errs[state.FieldAddress] == "" && errs[state.FieldPayment] == "")
	s.order.SetErrors(view.JoinErrors(errs[state.FieldAddress], errs[state.FieldPayment]))

	s.contacts.SetValid(errs[state.FieldEmail] == "" && errs[state.FieldPhone] == "")
	s.contacts.SetErrors(view.JoinErrors(errs[state.FieldEmail], errs[state.FieldPhone]))
}

func (s *Storefront) onPaymentSelect(ev events.Event) {
	choice, ok := ev.Payload.(events.PaymentChoice)
	if !ok {
		return
	}
	s.setField(string(state.FieldPayment), choice.Payment)
}

func (s *Storefront) onFieldChange(ev events.Event) {
	change, ok := ev.Payload.(events.FieldChange)
	if !ok {
		return
	}
	s.setField(change.Field, change.Value)
}

func (s *Storefront) setField(name, value string) {
	field, err := state.ParseField(name)
	if err == nil {
		err = s.draft.SetField(field, value)
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("field", name).Msg("ignoring field change")
	}
}
