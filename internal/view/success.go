package view

import "larek/internal/events"

// SuccessPatch updates the success panel.
type SuccessPatch struct {
	Total *float64
}

// Success confirms a placed order.
type Success struct {
	root  *Node
	total *Node
}

var _ View[SuccessPatch] = (*Success)(nil)

// NewSuccess builds the panel. Its close button publishes SuccessClose.
func NewSuccess(bus Publisher) *Success {
	s := &Success{
		total: N("success-description", "p").Class("order-success__description"),
	}
	closeBtn := N("success-close", "button").Class("button", "order-success__close").Text("Next purchases!")
	closeBtn.OnClick = func() { bus.Publish(events.SuccessClose, nil) }
	s.root = N("success", "div").Class("order-success").Child(
		N("success-title", "h2").Class("order-success__title").Text("Order placed"),
		s.total,
		closeBtn,
	)
	return s
}

// Render applies the patch and returns the panel root.
func (s *Success) Render(patch SuccessPatch) *Node {
	if patch.Total != nil {
		s.SetTotal(*patch.Total)
	}
	return s.root
}

// SetTotal shows the amount written off.
func (s *Success) SetTotal(total float64) {
	s.total.SetText("Written off " + FormatNumber(total) + " " + currency)
}
