package view

import (
	"strings"

	"larek/internal/events"
	"larek/internal/model"
)

// errorSeparator joins the messages shown under a form.
const errorSeparator = "; "

// FormPatch updates a checkout form. Nil fields are left untouched.
type FormPatch struct {
	Valid  *bool
	Errors *string
	// Values sets input contents by field name; "payment" selects a method.
	Values map[string]string
}

// OrderForm is one step of checkout.
type OrderForm struct {
	name    string
	root    *Node
	inputs  map[string]*Node
	payment []*Node
	submit  *Node
	errors  *Node
	bus     Publisher
}

var _ View[FormPatch] = (*OrderForm)(nil)

// NewOrderForm builds the first checkout step: payment method and address.
func NewOrderForm(bus Publisher) *OrderForm {
	f := newForm(events.FormOrder, "Next", bus)

	buttons := N("order-payment", "div").Class("order__buttons")
	for _, method := range []struct{ name, label string }{
		{model.PaymentCard, "Online"},
		{model.PaymentCash, "On delivery"},
	} {
		b := N("order-payment-"+method.name, "button").Class("button", "button_alt").Prop("name", method.name).Text(method.label)
		name := method.name
		b.OnClick = func() { f.SelectPayment(name) }
		f.payment = append(f.payment, b)
		buttons.Child(b)
	}

	f.root.Child(
		N("order-payment-field", "div").Class("order__field").Child(
			N("order-payment-label", "h2").Class("modal__title").Text("Payment method"),
			buttons,
		),
		f.input("address", "Delivery address", "Enter an address"),
	)
	f.root.Child(f.actions())
	return f
}

// NewContactsForm builds the second checkout step: email and phone.
func NewContactsForm(bus Publisher) *OrderForm {
	f := newForm(events.FormContacts, "Pay", bus)
	f.root.Child(
		f.input("email", "Email", "Enter an email"),
		f.input("phone", "Phone", "+7 ("),
	)
	f.root.Child(f.actions())
	return f
}

func newForm(name, submitLabel string, bus Publisher) *OrderForm {
	f := &OrderForm{
		name:   name,
		root:   N(name+"-form", "form").Class("form"),
		inputs: make(map[string]*Node),
		errors: N(name+"-errors", "span").Class("form__errors"),
		bus:    bus,
	}
	f.submit = N(name+"-submit", "button").Class("button").Text(submitLabel)
	f.submit.OnClick = func() { bus.Publish(events.Submitted(name), nil) }
	f.submit.SetDisabled(true)
	return f
}

func (f *OrderForm) input(field, label, placeholder string) *Node {
	in := N(f.name+"-"+field, "input").Class("form__input").
		Prop("name", field).
		Prop("placeholder", placeholder).
		Prop("value", "")
	in.OnInput = func(value string) {
		in.Prop("value", value)
		f.bus.Publish(events.FieldChanged(f.name, field), events.FieldChange{Field: field, Value: value})
	}
	f.inputs[field] = in
	return N(f.name+"-"+field+"-label", "label").Class("field").Child(
		N(f.name+"-"+field+"-caption", "span").Class("form__label").Text(label),
		in,
	)
}

func (f *OrderForm) actions() *Node {
	return N(f.name+"-actions", "div").Class("modal__actions").Child(f.submit, f.errors)
}

// Render applies the patch and returns the form root.
func (f *OrderForm) Render(patch FormPatch) *Node {
	for field, value := range patch.Values {
		if field == "payment" {
			f.markPayment(value)
			continue
		}
		if in, ok := f.inputs[field]; ok {
			in.Prop("value", value)
		}
	}
	if patch.Valid != nil {
		f.SetValid(*patch.Valid)
	}
	if patch.Errors != nil {
		f.SetErrors(*patch.Errors)
	}
	return f.root
}

// SelectPayment highlights the chosen method and publishes PaymentSelect.
func (f *OrderForm) SelectPayment(method string) {
	f.markPayment(method)
	f.bus.Publish(events.PaymentSelect, events.PaymentChoice{Payment: method})
}

func (f *OrderForm) markPayment(method string) {
	for _, b := range f.payment {
		b.ToggleClass("button_alt-active", b.Props["name"] == method)
	}
}

// ClearPayment removes the payment highlight.
func (f *OrderForm) ClearPayment() {
	for _, b := range f.payment {
		b.ToggleClass("button_alt-active", false)
	}
}

// SelectedPayment returns the highlighted method, or "".
func (f *OrderForm) SelectedPayment() string {
	for _, b := range f.payment {
		if b.HasClass("button_alt-active") {
			return b.Props["name"]
		}
	}
	return ""
}

// SetValid enables or disables the submit button.
func (f *OrderForm) SetValid(valid bool) {
	f.submit.SetDisabled(!valid)
}

// Valid reports whether submit is enabled.
func (f *OrderForm) Valid() bool {
	return !f.submit.Disabled()
}

// SetErrors shows the combined error message.
func (f *OrderForm) SetErrors(msg string) {
	f.errors.SetText(msg)
}

// Errors returns the combined error message.
func (f *OrderForm) Errors() string {
	return f.errors.TextContent()
}

// Root returns the form root node.
func (f *OrderForm) Root() *Node {
	return f.root
}

// JoinErrors joins the non-empty messages with the form separator.
func JoinErrors(msgs ...string) string {
	var parts []string
	for _, m := range msgs {
		if m != "" {
			parts = append(parts, m)
		}
	}
	return strings.Join(parts, errorSeparator)
}
