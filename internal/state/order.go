package state

import (
	"errors"
	"maps"

	"larek/internal/events"
	"larek/internal/model"
)

// Field names a user-editable draft field.
type Field string

// Draft form fields.
const (
	FieldPayment Field = "payment"
	FieldAddress Field = "address"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
)

// Fields lists the draft form fields in validation order.
var Fields = []Field{FieldPayment, FieldAddress, FieldEmail, FieldPhone}

// ErrUnknownField is returned by SetField for names outside Fields.
var ErrUnknownField = errors.New("unknown order field")

// FormErrors maps a field to its validation message.
type FormErrors map[Field]string

// Messages reported for missing fields.
var requiredMessages = map[Field]string{
	FieldPayment: "Choose a payment method",
	FieldAddress: "Enter a delivery address",
	FieldEmail:   "Enter an email",
	FieldPhone:   "Enter a phone number",
}

// ParseField converts a form field name into a Field.
func ParseField(name string) (Field, error) {
	f := Field(name)
	if _, ok := requiredMessages[f]; !ok {
		return "", ErrUnknownField
	}
	return f, nil
}

// Draft is the order being assembled before submission.
type Draft struct {
	order  model.OrderRequest
	errors FormErrors
	bus    Publisher
}

// NewDraft creates an empty draft.
func NewDraft(bus Publisher) *Draft {
	return &Draft{
		order:  emptyOrder(),
		errors: FormErrors{},
		bus:    bus,
	}
}

func emptyOrder() model.OrderRequest {
	return model.OrderRequest{Items: []string{}}
}

// SetField assigns a form field, revalidates the draft and publishes
// FormErrorsChanged with the current errors. When every field is filled it
// also publishes OrderReady with the order.
func (d *Draft) SetField(field Field, value string) error {
	switch field {
	case FieldPayment:
		d.order.Payment = value
	case FieldAddress:
		d.order.Address = value
	case FieldEmail:
		d.order.Email = value
	case FieldPhone:
		d.order.Phone = value
	default:
		return ErrUnknownField
	}

	if d.validate() {
		d.bus.Publish(events.OrderReady, d.Order())
	}
	return nil
}

// validate recomputes the error map and publishes it.
func (d *Draft) validate() bool {
	errs := FormErrors{}
	for _, f := range Fields {
		if d.value(f) == "" {
			errs[f] = requiredMessages[f]
		}
	}
	d.errors = errs
	d.bus.Publish(events.FormErrorsChanged, d.Errors())
	return len(errs) == 0
}

func (d *Draft) value(f Field) string {
	switch f {
	case FieldPayment:
		return d.order.Payment
	case FieldAddress:
		return d.order.Address
	case FieldEmail:
		return d.order.Email
	case FieldPhone:
		return d.order.Phone
	}
	return ""
}

// Value returns the current value of a form field.
func (d *Draft) Value(f Field) string {
	return d.value(f)
}

// SetItems records the ids of the products being ordered.
func (d *Draft) SetItems(ids []string) {
	d.order.Items = append([]string{}, ids...)
}

// SetTotal records the order amount.
func (d *Draft) SetTotal(total float64) {
	d.order.Total = total
}

// Reset restores the empty draft.
func (d *Draft) Reset() {
	d.order = emptyOrder()
	d.errors = FormErrors{}
}

// Valid reports whether all form fields are filled.
func (d *Draft) Valid() bool {
	for _, f := range Fields {
		if d.value(f) == "" {
			return false
		}
	}
	return true
}

// Errors returns a copy of the errors from the last validation.
func (d *Draft) Errors() FormErrors {
	return maps.Clone(d.errors)
}

// Order returns the request that would be submitted.
func (d *Draft) Order() model.OrderRequest {
	o := d.order
	o.Items = append([]string{}, d.order.Items...)
	return o
}
