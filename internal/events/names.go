package events

// Event names published on the storefront bus.
const (
	ProductsChanged   = "products:changed"
	ProductSelect     = "product:select"
	PreviewChanged    = "preview:changed"
	PreviewDelete     = "preview:delete"
	ModalOpen         = "modal:open"
	ModalClose        = "modal:close"
	BasketOpen        = "basket:open"
	BasketChanged     = "basket:changed"
	BasketAdd         = "basket:add"
	BasketDelete      = "basket:delete"
	OrderOpen         = "order:open"
	OrderSubmit       = "order:submit"
	OrderReady        = "order:ready"
	PaymentSelect     = "payment:select"
	FormErrorsChanged = "formErrors:change"
	ContactsSubmit    = "contacts:submit"
	SuccessClose      = "success:close"
)

// Form namespaces used by field change and submit events.
const (
	FormOrder    = "order"
	FormContacts = "contacts"
)

// FieldChanged returns the event name for an edited form field,
// e.g. "contacts.email:change".
func FieldChanged(form, field string) string {
	return form + "." + field + ":change"
}

// Submitted returns the submit event name of a form.
func Submitted(form string) string {
	return form + ":submit"
}

// FieldChanges matches every field change event of a form.
func FieldChanges(form string) Matcher {
	return Namespace(form+".", ":change")
}

// FieldChange is the payload of a field change event.
type FieldChange struct {
	Field string
	Value string
}

// PaymentChoice is the payload of PaymentSelect.
type PaymentChoice struct {
	Payment string
}
