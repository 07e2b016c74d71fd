// Package state holds the storefront's in-memory models: the product
// catalog, the basket and the order draft.
//
// Models notify views through a Publisher rather than holding references to
// them. Basket mutations publish nothing; the wiring layer announces them.
package state

// Publisher is the part of the event bus the models need.
type Publisher interface {
	Publish(name string, payload any)
}
