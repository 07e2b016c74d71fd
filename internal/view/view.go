package view

// View is implemented by every storefront view: Render applies the non-empty
// fields of a patch to the nodes the view owns and returns its root.
type View[P any] interface {
	Render(patch P) *Node
}

// Publisher is the part of the event bus views need.
type Publisher interface {
	Publish(name string, payload any)
}
