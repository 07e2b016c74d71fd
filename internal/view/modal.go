package view

import "larek/internal/events"

// ModalPatch swaps the modal content.
type ModalPatch struct {
	Content *Node
}

// Modal hosts arbitrary content above the page.
type Modal struct {
	root    *Node
	content *Node
	open    bool
	bus     Publisher
}

var _ View[ModalPatch] = (*Modal)(nil)

// NewModal builds a closed modal. Its close button and overlay both close it.
func NewModal(bus Publisher) *Modal {
	m := &Modal{
		content: N("modal-content", "div").Class("modal__content"),
		bus:     bus,
	}
	overlay := N("modal-overlay", "div").Class("modal__overlay")
	overlay.OnClick = m.Close
	closeBtn := N("modal-close", "button").Class("modal__close").Text("×")
	closeBtn.OnClick = m.Close

	m.root = N("modal", "div").Class("modal").Child(
		overlay,
		N("modal-container", "div").Class("modal__container").Child(closeBtn, m.content),
	)
	return m
}

// Render replaces the content when given and opens the modal.
func (m *Modal) Render(patch ModalPatch) *Node {
	if patch.Content != nil {
		m.content.SetChildren(patch.Content)
	}
	m.Open()
	return m.root
}

// Open shows the modal and publishes ModalOpen.
func (m *Modal) Open() {
	m.open = true
	m.root.ToggleClass("modal_active", true)
	m.bus.Publish(events.ModalOpen, nil)
}

// Close hides the modal, drops its content and publishes ModalClose.
func (m *Modal) Close() {
	m.open = false
	m.root.ToggleClass("modal_active", false)
	m.content.SetChildren()
	m.bus.Publish(events.ModalClose, nil)
}

// IsOpen reports whether the modal is showing.
func (m *Modal) IsOpen() bool {
	return m.open
}

// Content returns the node currently hosted, or nil.
func (m *Modal) Content() *Node {
	if len(m.content.Children) == 0 {
		return nil
	}
	return m.content.Children[0]
}

// Root returns the modal root node.
func (m *Modal) Root() *Node {
	return m.root
}
