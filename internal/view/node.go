// Package view renders storefront state into node trees.
//
// A Node is the unit a view owns: it carries an id, an element type, string
// props and children, plus the interaction callbacks the view attached to
// it. Views receive partial patches from the wiring layer, update only their
// own nodes and publish command events when the user interacts with them.
package view

import (
	"errors"
	"slices"
	"strings"
)

// Node is an element in a rendered tree.
type Node struct {
	ID       string
	Type     string
	Props    map[string]string
	Children []*Node

	// OnClick and OnInput are attached by the owning view.
	OnClick func()
	OnInput func(value string)
}

// N creates a new node with the given id and type.
func N(id, typ string) *Node {
	return &Node{
		ID:    id,
		Type:  typ,
		Props: make(map[string]string),
	}
}

// Prop sets a property on the node and returns it for chaining.
func (n *Node) Prop(k, v string) *Node {
	n.Props[k] = v
	return n
}

// Text sets the "text" property.
func (n *Node) Text(s string) *Node {
	return n.Prop("text", s)
}

// Class adds CSS classes and returns the node for chaining.
func (n *Node) Class(classes ...string) *Node {
	for _, c := range classes {
		n.ToggleClass(c, true)
	}
	return n
}

// Child appends child nodes and returns the parent for chaining.
func (n *Node) Child(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// SetChildren replaces all children.
func (n *Node) SetChildren(children ...*Node) {
	n.Children = append([]*Node(nil), children...)
}

// SetText replaces the text content.
func (n *Node) SetText(s string) {
	n.Props["text"] = s
}

// TextContent returns the node's own text.
func (n *Node) TextContent() string {
	return n.Props["text"]
}

// Classes returns the node's CSS classes.
func (n *Node) Classes() []string {
	return strings.Fields(n.Props["class"])
}

// HasClass reports whether the node carries class c.
func (n *Node) HasClass(c string) bool {
	return slices.Contains(n.Classes(), c)
}

// ToggleClass adds class c when on is true and removes it otherwise.
func (n *Node) ToggleClass(c string, on bool) {
	classes := n.Classes()
	i := slices.Index(classes, c)
	switch {
	case on && i < 0:
		classes = append(classes, c)
	case !on && i >= 0:
		classes = slices.Delete(classes, i, i+1)
	default:
		return
	}
	n.Props["class"] = strings.Join(classes, " ")
}

// SetDisabled marks the node as disabled or enabled.
func (n *Node) SetDisabled(disabled bool) {
	if disabled {
		n.Props["disabled"] = "1"
		return
	}
	delete(n.Props, "disabled")
}

// Disabled reports whether the node is disabled.
func (n *Node) Disabled() bool {
	return n.Props["disabled"] == "1"
}

// Find returns the node with the given id in the subtree rooted at n.
func (n *Node) Find(id string) *Node {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// ActionKind distinguishes user interactions.
type ActionKind string

// Interaction kinds.
const (
	Click ActionKind = "click"
	Input ActionKind = "input"
)

// Action is a user interaction addressed to a node.
type Action struct {
	Node  string
	Kind  ActionKind
	Value string
}

var (
	// ErrNodeNotFound is returned when an action targets an unknown node.
	ErrNodeNotFound = errors.New("node not found")
	// ErrNotInteractive is returned when the node has no handler for the action.
	ErrNotInteractive = errors.New("node does not accept this action")
	// ErrDisabled is returned when the target node is disabled.
	ErrDisabled = errors.New("node is disabled")
)

// Dispatch delivers an action to the matching node under root.
func Dispatch(root *Node, a Action) error {
	n := root.Find(a.Node)
	if n == nil {
		return ErrNodeNotFound
	}
	if n.Disabled() {
		return ErrDisabled
	}
	switch a.Kind {
	case Click:
		if n.OnClick == nil {
			return ErrNotInteractive
		}
		n.OnClick()
	case Input:
		if n.OnInput == nil {
			return ErrNotInteractive
		}
		n.OnInput(a.Value)
	default:
		return ErrNotInteractive
	}
	return nil
}
