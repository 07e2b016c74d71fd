package view

import (
	"html"
	"slices"
	"strings"
)

// Form field names used by rendered interactive nodes.
const (
	ClickField  = "click"
	InputPrefix = "input."
)

// voidElements never have children or a closing tag.
var voidElements = map[string]bool{
	"img":   true,
	"input": true,
}

// HTML renders the tree rooted at n. Clickable nodes become submit buttons
// carrying their id in the "click" field and editable nodes become inputs
// named "input.<id>", so a single enclosing form reports any interaction.
func HTML(n *Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}

	tag := n.Type
	attrs := [][2]string{{"id", n.ID}}
	switch {
	case n.OnClick != nil:
		tag = "button"
		attrs = append(attrs, [2]string{"type", "submit"}, [2]string{"name", ClickField}, [2]string{"value", n.ID})
	case n.OnInput != nil:
		tag = "input"
		attrs = append(attrs, [2]string{"type", "text"}, [2]string{"name", InputPrefix + n.ID}, [2]string{"value", n.Props["value"]})
	case tag == "button":
		attrs = append(attrs, [2]string{"type", "button"})
	}

	keys := make([]string, 0, len(n.Props))
	for k := range n.Props {
		switch k {
		case "text", "disabled", "value", "name":
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		attrs = append(attrs, [2]string{k, n.Props[k]})
	}

	b.WriteString("<")
	b.WriteString(tag)
	for _, a := range attrs {
		if a[1] == "" && a[0] != "value" {
			continue
		}
		b.WriteString(" ")
		b.WriteString(a[0])
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a[1]))
		b.WriteString(`"`)
	}
	if n.Disabled() {
		b.WriteString(" disabled")
	}
	b.WriteString(">")

	if voidElements[tag] {
		return
	}

	b.WriteString(html.EscapeString(n.TextContent()))
	for _, c := range n.Children {
		writeNode(b, c)
	}
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")
}
