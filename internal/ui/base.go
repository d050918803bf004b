// Package ui holds the pieces shared by every layer of the component library:
// the embeddable Base that forwards caller classes, attributes and children,
// and helpers for rendering gomponents nodes to strings.
package ui

import (
	"io"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexisbeaulieu97/nexus/internal/ui/classes"
)

// Renderable is anything the library can place in a document.
type Renderable = g.Node

// Base provides common functionality for all components.
// Embed it in component structs to get class, attribute and child forwarding.
type Base struct {
	class    string
	attrs    []g.Node
	children []g.Node
}

// NewBase creates a base with the given children.
func NewBase(children ...g.Node) Base {
	return Base{children: children}
}

// AddClass appends caller classes. They are merged after the component's own
// classes, so they win any utility conflict.
func (b *Base) AddClass(class string) {
	b.class = classes.Merge(b.class, class)
}

// Class returns the caller classes collected so far.
func (b *Base) Class() string {
	return b.class
}

// AddAttrs forwards native attributes to the rendered element untouched.
func (b *Base) AddAttrs(attrs ...g.Node) {
	b.attrs = append(b.attrs, attrs...)
}

// Attrs returns the forwarded attributes.
func (b *Base) Attrs() []g.Node {
	return b.attrs
}

// AddChildren appends child nodes.
func (b *Base) AddChildren(children ...g.Node) {
	b.children = append(b.children, children...)
}

// Children returns the child nodes.
func (b *Base) Children() []g.Node {
	return b.children
}

// Element builds tag with the resolved class, forwarded attributes and children.
func (b *Base) Element(tag, class string) g.Node {
	return b.ElementWith(tag, class, nil, b.children)
}

// ElementWith is Element with extra component-owned attributes placed before
// the forwarded ones, and an explicit child list.
func (b *Base) ElementWith(tag, class string, own []g.Node, children []g.Node) g.Node {
	nodes := make([]g.Node, 0, len(own)+len(b.attrs)+len(children)+1)
	if class != "" {
		nodes = append(nodes, h.Class(class))
	}
	nodes = append(nodes, own...)
	nodes = append(nodes, b.attrs...)
	nodes = append(nodes, children...)
	return g.El(tag, nodes...)
}

// RenderString renders n to a string.
func RenderString(n g.Node) (string, error) {
	var sb strings.Builder
	if n == nil {
		return "", nil
	}
	if err := n.Render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// MustRenderString renders n and panics on failure. Rendering into a
// strings.Builder only fails when a custom node returns an error.
func MustRenderString(n g.Node) string {
	out, err := RenderString(n)
	if err != nil {
		panic(err)
	}
	return out
}

// RenderFunc adapts a node-producing function to a gomponents node.
type RenderFunc func() g.Node

// Render implements gomponents.Node.
func (f RenderFunc) Render(w io.Writer) error {
	n := f()
	if n == nil {
		return nil
	}
	return n.Render(w)
}
