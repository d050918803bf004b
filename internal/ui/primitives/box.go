package primitives

import (
	"io"

	g "maragu.dev/gomponents"

	"github.com/alexisbeaulieu97/nexus/internal/ui"
	"github.com/alexisbeaulieu97/nexus/internal/ui/classes"
)

// Box is the base polymorphic primitive: a div by default, any Tag on request.
// It adds no styling of its own.
type Box struct {
	ui.Base
	as Tag
}

// NewBox creates a box wrapping children.
func NewBox(children ...g.Node) *Box {
	return &Box{Base: ui.NewBase(children...)}
}

// WithAs sets the rendered element.
func (b *Box) WithAs(tag Tag) *Box {
	b.as = tag
	return b
}

// WithClass appends caller classes.
func (b *Box) WithClass(class string) *Box {
	b.AddClass(class)
	return b
}

// WithAttrs forwards native attributes.
func (b *Box) WithAttrs(attrs ...g.Node) *Box {
	b.AddAttrs(attrs...)
	return b
}

// ClassName returns the resolved class string.
func (b *Box) ClassName() string {
	return classes.Merge(b.Class())
}

// TagName returns the element the box renders as.
func (b *Box) TagName() string {
	return elementName(b.as, TagDiv)
}

// Render implements gomponents.Node.
func (b *Box) Render(w io.Writer) error {
	return b.Element(b.TagName(), b.ClassName()).Render(w)
}
