package components

import (
	"io"

	g "maragu.dev/gomponents"

	"github.com/alexisbeaulieu97/nexus/internal/ui"
	"github.com/alexisbeaulieu97/nexus/internal/ui/classes"
)

// CardVariant selects the card surface.
type CardVariant string

const (
	CardDefault  CardVariant = "default"
	CardElevated CardVariant = "elevated"
	CardBordered CardVariant = "bordered"
)

var cardVariantClasses = classes.VariantMap[CardVariant]{
	CardDefault:  "bg-white dark:bg-gray-900 border border-border shadow-sm",
	CardElevated: "bg-white dark:bg-gray-900 shadow-md",
	CardBordered: "bg-white dark:bg-gray-900 border-2 border-border",
}

// Card is a rounded surface grouping related content.
type Card struct {
	ui.Base
	variant CardVariant
	hover   bool
}

// NewCard creates a default card.
func NewCard(children ...g.Node) *Card {
	return &Card{Base: ui.NewBase(children...), variant: CardDefault}
}

func (c *Card) WithVariant(v CardVariant) *Card { c.variant = v; return c }
func (c *Card) WithHover(on bool) *Card         { c.hover = on; return c }
func (c *Card) WithClass(class string) *Card    { c.AddClass(class); return c }
func (c *Card) WithAttrs(attrs ...g.Node) *Card { c.AddAttrs(attrs...); return c }

// ClassName returns the resolved class string.
func (c *Card) ClassName() string {
	return classes.Merge(
		"rounded-lg",
		cardVariantClasses.Get(c.variant),
		classes.If(c.hover, "transition-shadow duration-200 hover:shadow-lg"),
		c.Class(),
	)
}

// Render implements gomponents.Node.
func (c *Card) Render(w io.Writer) error {
	return c.Element("div", c.ClassName()).Render(w)
}

// CardPart is one of the independent card sub-elements.
type CardPart struct {
	ui.Base
	tag   string
	class string
}

func newCardPart(tag, class string, children []g.Node) *CardPart {
	return &CardPart{Base: ui.NewBase(children...), tag: tag, class: class}
}

// CardHeader stacks a title and description.
func CardHeader(children ...g.Node) *CardPart {
	return newCardPart("div", "flex flex-col gap-1.5 p-6", children)
}

// CardTitle is an h3 unless WithLevel says otherwise.
func CardTitle(children ...g.Node) *CardPart {
	return newCardPart("h3", "text-xl font-semibold tracking-tight", children)
}

// CardDescription is muted supporting copy.
func CardDescription(children ...g.Node) *CardPart {
	return newCardPart("p", "text-sm text-muted-foreground", children)
}

// CardContent holds the card body.
func CardContent(children ...g.Node) *CardPart {
	return newCardPart("div", "p-6 pt-0", children)
}

// CardFooter holds card actions.
func CardFooter(children ...g.Node) *CardPart {
	return newCardPart("div", "flex items-center gap-2 p-6 pt-0", children)
}

// WithLevel renders a title as h1..h6. Other parts and out-of-range levels
// are left untouched.
func (p *CardPart) WithLevel(level int) *CardPart {
	if p.tag[0] == 'h' && level >= 1 && level <= 6 {
		p.tag = "h" + string(rune('0'+level))
	}
	return p
}

func (p *CardPart) WithClass(class string) *CardPart    { p.AddClass(class); return p }
func (p *CardPart) WithAttrs(attrs ...g.Node) *CardPart { p.AddAttrs(attrs...); return p }

// ClassName returns the resolved class string.
func (p *CardPart) ClassName() string {
	return classes.Merge(p.class, p.Class())
}

// Render implements gomponents.Node.
func (p *CardPart) Render(w io.Writer) error {
	return p.Element(p.tag, p.ClassName()).Render(w)
}
