package components

import (
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexisbeaulieu97/nexus/internal/ui"
	"github.com/alexisbeaulieu97/nexus/internal/ui/classes"
)

// ButtonVariant selects the button palette.
type ButtonVariant string

const (
	ButtonPrimary     ButtonVariant = "primary"
	ButtonSecondary   ButtonVariant = "secondary"
	ButtonOutline     ButtonVariant = "outline"
	ButtonGhost       ButtonVariant = "ghost"
	ButtonDestructive ButtonVariant = "destructive"
	ButtonLink        ButtonVariant = "link"
)

// Size is the shared small/medium/large scale of buttons and badges.
type Size string

const (
	SizeSM Size = "sm"
	SizeMD Size = "md"
	SizeLG Size = "lg"
)

const buttonBase = "inline-flex items-center justify-center gap-2 rounded-lg font-medium " +
	"transition-colors duration-200 " +
	"focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-offset-2 " +
	"disabled:opacity-50 disabled:pointer-events-none"

var (
	buttonVariantClasses = classes.VariantMap[ButtonVariant]{
		ButtonPrimary:     "bg-primary text-white hover:bg-primary/90 focus-visible:ring-primary",
		ButtonSecondary:   "bg-secondary text-white hover:bg-secondary/90 focus-visible:ring-secondary",
		ButtonOutline:     "border-2 border-primary text-primary hover:bg-primary/10 focus-visible:ring-primary",
		ButtonGhost:       "hover:bg-muted text-foreground",
		ButtonDestructive: "bg-error text-white hover:bg-error/90 focus-visible:ring-error",
		ButtonLink:        "text-primary underline-offset-4 hover:underline",
	}

	buttonSizeClasses = classes.VariantMap[Size]{
		SizeSM: "h-8 px-3 py-1.5 text-sm",
		SizeMD: "h-10 px-4 py-2 text-base",
		SizeLG: "h-12 px-6 py-3 text-lg",
	}

	spinnerSizeClasses = classes.VariantMap[Size]{
		SizeSM: "h-3 w-3",
		SizeMD: "h-4 w-4",
		SizeLG: "h-5 w-5",
	}
)

// Button is a clickable action. With an href it renders as a link styled
// identically.
type Button struct {
	ui.Base
	variant   ButtonVariant
	size      Size
	loading   bool
	disabled  bool
	href      string
	kind      string
	leftIcon  g.Node
	rightIcon g.Node
}

// NewButton creates a medium primary button.
func NewButton(children ...g.Node) *Button {
	return &Button{
		Base:    ui.NewBase(children...),
		variant: ButtonPrimary,
		size:    SizeMD,
	}
}

func (b *Button) WithVariant(v ButtonVariant) *Button { b.variant = v; return b }
func (b *Button) WithSize(s Size) *Button             { b.size = s; return b }
func (b *Button) WithDisabled(on bool) *Button        { b.disabled = on; return b }
func (b *Button) WithHref(href string) *Button        { b.href = href; return b }
func (b *Button) WithLeftIcon(icon g.Node) *Button    { b.leftIcon = icon; return b }
func (b *Button) WithRightIcon(icon g.Node) *Button   { b.rightIcon = icon; return b }
func (b *Button) WithClass(class string) *Button      { b.AddClass(class); return b }
func (b *Button) WithAttrs(attrs ...g.Node) *Button   { b.AddAttrs(attrs...); return b }

// WithLoading disables the button and swaps the left icon for a spinner.
func (b *Button) WithLoading(on bool) *Button {
	b.loading = on
	return b
}

// WithType sets the native type attribute (button, submit, reset).
func (b *Button) WithType(kind string) *Button {
	b.kind = kind
	return b
}

// ClassName returns the resolved class string.
func (b *Button) ClassName() string {
	return classes.Merge(
		buttonBase,
		buttonVariantClasses.Get(b.variant),
		buttonSizeClasses.Get(b.size),
		b.Class(),
	)
}

// Render implements gomponents.Node.
func (b *Button) Render(w io.Writer) error {
	children := make([]g.Node, 0, len(b.Children())+2)
	switch {
	case b.loading:
		children = append(children, Spinner(b.size))
	case b.leftIcon != nil:
		children = append(children, iconSlot(b.leftIcon))
	}
	children = append(children, b.Children()...)
	if !b.loading && b.rightIcon != nil {
		children = append(children, iconSlot(b.rightIcon))
	}

	if b.href != "" {
		own := []g.Node{h.Href(b.href)}
		if b.loading || b.disabled {
			own = append(own, g.Attr("aria-disabled", "true"))
		}
		return b.ElementWith("a", b.ClassName(), own, children).Render(w)
	}

	kind := b.kind
	if kind == "" {
		kind = "button"
	}
	own := []g.Node{h.Type(kind), g.If(b.loading || b.disabled, h.Disabled())}
	if b.loading {
		own = append(own, g.Attr("aria-busy", "true"))
	}
	return b.ElementWith("button", b.ClassName(), own, children).Render(w)
}

func iconSlot(icon g.Node) g.Node {
	return h.Span(h.Class("inline-flex shrink-0"), icon)
}

// Spinner is the animated loading indicator used inside buttons.
func Spinner(size Size) g.Node {
	return g.El("svg",
		h.Class(classes.Merge("animate-spin", spinnerSizeClasses.Get(size))),
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("fill", "none"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("aria-hidden", "true"),
		g.El("circle",
			h.Class("opacity-25"),
			g.Attr("cx", "12"), g.Attr("cy", "12"), g.Attr("r", "10"),
			g.Attr("stroke", "currentColor"), g.Attr("stroke-width", "4"),
		),
		g.El("path",
			h.Class("opacity-75"),
			g.Attr("fill", "currentColor"),
			g.Attr("d", "M4 12a8 8 0 018-8V0C5.373 0 0 5.373 0 12h4zm2 5.291A7.962 7.962 0 014 12H0c0 3.042 1.135 5.824 3 7.938l3-2.647z"),
		),
	)
}
