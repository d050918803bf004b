package primitives

import (
	"fmt"
	"io"

	g "maragu.dev/gomponents"

	"github.com/alexisbeaulieu97/nexus/internal/ui"
	"github.com/alexisbeaulieu97/nexus/internal/ui/classes"
)

// Level is a document outline level, 1 through 6.
type Level int

// Variant is a predefined heading style, independent of the level.
type Variant string

const (
	VariantH1 Variant = "h1"
	VariantH2 Variant = "h2"
	VariantH3 Variant = "h3"
	VariantH4 Variant = "h4"
	VariantH5 Variant = "h5"
	VariantH6 Variant = "h6"
)

const defaultLevel Level = 2

var (
	variantClasses = classes.VariantMap[Variant]{
		VariantH1: "text-3xl md:text-4xl lg:text-5xl font-bold tracking-tight",
		VariantH2: "text-2xl md:text-3xl lg:text-4xl font-semibold tracking-tight",
		VariantH3: "text-xl md:text-2xl font-semibold tracking-tight",
		VariantH4: "text-lg md:text-xl font-semibold",
		VariantH5: "text-base md:text-lg font-semibold",
		VariantH6: "text-base font-semibold",
	}

	headingSizeClasses = classes.VariantMap[Size]{
		SizeXS:   "text-xs",
		SizeSM:   "text-sm",
		SizeBase: "text-base",
		SizeLG:   "text-lg",
		SizeXL:   "text-xl",
		Size2XL:  "text-2xl",
		Size3XL:  "text-3xl",
		Size4XL:  "text-4xl",
		Size5XL:  "text-5xl",
		Size6XL:  "text-6xl",
		Size7XL:  "text-7xl",
	}

	headingColorClasses = classes.VariantMap[Color]{
		ColorDefault:   "text-foreground",
		ColorMuted:     "text-muted-foreground",
		ColorPrimary:   "text-primary",
		ColorSecondary: "text-secondary",
	}
)

// Heading is a section title. The level picks the element unless WithAs
// overrides it; the variant picks the look.
type Heading struct {
	ui.Base
	as      HeadingTag
	level   Level
	variant Variant
	size    Size
	weight  Weight
	color   Color
	align   TextAlign
	balance bool
}

// NewHeading creates an h2 in the default color.
func NewHeading(children ...g.Node) *Heading {
	return &Heading{
		Base:  ui.NewBase(children...),
		level: defaultLevel,
		color: ColorDefault,
	}
}

// WithLevel sets the outline level. Values outside 1..6 fall back to 2.
func (hd *Heading) WithLevel(l Level) *Heading {
	if l < 1 || l > 6 {
		l = defaultLevel
	}
	hd.level = l
	return hd
}

func (hd *Heading) WithAs(tag HeadingTag) *Heading     { hd.as = tag; return hd }
func (hd *Heading) WithVariant(v Variant) *Heading     { hd.variant = v; return hd }
func (hd *Heading) WithSize(s Size) *Heading           { hd.size = s; return hd }
func (hd *Heading) WithWeight(w Weight) *Heading       { hd.weight = w; return hd }
func (hd *Heading) WithColor(c Color) *Heading         { hd.color = c; return hd }
func (hd *Heading) WithAlign(a TextAlign) *Heading     { hd.align = a; return hd }
func (hd *Heading) WithBalance(on bool) *Heading       { hd.balance = on; return hd }
func (hd *Heading) WithClass(class string) *Heading    { hd.AddClass(class); return hd }
func (hd *Heading) WithAttrs(attrs ...g.Node) *Heading { hd.AddAttrs(attrs...); return hd }

// ClassName returns the resolved class string.
func (hd *Heading) ClassName() string {
	return classes.Merge(
		hd.styleClass(),
		headingColorClasses.Get(hd.color),
		alignClasses.Get(hd.align),
		classes.If(hd.balance, "text-balance"),
		hd.Class(),
	)
}

// styleClass resolves size and weight. A variant wins over explicit size and
// weight.
func (hd *Heading) styleClass() string {
	if v := variantClasses.Get(hd.variant); v != "" {
		return v
	}
	if hd.size == "" && hd.weight == "" {
		return "font-semibold"
	}
	return classes.Merge(headingSizeClasses.Get(hd.size), weightClasses.Get(hd.weight))
}

// TagName returns the element the heading renders as.
func (hd *Heading) TagName() string {
	return elementName(hd.as, HeadingTag(fmt.Sprintf("h%d", hd.level)))
}

// Render implements gomponents.Node.
func (hd *Heading) Render(w io.Writer) error {
	return hd.Element(hd.TagName(), hd.ClassName()).Render(w)
}
