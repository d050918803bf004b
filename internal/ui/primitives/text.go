package primitives

import (
	"io"

	g "maragu.dev/gomponents"

	"github.com/alexisbeaulieu97/nexus/internal/ui"
	"github.com/alexisbeaulieu97/nexus/internal/ui/classes"
)

// Size is a step on the type scale.
type Size string

const (
	SizeXS   Size = "xs"
	SizeSM   Size = "sm"
	SizeBase Size = "base"
	SizeLG   Size = "lg"
	SizeXL   Size = "xl"
	Size2XL  Size = "2xl"
	Size3XL  Size = "3xl"
	Size4XL  Size = "4xl"
	Size5XL  Size = "5xl"
	Size6XL  Size = "6xl"
	Size7XL  Size = "7xl"
)

// Weight is a font weight.
type Weight string

const (
	WeightNormal   Weight = "normal"
	WeightMedium   Weight = "medium"
	WeightSemibold Weight = "semibold"
	WeightBold     Weight = "bold"
)

// Color is a semantic text color.
type Color string

const (
	ColorDefault   Color = "default"
	ColorMuted     Color = "muted"
	ColorPrimary   Color = "primary"
	ColorSecondary Color = "secondary"
	ColorSuccess   Color = "success"
	ColorWarning   Color = "warning"
	ColorError     Color = "error"
)

// TextAlign is horizontal text alignment.
type TextAlign string

const (
	TextLeft    TextAlign = "left"
	TextCenter  TextAlign = "center"
	TextRight   TextAlign = "right"
	TextJustify TextAlign = "justify"
)

var (
	textSizeClasses = classes.VariantMap[Size]{
		SizeXS:   "text-xs",
		SizeSM:   "text-sm",
		SizeBase: "text-base",
		SizeLG:   "text-lg",
		SizeXL:   "text-xl",
	}

	weightClasses = classes.VariantMap[Weight]{
		WeightNormal:   "font-normal",
		WeightMedium:   "font-medium",
		WeightSemibold: "font-semibold",
		WeightBold:     "font-bold",
	}

	textColorClasses = classes.VariantMap[Color]{
		ColorDefault:   "text-foreground",
		ColorMuted:     "text-muted-foreground",
		ColorPrimary:   "text-primary",
		ColorSecondary: "text-secondary",
		ColorSuccess:   "text-success",
		ColorWarning:   "text-warning",
		ColorError:     "text-error",
	}

	alignClasses = classes.VariantMap[TextAlign]{
		TextLeft:    "text-left",
		TextCenter:  "text-center",
		TextRight:   "text-right",
		TextJustify: "text-justify",
	}
)

// Text is body copy.
type Text struct {
	ui.Base
	as       TextTag
	size     Size
	weight   Weight
	color    Color
	align    TextAlign
	truncate bool
	balance  bool
}

// NewText creates a paragraph of base size, normal weight and default color.
func NewText(children ...g.Node) *Text {
	return &Text{
		Base:   ui.NewBase(children...),
		size:   SizeBase,
		weight: WeightNormal,
		color:  ColorDefault,
	}
}

func (t *Text) WithAs(tag TextTag) *Text        { t.as = tag; return t }
func (t *Text) WithSize(s Size) *Text           { t.size = s; return t }
func (t *Text) WithWeight(w Weight) *Text       { t.weight = w; return t }
func (t *Text) WithColor(c Color) *Text         { t.color = c; return t }
func (t *Text) WithAlign(a TextAlign) *Text     { t.align = a; return t }
func (t *Text) WithTruncate(on bool) *Text      { t.truncate = on; return t }
func (t *Text) WithBalance(on bool) *Text       { t.balance = on; return t }
func (t *Text) WithClass(class string) *Text    { t.AddClass(class); return t }
func (t *Text) WithAttrs(attrs ...g.Node) *Text { t.AddAttrs(attrs...); return t }

// ClassName returns the resolved class string.
func (t *Text) ClassName() string {
	return classes.Merge(
		textSizeClasses.Get(t.size),
		weightClasses.Get(t.weight),
		textColorClasses.Get(t.color),
		alignClasses.Get(t.align),
		classes.If(t.truncate, "truncate"),
		classes.If(t.balance, "text-balance"),
		t.Class(),
	)
}

// Render implements gomponents.Node.
func (t *Text) Render(w io.Writer) error {
	return t.Element(elementName(t.as, TextP), t.ClassName()).Render(w)
}
