package primitives

import (
	"io"

	g "maragu.dev/gomponents"

	"github.com/alexisbeaulieu97/nexus/internal/ui"
	"github.com/alexisbeaulieu97/nexus/internal/ui/classes"
)

// Direction is the flex main axis.
type Direction string

const (
	DirectionRow           Direction = "row"
	DirectionColumn        Direction = "column"
	DirectionRowReverse    Direction = "row-reverse"
	DirectionColumnReverse Direction = "column-reverse"
)

// Justify aligns flex children along the main axis.
type Justify string

const (
	JustifyStart   Justify = "start"
	JustifyEnd     Justify = "end"
	JustifyCenter  Justify = "center"
	JustifyBetween Justify = "between"
	JustifyAround  Justify = "around"
	JustifyEvenly  Justify = "evenly"
)

// Align aligns children along the cross axis.
type Align string

const (
	AlignStart    Align = "start"
	AlignEnd      Align = "end"
	AlignCenter   Align = "center"
	AlignBaseline Align = "baseline"
	AlignStretch  Align = "stretch"
)

// Wrap controls flex wrapping.
type Wrap string

const (
	WrapNone    Wrap = "nowrap"
	WrapWrap    Wrap = "wrap"
	WrapReverse Wrap = "wrap-reverse"
)

// Gap is a step on the spacing scale.
type Gap string

const (
	Gap0  Gap = "0"
	Gap1  Gap = "1"
	Gap2  Gap = "2"
	Gap3  Gap = "3"
	Gap4  Gap = "4"
	Gap6  Gap = "6"
	Gap8  Gap = "8"
	Gap12 Gap = "12"
	Gap16 Gap = "16"
	Gap24 Gap = "24"
)

var (
	directionClasses = classes.VariantMap[Direction]{
		DirectionRow:           "flex-row",
		DirectionColumn:        "flex-col",
		DirectionRowReverse:    "flex-row-reverse",
		DirectionColumnReverse: "flex-col-reverse",
	}

	justifyClasses = classes.VariantMap[Justify]{
		JustifyStart:   "justify-start",
		JustifyEnd:     "justify-end",
		JustifyCenter:  "justify-center",
		JustifyBetween: "justify-between",
		JustifyAround:  "justify-around",
		JustifyEvenly:  "justify-evenly",
	}

	flexAlignClasses = classes.VariantMap[Align]{
		AlignStart:    "items-start",
		AlignEnd:      "items-end",
		AlignCenter:   "items-center",
		AlignBaseline: "items-baseline",
		AlignStretch:  "items-stretch",
	}

	wrapClasses = classes.VariantMap[Wrap]{
		WrapNone:    "flex-nowrap",
		WrapWrap:    "flex-wrap",
		WrapReverse: "flex-wrap-reverse",
	}

	gapClasses = classes.VariantMap[Gap]{
		Gap0: "gap-0", Gap1: "gap-1", Gap2: "gap-2", Gap3: "gap-3", Gap4: "gap-4",
		Gap6: "gap-6", Gap8: "gap-8", Gap12: "gap-12", Gap16: "gap-16", Gap24: "gap-24",
	}
)

// Flex is a flexbox container.
type Flex struct {
	ui.Base
	as        Tag
	direction Direction
	justify   Justify
	align     Align
	wrap      Wrap
	gap       Gap
	inline    bool
}

// NewFlex creates a row flex container.
func NewFlex(children ...g.Node) *Flex {
	return &Flex{
		Base:      ui.NewBase(children...),
		direction: DirectionRow,
	}
}

// Row is a horizontal flex container.
func Row(children ...g.Node) *Flex {
	return NewFlex(children...)
}

// Column is a vertical flex container.
func Column(children ...g.Node) *Flex {
	return NewFlex(children...).WithDirection(DirectionColumn)
}

func (f *Flex) WithAs(tag Tag) *Flex                  { f.as = tag; return f }
func (f *Flex) WithDirection(d Direction) *Flex       { f.direction = d; return f }
func (f *Flex) WithJustify(j Justify) *Flex           { f.justify = j; return f }
func (f *Flex) WithAlign(a Align) *Flex               { f.align = a; return f }
func (f *Flex) WithWrap(w Wrap) *Flex                 { f.wrap = w; return f }
func (f *Flex) WithGap(gap Gap) *Flex                 { f.gap = gap; return f }
func (f *Flex) WithInline(inline bool) *Flex          { f.inline = inline; return f }
func (f *Flex) WithClass(class string) *Flex          { f.AddClass(class); return f }
func (f *Flex) WithAttrs(attrs ...g.Node) *Flex       { f.AddAttrs(attrs...); return f }
func (f *Flex) WithChildren(children ...g.Node) *Flex { f.AddChildren(children...); return f }

// ClassName returns the resolved class string.
func (f *Flex) ClassName() string {
	display := "flex"
	if f.inline {
		display = "inline-flex"
	}
	return classes.Merge(
		display,
		directionClasses.Get(f.direction),
		justifyClasses.Get(f.justify),
		flexAlignClasses.Get(f.align),
		wrapClasses.Get(f.wrap),
		gapClasses.Get(f.gap),
		f.Class(),
	)
}

// Render implements gomponents.Node.
func (f *Flex) Render(w io.Writer) error {
	return f.Element(elementName(f.as, TagDiv), f.ClassName()).Render(w)
}
