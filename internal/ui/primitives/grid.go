package primitives

import (
	"io"

	g "maragu.dev/gomponents"

	"github.com/alexisbeaulieu97/nexus/internal/ui"
	"github.com/alexisbeaulieu97/nexus/internal/ui/classes"
)

// Columns is the grid column template.
type Columns string

const (
	Cols1        Columns = "1"
	Cols2        Columns = "2"
	Cols3        Columns = "3"
	Cols4        Columns = "4"
	Cols5        Columns = "5"
	Cols6        Columns = "6"
	Cols12       Columns = "12"
	ColsAutoFit  Columns = "auto-fit"
	ColsAutoFill Columns = "auto-fill"
)

// Rows is the grid row template.
type Rows string

const (
	Rows1    Rows = "1"
	Rows2    Rows = "2"
	Rows3    Rows = "3"
	Rows4    Rows = "4"
	Rows5    Rows = "5"
	Rows6    Rows = "6"
	RowsAuto Rows = "auto"
)

// Flow is the grid auto-placement direction.
type Flow string

const (
	FlowRow         Flow = "row"
	FlowColumn      Flow = "column"
	FlowDense       Flow = "dense"
	FlowRowDense    Flow = "row-dense"
	FlowColumnDense Flow = "column-dense"
)

// Place aligns grid items within their cells.
type Place string

const (
	PlaceStart   Place = "start"
	PlaceEnd     Place = "end"
	PlaceCenter  Place = "center"
	PlaceStretch Place = "stretch"
)

var (
	colsClasses = classes.VariantMap[Columns]{
		Cols1: "grid-cols-1", Cols2: "grid-cols-2", Cols3: "grid-cols-3", Cols4: "grid-cols-4",
		Cols5: "grid-cols-5", Cols6: "grid-cols-6", Cols12: "grid-cols-12",
		ColsAutoFit:  "grid-cols-[repeat(auto-fit,minmax(0,1fr))]",
		ColsAutoFill: "grid-cols-[repeat(auto-fill,minmax(0,1fr))]",
	}

	rowsClasses = classes.VariantMap[Rows]{
		Rows1: "grid-rows-1", Rows2: "grid-rows-2", Rows3: "grid-rows-3",
		Rows4: "grid-rows-4", Rows5: "grid-rows-5", Rows6: "grid-rows-6",
		RowsAuto: "grid-rows-auto",
	}

	gapXClasses = classes.VariantMap[Gap]{
		Gap0: "gap-x-0", Gap1: "gap-x-1", Gap2: "gap-x-2", Gap3: "gap-x-3", Gap4: "gap-x-4",
		Gap6: "gap-x-6", Gap8: "gap-x-8", Gap12: "gap-x-12", Gap16: "gap-x-16",
	}

	gapYClasses = classes.VariantMap[Gap]{
		Gap0: "gap-y-0", Gap1: "gap-y-1", Gap2: "gap-y-2", Gap3: "gap-y-3", Gap4: "gap-y-4",
		Gap6: "gap-y-6", Gap8: "gap-y-8", Gap12: "gap-y-12", Gap16: "gap-y-16",
	}

	justifyItemsClasses = classes.VariantMap[Place]{
		PlaceStart:   "justify-items-start",
		PlaceEnd:     "justify-items-end",
		PlaceCenter:  "justify-items-center",
		PlaceStretch: "justify-items-stretch",
	}

	gridAlignClasses = classes.VariantMap[Place]{
		PlaceStart:   "items-start",
		PlaceEnd:     "items-end",
		PlaceCenter:  "items-center",
		PlaceStretch: "items-stretch",
	}

	flowClasses = classes.VariantMap[Flow]{
		FlowRow:         "grid-flow-row",
		FlowColumn:      "grid-flow-col",
		FlowDense:       "grid-flow-dense",
		FlowRowDense:    "grid-flow-row-dense",
		FlowColumnDense: "grid-flow-col-dense",
	}
)

// Grid is a CSS grid container.
type Grid struct {
	ui.Base
	as      Tag
	cols    Columns
	rows    Rows
	gap     Gap
	gapX    Gap
	gapY    Gap
	justify Place
	align   Place
	flow    Flow
	inline  bool
}

// NewGrid creates a grid container.
func NewGrid(children ...g.Node) *Grid {
	return &Grid{Base: ui.NewBase(children...)}
}

func (gr *Grid) WithAs(tag Tag) *Grid            { gr.as = tag; return gr }
func (gr *Grid) WithCols(c Columns) *Grid        { gr.cols = c; return gr }
func (gr *Grid) WithRows(r Rows) *Grid           { gr.rows = r; return gr }
func (gr *Grid) WithGap(gap Gap) *Grid           { gr.gap = gap; return gr }
func (gr *Grid) WithGapX(gap Gap) *Grid          { gr.gapX = gap; return gr }
func (gr *Grid) WithGapY(gap Gap) *Grid          { gr.gapY = gap; return gr }
func (gr *Grid) WithJustify(p Place) *Grid       { gr.justify = p; return gr }
func (gr *Grid) WithAlign(p Place) *Grid         { gr.align = p; return gr }
func (gr *Grid) WithFlow(f Flow) *Grid           { gr.flow = f; return gr }
func (gr *Grid) WithInline(inline bool) *Grid    { gr.inline = inline; return gr }
func (gr *Grid) WithClass(class string) *Grid    { gr.AddClass(class); return gr }
func (gr *Grid) WithAttrs(attrs ...g.Node) *Grid { gr.AddAttrs(attrs...); return gr }

// ClassName returns the resolved class string.
func (gr *Grid) ClassName() string {
	display := "grid"
	if gr.inline {
		display = "inline-grid"
	}
	return classes.Merge(
		display,
		colsClasses.Get(gr.cols),
		rowsClasses.Get(gr.rows),
		gapClasses.Get(gr.gap),
		gapXClasses.Get(gr.gapX),
		gapYClasses.Get(gr.gapY),
		justifyItemsClasses.Get(gr.justify),
		gridAlignClasses.Get(gr.align),
		flowClasses.Get(gr.flow),
		gr.Class(),
	)
}

// Render implements gomponents.Node.
func (gr *Grid) Render(w io.Writer) error {
	return gr.Element(elementName(gr.as, TagDiv), gr.ClassName()).Render(w)
}
