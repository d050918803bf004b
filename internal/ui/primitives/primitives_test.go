package primitives

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/alexisbeaulieu97/nexus/internal/ui/uitest"
)

func TestBoxDefaultsToDiv(t *testing.T) {
	doc := uitest.Doc(t, NewBox(g.Text("hi")))
	require.Equal(t, 1, doc.Find("body > div").Length())
	_, hasClass := doc.Find("div").Attr("class")
	assert.False(t, hasClass)
}

func TestBoxAsAndAttrs(t *testing.T) {
	doc := uitest.Doc(t, NewBox().WithAs(TagNav).WithClass("p-4").WithAttrs(g.Attr("aria-label", "Main")))
	nav := doc.Find("nav")
	require.Equal(t, 1, nav.Length())
	assert.Equal(t, "Main", nav.AttrOr("aria-label", ""))
	assert.Equal(t, "p-4", nav.AttrOr("class", ""))
}

func TestFlexEmitsEachFragment(t *testing.T) {
	for _, d := range directionClasses.Keys() {
		assert.Contains(t, fields(NewFlex().WithDirection(d).ClassName()), directionClasses.Get(d))
	}
	for _, j := range justifyClasses.Keys() {
		assert.Contains(t, fields(NewFlex().WithJustify(j).ClassName()), justifyClasses.Get(j))
	}
	for _, a := range flexAlignClasses.Keys() {
		assert.Contains(t, fields(NewFlex().WithAlign(a).ClassName()), flexAlignClasses.Get(a))
	}
	for _, w := range wrapClasses.Keys() {
		assert.Contains(t, fields(NewFlex().WithWrap(w).ClassName()), wrapClasses.Get(w))
	}
	for _, gap := range gapClasses.Keys() {
		assert.Contains(t, fields(NewFlex().WithGap(gap).ClassName()), gapClasses.Get(gap))
	}
}

func TestFlexDefaults(t *testing.T) {
	assert.Equal(t, "flex flex-row", NewFlex().ClassName())
	assert.Equal(t, "inline-flex flex-col", Column().WithInline(true).ClassName())
	assert.Equal(t, "flex flex-row gap-8", NewFlex().WithGap(Gap4).WithClass("gap-8").ClassName())
}

func TestGridEmitsEachFragment(t *testing.T) {
	for _, c := range colsClasses.Keys() {
		assert.Contains(t, fields(NewGrid().WithCols(c).ClassName()), colsClasses.Get(c))
	}
	for _, r := range rowsClasses.Keys() {
		assert.Contains(t, fields(NewGrid().WithRows(r).ClassName()), rowsClasses.Get(r))
	}
	for _, f := range flowClasses.Keys() {
		assert.Contains(t, fields(NewGrid().WithFlow(f).ClassName()), flowClasses.Get(f))
	}
	for _, p := range justifyItemsClasses.Keys() {
		assert.Contains(t, fields(NewGrid().WithJustify(p).ClassName()), justifyItemsClasses.Get(p))
		assert.Contains(t, fields(NewGrid().WithAlign(p).ClassName()), gridAlignClasses.Get(p))
	}
}

func TestGridGapAxes(t *testing.T) {
	cls := fields(NewGrid().WithCols(Cols3).WithGapX(Gap4).WithGapY(Gap2).ClassName())
	assert.Equal(t, []string{"grid", "grid-cols-3", "gap-x-4", "gap-y-2"}, cls)

	// a later shorthand gap replaces the axis gaps
	cls = fields(NewGrid().WithGapX(Gap4).WithClass("gap-6").ClassName())
	assert.Equal(t, []string{"grid", "gap-6"}, cls)

	assert.Equal(t, "inline-grid", NewGrid().WithInline(true).ClassName())
}

func TestTextDefaults(t *testing.T) {
	doc := uitest.Doc(t, NewText(g.Text("body")))
	p := doc.Find("p")
	require.Equal(t, 1, p.Length())
	assert.Equal(t, "text-base font-normal text-foreground", p.AttrOr("class", ""))
}

func TestTextProps(t *testing.T) {
	txt := NewText().
		WithAs(TextSpan).
		WithSize(SizeSM).
		WithWeight(WeightBold).
		WithColor(ColorMuted).
		WithAlign(TextCenter).
		WithTruncate(true).
		WithBalance(true)
	doc := uitest.Doc(t, txt)
	span := doc.Find("span")
	require.Equal(t, 1, span.Length())
	assert.Equal(t,
		[]string{"text-sm", "font-bold", "text-muted-foreground", "text-center", "truncate", "text-balance"},
		fields(span.AttrOr("class", "")))
}

func TestTextColorsAndSizes(t *testing.T) {
	for _, c := range textColorClasses.Keys() {
		assert.Contains(t, fields(NewText().WithColor(c).ClassName()), textColorClasses.Get(c))
	}
	for _, s := range textSizeClasses.Keys() {
		assert.Contains(t, fields(NewText().WithSize(s).ClassName()), textSizeClasses.Get(s))
	}
}

func TestHeadingLevelPicksTag(t *testing.T) {
	doc := uitest.Doc(t, NewHeading(g.Text("t")))
	assert.Equal(t, 1, doc.Find("h2").Length())

	for level := Level(1); level <= 6; level++ {
		hd := NewHeading().WithLevel(level)
		assert.Equal(t, "h"+string(rune('0'+level)), hd.TagName())
	}

	assert.Equal(t, "h2", NewHeading().WithLevel(7).TagName())
	assert.Equal(t, "p", NewHeading().WithLevel(1).WithAs(HeadingP).TagName())
}

func TestHeadingEveryLevelTakesEveryVariant(t *testing.T) {
	variants := []Variant{VariantH1, VariantH2, VariantH3, VariantH4, VariantH5, VariantH6}

	for level := Level(1); level <= 6; level++ {
		for _, v := range variants {
			tag := fmt.Sprintf("h%d", level)
			t.Run(tag+"/"+string(v), func(t *testing.T) {
				doc := uitest.Doc(t, NewHeading(g.Text("t")).WithLevel(level).WithVariant(v))

				el := doc.Find(tag)
				require.Equal(t, 1, el.Length())
				class, ok := el.Attr("class")
				require.True(t, ok)
				assert.Subset(t, fields(class), fields(variantClasses.Get(v)))
				assert.Contains(t, fields(class), "text-foreground")
			})
		}
	}
}

func TestHeadingStyle(t *testing.T) {
	tests := []struct {
		name    string
		heading *Heading
		want    []string
	}{
		{
			name:    "fallback weight",
			heading: NewHeading(),
			want:    []string{"font-semibold", "text-foreground"},
		},
		{
			name:    "size only",
			heading: NewHeading().WithSize(Size4XL),
			want:    []string{"text-4xl", "text-foreground"},
		},
		{
			name:    "size and weight",
			heading: NewHeading().WithSize(SizeLG).WithWeight(WeightBold),
			want:    []string{"text-lg", "font-bold", "text-foreground"},
		},
		{
			name:    "variant beats size and weight",
			heading: NewHeading().WithVariant(VariantH4).WithSize(Size7XL).WithWeight(WeightNormal),
			want:    []string{"text-lg", "md:text-xl", "font-semibold", "text-foreground"},
		},
		{
			name:    "variant is independent of level",
			heading: NewHeading().WithLevel(3).WithVariant(VariantH1).WithColor(ColorPrimary),
			want:    []string{"text-3xl", "md:text-4xl", "lg:text-5xl", "font-bold", "tracking-tight", "text-primary"},
		},
		{
			name:    "align and balance",
			heading: NewHeading().WithAlign(TextCenter).WithBalance(true),
			want:    []string{"font-semibold", "text-foreground", "text-center", "text-balance"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fields(tt.heading.ClassName()))
		})
	}
}

func fields(s string) []string {
	return strings.Fields(s)
}
