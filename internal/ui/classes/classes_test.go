package classes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSkipsEmptyFragments(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", Merge())
	require.Equal(t, "", Merge("", "  ", If(false, "hidden")))
	require.Equal(t, "flex gap-2", Merge("", "flex", If(false, "grid"), "  gap-2 "))
}

func TestMergeLaterUtilityWins(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in   []string
		want string
	}{
		"padding":         {[]string{"px-2 py-1", "px-4"}, "py-1 px-4"},
		"font size":       {[]string{"text-sm", "text-lg"}, "text-lg"},
		"text colour":     {[]string{"text-foreground", "text-primary"}, "text-primary"},
		"size and colour": {[]string{"text-sm text-foreground", "text-muted-foreground"}, "text-sm text-muted-foreground"},
		"display":         {[]string{"flex", "inline-flex"}, "inline-flex"},
		"background":      {[]string{"bg-primary", "bg-error/10"}, "bg-error/10"},
		"border width":    {[]string{"border", "border-2"}, "border-2"},
		"border colour":   {[]string{"border border-border", "border-error"}, "border border-error"},
		"ring":            {[]string{"focus:ring-2 focus:ring-primary", "focus:ring-error"}, "focus:ring-2 focus:ring-error"},
		"font weight":     {[]string{"font-semibold", "font-bold"}, "font-bold"},
		"grid columns":    {[]string{"grid-cols-3", "grid-cols-1"}, "grid-cols-1"},
		"resize":          {[]string{"resize-y", "resize-none overflow-hidden"}, "resize-none overflow-hidden"},
		"shadow size":     {[]string{"shadow-sm", "shadow-2xl"}, "shadow-2xl"},
		"shadow colour":   {[]string{"shadow-xl shadow-primary/20"}, "shadow-xl shadow-primary/20"},
		"negative values": {[]string{"-top-4", "top-0"}, "top-0"},
		"exact duplicate": {[]string{"group", "group"}, "group"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Merge(tc.in...))
		})
	}
}

func TestMergeShorthandOverridesEarlierLonghand(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "p-4", Merge("px-2 pt-1", "p-4"))
	assert.Equal(t, "p-6 pt-0", Merge("p-6", "pt-0"))
	assert.Equal(t, "gap-4", Merge("gap-x-2", "gap-4"))
	assert.Equal(t, "rounded-lg", Merge("rounded-t-sm", "rounded-lg"))
}

func TestMergeKeepsPerSideBorderSeparate(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in   []string
		want string
	}{
		"side colour after all sides":  {[]string{"border-primary", "border-b-red-500"}, "border-primary border-b-red-500"},
		"all sides after side colour":  {[]string{"border-b-red-500", "border-primary"}, "border-primary"},
		"same side colour":             {[]string{"border-t-primary", "border-t-error"}, "border-t-error"},
		"different side colours":       {[]string{"border-t-primary", "border-b-error"}, "border-t-primary border-b-error"},
		"axis colour replaces sides":   {[]string{"border-l-primary border-r-muted", "border-x-error"}, "border-x-error"},
		"side width and side colour":   {[]string{"border-b-2", "border-b-primary"}, "border-b-2 border-b-primary"},
		"side width does not override": {[]string{"border-b-primary", "border-b-4"}, "border-b-primary border-b-4"},
		"logical side width":           {[]string{"border-s-2", "border-s-4"}, "border-s-4"},
		"arbitrary side width":         {[]string{"border-t-2", "border-t-[3px]"}, "border-t-[3px]"},
		"collapse":                     {[]string{"border-collapse", "border-separate"}, "border-separate"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Merge(tc.in...))
		})
	}
}

func TestMergeFontWeightAndFamily(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "font-[600]", Merge("font-bold", "font-[600]"))
	assert.Equal(t, "font-medium", Merge("font-[600]", "font-medium"))
	assert.Equal(t, "font-bold font-mono", Merge("font-bold font-sans", "font-mono"))
	assert.Equal(t, "font-bold font-['Inter']", Merge("font-bold font-sans", "font-['Inter']"))
}

func TestMergeStroke(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "stroke-2", Merge("stroke-1", "stroke-2"))
	assert.Equal(t, "stroke-[1.5px]", Merge("stroke-2", "stroke-[1.5px]"))
	assert.Equal(t, "stroke-2 stroke-primary", Merge("stroke-2 stroke-current", "stroke-primary"))
	assert.Equal(t, "fill-none", Merge("fill-current", "fill-none"))
}

func TestMergeScopesByModifier(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text-sm md:text-lg", Merge("text-sm", "md:text-lg"))
	assert.Equal(t, "md:text-xl", Merge("md:text-lg", "md:text-xl"))
	assert.Equal(t, "hover:focus:bg-muted", Merge("focus:hover:bg-primary", "hover:focus:bg-muted"))
	assert.Equal(t, "bg-primary !bg-error", Merge("bg-primary", "!bg-error"))
}

func TestMergeArbitraryValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "max-w-[1440px]", Merge("max-w-7xl", "max-w-[1440px]"))
	assert.Equal(t, "text-[22px]", Merge("text-base", "text-[22px]"))
	assert.Equal(t,
		"hover:shadow-[0_0_20px_rgba(99,102,241,0.5)]",
		Merge("hover:shadow-lg", "hover:shadow-[0_0_20px_rgba(99,102,241,0.5)]"),
	)
	assert.Equal(t, "[mask-type:alpha]", Merge("[mask-type:luminance]", "[mask-type:alpha]"))
}

func TestMergeIsDeterministic(t *testing.T) {
	t.Parallel()

	in := []string{"inline-flex items-center gap-2 rounded-lg", "h-10 px-4 py-2 text-base", "w-full px-6"}
	first := Merge(in...)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Merge(in...))
	}
	require.Equal(t, "inline-flex items-center gap-2 rounded-lg h-10 py-2 text-base w-full px-6", first)
}

func TestVariantMap(t *testing.T) {
	t.Parallel()

	type size string
	m := VariantMap[size]{"sm": "text-sm", "lg": "text-lg"}

	assert.Equal(t, "text-sm", m.Get("sm"))
	assert.Equal(t, "", m.Get(""))
	assert.False(t, m.Has("xl"))
	assert.ElementsMatch(t, []size{"sm", "lg"}, m.Keys())
}
