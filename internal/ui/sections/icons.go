package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func path(d string) g.Node { return g.El("path", g.Attr("d", d)) }

func circle(cx, cy, r string) g.Node {
	return g.El("circle", g.Attr("cx", cx), g.Attr("cy", cy), g.Attr("r", r))
}

// Outline icons on a 24px grid, stroked with the current color.
var icons = map[string][]g.Node{
	"sparkles": {
		path("M9.937 15.5A2 2 0 0 0 8.5 14.063l-6.135-1.582a.5.5 0 0 1 0-.962L8.5 9.936A2 2 0 0 0 9.937 8.5l1.582-6.135a.5.5 0 0 1 .963 0L14.063 8.5A2 2 0 0 0 15.5 9.937l6.135 1.581a.5.5 0 0 1 0 .964L15.5 14.063a2 2 0 0 0-1.437 1.437l-1.582 6.135a.5.5 0 0 1-.963 0z"),
		path("M20 3v4"), path("M22 5h-4"), path("M4 17v2"), path("M5 18H3"),
	},
	"target": {circle("12", "12", "10"), circle("12", "12", "6"), circle("12", "12", "2")},
	"refresh": {
		path("M3 12a9 9 0 0 1 9-9 9.75 9.75 0 0 1 6.74 2.74L21 8"), path("M21 3v5h-5"),
		path("M21 12a9 9 0 0 1-9 9 9.75 9.75 0 0 1-6.74-2.74L3 16"), path("M8 16H3v5"),
	},
	"mail": {
		path("M4 4h16a2 2 0 0 1 2 2v12a2 2 0 0 1-2 2H4a2 2 0 0 1-2-2V6a2 2 0 0 1 2-2z"),
		path("m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"),
	},
	"map-pin": {
		path("M20 10c0 4.993-5.539 10.193-7.399 11.799a1 1 0 0 1-1.202 0C9.539 20.193 4 14.993 4 10a8 8 0 0 1 16 0"),
		circle("12", "10", "3"),
	},
	"clock":        {circle("12", "12", "10"), path("M12 6v6l4 2")},
	"check":        {path("M20 6 9 17l-5-5")},
	"arrow-right":  {path("M5 12h14"), path("m12 5 7 7-7 7")},
	"play":         {path("M6 3 20 12 6 21z")},
	"menu":         {path("M4 6h16"), path("M4 12h16"), path("M4 18h16")},
	"x":            {path("M18 6 6 18"), path("m6 6 12 12")},
	"chevron-down": {path("m6 9 6 6 6-6")},
	"quote": {
		path("M16 3a2 2 0 0 0-2 2v6a2 2 0 0 0 2 2 1 1 0 0 1 1 1v1a2 2 0 0 1-2 2 1 1 0 0 0-1 1v2a1 1 0 0 0 1 1 6 6 0 0 0 6-6V5a2 2 0 0 0-2-2z"),
		path("M5 3a2 2 0 0 0-2 2v6a2 2 0 0 0 2 2 1 1 0 0 1 1 1v1a2 2 0 0 1-2 2 1 1 0 0 0-1 1v2a1 1 0 0 0 1 1 6 6 0 0 0 6-6V5a2 2 0 0 0-2-2z"),
	},
}

// HasIcon reports whether name is a known icon.
func HasIcon(name string) bool {
	_, ok := icons[name]
	return ok
}

// Icon renders the named icon as inline svg, or nil when unknown.
func Icon(name, class string) g.Node {
	shapes, ok := icons[name]
	if !ok {
		return nil
	}
	attrs := []g.Node{
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.Attr("data-icon", name),
		g.If(class != "", h.Class(class)),
	}
	return g.El("svg", append(attrs, shapes...)...)
}

// Glyph renders a known icon, or the name itself as an emoji-style glyph.
func Glyph(name, class, label string) g.Node {
	if icon := Icon(name, class); icon != nil {
		return icon
	}
	return h.Span(g.Attr("role", "img"), g.Attr("aria-label", label), g.Text(name))
}
