package sections

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexisbeaulieu97/nexus/internal/content"
	"github.com/alexisbeaulieu97/nexus/internal/ui/components"
	"github.com/alexisbeaulieu97/nexus/internal/ui/primitives"
)

const navLinkClass = "text-sm font-medium text-muted-foreground hover:text-foreground transition-colors"

// Pages are the secondary pages linked from the footer.
var Pages = []content.Link{
	{Label: "About", Href: "/about"},
	{Label: "Services", Href: "/services"},
	{Label: "Contact", Href: "/contact"},
}

// ResolveHref points fragment links at the home page when rendering any
// other page, so "#pricing" becomes "/#pricing" off the home page.
func ResolveHref(href string, onHome bool) string {
	if !onHome && strings.HasPrefix(href, "#") {
		return "/" + href
	}
	return href
}

// Header is the sticky site header with desktop and mobile navigation.
func Header(site content.Site, nav []content.NavLink, onHome bool) g.Node {
	trial := ResolveHref("#pricing", onHome)

	links := func(extra ...g.Node) []g.Node {
		out := make([]g.Node, 0, len(nav)+len(extra))
		for _, link := range nav {
			out = append(out, h.A(h.Href(ResolveHref(link.Href, onHome)), h.Class(navLinkClass), g.Text(link.Label)))
		}
		return append(out, extra...)
	}

	return h.Header(
		h.Class("sticky top-0 z-50 w-full border-b border-border bg-background/95 backdrop-blur supports-[backdrop-filter]:bg-background/60"),
		components.NewContainer(
			primitives.NewFlex(
				h.A(
					h.Href("/"),
					h.Class("flex items-center gap-2 font-bold text-xl bg-gradient-to-r from-primary to-secondary bg-clip-text text-transparent"),
					Icon("sparkles", "w-6 h-6 text-primary"),
					g.Text(site.Name),
				),
				h.Nav(append([]g.Node{h.Class("hidden md:flex items-center gap-6"), g.Attr("aria-label", "Main")}, links()...)...),
				primitives.NewFlex(
					components.NewButton(g.Text("Start Free Trial")).
						WithSize(components.SizeSM).
						WithHref(trial).
						WithClass("hidden md:inline-flex bg-gradient-to-r from-primary to-secondary hover:shadow-lg"),
					components.NewButton(
						h.Span(h.Class("menu-open"), Icon("menu", "w-5 h-5")),
						h.Span(h.Class("menu-close hidden"), Icon("x", "w-5 h-5")),
					).
						WithVariant(components.ButtonGhost).
						WithSize(components.SizeSM).
						WithClass("md:hidden").
						WithAttrs(
							g.Attr("data-menu-toggle", ""),
							g.Attr("aria-controls", "mobile-menu"),
							g.Attr("aria-expanded", "false"),
							g.Attr("aria-label", "Toggle menu"),
						),
				).WithAlign(primitives.AlignCenter).WithGap(primitives.Gap2),
			).
				WithJustify(primitives.JustifyBetween).
				WithAlign(primitives.AlignCenter).
				WithClass("h-16"),
			h.Div(
				h.ID("mobile-menu"),
				h.Class("md:hidden overflow-hidden transition-all duration-300 max-h-0"),
				h.Nav(append([]g.Node{h.Class("flex flex-col gap-4 pt-4")}, links(
					components.NewButton(g.Text("Start Free Trial")).WithSize(components.SizeSM).WithHref(trial),
				)...)...),
			),
		),
	)
}

var socialLabels = map[string]string{
	"github":    "GitHub",
	"twitter":   "Twitter",
	"linkedin":  "LinkedIn",
	"facebook":  "Facebook",
	"instagram": "Instagram",
}

func socialLabel(name string) string {
	if label, ok := socialLabels[strings.ToLower(name)]; ok {
		return label
	}
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// Footer renders brand, navigation, page and social columns above the
// copyright line.
func Footer(site content.Site, nav []content.NavLink, onHome bool, year int) g.Node {
	column := func(title string, items ...g.Node) g.Node {
		return h.Div(
			primitives.NewText(g.Text(title)).WithClass("font-semibold mb-4"),
			h.Nav(append([]g.Node{h.Class("flex flex-col gap-2")}, items...)...),
		)
	}
	footerLink := func(href, label string, external bool) g.Node {
		return h.A(
			h.Href(href),
			h.Class("text-sm text-muted-foreground hover:text-foreground transition-colors"),
			g.If(external, g.Attr("target", "_blank")),
			g.If(external, g.Attr("rel", "noopener noreferrer")),
			g.Text(label),
		)
	}

	navItems := make([]g.Node, 0, len(nav))
	for _, link := range nav {
		navItems = append(navItems, footerLink(ResolveHref(link.Href, onHome), link.Label, false))
	}
	pageItems := make([]g.Node, 0, len(Pages))
	for _, link := range Pages {
		pageItems = append(pageItems, footerLink(link.Href, link.Label, false))
	}
	socialItems := make([]g.Node, 0, len(site.Links))
	for _, link := range site.Links {
		if link.URL == "" {
			continue
		}
		socialItems = append(socialItems, footerLink(link.URL, socialLabel(link.Name), true))
	}

	return h.Footer(
		h.Class("border-t border-border bg-muted/20"),
		components.NewContainer(
			primitives.NewGrid(
				h.Div(
					h.A(h.Href("/"), h.Class("font-bold text-xl mb-4 inline-block"), g.Text(site.Name)),
					primitives.NewText(g.Text(site.Description)).WithSize(primitives.SizeSM).WithColor(primitives.ColorMuted),
				),
				column("Navigation", navItems...),
				column("Company", pageItems...),
				column("Connect", socialItems...),
			).WithCols(primitives.Cols4).WithGap(primitives.Gap8).WithClass("mb-8 grid-cols-1 md:grid-cols-4"),
			h.Div(
				h.Class("pt-8 border-t border-border"),
				primitives.NewFlex(
					primitives.NewText(g.Text(fmt.Sprintf("© %d %s. All rights reserved.", year, site.Name))).
						WithSize(primitives.SizeSM).WithColor(primitives.ColorMuted),
					primitives.NewText(g.Text("Built with Go")).
						WithSize(primitives.SizeSM).WithColor(primitives.ColorMuted),
				).
					WithJustify(primitives.JustifyBetween).
					WithAlign(primitives.AlignCenter).
					WithClass("flex-col md:flex-row gap-4"),
			),
		).WithClass("py-12 md:py-16"),
	)
}
