package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexisbeaulieu97/nexus/internal/contact"
	"github.com/alexisbeaulieu97/nexus/internal/content"
	"github.com/alexisbeaulieu97/nexus/internal/ui/components"
	"github.com/alexisbeaulieu97/nexus/internal/ui/primitives"
	"github.com/alexisbeaulieu97/nexus/internal/ui/sections"
)

// Route is a public page.
type Route struct {
	Path        string
	Title       string
	Description string
	body        func(c *content.Content) g.Node
}

// Meta returns the document metadata of r.
func (r Route) Meta() Meta {
	return Meta{Title: r.Title, Description: r.Description, Path: r.Path}
}

// Render returns the full document for r.
func (r Route) Render(c *content.Content) g.Node {
	return Layout(c, r.Meta(), r.body(c))
}

var routes = []Route{
	{Path: "/", body: Home},
	{Path: "/about", Title: "About", Description: "Learn more about our company and mission", body: About},
	{Path: "/services", Title: "Services", Description: "Explore our services and what we can do for you", body: Services},
	{Path: "/contact", Title: "Contact", Description: "Get in touch with us", body: func(c *content.Content) g.Node {
		return Contact(c, nil)
	}},
}

// Routes lists the public pages, home first.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Lookup finds the route for path.
func Lookup(path string) (Route, bool) {
	if path == "" {
		path = "/"
	}
	for _, r := range routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Home is the landing page body.
func Home(c *content.Content) g.Node {
	return g.Group([]g.Node{
		sections.Hero(c.Hero),
		sections.SocialProof(c.SocialProof),
		sections.Features(c.Features),
		sections.HowItWorks(c.HowItWorks),
		g.If(len(c.Testimonials) > 0, sections.Testimonials(c.Testimonials)),
		sections.Pricing(c.Pricing),
		g.If(len(c.FAQ) > 0, sections.FAQ("Frequently Asked Questions", "Everything you need to know about the product", c.FAQ)),
		sections.CTA(c.CTA),
	})
}

func block(b content.Block) g.Node {
	paras := make([]g.Node, 0, len(b.Paragraphs)+1)
	paras = append(paras, primitives.NewHeading(g.Text(b.Title)).WithLevel(2).WithVariant(primitives.VariantH3).WithClass("mb-4"))
	for i, p := range b.Paragraphs {
		text := primitives.NewText(g.Text(p)).WithColor(primitives.ColorMuted)
		if i < len(b.Paragraphs)-1 {
			text.WithClass("mb-4")
		}
		paras = append(paras, text)
	}
	return h.Div(paras...)
}

// About is the about page body.
func About(c *content.Content) g.Node {
	about := c.About
	values := make([]g.Node, 0, len(about.Values))
	for _, v := range about.Values {
		values = append(values, components.NewCard(
			components.CardContent(
				h.Div(h.Class("text-4xl mb-4"), sections.Glyph(v.Icon, "w-10 h-10 mx-auto text-primary", v.Title)),
				primitives.NewHeading(g.Text(v.Title)).WithLevel(3).WithVariant(primitives.VariantH4).WithClass("mb-2"),
				primitives.NewText(g.Text(v.Description)).WithColor(primitives.ColorMuted),
			).WithClass("p-6 text-center"),
		).WithVariant(components.CardBordered))
	}

	return g.Group([]g.Node{
		sections.PageIntro(about.Intro),
		components.NewSection(
			components.NewContainer(
				primitives.NewGrid(block(about.Story), block(about.Mission)).
					WithCols(primitives.Cols2).WithGap(primitives.Gap12).WithClass("grid-cols-1 md:grid-cols-2"),
			),
		),
		g.If(len(values) > 0, components.NewSection(
			components.NewContainer(
				h.Div(h.Class("text-center mb-12"),
					primitives.NewHeading(g.Text(about.ValuesTitle)).WithLevel(2).WithClass("text-3xl sm:text-4xl mb-4"),
				),
				primitives.NewGrid(values...).WithCols(primitives.Cols3).WithGap(primitives.Gap8).WithClass("grid-cols-1 md:grid-cols-3"),
			),
		).WithClass("bg-muted/20")),
	})
}

// Services is the services page body.
func Services(c *content.Content) g.Node {
	cards := make([]g.Node, 0, len(c.Services.Items))
	for _, s := range c.Services.Items {
		features := make([]g.Node, 0, len(s.Features))
		for _, f := range s.Features {
			features = append(features, h.Li(
				h.Class("flex items-start gap-2"),
				sections.Icon("check", "w-5 h-5 text-primary shrink-0 mt-0.5"),
				primitives.NewText(g.Text(f)).WithAs(primitives.TextSpan).WithSize(primitives.SizeSM),
			))
		}
		cards = append(cards, components.NewCard(
			components.CardHeader(
				h.Div(h.Class("text-4xl mb-4"), sections.Glyph(s.Icon, "w-10 h-10 text-primary", s.Title)),
				components.CardTitle(g.Text(s.Title)),
				components.CardDescription(g.Text(s.Description)),
			),
			components.CardContent(h.Ul(append([]g.Node{h.Class("space-y-2")}, features...)...)),
		).WithVariant(components.CardBordered).WithHover(true))
	}

	return g.Group([]g.Node{
		sections.PageIntro(c.Services.Intro),
		components.NewSection(
			components.NewContainer(
				primitives.NewGrid(cards...).WithCols(primitives.Cols2).WithGap(primitives.Gap8).WithClass("grid-cols-1 md:grid-cols-2"),
			),
		),
	})
}

// Contact is the contact page body. A nil form renders the empty form.
func Contact(c *content.Content, form *contact.Form) g.Node {
	return g.Group([]g.Node{
		sections.PageIntro(c.Contact.Intro),
		components.NewSection(
			components.NewContainer(
				primitives.NewGrid(
					h.Div(
						primitives.NewHeading(g.Text(c.Contact.FormTitle)).WithLevel(2).WithVariant(primitives.VariantH3).WithClass("mb-6"),
						sections.ContactForm(form),
					),
					h.Div(
						primitives.NewHeading(g.Text(c.Contact.InfoTitle)).WithLevel(2).WithVariant(primitives.VariantH3).WithClass("mb-6"),
						sections.ContactInfo(c.Contact.Info),
					),
				).WithCols(primitives.Cols2).WithGap(primitives.Gap12).WithClass("grid-cols-1 lg:grid-cols-2"),
			),
		),
	})
}

// ContactDocument renders the contact page with form state, as after a
// form post.
func ContactDocument(c *content.Content, form *contact.Form) g.Node {
	r, _ := Lookup("/contact")
	return Layout(c, r.Meta(), Contact(c, form))
}

// NotFound renders the 404 document.
func NotFound(c *content.Content, path string) g.Node {
	return Layout(c, Meta{Title: "Page not found", Path: path},
		components.NewSection(
			components.NewContainer(
				h.Div(
					h.Class("text-center py-16"),
					h.P(h.Class("text-7xl font-bold text-primary mb-4"), g.Text("404")),
					primitives.NewHeading(g.Text("Page not found")).WithLevel(1).WithVariant(primitives.VariantH2).WithClass("mb-4"),
					primitives.NewText(g.Text("The page you are looking for doesn't exist or has moved.")).
						WithColor(primitives.ColorMuted).WithClass("mb-8"),
					components.NewButton(g.Text("Back to home")).WithHref("/"),
				),
			).WithSize(components.ContainerMD),
		),
	)
}
