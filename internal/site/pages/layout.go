// Package pages assembles sections into full HTML documents for each route.
package pages

import (
	"strings"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexisbeaulieu97/nexus/internal/content"
	"github.com/alexisbeaulieu97/nexus/internal/site/static"
	"github.com/alexisbeaulieu97/nexus/internal/ui/sections"
)

const (
	tailwindBrowser = "https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4"
	scriptPath      = "/static/site.js"
)

// now is the clock used for the footer year.
var now = time.Now

// Meta describes one document.
type Meta struct {
	Title       string
	Description string
	Path        string
}

func (m Meta) title(site content.Site) string {
	if m.Title == "" {
		return site.Name
	}
	return m.Title + " | " + site.Name
}

func (m Meta) canonical(site content.Site) string {
	base := strings.TrimRight(site.URL, "/")
	if m.Path == "" || m.Path == "/" {
		return base
	}
	return base + m.Path
}

// Layout wraps body in the document shell: head metadata, header, footer
// and the site script.
func Layout(c *content.Content, meta Meta, body ...g.Node) g.Node {
	onHome := meta.Path == "/"
	description := meta.Description
	if description == "" {
		description = c.Site.Description
	}
	title := meta.title(c.Site)

	return h.Doctype(
		h.HTML(
			g.Attr("lang", "en"),
			h.Head(
				h.Meta(g.Attr("charset", "utf-8")),
				h.Meta(g.Attr("name", "viewport"), g.Attr("content", "width=device-width, initial-scale=1")),
				g.El("title", g.Text(title)),
				h.Meta(g.Attr("name", "description"), g.Attr("content", description)),
				h.Link(g.Attr("rel", "canonical"), h.Href(meta.canonical(c.Site))),
				h.Meta(g.Attr("property", "og:title"), g.Attr("content", title)),
				h.Meta(g.Attr("property", "og:description"), g.Attr("content", description)),
				h.Meta(g.Attr("property", "og:url"), g.Attr("content", meta.canonical(c.Site))),
				h.Meta(g.Attr("property", "og:type"), g.Attr("content", "website")),
				g.If(c.Site.OGImage != "", h.Meta(g.Attr("property", "og:image"), g.Attr("content", c.Site.OGImage))),
				h.Script(h.Src(tailwindBrowser)),
				g.El("style", g.Attr("type", "text/tailwindcss"), g.Raw(static.Theme())),
				h.Script(h.Src(scriptPath), h.Defer()),
			),
			h.Body(
				h.Class("min-h-screen flex flex-col bg-background text-foreground antialiased"),
				sections.Header(c.Site, c.Nav, onHome),
				h.Main(append([]g.Node{h.Class("flex-1")}, body...)...),
				sections.Footer(c.Site, c.Nav, onHome, now().Year()),
			),
		),
	)
}
