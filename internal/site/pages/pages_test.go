package pages

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/nexus/internal/contact"
	"github.com/alexisbeaulieu97/nexus/internal/content"
	"github.com/alexisbeaulieu97/nexus/internal/sitemap"
	"github.com/alexisbeaulieu97/nexus/internal/ui/uitest"
)

func fixedClock(t *testing.T) {
	t.Helper()
	prev := now
	now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = prev })
}

func TestEverySitemapRouteHasAPage(t *testing.T) {
	for _, route := range sitemap.Routes {
		_, ok := Lookup(route)
		assert.True(t, ok, "no page for %q", route)
	}
	require.Len(t, Routes(), len(sitemap.Routes))
}

func TestHomeDocument(t *testing.T) {
	fixedClock(t)
	c := content.Default()
	r, ok := Lookup("/")
	require.True(t, ok)

	out := uitest.Render(t, r.Render(c))
	require.True(t, strings.HasPrefix(strings.ToLower(out), "<!doctype html>"))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, c.Site.Name, doc.Find("title").Text())
	assert.Equal(t, c.Site.URL, doc.Find(`link[rel=canonical]`).AttrOr("href", ""))
	assert.Equal(t, c.Site.Description, doc.Find(`meta[name=description]`).AttrOr("content", ""))
	assert.Equal(t, 1, doc.Find(`script[src="/static/site.js"]`).Length())

	for _, id := range []string{"hero", "features", "how-it-works", "testimonials", "pricing", "faq"} {
		assert.Equal(t, 1, doc.Find("#"+id).Length(), "missing section %s", id)
	}
	assert.Equal(t, "#pricing", doc.Find("nav[aria-label=Main] a").Eq(2).AttrOr("href", ""))
	assert.Contains(t, doc.Find("footer").Text(), "© 2025")
	assert.Equal(t, 1, doc.Find("h1").Length())
}

func TestSecondaryPages(t *testing.T) {
	c := content.Default()

	tests := []struct {
		path  string
		title string
		h1    string
	}{
		{"/about", "About | Nexus AI", c.About.Intro.Title},
		{"/services", "Services | Nexus AI", c.Services.Intro.Title},
		{"/contact", "Contact | Nexus AI", c.Contact.Intro.Title},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r, ok := Lookup(tt.path)
			require.True(t, ok)
			doc := uitest.Doc(t, r.Render(c))
			assert.Equal(t, tt.title, doc.Find("title").Text())
			assert.Equal(t, tt.h1, doc.Find("h1").Text())
			assert.Equal(t, c.Site.URL+tt.path, doc.Find(`link[rel=canonical]`).AttrOr("href", ""))
			assert.Regexp(t, `^/#`, doc.Find("nav[aria-label=Main] a").First().AttrOr("href", ""))
		})
	}
}

func TestAboutPage(t *testing.T) {
	c := content.Default()
	doc := uitest.Doc(t, About(c))
	assert.Equal(t, len(c.About.Values), doc.Find("h3").Length())
	assert.Contains(t, doc.Text(), c.About.Story.Paragraphs[0])
	assert.Contains(t, doc.Text(), c.About.Mission.Title)
}

func TestServicesPage(t *testing.T) {
	c := content.Default()
	doc := uitest.Doc(t, Services(c))

	checks := 0
	for _, s := range c.Services.Items {
		checks += len(s.Features)
	}
	assert.Equal(t, checks, doc.Find(`li svg[data-icon="check"]`).Length())
	assert.Equal(t, len(c.Services.Items), doc.Find("h3").Length())
}

func TestContactDocumentWithErrors(t *testing.T) {
	c := content.Default()
	form := contact.NewForm()
	form.Set(contact.FieldEmail, "bad")
	_, ok := form.Begin()
	require.False(t, ok)

	doc := uitest.Doc(t, ContactDocument(c, form))
	assert.Equal(t, "Contact | Nexus AI", doc.Find("title").Text())
	assert.Equal(t, "bad", doc.Find(`input[name=email]`).AttrOr("value", ""))
	assert.Equal(t, 4, doc.Find("#contact-form p[role=alert]").Length())
	assert.Equal(t, len(c.Contact.Info), doc.Find(".space-y-6 > div h3").Length())
}

func TestNotFound(t *testing.T) {
	c := content.Default()
	doc := uitest.Doc(t, NotFound(c, "/missing"))
	assert.Equal(t, "Page not found | Nexus AI", doc.Find("title").Text())
	assert.Equal(t, "/", doc.Find("main a").AttrOr("href", ""))

	_, ok := Lookup("/missing")
	assert.False(t, ok)
}
