package sections

import (
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/nexus/internal/contact"
	"github.com/alexisbeaulieu97/nexus/internal/content"
	"github.com/alexisbeaulieu97/nexus/internal/ui/uitest"
)

func TestResolveHref(t *testing.T) {
	assert.Equal(t, "#pricing", ResolveHref("#pricing", true))
	assert.Equal(t, "/#pricing", ResolveHref("#pricing", false))
	assert.Equal(t, "/about", ResolveHref("/about", false))
	assert.Equal(t, "https://example.com", ResolveHref("https://example.com", false))
}

func TestHeaderLinksOffHomePage(t *testing.T) {
	c := content.Default()
	doc := uitest.Doc(t, Header(c.Site, c.Nav, false))

	hrefs := doc.Find("nav[aria-label=Main] a").Map(func(_ int, s *goquery.Selection) string {
		return s.AttrOr("href", "")
	})
	require.Len(t, hrefs, len(c.Nav))
	for _, href := range hrefs {
		assert.Regexp(t, `^/#`, href)
	}
	assert.Equal(t, "false", doc.Find("[data-menu-toggle]").AttrOr("aria-expanded", ""))
	assert.Equal(t, 1, doc.Find("#mobile-menu").Length())
	assert.Contains(t, doc.Find("header a").First().Text(), c.Site.Name)
}

func TestFooterColumns(t *testing.T) {
	c := content.Default()
	doc := uitest.Doc(t, Footer(c.Site, c.Nav, true, 2025))

	text := doc.Text()
	assert.Contains(t, text, "© 2025 "+c.Site.Name+". All rights reserved.")
	assert.Contains(t, text, "Twitter")
	assert.Contains(t, text, "LinkedIn")

	external := doc.Find(`a[target="_blank"]`)
	assert.Equal(t, len(c.Site.Links), external.Length())
	assert.Equal(t, "noopener noreferrer", external.First().AttrOr("rel", ""))
	assert.Equal(t, 1, doc.Find(`a[href="/services"]`).Length())
}

func TestSocialLabel(t *testing.T) {
	assert.Equal(t, "GitHub", socialLabel("github"))
	assert.Equal(t, "Mastodon", socialLabel("mastodon"))
	assert.Equal(t, "", socialLabel(""))
}

func TestHeroAnimations(t *testing.T) {
	doc := uitest.Doc(t, Hero(content.Default().Hero))

	reveals := doc.Find("[data-reveal]")
	require.Equal(t, 3, reveals.Length())
	assert.Equal(t, "fade-up", reveals.Eq(0).AttrOr("data-reveal", ""))
	assert.Equal(t, "100", reveals.Eq(0).AttrOr("data-reveal-delay", ""))
	assert.Equal(t, "scale", reveals.Eq(2).AttrOr("data-reveal", ""))
	assert.Equal(t, "500", reveals.Eq(2).AttrOr("data-reveal-delay", ""))
	assert.Equal(t, 1, doc.Find("h1").Length())
	assert.Equal(t, 1, doc.Find(`section#hero a[href="#pricing"] svg[data-icon="arrow-right"]`).Length())
}

func TestFeaturesStaggerAndIcons(t *testing.T) {
	features := []content.Feature{
		{Icon: "sparkles", Title: "One", Description: "d"},
		{Icon: "🚀", Title: "Two", Description: "d"},
	}
	doc := uitest.Doc(t, Features(features))

	cards := doc.Find("#features .grid > [data-reveal]")
	require.Equal(t, 2, cards.Length())
	assert.Equal(t, "200", cards.Eq(0).AttrOr("data-reveal-delay", ""))
	assert.Equal(t, "350", cards.Eq(1).AttrOr("data-reveal-delay", ""))
	assert.Equal(t, 1, cards.Eq(0).Find(`svg[data-icon="sparkles"]`).Length())
	assert.Equal(t, "🚀", cards.Eq(1).Find(`span[role="img"]`).Text())
	assert.Equal(t, 2, doc.Find("h3").Length())
}

func TestHowItWorksAlternates(t *testing.T) {
	doc := uitest.Doc(t, HowItWorks(content.Default().HowItWorks))

	steps := doc.Find(".space-y-16 > [data-reveal]")
	require.Equal(t, 3, steps.Length())
	assert.Equal(t, "slide-left", steps.Eq(0).AttrOr("data-reveal", ""))
	assert.Equal(t, "slide-right", steps.Eq(1).AttrOr("data-reveal", ""))
	assert.Contains(t, steps.Eq(1).Children().First().AttrOr("class", ""), "md:flex-row-reverse")
	assert.Equal(t, "01", steps.Eq(0).Find(".select-none").Text())
	assert.Contains(t, doc.Text(), "Get started in 3 simple steps")
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "SC", Initials("Sarah Chen"))
	assert.Equal(t, "ÉL", Initials("Émile  Lopez"))
	assert.Equal(t, "", Initials(""))
}

func TestTestimonials(t *testing.T) {
	doc := uitest.Doc(t, Testimonials(content.Default().Testimonials))
	assert.Equal(t, 2, doc.Find("blockquote").Length())
	assert.Contains(t, doc.Text(), "SC")
	assert.Equal(t, "scale", doc.Find("[data-reveal]").Eq(1).AttrOr("data-reveal", ""))
}

func TestPricing(t *testing.T) {
	price := 49
	plans := []content.PricingPlan{
		{Name: "Pro", Price: &price, Description: "d", Features: []string{"a", "b"}, Highlighted: true, Badge: "Most Popular"},
		{Name: "Enterprise", Description: "d", Features: []string{"c"}},
	}
	doc := uitest.Doc(t, Pricing(plans))

	highlighted := doc.Find("[data-highlighted]")
	require.Equal(t, 1, highlighted.Length())
	assert.Contains(t, highlighted.Text(), "$49")
	assert.Contains(t, highlighted.Text(), "/mo")
	assert.Contains(t, highlighted.Text(), "Most Popular")
	assert.Contains(t, highlighted.Find("a").Last().Text(), "Start Free Trial")

	text := doc.Text()
	assert.Contains(t, text, "Custom")
	assert.Contains(t, text, "Contact Sales")
	assert.Equal(t, 3, doc.Find(`li svg[data-icon="check"]`).Length())
}

func TestFAQUsesDisclosure(t *testing.T) {
	items := content.Default().FAQ
	doc := uitest.Doc(t, FAQ("Frequently Asked Questions", "", items))

	assert.Equal(t, len(items), doc.Find("details").Length())
	assert.Equal(t, items[0].Question, doc.Find("summary").First().Text())
	assert.Equal(t, 1, doc.Find("h2").Length())

	doc = uitest.Doc(t, FAQ("", "", items))
	assert.Zero(t, doc.Find("h2").Length())
}

func TestCTA(t *testing.T) {
	cta := content.Default().CTA
	doc := uitest.Doc(t, CTA(cta))
	assert.Equal(t, cta.Action.Href, doc.Find("a").AttrOr("href", ""))
	assert.Contains(t, doc.Text(), cta.Note)
}

func TestContactFormStates(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		doc := uitest.Doc(t, ContactForm(nil))
		form := doc.Find("form#contact-form")
		require.Equal(t, 1, form.Length())
		assert.Equal(t, ContactFormPath, form.AttrOr("action", ""))
		assert.Equal(t, ContactAPIPath, form.AttrOr("data-contact-endpoint", ""))
		assert.Equal(t, 3, form.Find("input").Length())
		assert.Equal(t, "6", form.Find("textarea").AttrOr("rows", ""))
		assert.Zero(t, form.Find("[role=alert]").Length())
		assert.Contains(t, form.Find("button[type=submit]").Text(), "Send Message")
	})

	t.Run("invalid", func(t *testing.T) {
		f := contact.NewForm()
		f.Set(contact.FieldName, "Ada")
		f.Set(contact.FieldEmail, "nope")
		_, ok := f.Begin()
		require.False(t, ok)

		doc := uitest.Doc(t, ContactForm(f))
		assert.Equal(t, "Ada", doc.Find(`input[name="name"]`).AttrOr("value", ""))
		assert.Equal(t, "true", doc.Find(`input[name="email"]`).AttrOr("aria-invalid", ""))
		assert.Contains(t, doc.Find("p[role=alert]").Text(), "Invalid email address")
	})

	t.Run("success", func(t *testing.T) {
		f := contact.NewForm()
		for field, value := range map[string]string{
			contact.FieldName:    "Ada Lovelace",
			contact.FieldEmail:   "ada@example.com",
			contact.FieldSubject: "Hello there",
			contact.FieldMessage: "A message long enough.",
		} {
			f.Set(field, value)
		}
		f.Submit(context.Background(), contact.SenderFunc(func(context.Context, contact.Submission) error { return nil }))

		doc := uitest.Doc(t, ContactForm(f))
		notice := doc.Find("[data-contact-notice] [role=status]")
		assert.Equal(t, contact.NoticeSuccess, notice.Text())
		assert.Empty(t, doc.Find(`input[name="name"]`).AttrOr("value", ""))
	})
}

func TestContactInfo(t *testing.T) {
	items := content.Default().Contact.Info
	doc := uitest.Doc(t, ContactInfo(items))
	assert.Equal(t, len(items), doc.Find("h3").Length())
	assert.Equal(t, 1, doc.Find(`svg[data-icon="map-pin"]`).Length())
}

func TestPageIntro(t *testing.T) {
	doc := uitest.Doc(t, PageIntro(content.Intro{Title: "About Us"}))
	assert.Equal(t, "About Us", doc.Find("h1").Text())
	assert.Zero(t, doc.Find("p").Length())
}

func TestIconUnknown(t *testing.T) {
	assert.Nil(t, Icon("nope", ""))
	assert.True(t, HasIcon("check"))
	assert.False(t, HasIcon("nope"))
}
