package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexisbeaulieu97/nexus/internal/contact"
	"github.com/alexisbeaulieu97/nexus/internal/content"
	"github.com/alexisbeaulieu97/nexus/internal/ui/components"
	"github.com/alexisbeaulieu97/nexus/internal/ui/primitives"
)

// Form endpoints. The site script posts JSON to the API; without script the
// browser posts the form itself.
const (
	ContactAPIPath  = "/api/contact"
	ContactFormPath = "/contact"
)

// ContactForm renders the contact form in the state held by form: current
// values, inline field errors and the settled notice.
func ContactForm(form *contact.Form) g.Node {
	if form == nil {
		form = contact.NewForm()
	}

	var notice g.Node
	switch form.Status() {
	case contact.StatusSuccess:
		notice = components.NewAlert(components.AlertSuccess, g.Text(form.Notice()))
	case contact.StatusError:
		notice = components.NewAlert(components.AlertError, g.Text(form.Notice()))
	}

	label := "Send Message"
	if form.Submitting() {
		label = "Sending..."
	}

	return g.El("form",
		h.ID("contact-form"),
		h.Class("space-y-6"),
		g.Attr("method", "post"),
		g.Attr("action", ContactFormPath),
		g.Attr("novalidate", ""),
		g.Attr("data-contact-endpoint", ContactAPIPath),
		components.NewInput().
			WithName(contact.FieldName).
			WithLabel("Name").
			WithType("text").
			WithPlaceholder("John Doe").
			WithValue(form.Value(contact.FieldName)).
			WithError(form.Error(contact.FieldName)),
		components.NewInput().
			WithName(contact.FieldEmail).
			WithLabel("Email").
			WithType("email").
			WithPlaceholder("john@example.com").
			WithValue(form.Value(contact.FieldEmail)).
			WithError(form.Error(contact.FieldEmail)),
		components.NewInput().
			WithName(contact.FieldSubject).
			WithLabel("Subject").
			WithType("text").
			WithPlaceholder("How can we help?").
			WithValue(form.Value(contact.FieldSubject)).
			WithError(form.Error(contact.FieldSubject)),
		components.NewTextarea().
			WithName(contact.FieldMessage).
			WithLabel("Message").
			WithPlaceholder("Tell us more about your project...").
			WithRows(6).
			WithAutoResize(true).
			WithValue(form.Value(contact.FieldMessage)).
			WithError(form.Error(contact.FieldMessage)),
		h.Div(g.Attr("data-contact-notice", ""), g.Attr("aria-live", "polite"), notice),
		components.NewButton(g.Text(label)).
			WithType("submit").
			WithSize(components.SizeLG).
			WithLoading(form.Submitting()).
			WithClass("w-full").
			WithAttrs(g.Attr("data-submit", "")),
	)
}

// ContactInfo renders one card per way to reach the company.
func ContactInfo(items []content.ContactInfo) g.Node {
	cards := make([]g.Node, 0, len(items))
	for _, item := range items {
		cards = append(cards, components.NewCard(
			components.CardContent(
				h.Div(
					h.Class("flex items-start gap-4"),
					h.Div(h.Class("p-3 rounded-lg bg-primary/10"), Glyph(item.Icon, "w-6 h-6 text-primary", item.Title)),
					h.Div(
						primitives.NewHeading(g.Text(item.Title)).WithLevel(3).WithVariant(primitives.VariantH5).WithClass("mb-1"),
						primitives.NewText(g.Text(item.Value)).WithColor(primitives.ColorMuted),
					),
				),
			).WithClass("p-6"),
		).WithVariant(components.CardBordered))
	}
	return h.Div(append([]g.Node{h.Class("space-y-6")}, cards...)...)
}

// PageIntro is the heading band at the top of a secondary page.
func PageIntro(in content.Intro) g.Node {
	return components.NewSection(
		components.NewContainer(
			h.Div(
				h.Class("text-center"),
				primitives.NewHeading(g.Text(in.Title)).WithLevel(1).WithClass("text-4xl sm:text-5xl lg:text-6xl mb-6"),
				g.If(in.Subtitle != "", primitives.NewText(g.Text(in.Subtitle)).
					WithSize(primitives.SizeLG).
					WithColor(primitives.ColorMuted).
					WithClass("max-w-2xl mx-auto")),
			),
		).WithSize(components.ContainerMD),
	).WithClass("bg-muted/20")
}
