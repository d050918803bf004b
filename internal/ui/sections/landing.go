package sections

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexisbeaulieu97/nexus/internal/content"
	"github.com/alexisbeaulieu97/nexus/internal/ui/classes"
	"github.com/alexisbeaulieu97/nexus/internal/ui/components"
	"github.com/alexisbeaulieu97/nexus/internal/ui/primitives"
	"github.com/alexisbeaulieu97/nexus/internal/ui/reveal"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// stagger is the reveal delay of the i-th item in a list.
func stagger(base, step, i int) time.Duration { return ms(base + i*step) }

const (
	bandHeading  = "text-4xl sm:text-5xl lg:text-6xl mb-4 font-bold"
	bandSubtitle = "text-xl text-muted-foreground max-w-2xl mx-auto"
)

// intro is the centred title block that opens a landing band.
func intro(title, subtitle, class string) g.Node {
	return components.AnimatedSection(reveal.FadeUp, ms(100),
		h.Div(
			h.Class(class),
			primitives.NewHeading(g.Text(title)).WithLevel(2).WithClass(bandHeading),
			primitives.NewText(g.Text(subtitle)).WithSize(primitives.SizeLG).WithClass(bandSubtitle),
		),
	)
}

const gradientCTA = "bg-gradient-to-r from-primary via-secondary to-accent hover:shadow-[0_0_20px_rgba(99,102,241,0.5)]"

// Hero is the landing page's opening band.
func Hero(hero content.Hero) g.Node {
	return components.NewSection(
		components.NewContainer(
			h.Div(
				h.Class("mx-auto max-w-4xl text-center"),
				components.AnimatedSection(reveal.FadeUp, ms(100),
					primitives.NewHeading(g.Text(hero.Title)).WithLevel(1).
						WithClass("text-5xl sm:text-6xl md:text-7xl lg:text-8xl mb-6 font-bold leading-tight bg-gradient-to-r from-primary via-secondary to-accent bg-clip-text text-transparent"),
				),
				components.AnimatedSection(reveal.FadeUp, ms(300),
					primitives.NewText(g.Text(hero.Subtitle)).WithSize(primitives.SizeLG).WithBalance(true).
						WithClass("text-xl md:text-2xl text-muted-foreground mb-10 max-w-3xl mx-auto leading-relaxed"),
				),
				components.AnimatedSection(reveal.Scale, ms(500),
					h.Div(
						h.Class("flex flex-col sm:flex-row gap-4 justify-center items-center"),
						components.NewButton(g.Text(hero.Primary.Label)).
							WithSize(components.SizeLG).
							WithHref(hero.Primary.Href).
							WithRightIcon(Icon("arrow-right", "w-5 h-5")).
							WithClass(gradientCTA+" transition-shadow duration-300"),
						components.NewButton(g.Text(hero.Secondary.Label)).
							WithVariant(components.ButtonGhost).
							WithSize(components.SizeLG).
							WithHref(hero.Secondary.Href).
							WithLeftIcon(Icon("play", "w-5 h-5")),
					),
				),
			),
		).WithClass("relative z-10 py-20 md:py-28 lg:py-32"),
		h.Div(
			h.Class("absolute inset-0 -z-10 overflow-hidden"),
			g.Attr("aria-hidden", "true"),
			h.Div(h.Class("absolute top-0 left-1/4 w-[600px] h-[600px] bg-gradient-to-br from-primary/20 to-transparent rounded-full blur-3xl animate-pulse")),
			h.Div(h.Class("absolute top-1/2 right-1/4 w-[800px] h-[800px] bg-gradient-to-br from-secondary/20 to-transparent rounded-full blur-3xl animate-pulse"), g.Attr("style", "animation-delay:1s")),
			h.Div(h.Class("absolute bottom-0 left-1/2 -translate-x-1/2 w-[700px] h-[700px] bg-gradient-to-br from-accent/15 to-transparent rounded-full blur-3xl animate-pulse"), g.Attr("style", "animation-delay:2s")),
		),
	).
		WithAttrs(h.ID("hero")).
		WithClass("relative overflow-hidden bg-gradient-to-br from-background via-primary/5 to-secondary/10")
}

// SocialProof lists customer names.
func SocialProof(sp content.SocialProof) g.Node {
	names := make([]g.Node, 0, len(sp.Companies))
	for _, company := range sp.Companies {
		names = append(names, h.Div(
			h.Class("text-xl md:text-2xl font-semibold text-foreground/40 hover:text-foreground/60 transition-colors duration-300"),
			g.Text(company),
		))
	}

	return components.NewSection(
		components.NewContainer(
			h.Div(
				h.Class("text-center"),
				primitives.NewText(g.Text(sp.Title)).WithColor(primitives.ColorMuted).WithClass("text-sm md:text-base mb-8"),
				h.Div(append([]g.Node{h.Class("flex flex-wrap justify-center items-center gap-8 md:gap-12 lg:gap-16")}, names...)...),
			),
		).WithClass("py-8"),
	).WithClass("bg-muted/30 border-y border-muted")
}

// Features is the feature card grid.
func Features(features []content.Feature) g.Node {
	cards := make([]g.Node, 0, len(features))
	for i, f := range features {
		cards = append(cards, components.AnimatedSection(reveal.FadeUp, stagger(200, 150, i),
			components.NewCard(
				components.CardContent(
					h.Div(
						h.Class("mb-6 flex h-16 w-16 items-center justify-center rounded-2xl bg-gradient-to-br from-primary/10 to-secondary/10"),
						Glyph(f.Icon, "w-12 h-12 text-primary", "feature icon"),
					),
					primitives.NewHeading(g.Text(f.Title)).WithLevel(3).WithVariant(primitives.VariantH4).WithClass("mb-3 text-2xl font-semibold"),
					primitives.NewText(g.Text(f.Description)).WithColor(primitives.ColorMuted).WithClass("leading-relaxed"),
				).WithClass("p-8"),
			).
				WithVariant(components.CardBordered).
				WithHover(true).
				WithClass("h-full transition-all duration-300 hover:shadow-xl hover:-translate-y-1 border-muted/50"),
		))
	}

	return components.NewSection(
		components.NewContainer(
			intro("Everything You Need to Scale Content", "Powerful features designed to supercharge your marketing workflow", "text-center mb-12 lg:mb-16"),
			primitives.NewGrid(cards...).WithCols(primitives.Cols3).WithGap(primitives.Gap8).WithClass("grid-cols-1 md:grid-cols-2 lg:grid-cols-3"),
		),
	).WithAttrs(h.ID("features")).WithClass("bg-background")
}

// HowItWorks alternates numbered steps left and right.
func HowItWorks(steps []content.Step) g.Node {
	rows := make([]g.Node, 0, len(steps))
	for i, step := range steps {
		preset, direction := reveal.SlideLeft, "md:flex-row"
		if i%2 == 1 {
			preset, direction = reveal.SlideRight, "md:flex-row-reverse"
		}
		rows = append(rows, components.AnimatedSection(preset, stagger(200, 200, i),
			h.Div(
				h.Class(classes.Merge("flex flex-col items-center gap-8 md:gap-12 lg:gap-16", direction)),
				h.Div(
					h.Class("flex-shrink-0 relative"),
					h.Div(
						h.Class("text-[120px] md:text-[160px] font-bold text-transparent bg-gradient-to-br from-primary/20 to-secondary/20 bg-clip-text select-none"),
						g.Text(fmt.Sprintf("%02d", step.Step)),
					),
					h.Div(h.Class("absolute top-1/2 left-1/2 -translate-x-1/2 -translate-y-1/2 w-32 h-32 md:w-40 md:h-40 bg-gradient-to-br from-primary/10 to-secondary/10 rounded-full blur-2xl -z-10")),
				),
				h.Div(
					h.Class("flex-1 text-center md:text-left"),
					primitives.NewHeading(g.Text(step.Title)).WithLevel(3).WithVariant(primitives.VariantH3).WithClass("text-3xl md:text-4xl mb-4 font-semibold"),
					primitives.NewText(g.Text(step.Description)).WithColor(primitives.ColorMuted).WithClass("text-lg md:text-xl leading-relaxed max-w-xl"),
				),
			),
		))
	}

	return components.NewSection(
		components.NewContainer(
			intro("How It Works", fmt.Sprintf("Get started in %d simple steps", len(steps)), "text-center mb-16"),
			h.Div(append([]g.Node{h.Class("space-y-16 md:space-y-24")}, rows...)...),
		),
	).WithAttrs(h.ID("how-it-works")).WithClass("bg-muted/20")
}

// Initials returns the first letter of each word of name.
func Initials(name string) string {
	var sb strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			sb.WriteRune(r)
			break
		}
	}
	return sb.String()
}

// Testimonials is the quote card grid.
func Testimonials(items []content.Testimonial) g.Node {
	cards := make([]g.Node, 0, len(items))
	for i, t := range items {
		cards = append(cards, components.AnimatedSection(reveal.Scale, stagger(200, 200, i),
			components.NewCard(
				components.CardContent(
					Icon("quote", "w-10 h-10 text-primary/30 mb-6"),
					primitives.NewText(g.Text(t.Quote)).WithAs(primitives.TextBlockquote).WithClass("text-xl md:text-2xl mb-8 leading-relaxed"),
					primitives.NewFlex(
						h.Div(
							h.Class("relative w-14 h-14 rounded-full overflow-hidden bg-gradient-to-br from-primary/20 to-secondary/20 shrink-0 flex items-center justify-center"),
							primitives.NewText(g.Text(Initials(t.Author))).WithColor(primitives.ColorPrimary).WithClass("text-xl font-bold"),
						),
						h.Div(
							primitives.NewText(g.Text(t.Author)).WithClass("font-semibold text-lg"),
							g.If(t.Role != "", primitives.NewText(g.Text(t.Role)).WithSize(primitives.SizeSM).WithColor(primitives.ColorMuted)),
							g.If(t.Company != "", primitives.NewText(g.Text(t.Company)).WithSize(primitives.SizeSM).WithColor(primitives.ColorMuted).WithWeight(primitives.WeightMedium)),
						),
					).WithAlign(primitives.AlignCenter).WithGap(primitives.Gap4),
				).WithClass("p-8 md:p-10"),
			).
				WithVariant(components.CardBordered).
				WithHover(true).
				WithClass("h-full transition-all duration-300 hover:shadow-xl border-muted/50"),
		))
	}

	return components.NewSection(
		components.NewContainer(
			intro("What Our Customers Say", "Join thousands of satisfied marketers transforming their content strategy", "text-center mb-12 lg:mb-16"),
			primitives.NewGrid(cards...).WithCols(primitives.Cols2).WithGap(primitives.Gap8).WithClass("grid-cols-1 lg:grid-cols-2"),
		),
	).WithAttrs(h.ID("testimonials")).WithClass("bg-muted/20")
}

// PriceLabel renders a plan's price, or "Custom".
func PriceLabel(p content.PricingPlan) string {
	if p.Custom() {
		return "Custom"
	}
	return "$" + strconv.Itoa(*p.Price)
}

func planCTA(p content.PricingPlan) string {
	if p.Custom() {
		return "Contact Sales"
	}
	return "Start Free Trial"
}

// Pricing is the plan card grid. The highlighted plan is elevated and gets
// the primary button.
func Pricing(plans []content.PricingPlan) g.Node {
	cards := make([]g.Node, 0, len(plans))
	for i, p := range plans {
		variant, buttonVariant := components.CardBordered, components.ButtonOutline
		if p.Highlighted {
			variant, buttonVariant = components.CardElevated, components.ButtonPrimary
		}

		var price g.Node = h.Div(h.Class("text-5xl font-bold"), g.Text(PriceLabel(p)))
		if !p.Custom() {
			price = primitives.NewFlex(
				h.Span(h.Class("text-5xl font-bold"), g.Text(PriceLabel(p))),
				h.Span(h.Class("text-lg text-muted-foreground"), g.Text("/mo")),
			).WithAlign(primitives.AlignBaseline).WithJustify(primitives.JustifyCenter).WithGap(primitives.Gap1)
		}

		features := make([]g.Node, 0, len(p.Features))
		for _, f := range p.Features {
			features = append(features, h.Li(
				h.Class("flex items-start gap-3"),
				Icon("check", "w-5 h-5 text-primary shrink-0 mt-1"),
				primitives.NewText(g.Text(f)).WithAs(primitives.TextSpan),
			))
		}

		cards = append(cards, components.AnimatedSection(reveal.FadeUp, stagger(200, 150, i),
			components.NewCard(
				g.If(p.Badge != "", h.Div(
					h.Class("absolute -top-4 left-1/2 -translate-x-1/2"),
					components.NewBadge(g.Text(p.Badge)).
						WithVariant(components.BadgePrimary).
						WithClass("bg-gradient-to-r from-accent to-secondary text-white shadow-lg"),
				)),
				components.CardHeader(
					components.CardTitle(g.Text(p.Name)).WithClass("text-2xl md:text-3xl mb-2"),
					components.CardDescription(g.Text(p.Description)).WithClass("text-base"),
					h.Div(h.Class("mt-6"), price),
				).WithClass("text-center pb-8 pt-8"),
				components.CardContent(
					h.Ul(append([]g.Node{h.Class("space-y-4 mb-8")}, features...)...),
					components.NewButton(g.Text(planCTA(p))).
						WithVariant(buttonVariant).
						WithSize(components.SizeLG).
						WithHref("#pricing").
						WithClass(classes.Merge("w-full", classes.If(p.Highlighted, gradientCTA))),
				).WithClass("pt-0"),
			).
				WithVariant(variant).
				WithAttrs(g.If(p.Highlighted, g.Attr("data-highlighted", ""))).
				WithClass(classes.Merge(
					"h-full relative transition-all duration-300 hover:-translate-y-1",
					classes.If(p.Highlighted, "border-2 border-primary/50 shadow-2xl md:scale-105 bg-gradient-to-br from-primary/5 to-secondary/5"),
				)),
		))
	}

	return components.NewSection(
		components.NewContainer(
			intro("Simple, Transparent Pricing", "Choose the plan that fits your needs. No hidden fees.", "text-center mb-12 lg:mb-16"),
			primitives.NewGrid(cards...).WithCols(primitives.Cols3).WithGap(primitives.Gap8).WithClass("grid-cols-1 md:grid-cols-3"),
		),
	).WithAttrs(h.ID("pricing")).WithClass("bg-background")
}

// FAQ is an accordion of questions. Items are native disclosure widgets,
// so they open without script.
func FAQ(title, subtitle string, items []content.FAQItem) g.Node {
	entries := make([]g.Node, 0, len(items))
	for _, item := range items {
		entries = append(entries, h.Details(
			h.Class("group border border-border rounded-lg overflow-hidden"),
			h.Summary(
				h.Class("w-full px-6 py-4 text-left flex items-center justify-between cursor-pointer list-none hover:bg-muted/50 transition-colors"),
				primitives.NewText(g.Text(item.Question)).WithAs(primitives.TextSpan).WithWeight(primitives.WeightSemibold).WithClass("pr-4"),
				Icon("chevron-down", "w-5 h-5 text-muted-foreground shrink-0 transition-transform duration-200 group-open:rotate-180"),
			),
			h.Div(
				h.Class("px-6 pb-4"),
				primitives.NewText(g.Text(item.Answer)).WithColor(primitives.ColorMuted),
			),
		))
	}

	return components.NewSection(
		components.NewContainer(
			g.If(title != "" || subtitle != "", h.Div(
				h.Class("text-center mb-12 lg:mb-16"),
				g.If(title != "", primitives.NewHeading(g.Text(title)).WithLevel(2).WithClass("text-3xl sm:text-4xl lg:text-5xl mb-4")),
				g.If(subtitle != "", primitives.NewText(g.Text(subtitle)).WithSize(primitives.SizeLG).WithColor(primitives.ColorMuted).WithClass("max-w-2xl mx-auto")),
			)),
			h.Div(append([]g.Node{h.Class("space-y-4")}, entries...)...),
		).WithSize(components.ContainerMD),
	).WithAttrs(h.ID("faq")).WithClass("bg-muted/20")
}

// CTA is the closing call to action.
func CTA(cta content.CTA) g.Node {
	return components.NewSection(
		components.NewContainer(
			h.Div(
				h.Class("text-center max-w-3xl mx-auto"),
				components.AnimatedSection(reveal.FadeUp, ms(100),
					primitives.NewHeading(g.Text(cta.Title)).WithLevel(2).WithClass("text-4xl sm:text-5xl lg:text-6xl mb-6 text-white font-bold"),
				),
				g.If(cta.Subtitle != "", components.AnimatedSection(reveal.FadeUp, ms(300),
					primitives.NewText(g.Text(cta.Subtitle)).WithSize(primitives.SizeLG).WithClass("text-xl md:text-2xl mb-10 text-white/90 leading-relaxed"),
				)),
				components.AnimatedSection(reveal.Scale, ms(500),
					components.NewButton(g.Text(cta.Action.Label)).
						WithSize(components.SizeLG).
						WithHref(cta.Action.Href).
						WithRightIcon(Icon("arrow-right", "w-5 h-5")).
						WithClass("bg-white text-primary hover:bg-white/90 hover:scale-105 transition-all duration-300 shadow-2xl text-lg px-8 py-6"),
					g.If(cta.Note != "", primitives.NewText(g.Text(cta.Note)).WithSize(primitives.SizeSM).WithClass("mt-6 text-white/80")),
				),
			),
		).WithClass("relative z-10 py-20 md:py-24"),
		h.Div(
			h.Class("absolute inset-0 overflow-hidden"),
			g.Attr("aria-hidden", "true"),
			h.Div(h.Class("absolute top-0 right-0 w-[600px] h-[600px] bg-white/10 rounded-full blur-3xl")),
			h.Div(h.Class("absolute bottom-0 left-0 w-[500px] h-[500px] bg-white/10 rounded-full blur-3xl")),
		),
	).WithClass("relative overflow-hidden bg-gradient-to-br from-primary via-secondary to-accent text-white")
}
