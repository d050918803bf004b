package components

import (
	"io"
	"strconv"
	"time"

	g "maragu.dev/gomponents"

	"github.com/alexisbeaulieu97/nexus/internal/ui"
	"github.com/alexisbeaulieu97/nexus/internal/ui/reveal"
)

// Animated wraps content that the site script reveals when it scrolls into
// view. It renders already in the preset's initial state.
type Animated struct {
	ui.Base
	preset reveal.Preset
	delay  time.Duration
}

// AnimatedSection wraps children in a reveal-on-scroll div.
func AnimatedSection(preset reveal.Preset, delay time.Duration, children ...g.Node) *Animated {
	return &Animated{
		Base:   ui.NewBase(children...),
		preset: reveal.Resolve(preset),
		delay:  delay,
	}
}

func (a *Animated) WithClass(class string) *Animated    { a.AddClass(class); return a }
func (a *Animated) WithAttrs(attrs ...g.Node) *Animated { a.AddAttrs(attrs...); return a }

// Render implements gomponents.Node.
func (a *Animated) Render(w io.Writer) error {
	frames, _ := reveal.Lookup(a.preset)
	own := []g.Node{
		g.Attr("data-reveal", string(a.preset)),
		g.Attr("data-reveal-delay", strconv.FormatInt(a.delay.Milliseconds(), 10)),
		g.Attr("data-reveal-to", frames.Animate.CSS()),
		g.Attr("style", frames.Initial.CSS()),
	}
	return a.ElementWith("div", a.Class(), own, a.Children()).Render(w)
}
