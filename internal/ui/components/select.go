package components

import (
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexisbeaulieu97/nexus/internal/ui/classes"
)

// Option is one choice of a Select.
type Option struct {
	Value string
	Label string
}

// Select is a labelled drop-down with an optional custom chevron.
type Select struct {
	field
	options     []Option
	selected    string
	showChevron bool
}

// NewSelect creates a select over options with the chevron shown.
func NewSelect(options ...Option) *Select {
	return &Select{field: newField("select", nil), options: options, showChevron: true}
}

// WithID sets the control id. Without one the id is derived from the props,
// see WithKey.
func (s *Select) WithID(id string) *Select { s.id = id; return s }

// WithKey adds a caller-chosen discriminator to the derived id, for pages
// that render otherwise identical unnamed controls.
func (s *Select) WithKey(key string) *Select { s.key = key; return s }

func (s *Select) WithName(name string) *Select       { s.name = name; return s }
func (s *Select) WithLabel(label string) *Select     { s.label = label; return s }
func (s *Select) WithPlaceholder(p string) *Select   { s.placeholder = p; return s }
func (s *Select) WithSelected(value string) *Select  { s.selected = value; return s }
func (s *Select) WithError(msg string) *Select       { s.errMsg = msg; return s }
func (s *Select) WithHelperText(text string) *Select { s.helper = text; return s }
func (s *Select) WithDisabled(on bool) *Select       { s.disabled = on; return s }
func (s *Select) WithRequired(on bool) *Select       { s.required = on; return s }
func (s *Select) WithChevron(on bool) *Select        { s.showChevron = on; return s }
func (s *Select) WithClass(class string) *Select     { s.AddClass(class); return s }
func (s *Select) WithAttrs(attrs ...g.Node) *Select  { s.AddAttrs(attrs...); return s }

// ClassName returns the resolved class string of the <select> element.
func (s *Select) ClassName() string {
	return s.controlClass("appearance-none", classes.If(s.showChevron, "pr-10"))
}

// Render implements gomponents.Node.
func (s *Select) Render(w io.Writer) error {
	opts := make([]g.Node, 0, len(s.options)+1)
	if s.placeholder != "" {
		opts = append(opts, h.Option(h.Value(""), h.Disabled(), g.If(s.selected == "", h.Selected()), g.Text(s.placeholder)))
	}
	for _, o := range s.options {
		opts = append(opts, h.Option(h.Value(o.Value), g.If(o.Value == s.selected, h.Selected()), g.Text(o.Label)))
	}
	control := s.ElementWith("select", s.ClassName(), s.controlAttrs(), opts)

	return s.wrap(h.Div(h.Class("relative"),
		control,
		g.If(s.showChevron, chevron()),
	)).Render(w)
}

func chevron() g.Node {
	return h.Div(h.Class("absolute right-3 top-1/2 -translate-y-1/2 pointer-events-none text-muted-foreground"),
		g.El("svg",
			g.Attr("width", "16"), g.Attr("height", "16"),
			g.Attr("viewBox", "0 0 16 16"), g.Attr("fill", "none"),
			g.Attr("xmlns", "http://www.w3.org/2000/svg"), g.Attr("aria-hidden", "true"),
			g.El("path",
				g.Attr("d", "M4 6L8 10L12 6"), g.Attr("stroke", "currentColor"),
				g.Attr("stroke-width", "2"), g.Attr("stroke-linecap", "round"), g.Attr("stroke-linejoin", "round"),
			),
		),
	)
}
