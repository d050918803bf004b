package components

import (
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexisbeaulieu97/nexus/internal/ui/classes"
)

const iconSlotClass = "absolute top-1/2 -translate-y-1/2 text-muted-foreground"

// Input is a labelled single-line text control.
type Input struct {
	field
	inputType string
	value     string
	leftIcon  g.Node
	rightIcon g.Node
}

// NewInput creates a text input.
func NewInput() *Input {
	return &Input{field: newField("input", nil), inputType: "text"}
}

// WithID sets the control id. Without one the id is derived from the props,
// see WithKey.
func (i *Input) WithID(id string) *Input { i.id = id; return i }

// WithKey adds a caller-chosen discriminator to the derived id, for pages
// that render otherwise identical unnamed controls.
func (i *Input) WithKey(key string) *Input { i.key = key; return i }

func (i *Input) WithName(name string) *Input       { i.name = name; return i }
func (i *Input) WithType(kind string) *Input       { i.inputType = kind; return i }
func (i *Input) WithLabel(label string) *Input     { i.label = label; return i }
func (i *Input) WithPlaceholder(p string) *Input   { i.placeholder = p; return i }
func (i *Input) WithValue(v string) *Input         { i.value = v; return i }
func (i *Input) WithError(msg string) *Input       { i.errMsg = msg; return i }
func (i *Input) WithHelperText(text string) *Input { i.helper = text; return i }
func (i *Input) WithDisabled(on bool) *Input       { i.disabled = on; return i }
func (i *Input) WithRequired(on bool) *Input       { i.required = on; return i }
func (i *Input) WithLeftIcon(icon g.Node) *Input   { i.leftIcon = icon; return i }
func (i *Input) WithRightIcon(icon g.Node) *Input  { i.rightIcon = icon; return i }
func (i *Input) WithClass(class string) *Input     { i.AddClass(class); return i }
func (i *Input) WithAttrs(attrs ...g.Node) *Input  { i.AddAttrs(attrs...); return i }

// ClassName returns the resolved class string of the <input> element.
func (i *Input) ClassName() string {
	return i.controlClass(
		controlPlaceholder,
		classes.If(i.leftIcon != nil, "pl-10"),
		classes.If(i.rightIcon != nil, "pr-10"),
	)
}

// Render implements gomponents.Node.
func (i *Input) Render(w io.Writer) error {
	own := append(i.controlAttrs(), h.Type(i.inputType))
	if i.placeholder != "" {
		own = append(own, h.Placeholder(i.placeholder))
	}
	if i.value != "" {
		own = append(own, h.Value(i.value))
	}
	control := i.ElementWith("input", i.ClassName(), own, nil)

	return i.wrap(h.Div(h.Class("relative"),
		g.If(i.leftIcon != nil, h.Div(h.Class("left-3 "+iconSlotClass), i.leftIcon)),
		control,
		g.If(i.rightIcon != nil, h.Div(h.Class("right-3 "+iconSlotClass), i.rightIcon)),
	)).Render(w)
}
