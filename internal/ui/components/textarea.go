package components

import (
	"io"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexisbeaulieu97/nexus/internal/ui/classes"
)

const defaultTextareaRows = 4

// Textarea is a labelled multi-line text control. With auto-resize on, the
// site script grows it to fit its content.
type Textarea struct {
	field
	rows       int
	value      string
	autoResize bool
}

// NewTextarea creates a four-row textarea.
func NewTextarea() *Textarea {
	return &Textarea{field: newField("textarea", nil), rows: defaultTextareaRows}
}

// WithID sets the control id. Without one the id is derived from the props,
// see WithKey.
func (t *Textarea) WithID(id string) *Textarea { t.id = id; return t }

// WithKey adds a caller-chosen discriminator to the derived id, for pages
// that render otherwise identical unnamed controls.
func (t *Textarea) WithKey(key string) *Textarea { t.key = key; return t }

func (t *Textarea) WithName(name string) *Textarea       { t.name = name; return t }
func (t *Textarea) WithLabel(label string) *Textarea     { t.label = label; return t }
func (t *Textarea) WithPlaceholder(p string) *Textarea   { t.placeholder = p; return t }
func (t *Textarea) WithValue(v string) *Textarea         { t.value = v; return t }
func (t *Textarea) WithError(msg string) *Textarea       { t.errMsg = msg; return t }
func (t *Textarea) WithHelperText(text string) *Textarea { t.helper = text; return t }
func (t *Textarea) WithDisabled(on bool) *Textarea       { t.disabled = on; return t }
func (t *Textarea) WithRequired(on bool) *Textarea       { t.required = on; return t }
func (t *Textarea) WithAutoResize(on bool) *Textarea     { t.autoResize = on; return t }
func (t *Textarea) WithClass(class string) *Textarea     { t.AddClass(class); return t }
func (t *Textarea) WithAttrs(attrs ...g.Node) *Textarea  { t.AddAttrs(attrs...); return t }

// WithRows sets the visible row count. Non-positive values keep the default.
func (t *Textarea) WithRows(rows int) *Textarea {
	if rows > 0 {
		t.rows = rows
	}
	return t
}

// ClassName returns the resolved class string of the <textarea> element.
func (t *Textarea) ClassName() string {
	return t.controlClass(
		controlPlaceholder,
		"resize-y",
		classes.If(t.autoResize, "resize-none overflow-hidden"),
	)
}

// Render implements gomponents.Node.
func (t *Textarea) Render(w io.Writer) error {
	own := append(t.controlAttrs(), g.Attr("rows", strconv.Itoa(t.rows)))
	if t.placeholder != "" {
		own = append(own, h.Placeholder(t.placeholder))
	}
	if t.autoResize {
		own = append(own, g.Attr("data-autoresize", ""))
	}
	control := t.ElementWith("textarea", t.ClassName(), own, []g.Node{g.Text(t.value)})
	return t.wrap(control).Render(w)
}
