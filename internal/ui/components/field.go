package components

import (
	"strings"

	"github.com/google/uuid"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexisbeaulieu97/nexus/internal/ui"
	"github.com/alexisbeaulieu97/nexus/internal/ui/classes"
)

// controlNamespace scopes derived control ids.
var controlNamespace = uuid.MustParse("6f1d3b7e-2a4c-5e8f-9b0d-1c2e3f4a5b6c")

const (
	controlBase = "w-full rounded-lg border bg-background px-3 py-2 text-base text-foreground " +
		"transition-colors duration-200 focus:outline-none focus:ring-2 focus:ring-offset-1 " +
		"disabled:opacity-50 disabled:cursor-not-allowed disabled:bg-muted"
	controlPlaceholder = "placeholder:text-muted-foreground"
	controlValid       = "border-border focus:ring-primary"
	controlInvalid     = "border-error focus:ring-error"
)

// field carries the label, error and helper handling shared by Input,
// Textarea and Select.
type field struct {
	ui.Base
	kind        string
	id          string
	key         string
	name        string
	label       string
	placeholder string
	errMsg      string
	helper      string
	disabled    bool
	required    bool
}

func newField(kind string, children []g.Node) field {
	return field{Base: ui.NewBase(children...), kind: kind}
}

// ID returns the explicit id, or one derived from the control's kind, key,
// name, label and placeholder. The derived id is stable for unchanged props,
// so two controls with identical props on one page collide unless one of
// them is given an id or a distinct key.
func (f *field) ID() string {
	if f.id != "" {
		return f.id
	}
	key := strings.Join([]string{f.kind, f.key, f.name, f.label, f.placeholder}, "\x00")
	return f.kind + "-" + uuid.NewSHA1(controlNamespace, []byte(key)).String()
}

// HasError reports whether an error message is set.
func (f *field) HasError() bool {
	return f.errMsg != ""
}

func (f *field) errorID() string  { return f.ID() + "-error" }
func (f *field) helperID() string { return f.ID() + "-helper" }

// controlClass merges the shared control classes with per-kind extras and
// the caller's classes.
func (f *field) controlClass(extra ...string) string {
	state := controlValid
	if f.HasError() {
		state = controlInvalid
	}
	parts := make([]string, 0, len(extra)+3)
	parts = append(parts, controlBase, state)
	parts = append(parts, extra...)
	parts = append(parts, f.Class())
	return classes.Merge(parts...)
}

// controlAttrs returns the attributes every control carries.
func (f *field) controlAttrs() []g.Node {
	attrs := []g.Node{h.ID(f.ID())}
	if f.name != "" {
		attrs = append(attrs, h.Name(f.name))
	}
	if f.disabled {
		attrs = append(attrs, h.Disabled())
	}
	if f.required {
		attrs = append(attrs, h.Required())
	}
	switch {
	case f.HasError():
		attrs = append(attrs, g.Attr("aria-invalid", "true"), g.Attr("aria-describedby", f.errorID()))
	case f.helper != "":
		attrs = append(attrs, g.Attr("aria-describedby", f.helperID()))
	}
	return attrs
}

// wrap places the control between its label and its error or helper text.
func (f *field) wrap(control g.Node) g.Node {
	var label g.Node
	if f.label != "" {
		label = g.El("label",
			g.Attr("for", f.ID()),
			h.Class(classes.Merge(
				"block text-sm font-medium mb-1.5",
				classes.If(f.HasError(), "text-error"),
				classes.If(!f.HasError(), "text-foreground"),
				classes.If(f.disabled, "opacity-50 cursor-not-allowed"),
			)),
			g.Text(f.label),
		)
	}

	var note g.Node
	switch {
	case f.HasError():
		note = h.P(h.ID(f.errorID()), h.Class("mt-1.5 text-sm text-error"), g.Attr("role", "alert"), g.Text(f.errMsg))
	case f.helper != "":
		note = h.P(h.ID(f.helperID()), h.Class("mt-1.5 text-sm text-muted-foreground"), g.Text(f.helper))
	}

	return h.Div(h.Class("w-full"), label, control, note)
}
