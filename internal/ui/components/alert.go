package components

import (
	"io"

	g "maragu.dev/gomponents"

	"github.com/alexisbeaulieu97/nexus/internal/ui"
	"github.com/alexisbeaulieu97/nexus/internal/ui/classes"
)

// AlertVariant selects the notice palette and ARIA role.
type AlertVariant string

const (
	AlertSuccess AlertVariant = "success"
	AlertError   AlertVariant = "error"
)

var (
	alertVariantClasses = classes.VariantMap[AlertVariant]{
		AlertSuccess: "bg-success/10 border border-success/20 text-success",
		AlertError:   "bg-error/10 border border-error/20 text-error",
	}

	alertRoles = classes.VariantMap[AlertVariant]{
		AlertSuccess: "status",
		AlertError:   "alert",
	}
)

// Alert is an inline notice. Success notices are announced politely, errors
// assertively.
type Alert struct {
	ui.Base
	variant AlertVariant
}

// NewAlert creates a notice of the given variant.
func NewAlert(variant AlertVariant, children ...g.Node) *Alert {
	return &Alert{Base: ui.NewBase(children...), variant: variant}
}

func (a *Alert) WithClass(class string) *Alert    { a.AddClass(class); return a }
func (a *Alert) WithAttrs(attrs ...g.Node) *Alert { a.AddAttrs(attrs...); return a }

// ClassName returns the resolved class string.
func (a *Alert) ClassName() string {
	return classes.Merge("p-4 rounded-lg", alertVariantClasses.Get(a.variant), a.Class())
}

// Render implements gomponents.Node.
func (a *Alert) Render(w io.Writer) error {
	own := []g.Node{g.Attr("role", alertRoles.Get(a.variant))}
	return a.ElementWith("div", a.ClassName(), own, a.Children()).Render(w)
}
