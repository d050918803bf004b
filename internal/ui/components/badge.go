package components

import (
	"io"

	g "maragu.dev/gomponents"

	"github.com/alexisbeaulieu97/nexus/internal/ui"
	"github.com/alexisbeaulieu97/nexus/internal/ui/classes"
)

// BadgeVariant selects the badge palette.
type BadgeVariant string

const (
	BadgeDefault BadgeVariant = "default"
	BadgePrimary BadgeVariant = "primary"
	BadgeSuccess BadgeVariant = "success"
	BadgeWarning BadgeVariant = "warning"
	BadgeError   BadgeVariant = "error"
	BadgeOutline BadgeVariant = "outline"
)

var (
	badgeVariantClasses = classes.VariantMap[BadgeVariant]{
		BadgeDefault: "bg-muted text-muted-foreground",
		BadgePrimary: "bg-primary/10 text-primary border border-primary/20",
		BadgeSuccess: "bg-success/10 text-success border border-success/20",
		BadgeWarning: "bg-warning/10 text-warning border border-warning/20",
		BadgeError:   "bg-error/10 text-error border border-error/20",
		BadgeOutline: "bg-transparent text-foreground border border-border",
	}

	badgeSizeClasses = classes.VariantMap[Size]{
		SizeSM: "text-xs px-2 py-0.5",
		SizeMD: "text-sm px-2.5 py-0.5",
		SizeLG: "text-base px-3 py-1",
	}
)

// Badge is a small status pill.
type Badge struct {
	ui.Base
	variant BadgeVariant
	size    Size
}

// NewBadge creates a medium default badge.
func NewBadge(children ...g.Node) *Badge {
	return &Badge{Base: ui.NewBase(children...), variant: BadgeDefault, size: SizeMD}
}

func (b *Badge) WithVariant(v BadgeVariant) *Badge { b.variant = v; return b }
func (b *Badge) WithSize(s Size) *Badge            { b.size = s; return b }
func (b *Badge) WithClass(class string) *Badge     { b.AddClass(class); return b }
func (b *Badge) WithAttrs(attrs ...g.Node) *Badge  { b.AddAttrs(attrs...); return b }

// ClassName returns the resolved class string.
func (b *Badge) ClassName() string {
	return classes.Merge(
		"inline-flex items-center gap-1 rounded-full font-medium transition-colors duration-200",
		badgeVariantClasses.Get(b.variant),
		badgeSizeClasses.Get(b.size),
		b.Class(),
	)
}

// Render implements gomponents.Node.
func (b *Badge) Render(w io.Writer) error {
	return b.Element("span", b.ClassName()).Render(w)
}
