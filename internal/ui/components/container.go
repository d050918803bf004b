package components

import (
	"io"

	g "maragu.dev/gomponents"

	"github.com/alexisbeaulieu97/nexus/internal/ui"
	"github.com/alexisbeaulieu97/nexus/internal/ui/classes"
)

// ContainerSize caps the container width.
type ContainerSize string

const (
	ContainerSM   ContainerSize = "sm"
	ContainerMD   ContainerSize = "md"
	ContainerLG   ContainerSize = "lg"
	ContainerXL   ContainerSize = "xl"
	ContainerFull ContainerSize = "full"
)

var containerSizeClasses = classes.VariantMap[ContainerSize]{
	ContainerSM:   "max-w-3xl",
	ContainerMD:   "max-w-5xl",
	ContainerLG:   "max-w-7xl",
	ContainerXL:   "max-w-[1440px]",
	ContainerFull: "max-w-full",
}

// Container centres content horizontally with a max width.
type Container struct {
	ui.Base
	size      ContainerSize
	noPadding bool
}

// NewContainer creates a large padded container.
func NewContainer(children ...g.Node) *Container {
	return &Container{Base: ui.NewBase(children...), size: ContainerLG}
}

func (c *Container) WithSize(s ContainerSize) *Container  { c.size = s; return c }
func (c *Container) WithNoPadding(on bool) *Container     { c.noPadding = on; return c }
func (c *Container) WithClass(class string) *Container    { c.AddClass(class); return c }
func (c *Container) WithAttrs(attrs ...g.Node) *Container { c.AddAttrs(attrs...); return c }

// ClassName returns the resolved class string.
func (c *Container) ClassName() string {
	return classes.Merge(
		"mx-auto w-full",
		containerSizeClasses.Get(c.size),
		classes.If(!c.noPadding, "px-4 md:px-6 lg:px-8"),
		c.Class(),
	)
}

// Render implements gomponents.Node.
func (c *Container) Render(w io.Writer) error {
	return c.Element("div", c.ClassName()).Render(w)
}
