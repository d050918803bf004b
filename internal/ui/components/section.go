package components

import (
	"io"

	g "maragu.dev/gomponents"

	"github.com/alexisbeaulieu97/nexus/internal/ui"
	"github.com/alexisbeaulieu97/nexus/internal/ui/classes"
)

// SectionSize sets the responsive vertical padding.
type SectionSize string

const (
	SectionSM SectionSize = "sm"
	SectionMD SectionSize = "md"
	SectionLG SectionSize = "lg"
	SectionXL SectionSize = "xl"
)

// SectionTag is an element a Section may render as.
type SectionTag string

const (
	SectionAsSection SectionTag = "section"
	SectionAsDiv     SectionTag = "div"
	SectionAsArticle SectionTag = "article"
	SectionAsAside   SectionTag = "aside"
	SectionAsMain    SectionTag = "main"
)

var sectionSizeClasses = classes.VariantMap[SectionSize]{
	SectionSM: "py-8 md:py-12",
	SectionMD: "py-12 md:py-16 lg:py-20",
	SectionLG: "py-16 md:py-20 lg:py-24",
	SectionXL: "py-20 md:py-24 lg:py-32",
}

// Section is a vertically padded page band.
type Section struct {
	ui.Base
	size SectionSize
	as   SectionTag
}

// NewSection creates a medium <section>.
func NewSection(children ...g.Node) *Section {
	return &Section{Base: ui.NewBase(children...), size: SectionMD, as: SectionAsSection}
}

func (s *Section) WithSize(size SectionSize) *Section { s.size = size; return s }
func (s *Section) WithAs(tag SectionTag) *Section     { s.as = tag; return s }
func (s *Section) WithClass(class string) *Section    { s.AddClass(class); return s }
func (s *Section) WithAttrs(attrs ...g.Node) *Section { s.AddAttrs(attrs...); return s }

// ClassName returns the resolved class string.
func (s *Section) ClassName() string {
	return classes.Merge(sectionSizeClasses.Get(s.size), s.Class())
}

// Render implements gomponents.Node.
func (s *Section) Render(w io.Writer) error {
	return s.Element(string(s.as), s.ClassName()).Render(w)
}
