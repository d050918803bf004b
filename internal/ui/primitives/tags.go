// Package primitives provides polymorphic layout and typography building
// blocks. Each primitive renders as a caller-chosen element and maps a small
// closed set of props to utility classes.
package primitives

// Tag names a block-level or generic element a layout primitive may render as.
type Tag string

const (
	TagDiv     Tag = "div"
	TagSection Tag = "section"
	TagArticle Tag = "article"
	TagAside   Tag = "aside"
	TagMain    Tag = "main"
	TagNav     Tag = "nav"
	TagHeader  Tag = "header"
	TagFooter  Tag = "footer"
	TagForm    Tag = "form"
	TagUl      Tag = "ul"
	TagOl      Tag = "ol"
	TagLi      Tag = "li"
	TagA       Tag = "a"
	TagSpan    Tag = "span"
)

// TextTag names an element Text may render as.
type TextTag string

const (
	TextP          TextTag = "p"
	TextSpan       TextTag = "span"
	TextDiv        TextTag = "div"
	TextLabel      TextTag = "label"
	TextSmall      TextTag = "small"
	TextStrong     TextTag = "strong"
	TextEm         TextTag = "em"
	TextBlockquote TextTag = "blockquote"
	TextLi         TextTag = "li"
)

// HeadingTag names an element Heading may render as instead of h{level}.
type HeadingTag string

const (
	HeadingH1   HeadingTag = "h1"
	HeadingH2   HeadingTag = "h2"
	HeadingH3   HeadingTag = "h3"
	HeadingH4   HeadingTag = "h4"
	HeadingH5   HeadingTag = "h5"
	HeadingH6   HeadingTag = "h6"
	HeadingP    HeadingTag = "p"
	HeadingSpan HeadingTag = "span"
	HeadingDiv  HeadingTag = "div"
)

// Kind is the set of element kinds a primitive can produce.
type Kind interface {
	Tag | TextTag | HeadingTag
}

// elementName picks the caller's element when set, otherwise the fallback.
func elementName[K Kind](as, fallback K) string {
	if as == "" {
		return string(fallback)
	}
	return string(as)
}
