package classes

import "strings"

var exactGroups = map[string]string{
	"block": "display", "inline-block": "display", "inline": "display", "flex": "display",
	"inline-flex": "display", "grid": "display", "inline-grid": "display", "hidden": "display",
	"table": "display", "contents": "display", "flow-root": "display", "list-item": "display",

	"static": "position", "fixed": "position", "absolute": "position", "relative": "position", "sticky": "position",

	"visible": "visibility", "invisible": "visibility", "collapse": "visibility",

	"flex-row": "flex-direction", "flex-row-reverse": "flex-direction",
	"flex-col": "flex-direction", "flex-col-reverse": "flex-direction",
	"flex-wrap": "flex-wrap", "flex-wrap-reverse": "flex-wrap", "flex-nowrap": "flex-wrap",

	"text-left": "text-align", "text-center": "text-align", "text-right": "text-align",
	"text-justify": "text-align", "text-start": "text-align", "text-end": "text-align",
	"text-wrap": "text-wrap", "text-nowrap": "text-wrap", "text-balance": "text-wrap", "text-pretty": "text-wrap",
	"truncate": "text-overflow", "text-ellipsis": "text-overflow", "text-clip": "text-overflow",

	"italic": "font-style", "not-italic": "font-style",
	"underline": "text-decoration", "overline": "text-decoration", "line-through": "text-decoration", "no-underline": "text-decoration",
	"uppercase": "text-transform", "lowercase": "text-transform", "capitalize": "text-transform", "normal-case": "text-transform",

	"resize": "resize", "resize-none": "resize", "resize-x": "resize", "resize-y": "resize",
	"appearance-none": "appearance", "appearance-auto": "appearance",
	"pointer-events-none": "pointer-events", "pointer-events-auto": "pointer-events",
	"sr-only": "sr", "not-sr-only": "sr",
	"shrink": "shrink", "shrink-0": "shrink", "grow": "grow", "grow-0": "grow",

	"transition": "transition", "transition-all": "transition", "transition-colors": "transition",
	"transition-opacity": "transition", "transition-shadow": "transition", "transition-transform": "transition",
	"transition-none": "transition",

	"outline": "outline-style", "outline-none": "outline-style", "outline-dashed": "outline-style",
	"outline-dotted": "outline-style", "outline-double": "outline-style",

	"border":       "border-w",
	"border-solid": "border-style", "border-dashed": "border-style", "border-dotted": "border-style",
	"border-double": "border-style", "border-hidden": "border-style", "border-none": "border-style",
	"border-collapse": "border-collapse", "border-separate": "border-collapse",

	"bg-clip-text": "bg-clip", "bg-clip-border": "bg-clip", "bg-clip-padding": "bg-clip", "bg-clip-content": "bg-clip",
	"bg-cover": "bg-size", "bg-contain": "bg-size", "bg-auto": "bg-size",
	"bg-fixed": "bg-attachment", "bg-local": "bg-attachment", "bg-scroll": "bg-attachment",
	"bg-none": "bg-image",

	"ring": "ring-w", "ring-inset": "ring-inset",
	"rounded": "rounded",
	"shadow":  "shadow",
}

type prefixGroup struct {
	prefix string
	group  string
}

// Ordered so that a longer prefix is tried before any prefix of it.
var prefixGroups = []prefixGroup{
	{"overflow-x-", "overflow-x"}, {"overflow-y-", "overflow-y"}, {"overflow-", "overflow"},
	{"justify-items-", "justify-items"}, {"justify-self-", "justify-self"}, {"justify-", "justify-content"},
	{"items-", "align-items"}, {"self-", "align-self"}, {"content-", "align-content"},
	{"place-items-", "place-items"}, {"place-content-", "place-content"},
	{"gap-x-", "gap-x"}, {"gap-y-", "gap-y"}, {"gap-", "gap"},
	{"grid-cols-", "grid-cols"}, {"grid-rows-", "grid-rows"}, {"grid-flow-", "grid-flow"},
	{"col-span-", "col-span"}, {"row-span-", "row-span"},
	{"space-x-", "space-x"}, {"space-y-", "space-y"},
	{"px-", "px"}, {"py-", "py"}, {"pt-", "pt"}, {"pr-", "pr"}, {"pb-", "pb"}, {"pl-", "pl"},
	{"ps-", "ps"}, {"pe-", "pe"}, {"p-", "p"},
	{"mx-", "mx"}, {"my-", "my"}, {"mt-", "mt"}, {"mr-", "mr"}, {"mb-", "mb"}, {"ml-", "ml"},
	{"ms-", "ms"}, {"me-", "me"}, {"m-", "m"},
	{"min-w-", "min-w"}, {"max-w-", "max-w"}, {"w-", "w"},
	{"min-h-", "min-h"}, {"max-h-", "max-h"}, {"h-", "h"}, {"size-", "size"},
	{"inset-x-", "inset-x"}, {"inset-y-", "inset-y"}, {"inset-", "inset"},
	{"top-", "top"}, {"right-", "right"}, {"bottom-", "bottom"}, {"left-", "left"},
	{"start-", "start"}, {"end-", "end"},
	{"z-", "z"}, {"opacity-", "opacity"}, {"order-", "order"},
	{"leading-", "leading"}, {"tracking-", "tracking"},
	{"duration-", "duration"}, {"delay-", "delay"}, {"ease-", "ease"},
	{"cursor-", "cursor"}, {"whitespace-", "whitespace"}, {"animate-", "animate"},
	{"translate-x-", "translate-x"}, {"translate-y-", "translate-y"},
	{"scale-", "scale"}, {"rotate-", "rotate"},
	{"backdrop-blur-", "backdrop-blur"}, {"blur-", "blur"},
	{"from-", "gradient-from"}, {"via-", "gradient-via"}, {"to-", "gradient-to"},
	{"underline-offset-", "underline-offset"}, {"decoration-", "decoration"},
	{"aspect-", "aspect"}, {"object-", "object"}, {"list-", "list"}, {"basis-", "basis"},
	{"line-clamp-", "line-clamp"}, {"flex-", "flex"},
	{"bg-gradient-to-", "bg-image"}, {"bg-linear-", "bg-image"}, {"bg-radial", "bg-image"},
	{"bg-repeat", "bg-repeat"}, {"bg-no-repeat", "bg-repeat"},
	{"outline-offset-", "outline-offset"}, {"ring-offset-", "ring-offset"},
}

// conflicts lists the groups a utility also overrides when it appears later,
// e.g. p-4 replaces an earlier px-2.
var conflicts = map[string][]string{
	"p":  {"px", "py", "pt", "pr", "pb", "pl", "ps", "pe"},
	"px": {"pr", "pl", "ps", "pe"},
	"py": {"pt", "pb"},
	"m":  {"mx", "my", "mt", "mr", "mb", "ml", "ms", "me"},
	"mx": {"mr", "ml", "ms", "me"},
	"my": {"mt", "mb"},

	"gap":      {"gap-x", "gap-y"},
	"overflow": {"overflow-x", "overflow-y"},
	"inset":    {"inset-x", "inset-y", "top", "right", "bottom", "left", "start", "end"},
	"inset-x":  {"left", "right", "start", "end"},
	"inset-y":  {"top", "bottom"},
	"size":     {"w", "h"},

	"font-size": {"leading"},

	"rounded": {"rounded-t", "rounded-r", "rounded-b", "rounded-l", "rounded-s", "rounded-e",
		"rounded-tl", "rounded-tr", "rounded-br", "rounded-bl"},
	"rounded-t": {"rounded-tl", "rounded-tr"},
	"rounded-r": {"rounded-tr", "rounded-br"},
	"rounded-b": {"rounded-br", "rounded-bl"},
	"rounded-l": {"rounded-tl", "rounded-bl"},

	"border-w":   {"border-w-x", "border-w-y", "border-w-t", "border-w-r", "border-w-b", "border-w-l", "border-w-s", "border-w-e"},
	"border-w-x": {"border-w-r", "border-w-l"},
	"border-w-y": {"border-w-t", "border-w-b"},

	"border-color": {"border-color-x", "border-color-y", "border-color-t", "border-color-r",
		"border-color-b", "border-color-l", "border-color-s", "border-color-e"},
	"border-color-x": {"border-color-r", "border-color-l"},
	"border-color-y": {"border-color-t", "border-color-b"},
}

var fontSizes = map[string]struct{}{
	"xs": {}, "sm": {}, "base": {}, "lg": {}, "xl": {}, "2xl": {}, "3xl": {}, "4xl": {},
	"5xl": {}, "6xl": {}, "7xl": {}, "8xl": {}, "9xl": {},
}

var fontWeights = map[string]struct{}{
	"thin": {}, "extralight": {}, "light": {}, "normal": {}, "medium": {},
	"semibold": {}, "bold": {}, "extrabold": {}, "black": {},
}

var shadowSizes = map[string]struct{}{
	"sm": {}, "md": {}, "lg": {}, "xl": {}, "2xl": {}, "inner": {}, "none": {},
}

var roundedSides = []string{"tl", "tr", "br", "bl", "t", "r", "b", "l", "s", "e"}

var borderSides = []string{"x", "y", "t", "r", "b", "l", "s", "e"}

// classify returns the conflict group of a modifier-free utility, or "" when
// the utility is not recognised.
func classify(base string) string {
	base = strings.TrimPrefix(base, "-")
	if base == "" {
		return ""
	}

	if strings.HasPrefix(base, "[") && strings.HasSuffix(base, "]") {
		if prop, _, ok := strings.Cut(base[1:len(base)-1], ":"); ok {
			return "arbitrary:" + prop
		}
		return ""
	}

	if group, ok := exactGroups[base]; ok {
		return group
	}

	switch {
	case strings.HasPrefix(base, "text-"):
		return classifyText(strings.TrimPrefix(base, "text-"))
	case strings.HasPrefix(base, "font-"):
		return classifyFont(strings.TrimPrefix(base, "font-"))
	case strings.HasPrefix(base, "border-"):
		return classifyBorder(strings.TrimPrefix(base, "border-"))
	case strings.HasPrefix(base, "rounded-"):
		return classifyRounded(strings.TrimPrefix(base, "rounded-"))
	case strings.HasPrefix(base, "shadow-"):
		return classifyShadow(strings.TrimPrefix(base, "shadow-"))
	case strings.HasPrefix(base, "stroke-"):
		return "stroke" + widthOrColor(strings.TrimPrefix(base, "stroke-"))
	case strings.HasPrefix(base, "fill-"):
		return "fill"
	}

	for _, pg := range prefixGroups {
		if strings.HasPrefix(base, pg.prefix) {
			switch pg.group {
			case "ring-offset", "outline-offset":
				return pg.group + widthOrColor(strings.TrimPrefix(base, pg.prefix))
			}
			return pg.group
		}
	}

	switch {
	case strings.HasPrefix(base, "bg-"):
		return "bg-color"
	case strings.HasPrefix(base, "ring-"):
		return "ring" + widthOrColor(strings.TrimPrefix(base, "ring-"))
	case strings.HasPrefix(base, "outline-"):
		return "outline" + widthOrColor(strings.TrimPrefix(base, "outline-"))
	}

	return ""
}

func classifyText(suffix string) string {
	if _, ok := fontSizes[suffix]; ok {
		return "font-size"
	}
	if isArbitrary(suffix) && isLength(suffix[1:len(suffix)-1]) {
		return "font-size"
	}
	return "text-color"
}

// classifyFont separates weights, including arbitrary numeric ones such as
// font-[600], from font families.
func classifyFont(suffix string) string {
	if _, ok := fontWeights[suffix]; ok {
		return "font-weight"
	}
	if isArbitrary(suffix) {
		value := suffix[1 : len(suffix)-1]
		if isNumber(value) || strings.HasPrefix(value, "number:") || strings.HasPrefix(value, "weight:") {
			return "font-weight"
		}
	}
	return "font-family"
}

// classifyBorder splits border utilities into width and colour groups, each
// with its own per-side groups, so border-b-error does not replace an
// all-sides border-primary.
func classifyBorder(suffix string) string {
	if isWidth(suffix) {
		return "border-w"
	}
	for _, side := range borderSides {
		if suffix == side {
			return "border-w-" + side
		}
		if rest, ok := strings.CutPrefix(suffix, side+"-"); ok {
			return "border" + widthOrColor(rest) + "-" + side
		}
	}
	return "border-color"
}

func classifyRounded(suffix string) string {
	for _, side := range roundedSides {
		if suffix == side || strings.HasPrefix(suffix, side+"-") {
			return "rounded-" + side
		}
	}
	return "rounded"
}

func classifyShadow(suffix string) string {
	if _, ok := shadowSizes[suffix]; ok {
		return "shadow"
	}
	if isArbitrary(suffix) && strings.ContainsAny(suffix, "_") {
		return "shadow"
	}
	return "shadow-color"
}

// widthOrColor distinguishes numeric width utilities (ring-2) from colour
// utilities (ring-primary) sharing a prefix.
func widthOrColor(suffix string) string {
	if isWidth(suffix) {
		return "-w"
	}
	return "-color"
}

func isWidth(s string) bool {
	if isArbitrary(s) {
		return isLength(s[1 : len(s)-1])
	}
	return isNumber(s)
}

func isArbitrary(s string) bool {
	return len(s) > 2 && s[0] == '[' && s[len(s)-1] == ']'
}

func isLength(s string) bool {
	if s == "" {
		return false
	}
	if s[0] < '0' || s[0] > '9' {
		return strings.HasPrefix(s, "length:")
	}
	for _, unit := range []string{"px", "rem", "em", "%", "vh", "vw", "pt"} {
		if strings.HasSuffix(s, unit) {
			return true
		}
	}
	return isNumber(s)
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	dot := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return true
}
