// Package classes composes utility class strings for the component library.
//
// Merge is the single entry point: it takes an ordered list of fragments,
// drops empty ones, and resolves conflicts between utilities that target the
// same style property. The last utility in a group wins, so callers can layer
// a component's defaults, its variant fragment and a caller override in that
// order:
//
//	classes.Merge("px-4 py-2 text-sm", variant, classes.If(active, "text-lg"), override)
//
// Conflict detection understands variant modifiers (md:, hover:, dark:),
// the important marker and arbitrary values. Utilities it does not recognise
// are only deduplicated by exact token.
package classes

import (
	"sort"
	"strings"
)

// If returns class when cond holds and the empty fragment otherwise.
func If(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

// Merge joins fragments into one class string. Later utilities override
// earlier ones from the same group; the relative order of survivors is kept.
func Merge(fragments ...string) string {
	tokens := make([]string, 0, len(fragments)*4)
	for _, fragment := range fragments {
		if fragment == "" {
			continue
		}
		tokens = append(tokens, strings.Fields(fragment)...)
	}
	if len(tokens) == 0 {
		return ""
	}

	seen := make(map[string]struct{}, len(tokens))
	kept := make([]string, 0, len(tokens))

	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		u := parse(token)

		key := u.scope + u.group
		if _, dup := seen[key]; dup {
			continue
		}

		kept = append(kept, token)
		seen[key] = struct{}{}
		for _, overridden := range conflicts[u.group] {
			seen[u.scope+overridden] = struct{}{}
		}
	}

	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return strings.Join(kept, " ")
}

// utility is a parsed class token.
type utility struct {
	// scope is the canonical modifier prefix, e.g. "hover:md:!".
	scope string
	// group identifies the style property the utility sets.
	group string
}

func parse(token string) utility {
	parts := splitModifiers(token)
	base := parts[len(parts)-1]
	modifiers := parts[:len(parts)-1]

	important := false
	if strings.HasPrefix(base, "!") {
		important = true
		base = base[1:]
	} else if strings.HasSuffix(base, "!") {
		important = true
		base = strings.TrimSuffix(base, "!")
	}

	sorted := make([]string, len(modifiers))
	copy(sorted, modifiers)
	sort.Strings(sorted)

	var scope strings.Builder
	for _, m := range sorted {
		scope.WriteString(m)
		scope.WriteByte(':')
	}
	if important {
		scope.WriteByte('!')
	}

	group := classify(base)
	if group == "" {
		group = "=" + base
	}

	return utility{scope: scope.String(), group: group}
}

// splitModifiers splits on ':' outside of arbitrary-value brackets.
func splitModifiers(token string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(token); i++ {
		switch token[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				parts = append(parts, token[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, token[start:])
}
