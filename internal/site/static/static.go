// Package static embeds the browser assets served under /static/.
package static

import "embed"

// FS holds site.js and theme.css.
//
//go:embed site.js theme.css
var FS embed.FS

// Theme returns the Tailwind theme stylesheet inlined into every page.
func Theme() string {
	b, err := FS.ReadFile("theme.css")
	if err != nil {
		panic(err)
	}
	return string(b)
}
