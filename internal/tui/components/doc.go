// Package components provides the lipgloss widgets the terminal front-ends
// are built from: headers, buttons, alerts, badges, cards and panels.
//
// Every widget follows the same builder pattern. A constructor returns a
// pointer, WithX methods configure it and return it for chaining, and View
// renders it against the default theme:
//
//	components.NewButton("Send Message").WithFocused(true).View()
//
// ViewWithTheme renders against a caller-supplied Theme instead. Themes map
// a Variant to a colour from the site palette in package tui, so the
// terminal and the web pages share one set of tokens.
package components
