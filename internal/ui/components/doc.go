// Package components provides the site's styled widgets rendered as HTML.
//
// # Overview
//
// Every widget is a gomponents node built with a fluent API. A widget embeds
// ui.Base, so callers can append classes with WithClass and forward native
// attributes with WithAttrs. Caller classes are merged after the widget's own
// classes and win any utility conflict:
//
//	btn := components.NewButton(g.Text("Get started")).
//		WithVariant(components.ButtonOutline).
//		WithSize(components.SizeLG).
//		WithClass("w-full")
//
// # Widgets
//
// Actions and status:
//   - Button: six variants, three sizes, loading state, link rendering
//   - Badge: status pill
//   - Alert: inline success and error notices
//
// Surfaces and layout:
//   - Card and its parts: CardHeader, CardTitle, CardDescription,
//     CardContent, CardFooter
//   - Container: centred max-width wrapper
//   - Section: vertical rhythm wrapper
//   - AnimatedSection: reveal-on-scroll wrapper
//
// Form controls:
//   - Input, Textarea and Select share label, error and helper handling.
//     Without an explicit id, a stable id is derived from the control's props.
package components
