// Package tui holds the terminal palette shared by the preview and contact
// front-ends. Colors follow the site theme tokens.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	Primary   = lipgloss.AdaptiveColor{Light: "#6366f1", Dark: "#818cf8"}
	Secondary = lipgloss.AdaptiveColor{Light: "#8b5cf6", Dark: "#a78bfa"}
	Accent    = lipgloss.AdaptiveColor{Light: "#ec4899", Dark: "#f472b6"}
	Muted     = lipgloss.AdaptiveColor{Light: "#64748b", Dark: "#94a3b8"}
	Border    = lipgloss.AdaptiveColor{Light: "#e2e8f0", Dark: "#334155"}
	Success   = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	Error     = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	Hidden    = lipgloss.AdaptiveColor{Light: "#e2e8f0", Dark: "#1e293b"}
)

// Text styles for the form chrome. Widgets live in package components.
var (
	MutedStyle        = lipgloss.NewStyle().Foreground(Muted)
	ErrorStyle        = lipgloss.NewStyle().Foreground(Error)
	LabelStyle        = lipgloss.NewStyle().Bold(true)
	FocusedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(Accent)
)
