package components

import "github.com/charmbracelet/lipgloss"

// StyleFunc applies a theme-aware transformation to a style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// BaseComponent holds the raw style and the appliers layered on top of it.
// Embed it in a widget to share appliers across the library.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent creates a base with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle returns the raw style with every applier run in order.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	style := b.style
	for _, fn := range b.appliers {
		style = fn(style, theme)
	}
	return style
}

// AddAppliers appends appliers without mutating a slice shared with a copy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	next := make([]StyleFunc, len(b.appliers), len(b.appliers)+len(appliers))
	copy(next, b.appliers)
	b.appliers = append(next, appliers...)
}

// Foreground colours text with the variant's colour.
func Foreground(v Variant) StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Foreground(t.Color(v))
	}
}
