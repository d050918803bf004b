package components

import "github.com/charmbracelet/lipgloss"

// Header is a one-line title bar with an optional trailing subtitle.
type Header struct {
	BaseComponent
	title    string
	subtitle string
}

// NewHeader creates a header for title.
func NewHeader(title string) *Header {
	h := &Header{
		BaseComponent: BaseComponent{style: lipgloss.NewStyle().Bold(true).Padding(0, 1)},
		title:         title,
	}
	h.AddAppliers(Foreground(VariantPrimary))
	return h
}

// WithSubtitle sets the muted text shown after the title.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithAppliers adds theme-aware style modifiers. They run after the
// default primary foreground, so they can recolour the title.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.AddAppliers(appliers...)
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}

// View renders the header with the default theme.
func (h *Header) View() string {
	return h.ViewWithTheme(DefaultTheme())
}

// ViewWithTheme renders the header with theme.
func (h *Header) ViewWithTheme(theme Theme) string {
	title := h.ComputeStyle(theme).Render(h.title)
	if h.subtitle == "" {
		return title
	}
	sub := lipgloss.NewStyle().Foreground(theme.Muted).Render(h.subtitle)
	return lipgloss.JoinHorizontal(lipgloss.Top, title, sub)
}
