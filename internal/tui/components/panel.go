package components

import "github.com/charmbracelet/lipgloss"

// Panel stacks a header, a body and a footer divided by a rule. Unlike a
// Card it has no outer border and is meant for screen layout.
type Panel struct {
	BaseComponent
	header *Header
	body   string
	footer string
	width  int
}

// NewPanel creates a panel around body.
func NewPanel(body string) *Panel {
	return &Panel{BaseComponent: NewBaseComponent(), body: body}
}

// WithHeader sets the title bar.
func (p *Panel) WithHeader(h *Header) *Panel {
	p.header = h
	return p
}

// WithFooter sets the muted text under the rule.
func (p *Panel) WithFooter(footer string) *Panel {
	p.footer = footer
	return p
}

// WithWidth sets the rule width.
func (p *Panel) WithWidth(width int) *Panel {
	p.width = width
	return p
}

// View renders the panel with the default theme.
func (p *Panel) View() string {
	return p.ViewWithTheme(DefaultTheme())
}

// ViewWithTheme renders the panel with theme.
func (p *Panel) ViewWithTheme(theme Theme) string {
	var parts []string
	if p.header != nil {
		parts = append(parts, p.header.ViewWithTheme(theme))
	}
	parts = append(parts, p.body)
	if p.footer != "" {
		footer := lipgloss.NewStyle().
			Foreground(theme.Muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(theme.Border)
		if p.width > 0 {
			footer = footer.Width(p.width)
		}
		parts = append(parts, footer.Render(p.footer))
	}
	return p.ComputeStyle(theme).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
