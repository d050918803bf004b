package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Alert is a bordered notice with an icon, an optional title and detail.
type Alert struct {
	BaseComponent
	message string
	title   string
	detail  string
	icon    string
	variant Variant
	width   int
}

// NewAlert creates an info alert.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
		variant:       VariantPrimary,
		icon:          "ℹ",
	}
}

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant(VariantSuccess)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(VariantError)
}

// WithVariant sets the colour and the matching icon.
func (a *Alert) WithVariant(v Variant) *Alert {
	a.variant = v
	switch v {
	case VariantSuccess:
		a.icon = "✓"
	case VariantError:
		a.icon = "✗"
	default:
		a.icon = "ℹ"
	}
	return a
}

// WithIcon overrides the variant icon.
func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	return a
}

// WithTitle adds a bold first line.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithDetail adds a muted line under the message.
func (a *Alert) WithDetail(detail string) *Alert {
	a.detail = detail
	return a
}

// WithWidth sets the content width. Zero sizes to the content.
func (a *Alert) WithWidth(width int) *Alert {
	a.width = width
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// View renders the alert with the default theme.
func (a *Alert) View() string {
	return a.ViewWithTheme(DefaultTheme())
}

// ViewWithTheme renders the alert with theme.
func (a *Alert) ViewWithTheme(theme Theme) string {
	colour := theme.Color(a.variant)

	var lines []string
	if a.title != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(a.title))
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(colour).Render(a.icon+" "+a.message))
	if a.detail != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Muted).Render(a.detail))
	}

	style := a.ComputeStyle(theme).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colour).
		Padding(0, 1)
	if a.width > 0 {
		style = style.Width(a.width)
	}
	return style.Render(strings.Join(lines, "\n"))
}
