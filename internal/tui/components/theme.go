package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/nexus/internal/tui"
)

// Variant names a role in the palette.
type Variant int

const (
	VariantDefault Variant = iota
	VariantPrimary
	VariantSecondary
	VariantAccent
	VariantMuted
	VariantSuccess
	VariantError
	VariantHidden
)

// Theme maps variants to colours.
type Theme struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
	Hidden    lipgloss.AdaptiveColor
	// OnColor is the text colour used on a filled background.
	OnColor lipgloss.Color
}

// DefaultTheme returns the site palette.
func DefaultTheme() Theme {
	return Theme{
		Primary:   tui.Primary,
		Secondary: tui.Secondary,
		Accent:    tui.Accent,
		Muted:     tui.Muted,
		Border:    tui.Border,
		Success:   tui.Success,
		Error:     tui.Error,
		Hidden:    tui.Hidden,
		OnColor:   lipgloss.Color("#ffffff"),
	}
}

// Color returns the colour for v. VariantDefault maps to the border tone.
func (t Theme) Color(v Variant) lipgloss.AdaptiveColor {
	switch v {
	case VariantPrimary:
		return t.Primary
	case VariantSecondary:
		return t.Secondary
	case VariantAccent:
		return t.Accent
	case VariantMuted:
		return t.Muted
	case VariantSuccess:
		return t.Success
	case VariantError:
		return t.Error
	case VariantHidden:
		return t.Hidden
	default:
		return t.Border
	}
}
