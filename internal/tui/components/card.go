package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Card is a rounded box with a heading, a body and trailing badges.
// A hidden card renders at the same size in the hidden tone, so layouts
// measured before a reveal stay valid after it.
type Card struct {
	BaseComponent
	heading string
	body    string
	badges  []*Badge
	width   int
	hidden  bool
}

// NewCard creates a card.
func NewCard(heading, body string) *Card {
	return &Card{BaseComponent: NewBaseComponent(), heading: heading, body: body}
}

// WithBadge appends a badge to the card's heading line.
func (c *Card) WithBadge(b *Badge) *Card {
	c.badges = append(c.badges, b)
	return c
}

// WithWidth sets the outer width, border included. Zero sizes to content.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// WithHidden draws the card in the hidden tone.
func (c *Card) WithHidden(hidden bool) *Card {
	c.hidden = hidden
	return c
}

// Hidden reports whether the card is drawn hidden.
func (c *Card) Hidden() bool {
	return c.hidden
}

// View renders the card with the default theme.
func (c *Card) View() string {
	return c.ViewWithTheme(DefaultTheme())
}

// ViewWithTheme renders the card with theme.
func (c *Card) ViewWithTheme(theme Theme) string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	body := lipgloss.NewStyle()
	border := theme.Border
	if c.hidden {
		heading = lipgloss.NewStyle().Foreground(theme.Hidden)
		body = heading
		border = theme.Hidden
	}

	var top []string
	if c.heading != "" {
		top = append(top, heading.Render(c.heading))
	}
	for _, b := range c.badges {
		if c.hidden {
			b = NewBadge(b.Text()).WithVariant(VariantHidden)
		}
		top = append(top, b.ViewWithTheme(theme))
	}

	var parts []string
	if len(top) > 0 {
		parts = append(parts, strings.Join(top, " "))
	}
	if c.body != "" {
		parts = append(parts, body.Render(c.body))
	}

	style := c.ComputeStyle(theme).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	if c.width > 2 {
		style = style.Width(c.width - 2)
	}
	return style.Render(strings.Join(parts, "\n"))
}
