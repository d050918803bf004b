package components

// Badge is a short filled tag.
type Badge struct {
	BaseComponent
	text    string
	variant Variant
}

// NewBadge creates a secondary badge.
func NewBadge(text string) *Badge {
	return &Badge{BaseComponent: NewBaseComponent(), text: text, variant: VariantSecondary}
}

// WithVariant sets the fill colour.
func (b *Badge) WithVariant(v Variant) *Badge {
	b.variant = v
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// View renders the badge with the default theme.
func (b *Badge) View() string {
	return b.ViewWithTheme(DefaultTheme())
}

// ViewWithTheme renders the badge with theme. A hidden badge keeps its
// width but draws in the hidden tone.
func (b *Badge) ViewWithTheme(theme Theme) string {
	style := b.ComputeStyle(theme).Padding(0, 1)
	if b.variant == VariantHidden {
		return style.Foreground(theme.Hidden).Render(b.text)
	}
	return style.Foreground(theme.OnColor).Background(theme.Color(b.variant)).Render(b.text)
}
