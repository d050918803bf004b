package components

// DefaultLoadingLabel replaces the button label while loading.
const DefaultLoadingLabel = "Loading..."

// Button renders a submit control. Focus fills it with the variant colour;
// loading swaps the label for an indicator and a loading label.
type Button struct {
	BaseComponent
	label        string
	variant      Variant
	focused      bool
	loading      bool
	indicator    string
	loadingLabel string
}

// NewButton creates a primary button.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       VariantPrimary,
		loadingLabel:  DefaultLoadingLabel,
	}
}

// WithVariant sets the fill colour used when focused.
func (b *Button) WithVariant(v Variant) *Button {
	b.variant = v
	return b
}

// WithFocused sets whether the button holds keyboard focus.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithLoading toggles the loading state. indicator, usually a spinner
// frame, is drawn before the loading label.
func (b *Button) WithLoading(loading bool, indicator string) *Button {
	b.loading = loading
	b.indicator = indicator
	return b
}

// WithLoadingLabel overrides DefaultLoadingLabel.
func (b *Button) WithLoadingLabel(label string) *Button {
	b.loadingLabel = label
	return b
}

// Label returns the idle label.
func (b *Button) Label() string {
	return b.label
}

// Loading reports whether the button is in its loading state.
func (b *Button) Loading() bool {
	return b.loading
}

// View renders the button with the default theme.
func (b *Button) View() string {
	return b.ViewWithTheme(DefaultTheme())
}

// ViewWithTheme renders the button with theme.
func (b *Button) ViewWithTheme(theme Theme) string {
	style := b.ComputeStyle(theme).Padding(0, 2)
	if b.loading {
		text := b.loadingLabel
		if b.indicator != "" {
			text = b.indicator + " " + text
		}
		return style.Foreground(theme.Muted).Faint(true).Render(text)
	}
	if b.focused {
		return style.Bold(true).Foreground(theme.OnColor).Background(theme.Color(b.variant)).Render(b.label)
	}
	return style.Foreground(theme.Muted).Background(theme.Border).Render(b.label)
}
