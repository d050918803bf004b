package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeColor(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	cases := map[Variant]lipgloss.AdaptiveColor{
		VariantDefault: theme.Border,
		VariantPrimary: theme.Primary,
		VariantAccent:  theme.Accent,
		VariantSuccess: theme.Success,
		VariantError:   theme.Error,
		VariantHidden:  theme.Hidden,
	}
	for v, want := range cases {
		assert.Equal(t, want, theme.Color(v))
	}
}

func TestHeaderView(t *testing.T) {
	t.Parallel()

	t.Run("renders title on one line", func(t *testing.T) {
		t.Parallel()
		view := NewHeader("Home").View()
		require.Contains(t, view, "Home")
		require.Equal(t, 1, lipgloss.Height(view))
	})

	t.Run("renders subtitle after title", func(t *testing.T) {
		t.Parallel()
		view := NewHeader("Home").WithSubtitle("/").View()
		require.Equal(t, 1, lipgloss.Height(view))
		require.Less(t, strings.Index(view, "Home"), strings.Index(view, "/"))
	})

	t.Run("appliers recolour the title", func(t *testing.T) {
		t.Parallel()
		theme := DefaultTheme()
		h := NewHeader("Sent").WithAppliers(Foreground(VariantSuccess))
		require.Equal(t, theme.Success, h.ComputeStyle(theme).GetForeground())
		require.Equal(t, theme.Primary, NewHeader("Idle").ComputeStyle(theme).GetForeground())
	})
}

func TestButtonView(t *testing.T) {
	t.Parallel()

	t.Run("idle shows label", func(t *testing.T) {
		t.Parallel()
		b := NewButton("Send Message")
		require.Contains(t, b.View(), "Send Message")
		require.Contains(t, b.WithFocused(true).View(), "Send Message")
		require.False(t, b.Loading())
	})

	t.Run("loading shows indicator and loading label", func(t *testing.T) {
		t.Parallel()
		b := NewButton("Send Message").WithLoading(true, "⣾").WithLoadingLabel("Sending...")
		view := b.View()
		require.True(t, b.Loading())
		require.Contains(t, view, "⣾ Sending...")
		require.NotContains(t, view, "Send Message")
	})

	t.Run("default loading label", func(t *testing.T) {
		t.Parallel()
		view := NewButton("Go").WithLoading(true, "").View()
		require.Contains(t, view, DefaultLoadingLabel)
	})
}

func TestAlertView(t *testing.T) {
	t.Parallel()

	t.Run("success carries check icon", func(t *testing.T) {
		t.Parallel()
		view := SuccessAlert("Message sent").View()
		require.Contains(t, view, "✓ Message sent")
		require.Contains(t, view, "╭")
	})

	t.Run("error carries detail under message", func(t *testing.T) {
		t.Parallel()
		view := ErrorAlert("Something went wrong").WithDetail("connection refused").View()
		require.Contains(t, view, "✗ Something went wrong")
		require.Contains(t, view, "connection refused")
		require.Less(t, strings.Index(view, "went wrong"), strings.Index(view, "connection refused"))
	})

	t.Run("title and custom icon", func(t *testing.T) {
		t.Parallel()
		view := NewAlert("body").WithTitle("Heads up").WithIcon("!").View()
		require.Contains(t, view, "Heads up")
		require.Contains(t, view, "! body")
	})

	t.Run("width is respected", func(t *testing.T) {
		t.Parallel()
		view := NewAlert("short").WithWidth(30).View()
		require.Equal(t, 32, lipgloss.Width(view))
	})
}

func TestBadgeView(t *testing.T) {
	t.Parallel()

	b := NewBadge("fade-up")
	require.Equal(t, "fade-up", b.Text())
	require.Equal(t, " fade-up ", b.View())
	require.Equal(t, lipgloss.Width(b.View()), lipgloss.Width(b.WithVariant(VariantHidden).View()))
}

func TestCardView(t *testing.T) {
	t.Parallel()

	t.Run("renders heading body and badges", func(t *testing.T) {
		t.Parallel()
		view := NewCard("About", "We build things.").WithBadge(NewBadge("fade-up")).View()
		require.Contains(t, view, "About")
		require.Contains(t, view, "fade-up")
		require.Contains(t, view, "We build things.")
	})

	t.Run("hidden card keeps its size", func(t *testing.T) {
		t.Parallel()
		body := strings.Repeat("word ", 30)
		shown := NewCard("Title", body).WithBadge(NewBadge("zoom-in")).WithWidth(40)
		hidden := NewCard("Title", body).WithBadge(NewBadge("zoom-in")).WithWidth(40).WithHidden(true)

		require.True(t, hidden.Hidden())
		require.Equal(t, lipgloss.Height(shown.View()), lipgloss.Height(hidden.View()))
		require.Equal(t, 40, lipgloss.Width(shown.View()))
		require.Equal(t, 40, lipgloss.Width(hidden.View()))
	})

	t.Run("empty heading still shows badges", func(t *testing.T) {
		t.Parallel()
		view := NewCard("", "Body").WithBadge(NewBadge("fade")).View()
		lines := strings.Split(view, "\n")
		require.Len(t, lines, 4)
		require.Contains(t, lines[1], "fade")
	})
}

func TestPanelView(t *testing.T) {
	t.Parallel()

	view := NewPanel("line one\nline two").
		WithHeader(NewHeader("Preview")).
		WithFooter("q quit").
		WithWidth(30).
		View()

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "Preview")
	assert.Contains(t, lines[1], "line one")
	assert.Contains(t, lines[4], "q quit")
	assert.Equal(t, 30, lipgloss.Width(lines[3]))
}
