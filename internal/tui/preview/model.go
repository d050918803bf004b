package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/nexus/internal/tui/components"
	"github.com/alexisbeaulieu97/nexus/internal/ui/reveal"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 4
)

// visibility is the reveal.Observer for a single block. The model reports
// the block's visible ratio after every layout or scroll.
type visibility struct {
	fn func(ratio float64)
}

func (v *visibility) Observe(_ float64, fn func(ratio float64)) func() {
	v.fn = fn
	return func() { v.fn = nil }
}

func (v *visibility) report(ratio float64) {
	if v.fn != nil {
		v.fn(ratio)
	}
}

type item struct {
	Block
	style reveal.Style
	ctrl  *reveal.Controller
	obs   *visibility
	top   int
	lines int
}

// Apply implements reveal.Target.
func (it *item) Apply(style reveal.Style, _ reveal.Transition) {
	it.style = style
}

func (it *item) shown() bool {
	return it.style.Opacity > 0
}

// Model is the bubbletea model for the page preview.
type Model struct {
	title    string
	items    []*item
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// New creates a preview of blocks. Animated blocks are mounted hidden.
func New(title string, blocks []Block) Model {
	m := Model{
		title:  title,
		width:  defaultWidth,
		height: defaultHeight,
	}
	for _, b := range blocks {
		it := &item{Block: b, style: reveal.Style{Opacity: 1, Scale: 1}}
		if b.Animated() {
			it.obs = &visibility{}
			it.ctrl = reveal.NewController(b.Preset, b.Delay, it.obs)
			it.ctrl.Mount(it)
		}
		m.items = append(m.items, it)
	}
	m.viewport = viewport.New(m.width, m.height-chromeHeight)
	m.layout()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.ready = true
		m.layout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.Close()
			return m, tea.Quit
		case "g", "home":
			m.viewport.GotoTop()
			m.observe()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			m.observe()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.observe()
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	return components.NewPanel(m.viewport.View()).
		WithHeader(components.NewHeader(m.title)).
		WithFooter(m.status()).
		WithWidth(m.width).
		View()
}

// Revealed returns how many animated blocks have been triggered.
func (m Model) Revealed() int {
	n := 0
	for _, it := range m.items {
		if it.ctrl != nil && it.ctrl.State() == reveal.Triggered {
			n++
		}
	}
	return n
}

// Animated returns how many blocks carry an entrance animation.
func (m Model) Animated() int {
	n := 0
	for _, it := range m.items {
		if it.ctrl != nil {
			n++
		}
	}
	return n
}

// Close unmounts every controller. Later scrolling reveals nothing.
func (m Model) Close() {
	for _, it := range m.items {
		if it.ctrl != nil {
			it.ctrl.Unmount()
		}
	}
}

func (m Model) status() string {
	return strings.Join([]string{
		"↑/↓ scroll",
		"g/G top/bottom",
		"q quit",
		percent(m.viewport.ScrollPercent()),
	}, "  •  ")
}

// layout renders every block at the current width and records where each
// one starts so visibility can be measured in lines.
func (m *Model) layout() {
	line := 0
	for _, it := range m.items {
		it.top = line
		it.lines = lipgloss.Height(m.renderItem(it))
		line += it.lines + 1
	}
	m.refresh()
	m.observe()
}

// observe reports each animated block's visible ratio, then redraws so any
// block triggered by the report shows. Nothing is reported before the first
// window size is known.
func (m *Model) observe() {
	if !m.ready {
		return
	}
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height
	for _, it := range m.items {
		if it.obs == nil || it.lines == 0 {
			continue
		}
		overlap := min(bottom, it.top+it.lines) - max(top, it.top)
		if overlap < 0 {
			overlap = 0
		}
		it.obs.report(float64(overlap) / float64(it.lines))
	}
	m.refresh()
}

func (m *Model) refresh() {
	rendered := make([]string, len(m.items))
	for i, it := range m.items {
		rendered[i] = m.renderItem(it)
	}
	m.viewport.SetContent(strings.Join(rendered, "\n\n"))
}

func (m *Model) renderItem(it *item) string {
	card := components.NewCard(it.Heading, it.Body).
		WithWidth(max(m.width-1, 12)).
		WithHidden(!it.shown())
	if it.Animated() {
		card.WithBadge(components.NewBadge(string(it.Preset)))
	}
	return card.View()
}

func percent(f float64) string {
	return fmt.Sprintf("%3.0f%%", f*100)
}
