// Package contactform is a terminal front-end for the contact form. It runs
// the same client-side state machine as the browser and posts to a running
// server.
package contactform

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/nexus/internal/contact"
	"github.com/alexisbeaulieu97/nexus/internal/tui"
	widgets "github.com/alexisbeaulieu97/nexus/internal/tui/components"
	"github.com/alexisbeaulieu97/nexus/internal/ui/components"
)

const (
	fieldWidth  = 60
	minRows     = 3
	maxRows     = 12
	buttonIndex = 4
)

var inputFields = []struct {
	field       string
	label       string
	placeholder string
}{
	{contact.FieldName, "Name", "John Doe"},
	{contact.FieldEmail, "Email", "john@example.com"},
	{contact.FieldSubject, "Subject", "How can we help?"},
}

// submittedMsg carries the result of a send.
type submittedMsg struct {
	err error
}

// rows is the textarea height driven by the auto-resizer, in lines.
type rows struct {
	n int
}

func (r *rows) ResetHeight() { r.n = minRows }

func (r *rows) SetHeight(n int) {
	r.n = min(max(n, minRows), maxRows)
}

// Model is the bubbletea model for the contact form.
type Model struct {
	ctx     context.Context
	sender  contact.Sender
	form    *contact.Form
	inputs  []textinput.Model
	message textarea.Model
	rows    *rows
	resizer *components.AutoResizer
	spinner spinner.Model
	focus   int
	lastErr error
	width   int
}

// New creates a form that sends through sender. ctx bounds every send.
func New(ctx context.Context, sender contact.Sender) Model {
	m := Model{
		ctx:    ctx,
		sender: sender,
		form:   contact.NewForm(),
		rows:   &rows{n: minRows},
		width:  fieldWidth,
	}

	for _, f := range inputFields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.Width = fieldWidth
		m.inputs = append(m.inputs, in)
	}

	m.message = textarea.New()
	m.message.Placeholder = "Tell us more about your project..."
	m.message.ShowLineNumbers = false
	m.message.CharLimit = 0
	m.message.SetWidth(fieldWidth)
	m.message.SetHeight(minRows)

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.spinner.Style = lipgloss.NewStyle().Foreground(tui.Primary)

	m.resizer = components.NewAutoResizer(m.rows)
	m.resizer.Attach(m.scrollHeight())
	m.inputs[0].Focus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Form exposes the underlying state machine.
func (m Model) Form() *contact.Form {
	return m.form
}

// Focused returns the index of the focused control. Index 4 is the submit
// button.
func (m Model) Focused() int {
	return m.focus
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = min(msg.Width-4, fieldWidth)
		for i := range m.inputs {
			m.inputs[i].Width = m.width
		}
		m.message.SetWidth(m.width)
		m.autoresize()
		return m, nil

	case submittedMsg:
		m.lastErr = msg.err
		if m.form.Finish(msg.err) == contact.StatusSuccess {
			for i := range m.inputs {
				m.inputs[i].Reset()
			}
			m.message.Reset()
			m.autoresize()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.form.Submitting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.resizer.Detach()
			return m, tea.Quit
		case "tab", "down":
			if msg.String() == "tab" || m.focus < len(m.inputs) {
				return m, m.moveFocus(1)
			}
		case "shift+tab", "up":
			if msg.String() == "shift+tab" || m.focus < len(m.inputs) {
				return m, m.moveFocus(-1)
			}
		case "ctrl+s":
			return m.submit()
		case "enter":
			switch {
			case m.focus == buttonIndex:
				return m.submit()
			case m.focus < len(m.inputs):
				return m, m.moveFocus(1)
			}
		}
		if m.form.Submitting() {
			return m, nil
		}
	}

	return m, m.updateFocused(msg)
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.focus < len(m.inputs):
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.form.Set(inputFields[m.focus].field, m.inputs[m.focus].Value())
	case m.focus == len(m.inputs):
		m.message, cmd = m.message.Update(msg)
		m.form.Set(contact.FieldMessage, m.message.Value())
		m.autoresize()
	}
	return cmd
}

func (m *Model) moveFocus(step int) tea.Cmd {
	count := buttonIndex + 1
	m.focus = (m.focus + step + count) % count

	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.message.Blur()

	switch {
	case m.focus < len(m.inputs):
		return m.inputs[m.focus].Focus()
	case m.focus == len(m.inputs):
		return m.message.Focus()
	}
	return nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	sub, ok := m.form.Begin()
	if !ok {
		return m, nil
	}
	m.lastErr = nil
	return m, tea.Batch(m.spinner.Tick, send(m.ctx, m.sender, sub))
}

func send(ctx context.Context, sender contact.Sender, sub contact.Submission) tea.Cmd {
	return func() tea.Msg {
		return submittedMsg{err: sender.Send(ctx, sub)}
	}
}

// autoresize feeds the textarea's content height to the resizer and applies
// the result.
func (m *Model) autoresize() {
	m.resizer.Input(m.scrollHeight())
	m.message.SetHeight(m.rows.n)
}

// scrollHeight counts the lines the message occupies at the current width,
// soft wraps included.
func (m Model) scrollHeight() int {
	width := max(m.width, 1)
	n := 0
	for _, line := range strings.Split(m.message.Value(), "\n") {
		n += max((lipgloss.Width(line)+width-1)/width, 1)
	}
	return n
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	header := widgets.NewHeader("Send us a message")
	if m.form.Status() == contact.StatusSuccess {
		header.WithAppliers(widgets.Foreground(widgets.VariantSuccess))
	}
	b.WriteString(header.View())
	b.WriteString("\n\n")

	for i, f := range inputFields {
		m.writeField(&b, i, f.label, m.inputs[i].View(), m.form.Error(f.field))
	}
	m.writeField(&b, len(m.inputs), "Message", m.message.View(), m.form.Error(contact.FieldMessage))

	b.WriteString(m.button())
	b.WriteString("\n")

	switch m.form.Status() {
	case contact.StatusSuccess:
		b.WriteString("\n" + widgets.SuccessAlert(m.form.Notice()).View() + "\n")
	case contact.StatusError:
		alert := widgets.ErrorAlert(m.form.Notice())
		if m.lastErr != nil {
			alert.WithDetail(m.lastErr.Error())
		}
		b.WriteString("\n" + alert.View() + "\n")
	}

	b.WriteString("\n" + tui.MutedStyle.Render("tab next • shift+tab back • ctrl+s send • esc quit"))
	return b.String()
}

func (m Model) writeField(b *strings.Builder, index int, label, control, errMsg string) {
	style := tui.LabelStyle
	if m.focus == index {
		style = tui.FocusedLabelStyle
	}
	b.WriteString(style.Render(label) + "\n")
	b.WriteString(control + "\n")
	if errMsg != "" {
		b.WriteString(tui.ErrorStyle.Render(errMsg) + "\n")
	}
	b.WriteString("\n")
}

func (m Model) button() string {
	return widgets.NewButton("Send Message").
		WithFocused(m.focus == buttonIndex).
		WithLoading(m.form.Submitting(), m.spinner.View()).
		WithLoadingLabel("Sending...").
		View()
}
