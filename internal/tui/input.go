package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputModel is a single-line text prompt.
type InputModel struct {
	prompt    string
	input     textinput.Model
	cancelled bool
	done      bool
	styles    *Styles
}

// NewInputModel creates a focused text prompt.
func NewInputModel(prompt, placeholder string, s *Styles) *InputModel {
	if s == nil {
		s = DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &InputModel{
		prompt: prompt,
		input:  ti,
		styles: s,
	}
}

// Init implements tea.Model.
func (m *InputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles text entry and submission.
func (m *InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m *InputModel) View() string {
	if m.done {
		return ""
	}
	return strings.Join([]string{
		m.styles.Title.Render(m.prompt),
		m.input.View(),
		"",
		m.styles.Help.Render("enter to submit, esc to cancel"),
	}, "\n")
}

// Value returns the entered text.
func (m *InputModel) Value() string {
	return m.input.Value()
}

// SetValue sets the entered text.
func (m *InputModel) SetValue(value string) {
	m.input.SetValue(value)
}

// Cancelled reports whether the prompt was dismissed without input.
func (m *InputModel) Cancelled() bool {
	return m.cancelled
}

// Input presents a text prompt and blocks until submission or cancel.
func Input(prompt, placeholder string) (string, bool, error) {
	model := NewInputModel(prompt, placeholder, nil)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", false, err
	}

	result := final.(*InputModel)
	if result.Cancelled() {
		return "", true, nil
	}
	return strings.TrimSpace(result.Value()), false, nil
}
