package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ChoiceModel is a vertical selection menu over a fixed option list.
type ChoiceModel struct {
	title     string
	options   []string
	selected  int
	cancelled bool
	done      bool
	styles    *Styles
}

// NewChoiceModel creates a menu with the cursor on the first option.
func NewChoiceModel(title string, options []string, s *Styles) *ChoiceModel {
	if s == nil {
		s = DefaultStyles()
	}
	return &ChoiceModel{
		title:   title,
		options: options,
		styles:  s,
	}
}

// Init implements tea.Model.
func (m *ChoiceModel) Init() tea.Cmd {
	return nil
}

// Update handles menu navigation and selection.
func (m *ChoiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			m.MoveUp()
		case "down", "j":
			m.MoveDown()
		case "enter":
			m.done = true
			return m, tea.Quit
		case "esc", "q", "ctrl+c":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the menu.
func (m *ChoiceModel) View() string {
	if m.done {
		return ""
	}

	lines := make([]string, 0, len(m.options)+3)
	lines = append(lines, m.styles.Title.Render(m.title), "")

	for i, option := range m.options {
		if i == m.selected {
			lines = append(lines, m.styles.Selected.Render("> "+option))
		} else {
			lines = append(lines, m.styles.Normal.Render("  "+option))
		}
	}

	lines = append(lines, "", m.styles.Help.Render("up/down to move, enter to select, esc to cancel"))
	return strings.Join(lines, "\n")
}

// MoveUp moves the cursor up.
func (m *ChoiceModel) MoveUp() {
	if m.selected > 0 {
		m.selected--
	}
}

// MoveDown moves the cursor down.
func (m *ChoiceModel) MoveDown() {
	if m.selected < len(m.options)-1 {
		m.selected++
	}
}

// Selected returns the cursor position.
func (m *ChoiceModel) Selected() int {
	return m.selected
}

// Cancelled reports whether the menu was dismissed without a selection.
func (m *ChoiceModel) Cancelled() bool {
	return m.cancelled
}

// Choose presents the menu and blocks until the user selects or cancels.
func Choose(title string, options []string) (int, bool, error) {
	model := NewChoiceModel(title, options, nil)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return 0, false, err
	}

	result := final.(*ChoiceModel)
	if result.Cancelled() {
		return 0, true, nil
	}
	return result.Selected(), false, nil
}
