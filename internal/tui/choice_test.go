package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNewChoiceModel(t *testing.T) {
	m := NewChoiceModel("Pick one:", []string{"a", "b"}, nil)

	require.NotNil(t, m)
	assert.Equal(t, 0, m.Selected())
	assert.False(t, m.Cancelled())
	assert.Nil(t, m.Init())
}

func TestChoiceModel_Navigation(t *testing.T) {
	m := NewChoiceModel("Pick one:", []string{"a", "b", "c"}, nil)

	m.Update(keyMsg("down"))
	assert.Equal(t, 1, m.Selected())

	m.Update(keyMsg("j"))
	assert.Equal(t, 2, m.Selected())

	// Clamped at the last option.
	m.Update(keyMsg("down"))
	assert.Equal(t, 2, m.Selected())

	m.Update(keyMsg("up"))
	assert.Equal(t, 1, m.Selected())

	m.Update(keyMsg("k"))
	assert.Equal(t, 0, m.Selected())

	// Clamped at the first option.
	m.Update(keyMsg("up"))
	assert.Equal(t, 0, m.Selected())
}

func TestChoiceModel_Enter(t *testing.T) {
	m := NewChoiceModel("Pick one:", []string{"a", "b"}, nil)

	m.Update(keyMsg("down"))
	_, cmd := m.Update(keyMsg("enter"))

	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.Selected())
	assert.False(t, m.Cancelled())
}

func TestChoiceModel_Cancel(t *testing.T) {
	for _, key := range []string{"esc", "q"} {
		m := NewChoiceModel("Pick one:", []string{"a", "b"}, nil)

		_, cmd := m.Update(keyMsg(key))

		require.NotNil(t, cmd, "key %q should quit", key)
		assert.True(t, m.Cancelled(), "key %q should cancel", key)
	}
}

func TestChoiceModel_View(t *testing.T) {
	m := NewChoiceModel("Pick one:", []string{"alpha", "beta"}, nil)

	view := m.View()

	assert.Contains(t, view, "Pick one:")
	assert.Contains(t, view, "> alpha")
	assert.Contains(t, view, "  beta")

	m.Update(keyMsg("down"))
	assert.Contains(t, m.View(), "> beta")
}

func TestChoiceModel_ViewAfterQuit(t *testing.T) {
	m := NewChoiceModel("Pick one:", []string{"a"}, nil)

	m.Update(keyMsg("enter"))

	assert.Empty(t, m.View())
}
