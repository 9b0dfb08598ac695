// Package tui provides the terminal prompts the submission flow runs on:
// a selection menu, a text input, and a yes/no consent dialog.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the pre-configured lipgloss styles shared by all prompts.
type Styles struct {
	Title    lipgloss.Style
	Normal   lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
}

// DefaultStyles returns the default prompt styling.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B")), // Amber

		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CDD6F4")),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(lipgloss.Color("#F59E0B")),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F38BA8")),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6E3A1")),
	}
}
