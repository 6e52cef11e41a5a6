package views

import (
	"github.com/charmbracelet/lipgloss"

	"launchview/internal/config"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Prompt   lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Action   lipgloss.Style
	Dim      lipgloss.Style
	Divider  lipgloss.Style
}

// NewStyles creates the styles from the configured colours
func NewStyles(cfg config.StyleSettings) *Styles {
	return &Styles{
		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.Prompt)),
		Row: lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.Selected)).
			Background(lipgloss.Color(cfg.SelectedBackground)),
		Action:  lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Action)),
		Dim:     lipgloss.NewStyle().Faint(true),
		Divider: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Dim)),
	}
}
