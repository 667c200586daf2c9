package shell

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/s22625/agentcli/internal/model"
)

// Color palette
var (
	colorGreen  = lipgloss.Color("42")
	colorYellow = lipgloss.Color("214")
	colorRed    = lipgloss.Color("196")
	colorBlue   = lipgloss.Color("39")
	colorCyan   = lipgloss.Color("45")
	colorGray   = lipgloss.Color("245")
	colorWhite  = lipgloss.Color("255")
	colorBorder = lipgloss.Color("240")
)

// Styles defines the visual styles for shell output.
type Styles struct {
	Panel     lipgloss.Style
	Title     lipgloss.Style
	Header    lipgloss.Style
	Normal    lipgloss.Style
	Muted     lipgloss.Style
	Info      lipgloss.Style
	Success   lipgloss.Style
	Warn      lipgloss.Style
	Error     lipgloss.Style
	PromptTag lipgloss.Style

	StatusCompleted lipgloss.Style
	StatusFailed    lipgloss.Style
	StatusRunning   lipgloss.Style
	StatusQueued    lipgloss.Style
	StatusUnknown   lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGray),

		Normal: lipgloss.NewStyle().
			Foreground(colorWhite),

		Muted: lipgloss.NewStyle().
			Foreground(colorGray),

		Info: lipgloss.NewStyle().
			Foreground(colorBlue),

		Success: lipgloss.NewStyle().
			Foreground(colorGreen),

		Warn: lipgloss.NewStyle().
			Foreground(colorYellow),

		Error: lipgloss.NewStyle().
			Foreground(colorRed),

		PromptTag: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen),

		StatusCompleted: lipgloss.NewStyle().
			Foreground(colorBlue),

		StatusFailed: lipgloss.NewStyle().
			Foreground(colorRed),

		StatusRunning: lipgloss.NewStyle().
			Foreground(colorGreen),

		StatusQueued: lipgloss.NewStyle().
			Foreground(colorGray),

		StatusUnknown: lipgloss.NewStyle().
			Foreground(colorYellow),
	}
}

// StatusStyle maps a status label to its display style.
func (s Styles) StatusStyle(status model.Status) lipgloss.Style {
	switch status {
	case model.StatusCompleted:
		return s.StatusCompleted
	case model.StatusFailed:
		return s.StatusFailed
	case model.StatusRunning:
		return s.StatusRunning
	case model.StatusQueued:
		return s.StatusQueued
	default:
		return s.StatusUnknown
	}
}
