package monitor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/s22625/agentcli/internal/model"
)

var (
	colorGreen  = lipgloss.Color("42")
	colorYellow = lipgloss.Color("214")
	colorRed    = lipgloss.Color("196")
	colorBlue   = lipgloss.Color("39")
	colorGray   = lipgloss.Color("245")
	colorWhite  = lipgloss.Color("255")
)

// Styles defines the visual styles for the jobs dashboard.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style

	StatusCompleted lipgloss.Style
	StatusFailed    lipgloss.Style
	StatusRunning   lipgloss.Style
	StatusQueued    lipgloss.Style
	StatusUnknown   lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorWhite),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(colorGray),
		Normal:   lipgloss.NewStyle().Foreground(colorWhite),
		Muted:    lipgloss.NewStyle().Foreground(colorGray),
		Selected: lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("236")).Foreground(colorWhite),
		Error:    lipgloss.NewStyle().Foreground(colorRed),

		StatusCompleted: lipgloss.NewStyle().Foreground(colorBlue),
		StatusFailed:    lipgloss.NewStyle().Foreground(colorRed),
		StatusRunning:   lipgloss.NewStyle().Foreground(colorGreen),
		StatusQueued:    lipgloss.NewStyle().Foreground(colorGray),
		StatusUnknown:   lipgloss.NewStyle().Foreground(colorYellow),
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
