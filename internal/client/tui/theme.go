package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles of the dashboard.
type Theme struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Avatar   lipgloss.Style
	Faint    lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Prompt   lipgloss.Style
}

// DefaultTheme is the built-in dark-terminal scheme.
var DefaultTheme = Theme{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1890FF")),
	Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D9D9D9")),
	Row:      lipgloss.NewStyle(),
	Selected: lipgloss.NewStyle().Background(lipgloss.Color("#262626")),
	Avatar:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#262626")),
	Faint:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
	Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF4D4F")),
	Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("#1890FF")),
	Prompt:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAAD14")),
}
