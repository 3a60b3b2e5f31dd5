package main

import "github.com/charmbracelet/lipgloss"

// Color palette kept small and purely functional — this is a one-screen
// turn replay viewer, not a themed multi-page interface.
var (
	colorPrimary = lipgloss.Color("#8BC34A")
	colorMuted   = lipgloss.Color("#6b7280")
	colorBorder  = lipgloss.Color("#2a3850")
	colorWarn    = lipgloss.Color("#FFC107")
)

type styles struct {
	Header   lipgloss.Style
	Turn     lipgloss.Style
	Agent    lipgloss.Style
	Muted    lipgloss.Style
	Footer   lipgloss.Style
	Log      lipgloss.Style
	Frame    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Turn:   lipgloss.NewStyle().Bold(true),
		Agent:  lipgloss.NewStyle().Foreground(colorPrimary),
		Muted:  lipgloss.NewStyle().Foreground(colorMuted),
		Footer: lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
		Log:    lipgloss.NewStyle().Foreground(colorMuted),
		Frame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(1, 2),
	}
}
