package ui

import "github.com/charmbracelet/lipgloss"

// Styles for the interactive progress view. The report itself uses the
// plain SGR Styles from color.go so its bytes stay stable.
var (
	colorYellow = lipgloss.Color("#F1FA8C")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorGray   = lipgloss.Color("#6272A4")

	spinnerStyle = lipgloss.NewStyle().Foreground(colorCyan)
	urlStyle     = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(colorGray)
	warnStyle    = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
)
