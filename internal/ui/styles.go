package ui

import "github.com/charmbracelet/lipgloss"

var (
	dimColor     = lipgloss.Color("7")
	accentColor  = lipgloss.Color("12")
	successColor = lipgloss.Color("10")
	warningColor = lipgloss.Color("11")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	activeStyle = lipgloss.NewStyle().
			Foreground(successColor)

	inactiveStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor)
)
