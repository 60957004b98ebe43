package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used across the TUI.

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("63")). // Purple
			Padding(0, 1)

	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(18)

	fieldErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // Red

	// Notification bar styles, one per severity
	noticeInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)
	noticeSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("46")). // Green
				Bold(true).
				Padding(0, 1)
	noticeErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")). // Red
				Bold(true).
				Padding(0, 1)
	noticeWarningStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214")). // Orange
				Bold(true).
				Padding(0, 1)

	// Booking screen
	rowActiveStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	rowStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	slotDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Strikethrough(true)
	slotChosenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")) // Magenta
	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().PaddingLeft(2).PaddingBottom(1).Foreground(lipgloss.Color("241"))
)
