package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/focuscal/internal/session"
)

// Color palette
var (
	colorPrimary   = lipgloss.Color("#6C63FF")
	colorMuted     = lipgloss.Color("#666666")
	colorSuccess   = lipgloss.Color("#2ECC71")
	colorWarning   = lipgloss.Color("#F39C12")
	colorError     = lipgloss.Color("#E74C3C")
	colorFg        = lipgloss.Color("#C0CAF5")
	colorSubtle    = lipgloss.Color("#414868")
	colorHighlight = lipgloss.Color("#7AA2F7")

	// Per-mode accents: the terminal counterpart of the original's
	// body theme switch (default/blue/matcha).
	colorFocus      = lipgloss.Color("#FF6B6B")
	colorShortBreak = lipgloss.Color("#3498DB")
	colorLongBreak  = lipgloss.Color("#2EC4B6")
)

// modeColor picks the accent for the current timer mode.
func modeColor(m session.Mode) lipgloss.Color {
	switch m {
	case session.ModeShortBreak:
		return colorShortBreak
	case session.ModeLongBreak:
		return colorLongBreak
	default:
		return colorFocus
	}
}

// Styles
var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorPrimary).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(1, 2)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	doneItemStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Strikethrough(true)

	// Calendar cells
	calendarDayStyle = lipgloss.NewStyle().
				Foreground(colorFg).
				Width(4).
				Align(lipgloss.Center)

	calendarTodayStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Width(4).
				Align(lipgloss.Center)

	calendarSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1A1B26")).
				Background(colorPrimary).
				Bold(true).
				Width(4).
				Align(lipgloss.Center)

	calendarMarkedStyle = lipgloss.NewStyle().
				Foreground(colorWarning).
				Width(4).
				Align(lipgloss.Center)
)
