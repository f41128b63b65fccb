package tui

import "github.com/charmbracelet/lipgloss"

var (
	brandStyle  = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	titleStyle  = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	bodyStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	labelStyle  = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorOverlay1)
	linkStyle   = lipgloss.NewStyle().Foreground(colorLink)
	accentStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(colorSurface1).
			PaddingLeft(1)
	inputFocusStyle = inputStyle.BorderForeground(colorFocus)
	inputErrStyle   = inputStyle.BorderForeground(colorError)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface1).
			Padding(0, 3)
	buttonBusyStyle = buttonStyle.Foreground(colorOverlay1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Underline(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorOverlay1).
				Padding(0, 1)

	shortcutStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorAccent).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
)
