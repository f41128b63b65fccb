package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent  = colorPeach
	colorLink    = colorBlue
	colorFocus   = colorLavender
	colorMuted   = colorSubtext0
	colorBorder  = colorSurface2
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
)

// paletteColors returns every color the shell renders with.
func paletteColors() []lipgloss.Color {
	return []lipgloss.Color{
		colorRed, colorPeach, colorYellow, colorGreen,
		colorBlue, colorLavender,
		colorText, colorSubtext0, colorOverlay1,
		colorSurface2, colorSurface1, colorSurface0,
		colorBase, colorMantle,
	}
}

// statusColor colors the status columns of the help tables.
func statusColor(status string) lipgloss.Color {
	switch status {
	case "ACTIVE", "AVAILABLE", "ALL USERS", "YES":
		return colorSuccess
	case "BETA":
		return colorWarning
	case "PRO", "GET":
		return colorLink
	case "COMING SOON":
		return colorAccent
	}
	return colorText
}
