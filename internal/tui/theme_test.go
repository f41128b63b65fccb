package tui

import (
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestPaletteColorsAreValidHex(t *testing.T) {
	for _, c := range paletteColors() {
		if !hexColorRegex.MatchString(string(c)) {
			t.Errorf("invalid hex color: %q", c)
		}
	}
}

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status string
		want   lipgloss.Color
	}{
		{"ACTIVE", colorSuccess},
		{"AVAILABLE", colorSuccess},
		{"BETA", colorWarning},
		{"PRO", colorLink},
		{"COMING SOON", colorAccent},
		{"UNKNOWN", colorText},
	}
	for _, tc := range tests {
		if got := statusColor(tc.status); got != tc.want {
			t.Errorf("statusColor(%q) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestPaletteHasNoDuplicates(t *testing.T) {
	seen := map[lipgloss.Color]bool{}
	for _, c := range paletteColors() {
		if seen[c] {
			t.Fatalf("duplicate palette color %q", c)
		}
		seen[c] = true
	}
}
