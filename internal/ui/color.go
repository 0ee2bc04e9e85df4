package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// SetColorMode applies "always", "never" or "auto" to every style.
// auto keeps lipgloss's own terminal detection.
func SetColorMode(mode string) {
	switch strings.ToLower(mode) {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
