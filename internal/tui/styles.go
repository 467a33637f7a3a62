// Package tui provides terminal output for pipeline runs: colored stage
// lines, the summary block, and the final banner.
//
// Colors use AdaptiveColor for light/dark terminal support. Call
// CheckNoColor() at the start of commands to respect the NO_COLOR environment
// variable; colors are also disabled when TERM=dumb.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

//nolint:gochecknoglobals // Intentional package-level constants for styling API
var (
	// ColorSuccess is green, used for passed stages.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorError is red, used for failed stages.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorWarning is yellow, used for skipped stages and dry-run notices.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorPrimary is blue, used for transient states and headers.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorMuted is gray, used for secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}

	// StyleBold applies bold formatting to text.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleSuccess renders success text.
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)

	// StyleError renders failure text.
	StyleError = lipgloss.NewStyle().Foreground(ColorError)

	// StyleWarning renders warning text.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)

	// StyleMuted renders secondary text.
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)
)

// CheckNoColor disables color output when the environment requests it.
// Call this at the start of commands before rendering any styled output.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport returns true if the terminal supports colors.
// Returns false if NO_COLOR is set (any value including empty string) or
// TERM=dumb, following the NO_COLOR standard: https://no-color.org/
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}
