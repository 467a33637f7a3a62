package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/molekit/molekit/internal/pipeline"
)

// StatusPresentation holds the display attributes for one stage status.
// Triple redundancy is maintained: symbol + color + text, so results stay
// readable without color support.
type StatusPresentation struct {
	Label  string
	Symbol string
	Style  lipgloss.Style
}

// statusPresentations maps every stage status to its display attributes.
// The transient states are included so the table stays exhaustive.
func statusPresentations() map[pipeline.Status]StatusPresentation {
	return map[pipeline.Status]StatusPresentation{
		pipeline.StatusPending: {Label: "PENDING", Symbol: "·", Style: StyleMuted},
		pipeline.StatusRunning: {Label: "RUNNING", Symbol: "▸", Style: lipgloss.NewStyle().Foreground(ColorPrimary)},
		pipeline.StatusPassed:  {Label: "PASSED", Symbol: "✓", Style: StyleSuccess},
		pipeline.StatusFailed:  {Label: "FAILED", Symbol: "✗", Style: StyleError},
		pipeline.StatusSkipped: {Label: "SKIPPED", Symbol: "⚠", Style: StyleWarning},
	}
}

// PresentStatus returns the display attributes for a status. Unknown values
// fall back to the raw status text in the muted style.
func PresentStatus(status pipeline.Status) StatusPresentation {
	if p, ok := statusPresentations()[status]; ok {
		return p
	}
	return StatusPresentation{
		Label:  strings.ToUpper(string(status)),
		Symbol: "?",
		Style:  StyleMuted,
	}
}
