package cli

import "github.com/charmbracelet/lipgloss"

// Styles for human-facing status lines. These are only ever written to
// stderr; stdout carries the raw combined tool output.
var (
	styleToolName = lipgloss.NewStyle().Bold(true)
	styleOK       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleFindings = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)
