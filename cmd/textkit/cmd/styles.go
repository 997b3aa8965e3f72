package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
)

// Table styles for inspect
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	CellStyle = lipgloss.NewStyle()

	SummaryStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	RuleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
