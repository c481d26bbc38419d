package report

import "github.com/charmbracelet/lipgloss"

var (
	// Colors match the TUI palette so reports and the interactive view agree
	primaryColor = lipgloss.Color("#A78BFA") // Purple

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)
)
