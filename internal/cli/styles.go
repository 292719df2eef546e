package cli

import "github.com/charmbracelet/lipgloss"

var (
	success = lipgloss.Color("#04B575")
	warning = lipgloss.Color("#FFCC00")
	danger  = lipgloss.Color("#FF5F56")
	muted   = lipgloss.Color("#626262")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(danger)
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(success)
	valueStyle = lipgloss.NewStyle().Foreground(warning)
	mutedStyle = lipgloss.NewStyle().Foreground(muted)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1)
)
