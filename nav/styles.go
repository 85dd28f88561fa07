package nav

import "github.com/charmbracelet/lipgloss"

var (
	colorSelected lipgloss.Color = "#FFCA28"
	colorPrimary  lipgloss.Color = "#1976D2"
	colorIdle     lipgloss.Color = "#7f849c"
	colorRule     lipgloss.Color = "#585b70"
	colorBackdrop lipgloss.Color = "#45475a"
	colorButton   lipgloss.Color = "#cdd6f4"

	ruleStyle     = lipgloss.NewStyle().Foreground(colorRule)
	idleStyle     = lipgloss.NewStyle().Foreground(colorIdle)
	selectedStyle = lipgloss.NewStyle().Foreground(colorSelected).Bold(true)
	registerStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	backdropStyle = lipgloss.NewStyle().Foreground(colorBackdrop).Faint(true)

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Foreground(colorButton).
			Bold(true).
			Align(lipgloss.Center)
	buttonPendingStyle = buttonStyle.
				BorderForeground(colorBackdrop).
				Foreground(colorBackdrop).
				Bold(false).
				Faint(true)
)
