package tui

import "github.com/charmbracelet/lipgloss"

var (
	activeColor   = lipgloss.Color("170") // purple, active pane
	focusColor    = lipgloss.Color("205") // pink, focused field
	mutedColor    = lipgloss.Color("245")
	commentColor  = lipgloss.Color("242")
	inactiveColor = lipgloss.Color("240")
	orangeColor   = lipgloss.Color("214")

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(activeColor)

	helpPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(inactiveColor).
			Padding(0, 1)

	dialogBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(activeColor).
				Padding(1, 1)

	confirmTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(orangeColor)
	warningStyle      = lipgloss.NewStyle().Foreground(orangeColor)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(activeColor).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Padding(0, 2)

	labelStyle    = lipgloss.NewStyle().Width(20).Foreground(mutedColor)
	focusedStyle  = lipgloss.NewStyle().Foreground(focusColor)
	normalStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	commentStyle  = lipgloss.NewStyle().Foreground(commentColor).Italic(true)
	requiredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(orangeColor)

	statusStyles = map[string]lipgloss.Style{
		"success": lipgloss.NewStyle().Background(lipgloss.Color("28")).Foreground(lipgloss.Color("230")).Padding(0, 1),
		"error":   lipgloss.NewStyle().Background(lipgloss.Color("160")).Foreground(lipgloss.Color("230")).Padding(0, 1),
		"warning": lipgloss.NewStyle().Background(orangeColor).Foreground(lipgloss.Color("16")).Padding(0, 1),
		"info":    lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1),
	}
)
