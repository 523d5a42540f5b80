package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const version = "v0.1.0"

func renderHeader(width int, title string) string {
	logo := `╔═╗╦╔╗╔╔╦╗  ╔╦╗╦ ╦
╠╣ ║║║║ ║║  ║║║╚╦╝
╚  ╩╝╚╝═╩╝  ╩ ╩ ╩
SERVICE ` + version

	logoStyle := lipgloss.NewStyle().
		Foreground(focusColor).
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(focusColor).
		Bold(true)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	logoRendered := logoStyle.Render(logo)

	if title == "" {
		rightAlign := lipgloss.NewStyle().
			Width(width - 2).
			Align(lipgloss.Right)
		return headerPadding.Render(rightAlign.Render(logoRendered))
	}

	// Title sits on the same row as the version line
	logoLines := strings.Split(logo, "\n")
	titleRendered := titleStyle.Render(strings.Repeat("\n", len(logoLines)-1) + title)

	gap := width - 2 - lipgloss.Width(title) - lipgloss.Width(logoLines[0])
	if gap < 1 {
		gap = 1
	}

	headerContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		lipgloss.NewStyle().Width(gap).Render(""),
		logoRendered,
	)
	return headerPadding.Render(headerContent)
}

// renderFooter is the one-line footer under every view
func renderFooter(width int) string {
	footer := "© FindMyService · profile editor " + version
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(inactiveColor).
		Render(footer)
}
