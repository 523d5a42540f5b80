package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// dialog is the content of a confirmation prompt
type dialog struct {
	title       string
	message     string
	warning     string // shown in orange under the message
	destructive bool   // swaps the y/n colors
	width       int
}

// ConfirmationModel is a y/n dialog guarding account actions
type ConfirmationModel struct {
	active    bool
	dialog    dialog
	onConfirm func() tea.Cmd
}

func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// ShowDialog opens the dialog; onConfirm runs when the user answers y
func (m *ConfirmationModel) ShowDialog(title, message, warning string, destructive bool, width int, onConfirm func() tea.Cmd) {
	m.active = true
	m.dialog = dialog{
		title:       title,
		message:     message,
		warning:     warning,
		destructive: destructive,
		width:       width,
	}
	m.onConfirm = onConfirm
}

func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update answers the dialog. Keys other than y/n/esc are swallowed while it
// is open.
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
	case "n", "N", "esc":
		m.active = false
	}
	return nil
}

func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	width := m.dialog.width
	if width <= 0 {
		width = 60
	}
	center := lipgloss.NewStyle().Width(width - 4).Align(lipgloss.Center)

	var lines []string
	if m.dialog.title != "" {
		lines = append(lines, center.Render(confirmTitleStyle.Render(m.dialog.title)), "")
	}
	if m.dialog.message != "" {
		lines = append(lines, center.Render(m.dialog.message))
	}
	if m.dialog.warning != "" {
		lines = append(lines, "", center.Render(warningStyle.Render(m.dialog.warning)))
	}
	lines = append(lines, "", center.Render(confirmOptions(m.dialog.destructive)))

	return dialogBorderStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// confirmOptions colors y/n; destructive prompts make "yes" red
func confirmOptions(destructive bool) string {
	yes := lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	no := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	if destructive {
		yes, no = no, yes
	}
	return "[" + yes.Render("y") + "/" + no.Render("n") + "]"
}
