package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/findmyservice/findmyservice-cli/pkg/profile"
	"github.com/findmyservice/findmyservice-cli/pkg/upload"
)

func (m *ProfileEditorModel) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	contentStyle := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	if m.confirm.Active() {
		return contentStyle.Render(m.confirm.View())
	}

	var content strings.Builder
	content.WriteString(m.renderTabBar())
	content.WriteString("\n\n")

	if m.pickerOpen {
		content.WriteString(m.renderPicker())
	} else {
		m.viewport.SetContent(m.renderFields())
		content.WriteString(contentStyle.Render(m.viewport.View()))
	}

	var s strings.Builder
	s.WriteString(contentStyle.Render(paneStyle.Width(width - 4).Render(content.String())))
	s.WriteString("\n")
	s.WriteString(contentStyle.Render(helpPaneStyle.Width(width - 4).Render(m.renderHelp(width - 8))))
	return s.String()
}

// renderTabBar draws the three section tabs with the active one highlighted
func (m *ProfileEditorModel) renderTabBar() string {
	active := m.editor.ActiveTab()
	tabs := make([]string, 0, len(profile.Tabs))
	for i, tab := range profile.Tabs {
		label := fmt.Sprintf("F%d %s", i+1, tab.Label())
		if tab == active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderFields draws the active tab's inputs, plus the picture block on the
// personal tab
func (m *ProfileEditorModel) renderFields() string {
	tab := m.editor.ActiveTab()
	focused := m.focusedField()

	var b strings.Builder
	b.WriteString(sectionStyle.Render(strings.ToUpper(tab.Label())))
	b.WriteString("\n\n")

	for _, field := range tab.Fields() {
		label := profile.Label(field)
		if profile.IsRequired(field) {
			label += requiredStyle.Render(" *")
		}

		cursor := "  "
		style := normalStyle
		if field == focused {
			cursor = focusedStyle.Render("▸ ")
			style = focusedStyle
		}

		b.WriteString(cursor)
		b.WriteString(labelStyle.Render(label))
		b.WriteString(style.Render(m.inputs[field].View()))
		b.WriteString("\n")
	}

	switch tab {
	case profile.TabPersonal:
		b.WriteString("\n")
		b.WriteString(m.renderPictureBlock())
	case profile.TabSettings:
		b.WriteString("\n")
		b.WriteString(commentStyle.Render("Danger zone: " + Shortcuts.DeleteAccount.Help() + " deletes your account"))
		b.WriteString("\n")
	}

	if missing := m.editor.MissingRequired(tab); len(missing) > 0 {
		labels := make([]string, len(missing))
		for i, f := range missing {
			labels[i] = profile.Label(f)
		}
		b.WriteString("\n")
		b.WriteString(commentStyle.Render("Not filled in: " + strings.Join(labels, ", ")))
		b.WriteString("\n")
	}

	return b.String()
}

// renderPictureBlock shows the picture slot: block art when available,
// otherwise its URL
func (m *ProfileEditorModel) renderPictureBlock() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("PROFILE PICTURE"))
	b.WriteString("\n")

	url := m.editor.Field(profile.FieldPictureURL)
	switch {
	case url == "":
		b.WriteString(commentStyle.Render("No picture. Press " + Shortcuts.Picture.Help() + " to choose one."))
		b.WriteString("\n")
		return b.String()
	case upload.IsDataURL(url):
		status := "Local preview"
		if m.editor.Pictures().Pending() {
			status = "Local preview, uploading..."
		}
		b.WriteString(warningStyle.Render(status))
	default:
		maxWidth := m.viewport.Width - 4
		if maxWidth < 10 {
			maxWidth = 10
		}
		b.WriteString(normalStyle.Render(truncate.StringWithTail(url, uint(maxWidth), "…")))
	}
	b.WriteString("\n")

	if art := m.pictureArt(); art != "" {
		b.WriteString(art)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *ProfileEditorModel) renderPicker() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("CHOOSE A PICTURE"))
	b.WriteString("\n")
	b.WriteString(commentStyle.Render(m.picker.CurrentDirectory))
	b.WriteString("\n\n")
	b.WriteString(m.picker.View())
	return lipgloss.NewStyle().PaddingLeft(1).Render(b.String())
}

func (m *ProfileEditorModel) renderHelp(width int) string {
	var help []string
	if m.pickerOpen {
		help = []string{
			"↑↓ navigate",
			"enter select",
			"← back",
			"esc cancel",
		}
	} else {
		help = []string{
			"tab/shift+tab field",
			Shortcuts.NextTab.Help() + "/" + Shortcuts.PrevTab.Help() + " section",
			"enter/" + Shortcuts.Submit.Help() + " save",
			Shortcuts.Picture.Help() + " picture",
			Shortcuts.RemovePicture.Help() + " remove picture",
			Shortcuts.CopyPicture.Help() + " copy url",
			Shortcuts.Logout.Help() + " sign out",
			Shortcuts.Quit.Help() + " quit",
		}
	}
	text := strings.Join(help, "  •  ")
	if width > 0 {
		text = wordwrap.String(text, width)
	}
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Right).Render(text)
}
