package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/findmyservice/findmyservice-cli/pkg/models"
)

type sessionState int

const (
	profileEditorView sessionState = iota
	signedOutView
)

// AppConfig wires the app to its seed profile, settings and services
type AppConfig struct {
	Seed     models.ProfileRecord
	Settings *models.Settings
	Deps     EditorDeps
}

type App struct {
	state   sessionState
	editor  *ProfileEditorModel
	notices *NoticeBoard
	width   int
	height  int
	reason  string
}

func NewApp(cfg AppConfig) *App {
	notices := NewNoticeBoard()
	return &App{
		state:   profileEditorView,
		notices: notices,
		editor:  NewProfileEditorModel(cfg.Seed, cfg.Settings, cfg.Deps, notices),
	}
}

// Editor returns the profile editor view
func (a *App) Editor() *ProfileEditorModel {
	return a.editor
}

// Notices returns the app's notification board
func (a *App) Notices() *NoticeBoard {
	return a.notices
}

func (a *App) Init() tea.Cmd {
	return a.editor.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	// A notice posted during this update gets its own expiry timer
	return a, tea.Batch(cmd, a.notices.Schedule())
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.editor.SetSize(msg.Width, msg.Height)
		return nil

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return tea.Quit
		}
		if a.state == signedOutView {
			switch msg.String() {
			case "q", "esc", "enter":
				return tea.Quit
			}
			return nil
		}

	case clearNoticeMsg:
		a.notices.Clear(msg)
		return nil

	case SwitchViewMsg:
		a.state = msg.view
		a.reason = msg.reason
		return nil
	}

	if a.state != profileEditorView {
		return nil
	}

	m, cmd := a.editor.Update(msg)
	if pe, ok := m.(*ProfileEditorModel); ok {
		a.editor = pe
	}
	return cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var title, content string
	switch a.state {
	case profileEditorView:
		title = "MY PROFILE"
		content = a.editor.View()
	case signedOutView:
		content = a.renderSignedOut()
	default:
		content = "Unknown view"
	}

	parts := []string{renderHeader(a.width, title), content}
	if status := a.notices.View(a.width); status != "" {
		parts = append(parts, lipgloss.NewStyle().PaddingLeft(1).Render(status))
	}
	parts = append(parts, renderFooter(a.width))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) renderSignedOut() string {
	msg := a.reason
	if msg == "" {
		msg = "You have been signed out."
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		sectionStyle.Render(msg),
		"",
		commentStyle.Render("Press q to exit"),
	)
	return lipgloss.NewStyle().
		Width(a.width).
		Height(a.height/2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

// SwitchViewMsg moves the app to another view
type SwitchViewMsg struct {
	view   sessionState
	reason string
}
