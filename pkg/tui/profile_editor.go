package tui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/findmyservice/findmyservice-cli/pkg/account"
	"github.com/findmyservice/findmyservice-cli/pkg/models"
	"github.com/findmyservice/findmyservice-cli/pkg/notify"
	"github.com/findmyservice/findmyservice-cli/pkg/profile"
	"github.com/findmyservice/findmyservice-cli/pkg/upload"
)

// EditorDeps are the external services the editor talks to
type EditorDeps struct {
	Uploader  upload.Uploader
	Account   account.Service
	Logger    *zap.Logger
	Clipboard func(string) error
}

// ProfileEditorModel is the three-tab profile editor view
type ProfileEditorModel struct {
	editor   *profile.Editor
	notices  *NoticeBoard
	settings *models.Settings
	logger   *zap.Logger
	copy     func(string) error

	inputs map[string]*textinput.Model
	focus  map[profile.Tab]int

	picker     filepicker.Model
	pickerOpen bool

	confirm  *ConfirmationModel
	viewport viewport.Model

	pictureData []byte
	pictureFor  string
	previewKey  string
	previewArt  string

	width  int
	height int
}

// pictureUploadedMsg carries an upload result back into the update loop
type pictureUploadedMsg struct {
	id     string
	result upload.Result
	err    error
}

type accountAction int

const (
	actionLogout accountAction = iota
	actionDeleteAccount
)

// accountConfirmedMsg is sent once the user confirmed an account action
type accountConfirmedMsg struct {
	action accountAction
}

// NewProfileEditorModel creates the editor seeded from the profile record.
// Notifications are posted to notices.
func NewProfileEditorModel(seed models.ProfileRecord, settings *models.Settings, deps EditorDeps, notices *NoticeBoard) *ProfileEditorModel {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	if notices == nil {
		notices = NewNoticeBoard()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	copyFn := deps.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	uploader := deps.Uploader
	if uploader == nil {
		uploader = upload.Unavailable(nil)
	}

	pictures := upload.New(uploader, upload.Options{
		Folder:   settings.Upload.Folder,
		MaxBytes: settings.Upload.MaxBytes,
		Logger:   logger,
		Notifier: notices,
	})

	m := &ProfileEditorModel{
		editor: profile.NewEditor(profile.Options{
			Seed:     seed,
			Notifier: notices,
			Pictures: pictures,
			Account:  deps.Account,
			Logger:   logger,
		}),
		notices:  notices,
		settings: settings,
		logger:   logger,
		copy:     copyFn,
		inputs:   make(map[string]*textinput.Model),
		focus:    make(map[profile.Tab]int),
		confirm:  NewConfirmation(),
		viewport: viewport.New(80, 20),
	}

	for _, tab := range profile.Tabs {
		for _, field := range tab.Fields() {
			input := textinput.New()
			input.Placeholder = profile.Label(field)
			input.CharLimit = 255
			input.Width = 40
			if profile.IsSecret(field) {
				input.EchoMode = textinput.EchoPassword
				input.EchoCharacter = '•'
			}
			m.inputs[field] = &input
		}
	}

	m.syncInputs()
	m.updateFocus()
	return m
}

func (m *ProfileEditorModel) Init() tea.Cmd {
	return textinput.Blink
}

// Editor exposes the underlying profile editor
func (m *ProfileEditorModel) Editor() *profile.Editor {
	return m.editor
}

// SetSize updates the view dimensions
func (m *ProfileEditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.updateViewportSize()
}

// focusedField returns the field that receives typing on the active tab
func (m *ProfileEditorModel) focusedField() string {
	tab := m.editor.ActiveTab()
	fields := tab.Fields()
	idx := m.focus[tab]
	if idx < 0 || idx >= len(fields) {
		return ""
	}
	return fields[idx]
}

func (m *ProfileEditorModel) updateFocus() {
	focused := m.focusedField()
	for name, input := range m.inputs {
		if name == focused {
			input.Focus()
		} else {
			input.Blur()
		}
	}
}

// syncInputs copies the form record into the text inputs. The record is the
// source of truth; inputs are only its view.
func (m *ProfileEditorModel) syncInputs() {
	form := m.editor.Form()
	for name, input := range m.inputs {
		if v := form.Field(name); input.Value() != v {
			input.SetValue(v)
			input.CursorEnd()
		}
	}
}

func (m *ProfileEditorModel) moveFocus(delta int) {
	tab := m.editor.ActiveTab()
	n := len(tab.Fields())
	if n == 0 {
		return
	}
	m.focus[tab] = (m.focus[tab] + delta + n) % n
	m.updateFocus()
}

func (m *ProfileEditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case pictureUploadedMsg:
		m.resolvePicture(msg)
		return m, nil

	case accountConfirmedMsg:
		return m, m.runAccountAction(msg.action)

	case tea.KeyMsg:
		if m.confirm.Active() {
			return m, m.confirm.Update(msg)
		}
		if m.pickerOpen {
			return m, m.updatePicker(msg)
		}
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}

	default:
		// Directory listings and other picker internals
		if m.pickerOpen {
			return m, m.updatePicker(msg)
		}
	}

	// Typing goes to the focused input
	if field := m.focusedField(); field != "" {
		input := m.inputs[field]
		prev := input.Value()
		updated, cmd := input.Update(msg)
		*input = updated
		if input.Value() != prev {
			if err := m.editor.SetField(field, input.Value()); err != nil {
				m.logger.Warn("rejected field update", zap.String("field", field), zap.Error(err))
			}
		}
		cmds = append(cmds, cmd)
	}

	// Keys belong to the input; the viewport only scrolls on pgup/pgdown
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKey processes editor shortcuts. It reports false for keys that
// should reach the focused input.
func (m *ProfileEditorModel) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()

	switch {
	case Shortcuts.Submit.Matches(key) || key == "enter":
		_ = m.editor.Submit()
		m.syncInputs()
		return nil, true

	case Shortcuts.NextTab.Matches(key):
		m.editor.NextTab()
		m.updateFocus()
		return nil, true

	case Shortcuts.PrevTab.Matches(key):
		m.editor.PrevTab()
		m.updateFocus()
		return nil, true

	case key == "f1", key == "f2", key == "f3":
		if err := m.editor.SelectTab(profile.Tabs[int(key[1]-'1')]); err != nil {
			m.logger.Warn("tab switch rejected", zap.String("key", key), zap.Error(err))
		}
		m.updateFocus()
		return nil, true

	case Shortcuts.NextField.Matches(key) || key == "down":
		m.moveFocus(1)
		return nil, true

	case Shortcuts.PrevField.Matches(key) || key == "up":
		m.moveFocus(-1)
		return nil, true

	case Shortcuts.Picture.Matches(key):
		return m.openPicker(), true

	case Shortcuts.RemovePicture.Matches(key):
		m.editor.RemovePicture()
		m.pictureData = nil
		m.pictureFor = ""
		return nil, true

	case Shortcuts.CopyPicture.Matches(key):
		m.copyPictureURL()
		return nil, true

	case Shortcuts.Logout.Matches(key):
		m.confirm.ShowDialog("SIGN OUT", "Sign out of FindMyService?", "", false, m.dialogWidth(),
			func() tea.Cmd { return confirmed(actionLogout) })
		return nil, true

	case Shortcuts.DeleteAccount.Matches(key):
		if m.editor.ActiveTab() != profile.TabSettings {
			m.notices.Notify(notify.Info("Account deletion is available under Account Settings"))
			return nil, true
		}
		m.confirm.ShowDialog("DELETE ACCOUNT",
			"Permanently delete your account?",
			"This cannot be undone.",
			true, m.dialogWidth(),
			func() tea.Cmd { return confirmed(actionDeleteAccount) })
		return nil, true

	case key == "pgup" || key == "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd, true
	}

	return nil, false
}

func confirmed(action accountAction) tea.Cmd {
	return func() tea.Msg { return accountConfirmedMsg{action: action} }
}

func (m *ProfileEditorModel) runAccountAction(action accountAction) tea.Cmd {
	ctx := context.Background()
	switch action {
	case actionLogout:
		if err := m.editor.Logout(ctx); err != nil {
			return nil
		}
		return func() tea.Msg {
			return SwitchViewMsg{view: signedOutView, reason: "You have been signed out."}
		}
	case actionDeleteAccount:
		if err := m.editor.DeleteAccount(ctx); err != nil {
			return nil
		}
		return func() tea.Msg {
			return SwitchViewMsg{view: signedOutView, reason: "Your account has been scheduled for deletion."}
		}
	}
	return nil
}

func (m *ProfileEditorModel) copyPictureURL() {
	url := m.editor.Field(profile.FieldPictureURL)
	switch {
	case url == "":
		m.notices.Notify(notify.Info("No profile picture to copy"))
	case upload.IsDataURL(url):
		m.notices.Notify(notify.Warning("Picture is still a local preview; wait for the upload to finish"))
	default:
		if err := m.copy(url); err != nil {
			m.notices.Notify(notify.Error(fmt.Sprintf("Failed to copy: %v", err)))
			return
		}
		m.notices.Notify(notify.Success("Picture URL copied to clipboard"))
	}
}

func (m *ProfileEditorModel) dialogWidth() int {
	w := m.width - 8
	if w > 60 || w <= 0 {
		w = 60
	}
	return w
}

func (m *ProfileEditorModel) updateViewportSize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	// Header (5) + tab bar (2) + borders (2) + help (3) + status/footer (2)
	m.viewport.Width = m.width - 6
	m.viewport.Height = m.height - 16
	if m.viewport.Height < 5 {
		m.viewport.Height = 5
	}
}
