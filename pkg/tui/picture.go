package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/findmyservice/findmyservice-cli/pkg/notify"
	"github.com/findmyservice/findmyservice-cli/pkg/profile"
	"github.com/findmyservice/findmyservice-cli/pkg/upload"
)

const pickerHeight = 15

// openPicker shows the file picker rooted at the configured picture directory
func (m *ProfileEditorModel) openPicker() tea.Cmd {
	dir := m.settings.UI.PictureDir
	if dir == "" || dir == "." {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	fp := filepicker.New()
	fp.CurrentDirectory = dir
	// Every file is listed; the pipeline rejects non-images with a notification
	fp.AllowedTypes = []string{}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AutoHeight = false
	fp.Height = pickerHeight

	m.picker = fp
	m.pickerOpen = true
	return m.picker.Init()
}

func (m *ProfileEditorModel) closePicker() {
	m.pickerOpen = false
}

// updatePicker routes a message to the open picker. esc and q close it;
// the picker itself would use esc to go up a directory.
func (m *ProfileEditorModel) updatePicker(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q":
			m.closePicker()
			return nil
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.closePicker()
		return tea.Batch(cmd, m.selectPictureFile(path))
	}
	return cmd
}

// selectPictureFile writes the local preview right away and returns the
// upload as a command; its result comes back as a pictureUploadedMsg.
func (m *ProfileEditorModel) selectPictureFile(path string) tea.Cmd {
	f, err := upload.OpenFile(path)
	if err != nil {
		m.logger.Warn("failed to read picture", zap.String("path", path), zap.Error(err))
		m.notices.Notify(notify.Error(fmt.Sprintf("Could not read %s", filepath.Base(path))))
		return nil
	}

	task, err := m.editor.SelectPicture(f)
	if err != nil {
		// The editor already notified
		return nil
	}

	m.pictureData = f.Data
	m.pictureFor = m.editor.Field(profile.FieldPictureURL)

	return uploadCmd(task)
}

func uploadCmd(task *upload.Task) tea.Cmd {
	return func() tea.Msg {
		res, err := task.Upload(context.Background())
		return pictureUploadedMsg{id: task.ID, result: res, err: err}
	}
}

// resolvePicture applies an upload result inside the update loop
func (m *ProfileEditorModel) resolvePicture(msg pictureUploadedMsg) upload.Outcome {
	outcome := m.editor.ResolvePicture(msg.id, msg.result, msg.err)
	switch outcome {
	case upload.OutcomeApplied:
		// Same picture, now under its remote URL
		m.pictureFor = m.editor.Field(profile.FieldPictureURL)
	case upload.OutcomeFailed:
		m.notices.Notify(notify.Warning("Upload failed; keeping the local preview"))
	}
	m.syncInputs()
	return outcome
}

// pictureArt renders the current picture as block art, cached per slot value
func (m *ProfileEditorModel) pictureArt() string {
	url := m.editor.Field(profile.FieldPictureURL)
	if url == "" || !m.settings.UI.ShowPreview {
		return ""
	}
	if url == m.previewKey {
		return m.previewArt
	}

	var data []byte
	switch {
	case url == m.pictureFor && m.pictureData != nil:
		data = m.pictureData
	case upload.IsDataURL(url):
		decoded, err := upload.DecodeDataURL(url)
		if err != nil {
			m.logger.Debug("bad picture data url", zap.Error(err))
			return ""
		}
		data = decoded
	default:
		// Remote pictures are not fetched
		return ""
	}

	art, err := upload.RenderPreview(data, m.settings.UI.PreviewWidth)
	if err != nil {
		m.logger.Debug("failed to render picture preview", zap.Error(err))
		art = ""
	}
	m.previewKey = url
	m.previewArt = art
	return art
}
