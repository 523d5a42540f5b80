package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"github.com/findmyservice/findmyservice-cli/pkg/notify"
)

const noticeTimeout = 4 * time.Second

// clearNoticeMsg hides the notice with the given sequence number
type clearNoticeMsg struct {
	seq int
}

// NoticeBoard is the editor's notification channel inside the TUI. It keeps
// the latest notice for the status bar.
type NoticeBoard struct {
	current   *notify.Notification
	seq       int
	scheduled int
	history   []notify.Notification
}

// NewNoticeBoard creates an empty board
func NewNoticeBoard() *NoticeBoard {
	return &NoticeBoard{}
}

// Notify implements notify.Notifier
func (b *NoticeBoard) Notify(n notify.Notification) {
	b.seq++
	b.current = &n
	b.history = append(b.history, n)
}

// Current returns the notice on display, if any
func (b *NoticeBoard) Current() (notify.Notification, bool) {
	if b.current == nil {
		return notify.Notification{}, false
	}
	return *b.current, true
}

// History returns every notice received
func (b *NoticeBoard) History() []notify.Notification {
	return b.history
}

// Schedule returns a timer command for a notice posted since the last call
func (b *NoticeBoard) Schedule() tea.Cmd {
	if b.current == nil || b.scheduled == b.seq {
		return nil
	}
	b.scheduled = b.seq
	seq := b.seq
	return tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

// Clear hides the notice if it is still the one the timer was set for
func (b *NoticeBoard) Clear(msg clearNoticeMsg) {
	if msg.seq == b.seq {
		b.current = nil
	}
}

// View renders the status bar line
func (b *NoticeBoard) View(width int) string {
	n, ok := b.Current()
	if !ok {
		return ""
	}
	style, ok := statusStyles[string(n.Kind)]
	if !ok {
		style = statusStyles["info"]
	}
	msg := n.Message
	if width > 4 {
		msg = truncate.StringWithTail(msg, uint(width-4), "…")
	}
	return style.Render(msg)
}
