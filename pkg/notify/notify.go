// Package notify is the channel through which the editor reports outcomes
// to the user.
package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Kind classifies a notification
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// Notification is a single user-facing message
type Notification struct {
	Message string
	Kind    Kind
}

// Notifier delivers notifications. Calls are fire-and-forget.
type Notifier interface {
	Notify(n Notification)
}

// Func adapts a function to the Notifier interface
type Func func(Notification)

func (f Func) Notify(n Notification) { f(n) }

// Success builds a success notification
func Success(msg string) Notification { return Notification{Message: msg, Kind: KindSuccess} }

// Error builds an error notification
func Error(msg string) Notification { return Notification{Message: msg, Kind: KindError} }

// Info builds an info notification
func Info(msg string) Notification { return Notification{Message: msg, Kind: KindInfo} }

// Warning builds a warning notification
func Warning(msg string) Notification { return Notification{Message: msg, Kind: KindWarning} }

// Recorder keeps every notification it receives
type Recorder struct {
	mu   sync.Mutex
	sent []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

// All returns a copy of the recorded notifications
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.sent))
	copy(out, r.sent)
	return out
}

// Last returns the most recent notification
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return Notification{}, false
	}
	return r.sent[len(r.sent)-1], true
}

// Count returns how many notifications of the given kind were recorded
func (r *Recorder) Count(kind Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.sent {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops everything recorded so far
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = nil
}

// Logging forwards notifications to a zap logger and then to next, if any
type Logging struct {
	Logger *zap.Logger
	Next   Notifier
}

func (l Logging) Notify(n Notification) {
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	fields := []zap.Field{zap.String("kind", string(n.Kind))}
	switch n.Kind {
	case KindError:
		logger.Warn(n.Message, fields...)
	default:
		logger.Info(n.Message, fields...)
	}
	if l.Next != nil {
		l.Next.Notify(n)
	}
}
