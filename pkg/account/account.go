// Package account holds the account actions reachable from the settings tab.
// The only implementation is a mock; the real account service lives
// elsewhere.
package account

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrNoUser is returned when an action is requested without a username
var ErrNoUser = errors.New("no user is signed in")

// Service performs account-level actions
type Service interface {
	Logout(ctx context.Context, username string) error
	DeleteAccount(ctx context.Context, username string) error
}

// Mock records calls and succeeds after an optional delay
type Mock struct {
	Delay  time.Duration
	Logger *zap.Logger

	mu      sync.Mutex
	calls   []string
	deleted map[string]bool
}

// NewMock creates a mock account service
func NewMock(logger *zap.Logger) *Mock {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mock{Logger: logger, deleted: make(map[string]bool)}
}

func (m *Mock) Logout(ctx context.Context, username string) error {
	if err := m.wait(ctx); err != nil {
		return err
	}
	if username == "" {
		return ErrNoUser
	}
	m.record("logout:" + username)
	m.logger().Info("user logged out", zap.String("username", username))
	return nil
}

func (m *Mock) DeleteAccount(ctx context.Context, username string) error {
	if err := m.wait(ctx); err != nil {
		return err
	}
	if username == "" {
		return ErrNoUser
	}
	m.record("delete:" + username)
	m.mu.Lock()
	if m.deleted == nil {
		m.deleted = make(map[string]bool)
	}
	m.deleted[username] = true
	m.mu.Unlock()
	m.logger().Warn("account deletion requested", zap.String("username", username))
	return nil
}

// Calls returns the recorded actions, e.g. "logout:jdoe"
func (m *Mock) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// Deleted reports whether DeleteAccount was called for username
func (m *Mock) Deleted(username string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleted[username]
}

func (m *Mock) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *Mock) wait(ctx context.Context) error {
	if m.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(m.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Mock) logger() *zap.Logger {
	if m.Logger == nil {
		return zap.NewNop()
	}
	return m.Logger
}
