package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecorder(t *testing.T) {
	r := &Recorder{}

	_, ok := r.Last()
	assert.False(t, ok)

	r.Notify(Success("saved"))
	r.Notify(Error("bad email"))
	r.Notify(Error("bad phone"))

	last, ok := r.Last()
	assert.True(t, ok)
	assert.Equal(t, Error("bad phone"), last)
	assert.Len(t, r.All(), 3)
	assert.Equal(t, 2, r.Count(KindError))
	assert.Equal(t, 1, r.Count(KindSuccess))

	r.Reset()
	assert.Empty(t, r.All())
}

func TestLoggingForwards(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := &Recorder{}
	n := Logging{Logger: zap.New(core), Next: r}

	n.Notify(Info("logged out"))
	n.Notify(Error("upload rejected"))

	assert.Len(t, r.All(), 2)
	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "logged out", entries[0].Message)
		assert.Equal(t, zap.WarnLevel, entries[1].Level)
	}
}

func TestFunc(t *testing.T) {
	var got Notification
	var n Notifier = Func(func(x Notification) { got = x })
	n.Notify(Warning("careful"))
	assert.Equal(t, KindWarning, got.Kind)
}
