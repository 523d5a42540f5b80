package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMock_RecordsActions(t *testing.T) {
	m := NewMock(nil)
	ctx := context.Background()

	assert.NoError(t, m.Logout(ctx, "jdoe"))
	assert.NoError(t, m.DeleteAccount(ctx, "jdoe"))

	assert.Equal(t, []string{"logout:jdoe", "delete:jdoe"}, m.Calls())
	assert.True(t, m.Deleted("jdoe"))
	assert.False(t, m.Deleted("other"))
}

func TestMock_RequiresUser(t *testing.T) {
	m := NewMock(nil)
	assert.ErrorIs(t, m.Logout(context.Background(), ""), ErrNoUser)
	assert.ErrorIs(t, m.DeleteAccount(context.Background(), ""), ErrNoUser)
	assert.Empty(t, m.Calls())
}

func TestMock_HonorsContext(t *testing.T) {
	m := &Mock{Delay: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, m.Logout(ctx, "jdoe"), context.Canceled)
	assert.Empty(t, m.Calls())
}
