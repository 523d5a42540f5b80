package profile

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findmyservice/findmyservice-cli/pkg/models"
)

func TestFormState_InitializeOnce(t *testing.T) {
	fs := NewFormState()
	assert.False(t, fs.Initialized())

	applied := fs.Initialize(models.ProfileRecord{FirstName: "Jane", Email: "jane@example.com"})
	assert.True(t, applied)
	assert.True(t, fs.Initialized())

	// A later seed (e.g. the store refreshed) is not re-synced
	applied = fs.Initialize(models.ProfileRecord{FirstName: "Other"})
	assert.False(t, applied)
	assert.Equal(t, "Jane", fs.Field(FieldFirstName))
	assert.Equal(t, "jane@example.com", fs.Field(FieldEmail))
}

func TestFormState_SetFieldPreservesOthers(t *testing.T) {
	fs := NewFormState()
	fs.Initialize(*models.SampleProfile())
	before := fs.Snapshot()

	require.NoError(t, fs.SetField(FieldCity, "Oakland"))

	after := fs.Snapshot()
	for k, v := range before {
		if k == FieldCity {
			continue
		}
		assert.Equal(t, v, after[k], "field %s changed", k)
	}
	assert.Equal(t, "Oakland", after[FieldCity])
}

func TestFormState_SetFieldUnknown(t *testing.T) {
	fs := NewFormState()
	err := fs.SetField("nickname", "jd")
	assert.Error(t, err)
	_, present := fs.Snapshot()["nickname"]
	assert.False(t, present)
}

func TestFormState_ClearCredentialFields(t *testing.T) {
	fs := NewFormState()
	fs.Initialize(models.ProfileRecord{FirstName: "Jane"})
	require.NoError(t, fs.SetField(FieldCurrentPassword, "old"))
	require.NoError(t, fs.SetField(FieldNewPassword, "new"))
	require.NoError(t, fs.SetField(FieldConfirmPassword, "new"))

	fs.ClearCredentialFields()

	assert.Empty(t, fs.Field(FieldCurrentPassword))
	assert.Empty(t, fs.Field(FieldNewPassword))
	assert.Empty(t, fs.Field(FieldConfirmPassword))
	assert.Equal(t, "Jane", fs.Field(FieldFirstName))
}

func TestFormState_RecordOmitsCredentials(t *testing.T) {
	fs := NewFormState()
	seed := *models.SampleProfile()
	seed.ProfilePictureURL = "https://example/me.png"
	fs.Initialize(seed)
	require.NoError(t, fs.SetField(FieldNewPassword, "secret"))

	assert.Equal(t, seed, fs.Record())
}

func TestFormState_PictureSlot(t *testing.T) {
	fs := NewFormState()
	fs.SetPictureURL("https://example/x.png")
	assert.Equal(t, "https://example/x.png", fs.PictureURL())
	assert.Equal(t, "https://example/x.png", fs.Field(FieldPictureURL))
}

func TestFormState_ConcurrentAccess(t *testing.T) {
	fs := NewFormState()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			fs.SetPictureURL("https://example/x.png")
		}()
		go func() {
			defer wg.Done()
			_ = fs.SetField(FieldFirstName, "Jane")
			_ = fs.Snapshot()
		}()
	}
	wg.Wait()
	assert.Equal(t, "Jane", fs.Field(FieldFirstName))
}
