package profile

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/findmyservice/findmyservice-cli/pkg/account"
	"github.com/findmyservice/findmyservice-cli/pkg/models"
	"github.com/findmyservice/findmyservice-cli/pkg/notify"
	"github.com/findmyservice/findmyservice-cli/pkg/upload"
	"github.com/findmyservice/findmyservice-cli/pkg/validate"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestEditor(t *testing.T, seed models.ProfileRecord, up upload.Uploader) (*Editor, *notify.Recorder) {
	t.Helper()
	rec := &notify.Recorder{}
	if up == nil {
		up = upload.Unavailable(nil)
	}
	e := NewEditor(Options{
		Seed:     seed,
		Notifier: rec,
		Pictures: upload.New(up, upload.Options{Notifier: rec}),
	})
	return e, rec
}

func pngFile(t *testing.T) upload.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return upload.NewFile("me.png", buf.Bytes())
}

func TestEditor_TabRoundTripKeepsFields(t *testing.T) {
	e, _ := newTestEditor(t, models.ProfileRecord{}, nil)
	assert.Equal(t, TabPersonal, e.ActiveTab())

	require.NoError(t, e.SetField(FieldFirstName, "Jane"))
	e.SelectTab(TabAddress)
	require.NoError(t, e.SetField(FieldCity, "Oakland"))
	e.SelectTab(TabPersonal)

	assert.Equal(t, "Jane", e.Field(FieldFirstName))
	assert.Equal(t, "Oakland", e.Field(FieldCity))
}

func TestEditor_SelectTabRejectsUnknownTab(t *testing.T) {
	e, rec := newTestEditor(t, models.ProfileRecord{Email: "jane@example.com"}, nil)
	require.NoError(t, e.SelectTab(TabAddress))

	require.Error(t, e.SelectTab(Tab("bogus")))
	assert.Equal(t, TabAddress, e.ActiveTab())
	assert.NotEmpty(t, e.ActiveTab().Fields())
	assert.Empty(t, rec.All())
}

func TestEditor_SubmitProfile(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		phone     string
		wantField string
	}{
		{"valid contact", "jane@example.com", "+1234567890", ""},
		{"empty contact is allowed", "", "", ""},
		{"invalid email", "invalid-email", "+1234567890", validate.FieldEmail},
		{"invalid phone", "jane@example.com", "abc", validate.FieldPhone},
		{"email reported before phone", "invalid-email", "abc", validate.FieldEmail},
	}

	for _, tab := range []Tab{TabPersonal, TabAddress} {
		for _, tt := range tests {
			t.Run(string(tab)+"/"+tt.name, func(t *testing.T) {
				e, rec := newTestEditor(t, models.ProfileRecord{}, nil)
				require.NoError(t, e.SetField(FieldEmail, tt.email))
				require.NoError(t, e.SetField(FieldPhone, tt.phone))
				e.SelectTab(tab)

				err := e.Submit()

				if tt.wantField == "" {
					assert.NoError(t, err)
					assert.Equal(t, 1, rec.Count(notify.KindSuccess))
					assert.Equal(t, 0, rec.Count(notify.KindError))
					return
				}
				var verr *validate.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, tt.wantField, verr.Field)
				assert.Equal(t, 1, rec.Count(notify.KindError), "exactly one error per submission")
				assert.Equal(t, 0, rec.Count(notify.KindSuccess))
			})
		}
	}
}

func TestEditor_InvalidEmailScenario(t *testing.T) {
	e, rec := newTestEditor(t, models.ProfileRecord{FirstName: "", Email: "", Phone: ""}, nil)
	require.NoError(t, e.SetField(FieldEmail, "invalid-email"))

	assert.Error(t, e.Submit())

	all := rec.All()
	require.Len(t, all, 1)
	assert.Equal(t, notify.KindError, all[0].Kind)
}

func TestEditor_EmptyRequiredFieldsDoNotBlockSubmit(t *testing.T) {
	// Required markers are advisory. If this starts failing, the product has
	// decided to enforce them and the flow changed on purpose.
	e, rec := newTestEditor(t, models.ProfileRecord{}, nil)

	assert.ElementsMatch(t,
		[]string{FieldFirstName, FieldLastName, FieldEmail, FieldPhone},
		e.MissingRequired(TabPersonal))
	assert.ElementsMatch(t,
		[]string{FieldAddressLine1, FieldCity, FieldState, FieldZipCode},
		e.MissingRequired(TabAddress))

	assert.NoError(t, e.Submit())
	e.SelectTab(TabAddress)
	assert.NoError(t, e.Submit())
	assert.Equal(t, 2, rec.Count(notify.KindSuccess))
}

func TestEditor_PasswordMismatchKeepsFields(t *testing.T) {
	e, rec := newTestEditor(t, models.ProfileRecord{}, nil)
	e.SelectTab(TabSettings)
	require.NoError(t, e.SetField(FieldCurrentPassword, "oldPassword123"))
	require.NoError(t, e.SetField(FieldNewPassword, "newPassword456"))
	require.NoError(t, e.SetField(FieldConfirmPassword, "differentPassword789"))

	err := e.Submit()

	var verr *validate.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, validate.FieldPassword, verr.Field)
	assert.Equal(t, 1, rec.Count(notify.KindError))
	assert.Equal(t, "oldPassword123", e.Field(FieldCurrentPassword))
	assert.Equal(t, "newPassword456", e.Field(FieldNewPassword))
	assert.Equal(t, "differentPassword789", e.Field(FieldConfirmPassword))
}

func TestEditor_PasswordChangeClearsCredentials(t *testing.T) {
	e, rec := newTestEditor(t, models.ProfileRecord{FirstName: "Jane"}, nil)
	e.SelectTab(TabSettings)
	require.NoError(t, e.SetField(FieldCurrentPassword, "oldPassword123"))
	require.NoError(t, e.SetField(FieldNewPassword, "newPassword456"))
	require.NoError(t, e.SetField(FieldConfirmPassword, "newPassword456"))

	require.NoError(t, e.Submit())

	last, _ := rec.Last()
	assert.Equal(t, notify.KindSuccess, last.Kind)
	assert.Empty(t, e.Field(FieldCurrentPassword))
	assert.Empty(t, e.Field(FieldNewPassword))
	assert.Empty(t, e.Field(FieldConfirmPassword))
	assert.Equal(t, "Jane", e.Field(FieldFirstName))
}

func TestEditor_SettingsSubmitIgnoresContactFields(t *testing.T) {
	e, rec := newTestEditor(t, models.ProfileRecord{Email: "invalid-email"}, nil)
	e.SelectTab(TabSettings)

	assert.NoError(t, e.Submit())
	assert.Equal(t, 0, rec.Count(notify.KindError))
}

func TestEditor_SelectPictureRejectsPDF(t *testing.T) {
	e, rec := newTestEditor(t, models.ProfileRecord{ProfilePictureURL: "https://example/old.png"}, nil)

	_, err := e.SelectPicture(upload.File{Name: "cv.pdf", Type: "application/pdf", Size: 100})

	assert.ErrorIs(t, err, upload.ErrInvalidFileType)
	assert.Equal(t, "https://example/old.png", e.Field(FieldPictureURL))
	last, _ := rec.Last()
	assert.Equal(t, notify.Error("Please select an image file"), last)
}

func TestEditor_SelectPictureRejectsLargeFile(t *testing.T) {
	e, rec := newTestEditor(t, models.ProfileRecord{}, nil)

	_, err := e.SelectPicture(upload.File{Name: "big.png", Type: "image/png", Size: 6 * 1024 * 1024})

	assert.ErrorIs(t, err, upload.ErrFileTooLarge)
	last, _ := rec.Last()
	assert.Equal(t, "Image size should be less than 5.0 MiB", last.Message)
}

func TestEditor_SelectPictureSmallLimitMessage(t *testing.T) {
	rec := &notify.Recorder{}
	e := NewEditor(Options{
		Notifier: rec,
		Pictures: upload.New(upload.Unavailable(nil), upload.Options{Notifier: rec, MaxBytes: 500 * 1024}),
	})

	_, err := e.SelectPicture(upload.File{Name: "big.png", Type: "image/png", Size: 600 * 1024})

	assert.ErrorIs(t, err, upload.ErrFileTooLarge)
	last, _ := rec.Last()
	assert.Equal(t, "Image size should be less than 500 KiB", last.Message)
}

func TestEditor_PicturePreviewThenSecureURL(t *testing.T) {
	e, rec := newTestEditor(t, models.ProfileRecord{}, nil)
	f := pngFile(t)

	task, err := e.SelectPicture(f)
	require.NoError(t, err)
	assert.Equal(t, f.DataURL(), e.Field(FieldPictureURL), "preview written synchronously")

	outcome := e.ResolvePicture(task.ID, upload.Result{SecureURL: "https://example/x.png"}, nil)

	assert.Equal(t, upload.OutcomeApplied, outcome)
	assert.Equal(t, "https://example/x.png", e.Field(FieldPictureURL))
	assert.Equal(t, 1, rec.Count(notify.KindSuccess))
}

func TestEditor_DispatchPicture(t *testing.T) {
	up := upload.UploaderFunc(func(ctx context.Context, f upload.File, folder string) (upload.Result, error) {
		return upload.Result{SecureURL: "https://example/x.png"}, nil
	})
	e, _ := newTestEditor(t, models.ProfileRecord{}, up)

	require.NoError(t, e.DispatchPicture(context.Background(), pngFile(t)))
	e.Pictures().Wait()

	assert.Equal(t, "https://example/x.png", e.Field(FieldPictureURL))
}

func TestEditor_RemovePictureBeatsLateUpload(t *testing.T) {
	e, _ := newTestEditor(t, models.ProfileRecord{}, nil)

	task, err := e.SelectPicture(pngFile(t))
	require.NoError(t, err)
	e.RemovePicture()

	outcome := e.ResolvePicture(task.ID, upload.Result{SecureURL: "https://example/x.png"}, nil)

	assert.Equal(t, upload.OutcomeStale, outcome)
	assert.Empty(t, e.Field(FieldPictureURL))
}

func TestEditor_AccountActions(t *testing.T) {
	mock := account.NewMock(nil)
	rec := &notify.Recorder{}
	e := NewEditor(Options{Seed: models.ProfileRecord{Username: "jdoe"}, Notifier: rec, Account: mock})

	require.NoError(t, e.Logout(context.Background()))
	require.NoError(t, e.DeleteAccount(context.Background()))

	assert.Equal(t, []string{"logout:jdoe", "delete:jdoe"}, mock.Calls())
	assert.Equal(t, 1, rec.Count(notify.KindInfo))
	assert.Equal(t, 1, rec.Count(notify.KindWarning))
}

func TestEditor_AccountActionFailure(t *testing.T) {
	rec := &notify.Recorder{}
	e := NewEditor(Options{Notifier: rec})

	err := e.Logout(context.Background())

	assert.ErrorIs(t, err, account.ErrNoUser)
	assert.Equal(t, 1, rec.Count(notify.KindError))
}
