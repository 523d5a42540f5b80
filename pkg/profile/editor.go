// Package profile implements the profile editor: one flat form record shared
// by three tabs, per-tab submit flows, and the picture control.
package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/findmyservice/findmyservice-cli/pkg/account"
	"github.com/findmyservice/findmyservice-cli/pkg/models"
	"github.com/findmyservice/findmyservice-cli/pkg/notify"
	"github.com/findmyservice/findmyservice-cli/pkg/upload"
	"github.com/findmyservice/findmyservice-cli/pkg/validate"
)

const (
	msgProfileUpdated  = "Profile updated successfully!"
	msgPasswordChanged = "Password changed successfully!"
	msgPictureRemoved  = "Profile picture removed"
	msgLoggedOut       = "Logged out successfully"
	msgAccountDeleted  = "Your account has been scheduled for deletion"
)

// Options wires the editor's collaborators
type Options struct {
	Seed     models.ProfileRecord
	Notifier notify.Notifier
	Pictures *upload.Pipeline
	Account  account.Service
	Logger   *zap.Logger
}

// Editor is the composition root of the profile editor
type Editor struct {
	form     *FormState
	tabs     *TabController
	pictures *upload.Pipeline
	notifier notify.Notifier
	account  account.Service
	logger   *zap.Logger
}

// NewEditor creates an editor seeded from opts.Seed, starting on the
// personal tab. Missing collaborators get inert defaults.
func NewEditor(opts Options) *Editor {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.Func(func(notify.Notification) {})
	}
	pictures := opts.Pictures
	if pictures == nil {
		pictures = upload.New(upload.Unavailable(nil), upload.Options{Logger: logger, Notifier: notifier})
	}
	acct := opts.Account
	if acct == nil {
		acct = account.NewMock(logger)
	}

	e := &Editor{
		form:     NewFormState(),
		tabs:     NewTabController(),
		pictures: pictures,
		notifier: notifier,
		account:  acct,
		logger:   logger,
	}
	e.form.Initialize(opts.Seed)
	return e
}

// Form exposes the underlying record
func (e *Editor) Form() *FormState { return e.form }

// Pictures exposes the picture pipeline
func (e *Editor) Pictures() *upload.Pipeline { return e.pictures }

// ActiveTab returns the active tab
func (e *Editor) ActiveTab() Tab { return e.tabs.Active() }

// SelectTab switches tabs without touching any field
func (e *Editor) SelectTab(t Tab) error { return e.tabs.Select(t) }

// NextTab cycles forward through the tabs
func (e *Editor) NextTab() Tab { return e.tabs.Next() }

// PrevTab cycles backward through the tabs
func (e *Editor) PrevTab() Tab { return e.tabs.Prev() }

// SetField updates one field of the record
func (e *Editor) SetField(name, value string) error {
	return e.form.SetField(name, value)
}

// Field reads one field of the record
func (e *Editor) Field(name string) string {
	return e.form.Field(name)
}

// Submit runs the active tab's submit flow. Validation failures are
// reported through the notifier and returned as *validate.ValidationError.
func (e *Editor) Submit() error {
	switch e.tabs.Active() {
	case TabSettings:
		return e.SubmitPassword()
	default:
		return e.SubmitProfile()
	}
}

// SubmitProfile is the personal/address flow: a non-empty email must be
// valid, then a non-empty phone must be valid. Empty required fields do not
// block submission.
func (e *Editor) SubmitProfile() error {
	if err := validate.Contact(e.form.Field(FieldEmail), e.form.Field(FieldPhone)); err != nil {
		e.fail(err)
		return err
	}
	e.logger.Info("profile submitted",
		zap.String("tab", string(e.tabs.Active())),
		zap.Strings("missing_required", e.MissingRequired(e.tabs.Active())))
	e.notifier.Notify(notify.Success(msgProfileUpdated))
	return nil
}

// SubmitPassword is the settings flow. On mismatch nothing is cleared; on
// success the credential fields are emptied.
func (e *Editor) SubmitPassword() error {
	if err := validate.PasswordsMatch(e.form.Field(FieldNewPassword), e.form.Field(FieldConfirmPassword)); err != nil {
		e.fail(err)
		return err
	}
	e.logger.Info("password changed", zap.String("username", e.form.Field(FieldUsername)))
	e.notifier.Notify(notify.Success(msgPasswordChanged))
	e.form.ClearCredentialFields()
	return nil
}

// MissingRequired lists the tab's required-marked fields that are blank.
// The list is advisory only.
func (e *Editor) MissingRequired(t Tab) []string {
	var missing []string
	for _, f := range t.Fields() {
		if IsRequired(f) && validate.Blank(e.form.Field(f)) {
			missing = append(missing, f)
		}
	}
	return missing
}

// SelectPicture validates f and writes its preview into the picture slot.
// The returned task must be uploaded and resolved by the caller; use
// DispatchPicture to have it done in the background.
func (e *Editor) SelectPicture(f upload.File) (*upload.Task, error) {
	task, err := e.pictures.Select(e.form, f)
	if err != nil {
		e.pictureFailed(err)
		return nil, err
	}
	return task, nil
}

// ResolvePicture applies an upload outcome to the picture slot
func (e *Editor) ResolvePicture(id string, res upload.Result, err error) upload.Outcome {
	return e.pictures.Resolve(e.form, id, res, err)
}

// DispatchPicture selects f and uploads it in the background
func (e *Editor) DispatchPicture(ctx context.Context, f upload.File) error {
	if _, err := e.pictures.Dispatch(ctx, e.form, f); err != nil {
		e.pictureFailed(err)
		return err
	}
	return nil
}

// RemovePicture clears the picture slot and invalidates a pending upload
func (e *Editor) RemovePicture() {
	e.pictures.Remove(e.form)
	e.notifier.Notify(notify.Info(msgPictureRemoved))
}

// Logout signs the user out through the account service
func (e *Editor) Logout(ctx context.Context) error {
	if err := e.account.Logout(ctx, e.form.Field(FieldUsername)); err != nil {
		e.notifier.Notify(notify.Error(fmt.Sprintf("Logout failed: %v", err)))
		return fmt.Errorf("logout: %w", err)
	}
	e.notifier.Notify(notify.Info(msgLoggedOut))
	return nil
}

// DeleteAccount requests account deletion through the account service
func (e *Editor) DeleteAccount(ctx context.Context) error {
	if err := e.account.DeleteAccount(ctx, e.form.Field(FieldUsername)); err != nil {
		e.notifier.Notify(notify.Error(fmt.Sprintf("Account deletion failed: %v", err)))
		return fmt.Errorf("delete account: %w", err)
	}
	e.notifier.Notify(notify.Warning(msgAccountDeleted))
	return nil
}

func (e *Editor) fail(err error) {
	var verr *validate.ValidationError
	msg := err.Error()
	if errors.As(err, &verr) {
		msg = verr.Message
	}
	e.logger.Debug("submit rejected", zap.Error(err))
	e.notifier.Notify(notify.Error(msg))
}

func (e *Editor) pictureFailed(err error) {
	msg := err.Error()
	switch {
	case errors.Is(err, upload.ErrInvalidFileType):
		msg = "Please select an image file"
	case errors.Is(err, upload.ErrFileTooLarge):
		msg = fmt.Sprintf("Image size should be less than %s", humanize.IBytes(uint64(e.pictures.MaxBytes())))
	}
	e.notifier.Notify(notify.Error(msg))
}
