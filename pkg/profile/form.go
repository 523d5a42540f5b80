package profile

import (
	"fmt"
	"sync"

	"github.com/findmyservice/findmyservice-cli/pkg/models"
)

// FormState is the single flat record behind every tab of the editor.
// It is safe for concurrent use; uploads may resolve on another goroutine.
type FormState struct {
	mu          sync.RWMutex
	values      map[string]string
	initialized bool
}

// NewFormState returns an empty record with every field present
func NewFormState() *FormState {
	values := make(map[string]string, len(AllFields))
	for _, f := range AllFields {
		values[f] = ""
	}
	return &FormState{values: values}
}

// Initialize copies the seed into the record. Only the first call has an
// effect; it returns whether the seed was applied.
func (fs *FormState) Initialize(seed models.ProfileRecord) bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.initialized {
		return false
	}
	fs.values[FieldUsername] = seed.Username
	fs.values[FieldFirstName] = seed.FirstName
	fs.values[FieldLastName] = seed.LastName
	fs.values[FieldEmail] = seed.Email
	fs.values[FieldPhone] = seed.Phone
	fs.values[FieldAddressLine1] = seed.AddressLine1
	fs.values[FieldAddressLine2] = seed.AddressLine2
	fs.values[FieldCity] = seed.City
	fs.values[FieldState] = seed.State
	fs.values[FieldZipCode] = seed.ZipCode
	fs.values[FieldPictureURL] = seed.ProfilePictureURL
	fs.initialized = true
	return true
}

// Initialized reports whether a seed has been applied
func (fs *FormState) Initialized() bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.initialized
}

// SetField merges one key into the record. No validation happens here.
func (fs *FormState) SetField(name, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if _, ok := fs.values[name]; !ok {
		return fmt.Errorf("unknown form field %q", name)
	}
	fs.values[name] = value
	return nil
}

// Field returns the current value of a field
func (fs *FormState) Field(name string) string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.values[name]
}

// Snapshot returns a copy of every field
func (fs *FormState) Snapshot() map[string]string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	out := make(map[string]string, len(fs.values))
	for k, v := range fs.values {
		out[k] = v
	}
	return out
}

// Record returns the profile part of the form, without credentials
func (fs *FormState) Record() models.ProfileRecord {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return models.ProfileRecord{
		Username:          fs.values[FieldUsername],
		FirstName:         fs.values[FieldFirstName],
		LastName:          fs.values[FieldLastName],
		Email:             fs.values[FieldEmail],
		Phone:             fs.values[FieldPhone],
		AddressLine1:      fs.values[FieldAddressLine1],
		AddressLine2:      fs.values[FieldAddressLine2],
		City:              fs.values[FieldCity],
		State:             fs.values[FieldState],
		ZipCode:           fs.values[FieldZipCode],
		ProfilePictureURL: fs.values[FieldPictureURL],
	}
}

// ClearCredentialFields empties the three password fields
func (fs *FormState) ClearCredentialFields() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for _, f := range credentialFields {
		fs.values[f] = ""
	}
}

// PictureURL implements upload.Slot
func (fs *FormState) PictureURL() string {
	return fs.Field(FieldPictureURL)
}

// SetPictureURL implements upload.Slot
func (fs *FormState) SetPictureURL(url string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.values[FieldPictureURL] = url
}
