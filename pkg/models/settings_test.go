package models

import "testing"

func TestApplyDefaults(t *testing.T) {
	s := &Settings{Upload: UploadSettings{Folder: "avatars"}}
	s.ApplyDefaults()

	if s.Upload.Folder != "avatars" {
		t.Errorf("Folder = %q, want avatars (explicit value kept)", s.Upload.Folder)
	}
	if s.Upload.MaxBytes != DefaultMaxBytes {
		t.Errorf("MaxBytes = %d, want %d", s.Upload.MaxBytes, DefaultMaxBytes)
	}
	if s.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", s.Log.Level)
	}
	if s.UI.PreviewWidth != 24 {
		t.Errorf("UI.PreviewWidth = %d, want 24", s.UI.PreviewWidth)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name    string
		profile ProfileRecord
		want    string
	}{
		{"full name", ProfileRecord{FirstName: "Jane", LastName: "Doe", Username: "jdoe"}, "Jane Doe"},
		{"first only", ProfileRecord{FirstName: "Jane", Username: "jdoe"}, "Jane"},
		{"last only", ProfileRecord{LastName: "Doe"}, "Doe"},
		{"username fallback", ProfileRecord{Username: "jdoe"}, "jdoe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
