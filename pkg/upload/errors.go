package upload

import "errors"

var (
	// ErrInvalidFileType is returned when the selected file is not an image
	ErrInvalidFileType = errors.New("please select an image file")
	// ErrFileTooLarge is returned when the selected file exceeds the size limit
	ErrFileTooLarge = errors.New("image is too large")
	// ErrUploadFailed wraps failures reported by the upload service
	ErrUploadFailed = errors.New("picture upload failed")
	// ErrNotConfigured is returned by the uploader when no credentials are set
	ErrNotConfigured = errors.New("upload service is not configured")
)
