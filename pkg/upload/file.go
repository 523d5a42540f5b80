package upload

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// File is a picture chosen by the user
type File struct {
	Name string
	Type string // MIME type, e.g. "image/png"
	Size int64
	Data []byte
}

// OpenFile reads a file from disk and sniffs its MIME type from content
func OpenFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read picture %s: %w", path, err)
	}
	return NewFile(filepath.Base(path), data), nil
}

// NewFile wraps in-memory bytes, detecting the MIME type
func NewFile(name string, data []byte) File {
	mtype := mimetype.Detect(data).String()
	// Drop parameters such as "; charset=utf-8"
	if i := strings.Index(mtype, ";"); i >= 0 {
		mtype = strings.TrimSpace(mtype[:i])
	}
	return File{
		Name: name,
		Type: mtype,
		Size: int64(len(data)),
		Data: data,
	}
}

// IsImage reports whether the MIME type is an image type
func (f File) IsImage() bool {
	return strings.HasPrefix(f.Type, "image/")
}

// DataURL encodes the file as a data URL used for the local preview
func (f File) DataURL() string {
	return "data:" + f.Type + ";base64," + base64.StdEncoding.EncodeToString(f.Data)
}

// IsDataURL reports whether a picture slot value is still a local preview
func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// DecodeDataURL returns the bytes behind a base64 data URL
func DecodeDataURL(s string) ([]byte, error) {
	if !IsDataURL(s) {
		return nil, fmt.Errorf("not a data URL")
	}
	i := strings.Index(s, ";base64,")
	if i < 0 {
		return nil, fmt.Errorf("data URL is not base64 encoded")
	}
	return base64.StdEncoding.DecodeString(s[i+len(";base64,"):])
}
