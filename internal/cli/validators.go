package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ValidateFilePath checks that path names an existing regular file
func ValidateFilePath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("path does not exist: %s", abs)
	case err != nil:
		return fmt.Errorf("error accessing path: %w", err)
	case info.IsDir():
		return fmt.Errorf("path is a directory, expected file: %s", abs)
	}
	return nil
}

// ParseOutputFormat validates the -o flag; empty means text
func ParseOutputFormat(format string) (OutputFormat, error) {
	switch f := OutputFormat(format); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}
