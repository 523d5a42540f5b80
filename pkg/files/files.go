package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/findmyservice/findmyservice-cli/pkg/models"
	"gopkg.in/yaml.v3"
)

const (
	ProjectDir   = ".findmyservice"
	ProfileFile  = "profile.yaml"
	SettingsFile = "settings.yaml"
	EnvFile      = ".env"
)

// ProfilePath returns the default profile seed location
func ProfilePath() string {
	return filepath.Join(ProjectDir, ProfileFile)
}

// SettingsPath returns the default settings location
func SettingsPath() string {
	return filepath.Join(ProjectDir, SettingsFile)
}

// EnvPath returns the optional credentials file inside the project directory
func EnvPath() string {
	return filepath.Join(ProjectDir, EnvFile)
}

// InitProjectStructure creates the project directory with a sample profile
// and default settings. Existing files are left alone.
func InitProjectStructure() error {
	if err := os.MkdirAll(ProjectDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ProjectDir, err)
	}

	if _, err := os.Stat(ProfilePath()); os.IsNotExist(err) {
		if err := WriteProfile(ProfilePath(), models.SampleProfile()); err != nil {
			return err
		}
	}

	if _, err := os.Stat(SettingsPath()); os.IsNotExist(err) {
		if err := WriteSettings(SettingsPath(), models.DefaultSettings()); err != nil {
			return err
		}
	}

	return nil
}

// LoadProfile reads the profile the editor is seeded from
func LoadProfile(path string) (*models.ProfileRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	var profile models.ProfileRecord
	if err := yaml.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML %s: %w", path, err)
	}

	return &profile, nil
}

// WriteProfile stores the profile record. init writes the sample profile
// and picture --save writes back the uploaded picture URL.
func WriteProfile(path string, profile *models.ProfileRecord) error {
	return writeYAML(path, profile, "profile")
}

// ReadSettings loads settings, filling any value the file leaves out
func ReadSettings(path string) (*models.Settings, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML %s: %w", path, err)
	}
	settings.ApplyDefaults()

	return settings, nil
}

// ReadSettingsOrDefault falls back to defaults when the file is missing
func ReadSettingsOrDefault(path string) (*models.Settings, error) {
	settings, err := ReadSettings(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.DefaultSettings(), nil
		}
		return nil, err
	}
	return settings, nil
}

// WriteSettings saves settings as YAML
func WriteSettings(path string, settings *models.Settings) error {
	return writeYAML(path, settings, "settings")
}

func writeYAML(path string, v interface{}, what string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", what, err)
	}

	content, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s to YAML: %w", what, err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s %s: %w", what, path, err)
	}

	return nil
}
