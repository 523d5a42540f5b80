package cli

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/findmyservice/findmyservice-cli/pkg/files"
	"github.com/findmyservice/findmyservice-cli/pkg/models"
	"github.com/findmyservice/findmyservice-cli/pkg/notify"
	"github.com/findmyservice/findmyservice-cli/pkg/upload"
)

// CommandContext manages project validation and common command context
type CommandContext struct {
	ProfilePath  string
	SettingsPath string
	Settings     *models.Settings
	validated    bool
}

// NewCommandContext creates a command context; empty paths use the project
// defaults under .findmyservice
func NewCommandContext(profilePath, settingsPath string) *CommandContext {
	if profilePath == "" {
		profilePath = files.ProfilePath()
	}
	if settingsPath == "" {
		settingsPath = files.SettingsPath()
	}
	return &CommandContext{
		ProfilePath:  profilePath,
		SettingsPath: settingsPath,
	}
}

// ValidateProject ensures a profile seed exists
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if _, err := os.Stat(c.ProfilePath); os.IsNotExist(err) {
		return fmt.Errorf("no profile found at %s. Run 'findmyservice init' first", c.ProfilePath)
	}

	c.validated = true
	return nil
}

// LoadSettingsWithDefault loads settings or returns defaults if they cannot
// be read
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettingsOrDefault(c.SettingsPath)
	if err != nil {
		PrintWarning("Using default settings: %v", err)
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}

// LoadProfile reads the profile seed
func (c *CommandContext) LoadProfile() (*models.ProfileRecord, error) {
	if err := c.ValidateProject(); err != nil {
		return nil, err
	}
	return files.LoadProfile(c.ProfilePath)
}

// NewLogger builds the logger described by the settings
func (c *CommandContext) NewLogger(interactive bool) (*zap.Logger, error) {
	return NewLogger(c.LoadSettingsWithDefault().Log, interactive)
}

// NewUploader returns a Cloudinary uploader when credentials are available,
// otherwise an uploader that always fails so previews keep working offline.
func (c *CommandContext) NewUploader(logger *zap.Logger) upload.Uploader {
	cfg, err := upload.CloudinaryConfigFromEnv(files.EnvFile, files.EnvPath())
	if err != nil {
		logger.Warn("ignoring unreadable credentials file", zap.Error(err))
	}
	if !cfg.Configured() {
		logger.Info("cloudinary credentials not set, uploads disabled")
		return upload.Unavailable(upload.ErrNotConfigured)
	}

	uploader, err := upload.NewCloudinaryUploader(cfg, logger)
	if err != nil {
		logger.Warn("cloudinary unavailable, uploads disabled", zap.Error(err))
		return upload.Unavailable(err)
	}
	return uploader
}

// NewPipeline wires the picture pipeline from settings
func (c *CommandContext) NewPipeline(logger *zap.Logger, notifier notify.Notifier) *upload.Pipeline {
	settings := c.LoadSettingsWithDefault()
	return upload.New(c.NewUploader(logger), upload.Options{
		Folder:   settings.Upload.Folder,
		MaxBytes: settings.Upload.MaxBytes,
		Logger:   logger,
		Notifier: notifier,
	})
}
