package models

// Settings represents the application configuration
type Settings struct {
	Upload UploadSettings `yaml:"upload"`
	UI     UISettings     `yaml:"ui"`
	Log    LogSettings    `yaml:"log"`
}

// UploadSettings controls the picture upload pipeline
type UploadSettings struct {
	Folder   string `yaml:"folder"`
	MaxBytes int64  `yaml:"max_bytes"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowPreview  bool   `yaml:"show_preview"`
	PictureDir   string `yaml:"picture_dir"` // starting directory for the file picker
	PreviewWidth int    `yaml:"preview_width"`
}

// LogSettings controls logging
type LogSettings struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty discards logs while the TUI is running
}

const (
	DefaultUploadFolder = "profile_pictures"
	DefaultMaxBytes     = 5 * 1024 * 1024
)

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Upload: UploadSettings{
			Folder:   DefaultUploadFolder,
			MaxBytes: DefaultMaxBytes,
		},
		UI: UISettings{
			ShowPreview:  true,
			PictureDir:   ".",
			PreviewWidth: 24,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// ApplyDefaults fills zero values left by a partial settings file
func (s *Settings) ApplyDefaults() {
	d := DefaultSettings()
	if s.Upload.Folder == "" {
		s.Upload.Folder = d.Upload.Folder
	}
	if s.Upload.MaxBytes <= 0 {
		s.Upload.MaxBytes = d.Upload.MaxBytes
	}
	if s.UI.PictureDir == "" {
		s.UI.PictureDir = d.UI.PictureDir
	}
	if s.UI.PreviewWidth <= 0 {
		s.UI.PreviewWidth = d.UI.PreviewWidth
	}
	if s.Log.Level == "" {
		s.Log.Level = d.Log.Level
	}
}
