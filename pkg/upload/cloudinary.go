package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Environment variables read by CloudinaryConfigFromEnv
const (
	EnvCloudinaryURL       = "CLOUDINARY_URL"
	EnvCloudinaryCloudName = "CLOUDINARY_CLOUD_NAME"
	EnvCloudinaryAPIKey    = "CLOUDINARY_API_KEY"
	EnvCloudinaryAPISecret = "CLOUDINARY_API_SECRET"
)

// CloudinaryConfig holds Cloudinary credentials. Either URL or the three
// separate parameters must be set.
type CloudinaryConfig struct {
	URL       string
	CloudName string
	APIKey    string
	APISecret string
}

// Configured reports whether enough credentials are present
func (c CloudinaryConfig) Configured() bool {
	return c.URL != "" || (c.CloudName != "" && c.APIKey != "" && c.APISecret != "")
}

// CloudinaryConfigFromEnv reads credentials from the environment, loading
// envFiles first when given. Missing .env files are ignored; a file that
// exists but cannot be parsed is reported, and the config still holds
// whatever the environment provides.
func CloudinaryConfigFromEnv(envFiles ...string) (CloudinaryConfig, error) {
	var errs []error
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			errs = append(errs, fmt.Errorf("failed to load %s: %w", f, err))
		}
	}
	return CloudinaryConfig{
		URL:       os.Getenv(EnvCloudinaryURL),
		CloudName: os.Getenv(EnvCloudinaryCloudName),
		APIKey:    os.Getenv(EnvCloudinaryAPIKey),
		APISecret: os.Getenv(EnvCloudinaryAPISecret),
	}, errors.Join(errs...)
}

// CloudinaryUploader stores pictures on Cloudinary
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	logger *zap.Logger
}

// NewCloudinaryUploader creates an uploader from credentials. Separate
// parameters take precedence over the URL form.
func NewCloudinaryUploader(cfg CloudinaryConfig, logger *zap.Logger) (*CloudinaryUploader, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}

	var (
		cld *cloudinary.Cloudinary
		err error
	)
	if cfg.CloudName != "" && cfg.APIKey != "" && cfg.APISecret != "" {
		cld, err = cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	} else {
		cld, err = cloudinary.NewFromURL(cfg.URL)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &CloudinaryUploader{cld: cld, logger: logger}, nil
}

// Upload sends the picture bytes under folder
func (u *CloudinaryUploader) Upload(ctx context.Context, f File, folder string) (Result, error) {
	publicID := publicIDFor(f.Name, time.Now())

	u.logger.Debug("uploading to cloudinary",
		zap.String("folder", folder),
		zap.String("public_id", publicID),
		zap.Int64("size", f.Size))

	resp, err := u.cld.Upload.Upload(ctx, bytes.NewReader(f.Data), uploader.UploadParams{
		PublicID:     publicID,
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if resp == nil {
		return Result{}, fmt.Errorf("cloudinary response is nil")
	}
	if resp.Error.Message != "" {
		return Result{}, fmt.Errorf("cloudinary rejected upload: %s", resp.Error.Message)
	}

	return Result{SecureURL: resp.SecureURL, PublicID: resp.PublicID}, nil
}

// publicIDFor derives a stable-looking public id from the file name
func publicIDFor(name string, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	base = strings.ReplaceAll(strings.TrimSpace(base), " ", "_")
	if base == "" || base == "." {
		base = "picture"
	}
	return fmt.Sprintf("profile_%d_%s", now.UnixNano(), base)
}

// Unavailable returns an uploader that always fails with reason. It stands in
// when no upload service is configured so the local preview still works.
func Unavailable(reason error) Uploader {
	if reason == nil {
		reason = ErrNotConfigured
	}
	return UploaderFunc(func(context.Context, File, string) (Result, error) {
		return Result{}, reason
	})
}
