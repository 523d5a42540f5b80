package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/findmyservice/findmyservice-cli/internal/cli"
	"github.com/findmyservice/findmyservice-cli/pkg/files"
	"github.com/findmyservice/findmyservice-cli/pkg/notify"
	"github.com/findmyservice/findmyservice-cli/pkg/profile"
	"github.com/findmyservice/findmyservice-cli/pkg/upload"
)

var (
	pictureSave    bool
	picturePreview bool
	pictureTimeout time.Duration
)

// PictureResult is the structured output of the picture command
type PictureResult struct {
	File     string `json:"file" yaml:"file"`
	Type     string `json:"type" yaml:"type"`
	Size     int64  `json:"size" yaml:"size"`
	Outcome  string `json:"outcome" yaml:"outcome"`
	URL      string `json:"url,omitempty" yaml:"url,omitempty"`
	Uploaded bool   `json:"uploaded" yaml:"uploaded"`
}

// Text renders the result for text output
func (r PictureResult) Text() string {
	if r.Uploaded {
		return r.URL
	}
	return fmt.Sprintf("%s (%s) kept as local preview", r.File, r.Type)
}

// NewPictureCommand creates the picture command
func NewPictureCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "picture <file>",
		Short: "Upload a profile picture",
		Long: `Validate an image and upload it as the profile picture.

The image must be an image/* type no larger than upload.max_bytes
(5MB by default). Cloudinary credentials are read from CLOUDINARY_URL,
or CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET,
optionally from a .env file. Without them the picture is only validated
and kept as a local preview.

Examples:
  # Upload and print the resulting URL
  findmyservice picture ./me.png

  # Upload and store the URL in the profile
  findmyservice picture ./me.png --save

  # Show the picture in the terminal
  findmyservice picture ./me.png --preview`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateFilePath(args[0]); err != nil {
				return err
			}
			return commandContext(cmd).ValidateProject()
		},
		RunE: runPicture,
	}

	cmd.Flags().BoolVar(&pictureSave, "save", false, "Store the uploaded URL in the profile")
	cmd.Flags().BoolVar(&picturePreview, "preview", false, "Render the picture in the terminal")
	cmd.Flags().DurationVar(&pictureTimeout, "timeout", 30*time.Second, "Upload timeout")
	addOutputFlag(cmd)

	return cmd
}

func runPicture(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	cc := commandContext(cmd)
	logger, err := cc.NewLogger(false)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	record, err := cc.LoadProfile()
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	f, err := upload.OpenFile(args[0])
	if err != nil {
		return err
	}

	notifier := notify.Logging{Logger: logger, Next: cli.PrintNotifier{}}
	editor := profile.NewEditor(profile.Options{
		Seed:     *record,
		Notifier: notifier,
		Pictures: cc.NewPipeline(logger, notifier),
		Logger:   logger,
	})

	task, err := editor.SelectPicture(f)
	if err != nil {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return err
	}

	if picturePreview {
		settings := cc.LoadSettingsWithDefault()
		art, err := upload.RenderPreview(f.Data, settings.UI.PreviewWidth)
		if err != nil {
			cli.PrintWarning("Cannot preview %s: %v", f.Name, err)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), art)
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, pictureTimeout)
	defer cancel()

	res, uploadErr := task.Upload(ctx)
	outcome := editor.ResolvePicture(task.ID, res, uploadErr)

	result := PictureResult{
		File:     f.Name,
		Type:     f.Type,
		Size:     f.Size,
		Outcome:  outcome.String(),
		Uploaded: outcome == upload.OutcomeApplied,
	}
	if result.Uploaded {
		result.URL = editor.Field(profile.FieldPictureURL)
	}

	if uploadErr != nil {
		cli.PrintWarning("Upload failed, keeping the local preview: %v", uploadErr)
	}

	if result.Uploaded && pictureSave {
		updated := editor.Form().Record()
		if err := files.WriteProfile(cc.ProfilePath, &updated); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		cli.PrintInfo("Saved picture URL to %s", cc.ProfilePath)
	}

	return cli.OutputResults(cmd.OutOrStdout(), format, result)
}
