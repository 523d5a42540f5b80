package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/findmyservice/findmyservice-cli/internal/cli"
	"github.com/findmyservice/findmyservice-cli/pkg/profile"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display the stored profile",
		Long: `Display the profile the editor is seeded from.

Examples:
  # Show the profile grouped by section
  findmyservice show

  # Output as JSON
  findmyservice show -o json`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return commandContext(cmd).ValidateProject()
		},
		RunE: runShow,
	}

	addOutputFlag(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	record, err := commandContext(cmd).LoadProfile()
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, record)
	}

	// Text output follows the editor's tabs
	form := profile.NewFormState()
	form.Initialize(*record)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Profile: %s (%s)\n", record.DisplayName(), record.Username)

	sections := cli.NewSectionWriter(out)
	for _, tab := range profile.Tabs {
		if tab == profile.TabSettings {
			continue
		}
		sections.Section(tab.Label())
		for _, field := range tab.Fields() {
			sections.Field(profile.Label(field), form.Field(field))
		}
	}

	picture := record.ProfilePictureURL
	if picture == "" {
		picture = "(none)"
	}
	sections.Section("Profile Picture")
	sections.Field("URL", cli.TruncateString(picture, 72))
	sections.Flush()
	return nil
}
