package commands

import (
	"github.com/spf13/cobra"

	"github.com/findmyservice/findmyservice-cli/internal/cli"
)

// commandContext builds the context from the root's --profile/--settings
// flags. Commands run on their own (as in tests) fall back to the defaults.
func commandContext(cmd *cobra.Command) *cli.CommandContext {
	profilePath, _ := cmd.Flags().GetString("profile")
	settingsPath, _ := cmd.Flags().GetString("settings")
	return cli.NewCommandContext(profilePath, settingsPath)
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "text", "Output format (text, json, yaml)")
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	parsed, err := cli.ParseOutputFormat(format)
	if err != nil {
		return "", err
	}
	return string(parsed), nil
}
