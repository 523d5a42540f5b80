package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/findmyservice/findmyservice-cli/internal/cli"
	"github.com/findmyservice/findmyservice-cli/pkg/account"
	"github.com/findmyservice/findmyservice-cli/pkg/notify"
	"github.com/findmyservice/findmyservice-cli/pkg/profile"
)

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out of FindMyService",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return commandContext(cmd).ValidateProject()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccountAction(cmd, func(ctx context.Context, e *profile.Editor) error {
				return e.Logout(ctx)
			})
		},
	}
}

// NewDeleteAccountCommand creates the delete-account command
func NewDeleteAccountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-account",
		Short: "Schedule the account for deletion",
		Long: `Schedule the signed-in account for deletion. This cannot be undone.

Use --yes to skip the confirmation prompt.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return commandContext(cmd).ValidateProject()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := cli.ConfirmFrom(cmd.InOrStdin(), cmd.OutOrStdout(),
				"Permanently delete your account?", false)
			if err != nil {
				return err
			}
			if !ok {
				cli.PrintInfo("Account deletion cancelled")
				return nil
			}
			return runAccountAction(cmd, func(ctx context.Context, e *profile.Editor) error {
				return e.DeleteAccount(ctx)
			})
		},
	}
}

func runAccountAction(cmd *cobra.Command, action func(context.Context, *profile.Editor) error) error {
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

	editor := profile.NewEditor(profile.Options{
		Seed:     *record,
		Notifier: notify.Logging{Logger: logger, Next: cli.PrintNotifier{}},
		Account:  account.NewMock(logger),
		Logger:   logger,
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := action(ctx, editor); err != nil {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return err
	}
	return nil
}
