package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/findmyservice/findmyservice-cli/cmd/commands"
	"github.com/findmyservice/findmyservice-cli/internal/cli"
	"github.com/findmyservice/findmyservice-cli/pkg/account"
	"github.com/findmyservice/findmyservice-cli/pkg/files"
	"github.com/findmyservice/findmyservice-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	profilePath  string
	settingsPath string
	quiet        bool
	noColor      bool
	assumeYes    bool
)

var rootCmd = &cobra.Command{
	Use:   "findmyservice",
	Short: "Edit your FindMyService profile from the terminal",
	Long: `FindMyService lets you edit your profile from the terminal: personal info,
address, password, profile picture and account actions.

The profile is read from .findmyservice/profile.yaml. Run 'findmyservice init'
to create one.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quiet, noColor, assumeYes)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cc := cli.NewCommandContext(profilePath, settingsPath)
		if err := cc.ValidateProject(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		record, err := cc.LoadProfile()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to load profile: %v\n", err)
			os.Exit(1)
		}

		settings := cc.LoadSettingsWithDefault()
		logger, err := cc.NewLogger(true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()

		// Launch TUI
		app := tui.NewApp(tui.AppConfig{
			Seed:     *record,
			Settings: settings,
			Deps: tui.EditorDeps{
				Uploader: cc.NewUploader(logger),
				Account:  account.NewMock(logger),
				Logger:   logger,
			},
		})
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			logger.Error("tui exited", zap.Error(err))
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a FindMyService project",
	Long:  `Creates the .findmyservice folder with a sample profile and default settings`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing FindMyService in %s...\n", cwd)

		if err := files.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		fmt.Printf("✓ Created %s\n", files.ProfilePath())
		fmt.Printf("✓ Created %s\n", files.SettingsPath())
		fmt.Println("\nPut Cloudinary credentials in .findmyservice/.env to enable picture uploads.")
		fmt.Println("Run 'findmyservice' to start the profile editor.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of FindMyService",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("FindMyService version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "Profile file (default .findmyservice/profile.yaml)")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Settings file (default .findmyservice/settings.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable symbols in output")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Answer yes to confirmation prompts")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewPictureCommand())
	rootCmd.AddCommand(commands.NewLogoutCommand())
	rootCmd.AddCommand(commands.NewDeleteAccountCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
