// Package cmd provides Cobra CLI commands for chatshell.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/chatshell/internal/cli"
	"github.com/bnema/chatshell/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "chatshell",
		Short: "A touch-friendly desktop shell for a hosted chat page",
		Long: `ChatShell wraps a hosted chat web app in a GTK4 and WebKitGTK window.

It adds what a bare browser tab lacks on touch devices:
  - Horizontal swipes open and close the side panel
  - Back closes the panel first, then quits
  - The window chrome follows the page theme
  - The page follows the system dark/light preference

Use 'chatshell run' to open the window, or the subcommands to inspect the
configuration and the injected scripts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// runCmd is a placeholder for help - actual execution is in main.go
var runCmd = &cobra.Command{
	Use:   "run [url]",
	Short: "Open the chat window",
	Long: `Open the GTK4 window hosting the chat page.

If a URL is provided it replaces shell.url for this run.

Examples:
  chatshell run                              # Open the configured page
  chatshell run https://chat.example.com     # Open another deployment`,
	Run: func(_ *cobra.Command, _ []string) {
		// This is handled by main.go before cobra runs
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
