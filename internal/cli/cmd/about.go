package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/chatshell/internal/cli/styles"
)

var aboutShort bool

var aboutCmd = &cobra.Command{
	Use:     "about",
	Aliases: []string{"version"},
	Short:   "Show version and build information",
	Long:    `Display version, build info, the configured page, repository URL, and contributors.`,
	RunE:    runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
	aboutCmd.Flags().BoolVar(&aboutShort, "short", false, "print a single version line")
}

func runAbout(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if aboutShort {
		fmt.Fprintln(out, app.BuildInfo.Short())
		return nil
	}

	renderer := styles.NewAboutRenderer(app.Theme)
	fmt.Fprintln(out, renderer.Render(app.BuildInfo, app.Config.Shell.URL))
	return nil
}
