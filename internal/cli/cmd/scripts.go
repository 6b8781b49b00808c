package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/infrastructure/inject"
)

var scriptsCmd = &cobra.Command{
	Use:   "scripts",
	Short: "Print the scripts injected into the page",
	Long: `Print the JavaScript and CSS chatshell injects, rendered from the current
configuration. Useful for trying selectors in a regular browser console.`,
}

var scriptsBootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Print the document-start bootstrap script",
	RunE: scriptPrinter(func(b *inject.Builder, _ []string) (string, error) {
		return b.Bootstrap(), nil
	}),
}

var scriptsStylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "Print the user stylesheet",
	RunE: scriptPrinter(func(b *inject.Builder, _ []string) (string, error) {
		return b.Stylesheet(), nil
	}),
}

var scriptsPanelCmd = &cobra.Command{
	Use:       "panel open|close",
	Short:     "Print the script that opens or closes the side panel",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"open", "close"},
	RunE: scriptPrinter(func(b *inject.Builder, args []string) (string, error) {
		switch args[0] {
		case "open":
			return b.SetPanel(entity.PanelOpen), nil
		case "close":
			return b.SetPanel(entity.PanelClose), nil
		}
		return "", fmt.Errorf("unknown panel action %q, want open or close", args[0])
	}),
}

var scriptsQueryCmd = &cobra.Command{
	Use:   "query [id]",
	Short: "Print the panel state query script",
	Long:  `Print the script that posts the panel state back. A random request id is used when none is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: scriptPrinter(func(b *inject.Builder, args []string) (string, error) {
		id := uuid.NewString()
		if len(args) == 1 {
			id = args[0]
		}
		return b.QueryPanel(id), nil
	}),
}

var scriptsThemeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Print the page theme switch script",
	RunE: scriptPrinter(func(b *inject.Builder, _ []string) (string, error) {
		return b.SwitchTheme(), nil
	}),
}

var scriptsConsoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Print the in-page console loader",
	RunE: scriptPrinter(func(_ *inject.Builder, _ []string) (string, error) {
		return inject.ConsoleLoader(""), nil
	}),
}

func init() {
	rootCmd.AddCommand(scriptsCmd)
	scriptsCmd.AddCommand(
		scriptsBootstrapCmd,
		scriptsStylesCmd,
		scriptsPanelCmd,
		scriptsQueryCmd,
		scriptsThemeCmd,
		scriptsConsoleCmd,
	)
}

func scriptPrinter(render func(*inject.Builder, []string) (string, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		builder, err := inject.NewBuilder(app.Config.InjectOptions())
		if err != nil {
			return fmt.Errorf("build scripts: %w", err)
		}
		script, err := render(builder, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), script)
		return nil
	}
}
