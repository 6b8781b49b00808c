package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/chatshell/internal/application/usecase"
	"github.com/bnema/chatshell/internal/cli/styles"
	"github.com/bnema/chatshell/internal/infrastructure/config"
)

var configYes bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Print, validate and migrate the chatshell configuration file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.ConfigFile())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after defaults and CHATSHELL_* environment overrides are applied.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		renderer := styles.NewConfigRenderer(app.Theme)
		if app.LoadErr != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(app.LoadErr))
		}

		data, err := config.Render(app.Config)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderTOML(data))
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.SchemaJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show config file status and migration availability",
	Long:  `Display the config file path, whether it loads, and which settings a migration would add or remove.`,
	RunE:  runConfigStatus,
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Add missing default settings to config file",
	Long: `Compares your config file with the current defaults, adds missing keys
and drops keys chatshell no longer reads.

Existing values are kept as they are.`,
	RunE: runConfigMigrate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configSchemaCmd, configStatusCmd, configMigrateCmd)
	configMigrateCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")
}

func runConfigStatus(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	renderer := styles.NewConfigRenderer(app.Theme)

	configFile := app.ConfigFile()
	_, statErr := os.Stat(configFile)
	fmt.Fprintln(out, renderer.RenderPath(configFile, statErr == nil))
	if app.LoadErr != nil {
		fmt.Fprintln(out, renderer.RenderError(app.LoadErr))
	}

	uc := usecase.NewMigrateConfigUseCase(config.NewMigrator(configFile))
	result, err := uc.Check(app.Ctx())
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}

	if !result.NeedsMigration {
		fmt.Fprint(out, renderer.RenderUpToDate())
		return nil
	}
	fmt.Fprint(out, renderer.RenderMigrationStatus(result.MissingKeys, result.UnknownKeys))
	return nil
}

func runConfigMigrate(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	renderer := styles.NewConfigRenderer(app.Theme)
	uc := usecase.NewMigrateConfigUseCase(config.NewMigrator(app.ConfigFile()))

	ctx := app.Ctx()
	result, err := uc.Check(ctx)
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}
	if !result.NeedsMigration {
		fmt.Fprint(out, renderer.RenderUpToDate())
		return nil
	}

	fmt.Fprint(out, renderer.RenderMigrationStatus(result.MissingKeys, result.UnknownKeys))

	if configYes {
		return executeMigration(ctx, out, uc, renderer)
	}
	return runMigrateWithConfirmation(ctx, uc, renderer, app.Theme)
}

func executeMigration(ctx context.Context, out io.Writer, uc *usecase.MigrateConfigUseCase, renderer *styles.ConfigRenderer) error {
	result, err := uc.Execute(ctx)
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}
	fmt.Fprint(out, renderer.RenderMigrated(result.ConfigFile, result.AppliedKeys))
	return nil
}

type migrateState int

const (
	migrateStateConfirm migrateState = iota
	migrateStateRunning
	migrateStateDone
)

// migrateModel asks for confirmation, then runs the migration behind a spinner.
type migrateModel struct {
	ctx      context.Context
	spinner  spinner.Model
	renderer *styles.ConfigRenderer
	confirm  styles.ConfirmModel
	state    migrateState
	uc       *usecase.MigrateConfigUseCase

	result   string
	err      error
	quitting bool
}

type migrateResultMsg struct {
	output *usecase.MigrateConfigOutput
	err    error
}

func newMigrateModel(ctx context.Context, uc *usecase.MigrateConfigUseCase, renderer *styles.ConfigRenderer, theme *styles.Theme) migrateModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return migrateModel{
		ctx:      ctx,
		spinner:  s,
		renderer: renderer,
		confirm:  styles.NewConfirm(theme, "Update the config file?"),
		state:    migrateStateConfirm,
		uc:       uc,
	}
}

func (m migrateModel) Init() tea.Cmd {
	return nil
}

func (m migrateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case migrateResultMsg:
		m.state = migrateStateDone
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.result = m.renderer.RenderMigrated(msg.output.ConfigFile, msg.output.AppliedKeys)
		return m, tea.Quit
	}

	if m.state != migrateStateConfirm {
		return m, nil
	}

	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if !m.confirm.Done() {
		return m, cmd
	}
	if !m.confirm.Result() {
		m.quitting = true
		return m, tea.Quit
	}
	m.state = migrateStateRunning
	return m, tea.Batch(m.spinner.Tick, m.runMigration())
}

func (m migrateModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.err != nil:
		return m.renderer.RenderError(m.err) + "\n"
	case m.state == migrateStateDone:
		return m.result
	case m.state == migrateStateRunning:
		return m.spinner.View() + " Migrating...\n"
	}
	return m.confirm.View() + "\n"
}

func (m migrateModel) runMigration() tea.Cmd {
	return func() tea.Msg {
		result, err := m.uc.Execute(m.ctx)
		return migrateResultMsg{output: result, err: err}
	}
}

func runMigrateWithConfirmation(
	ctx context.Context,
	uc *usecase.MigrateConfigUseCase,
	renderer *styles.ConfigRenderer,
	theme *styles.Theme,
) error {
	final, err := tea.NewProgram(newMigrateModel(ctx, uc, renderer, theme)).Run()
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if m, ok := final.(migrateModel); ok && m.err != nil {
		return errors.New("config migration did not complete")
	}
	return nil
}
