// Package cli holds the state shared by the chatshell subcommands.
package cli

import (
	"context"
	"os"

	"github.com/bnema/chatshell/internal/cli/styles"
	"github.com/bnema/chatshell/internal/domain/build"
	"github.com/bnema/chatshell/internal/infrastructure/config"
	"github.com/bnema/chatshell/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// LoadErr is set when the config file could not be read and defaults
	// are in use.
	LoadErr error

	ctx context.Context
}

// NewApp loads the configuration and prepares a quiet logger. A broken
// config file does not fail the CLI; commands can report LoadErr.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}

	cfg := config.DefaultConfig()
	loadErr := mgr.Load()
	if loadErr == nil {
		cfg = mgr.Get()
	}

	// CLI output goes to stdout, keep the logger at warn unless asked.
	level := "warn"
	if envLevel := os.Getenv("CHATSHELL_LOG_LEVEL"); envLevel != "" {
		level = envLevel
	}
	logger := logging.NewFromConfigValues(level, cfg.Logging.Format)

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(cfg),
		LoadErr: loadErr,
		ctx:     logging.WithContext(context.Background(), logger),
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// ConfigFile returns the path of the config file in use.
func (a *App) ConfigFile() string {
	return a.Manager.GetConfigFile()
}
