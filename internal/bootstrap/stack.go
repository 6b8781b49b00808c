// Package bootstrap assembles the shell's use cases from the configuration.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/chatshell/internal/application/bridge"
	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/application/usecase"
	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/infrastructure/config"
	"github.com/bnema/chatshell/internal/infrastructure/inject"
	"github.com/bnema/chatshell/internal/logging"
)

// ShellPorts are the host capabilities the use cases drive.
type ShellPorts struct {
	Runner   port.ScriptRunner
	Reloader port.ContentReloader
	Chrome   port.HostChrome
}

func (p ShellPorts) validate() error {
	var errs []error
	if p.Runner == nil {
		errs = append(errs, errors.New("script runner is nil"))
	}
	if p.Reloader == nil {
		errs = append(errs, errors.New("content reloader is nil"))
	}
	if p.Chrome == nil {
		errs = append(errs, errors.New("host chrome is nil"))
	}
	return errors.Join(errs...)
}

// StackInput holds everything BuildStack needs.
type StackInput struct {
	Config    *config.Config
	Scripts   *inject.Live
	HostTheme entity.Theme
	Ports     ShellPorts

	// Scheduler and Clock default to wall-clock implementations.
	Scheduler port.Scheduler
	Clock     port.Clock
}

// Stack is the wired set of bridge and use case objects for one shell.
type Stack struct {
	Scripts   *inject.Live
	Router    *bridge.Router
	Pending   *bridge.Pending
	Scroll    *usecase.ScrollState
	Panel     *usecase.ControlPanelUseCase
	Gesture   *usecase.NavigateGestureUseCase
	Back      *usecase.HandleBackUseCase
	Theme     *usecase.SyncThemeUseCase
	Lifecycle *usecase.ShellLifecycleUseCase
}

// NewScripts builds the script source for cfg.
func NewScripts(cfg *config.Config) (*inject.Live, error) {
	builder, err := inject.NewBuilder(cfg.InjectOptions())
	if err != nil {
		return nil, fmt.Errorf("build scripts: %w", err)
	}
	return inject.NewLive(builder), nil
}

// BuildStack creates the router and use cases and registers every bridge
// handler.
func BuildStack(ctx context.Context, in StackInput) (*Stack, error) {
	if in.Config == nil {
		return nil, errors.New("config is nil")
	}
	if err := in.Ports.validate(); err != nil {
		return nil, fmt.Errorf("invalid shell ports: %w", err)
	}

	scripts := in.Scripts
	if scripts == nil {
		var err error
		if scripts, err = NewScripts(in.Config); err != nil {
			return nil, err
		}
	}

	cfg := in.Config
	pending := bridge.NewPending()
	scroll := usecase.NewScrollState()

	panel := usecase.NewControlPanelUseCase(in.Ports.Runner, scripts, pending, cfg.QueryTimeout())
	gesture := usecase.NewNavigateGestureUseCase(panel, cfg.GesturePolicy(), scroll, cfg.GestureThrottle(), in.Clock)
	theme := usecase.NewSyncThemeUseCase(usecase.SyncThemeConfig{
		Runner:    in.Ports.Runner,
		Scripts:   scripts,
		Chrome:    in.Ports.Chrome,
		Scheduler: in.Scheduler,
		Palette:   cfg.ChromePalette(),
		Delay:     cfg.ThemeSwitchDelay(),
		HostTheme: in.HostTheme,
	})

	router := bridge.NewRouter(logging.WithComponent(ctx, "bridge"))
	handlers := &usecase.BridgeHandlers{
		Panel:    panel,
		Theme:    theme,
		Scroll:   scroll,
		Chrome:   in.Ports.Chrome,
		Reloader: in.Ports.Reloader,
	}
	if err := handlers.Register(router); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Int("handlers", len(router.Kinds())).
		Str("host_theme", string(theme.HostTheme())).
		Msg("shell stack ready")

	return &Stack{
		Scripts:   scripts,
		Router:    router,
		Pending:   pending,
		Scroll:    scroll,
		Panel:     panel,
		Gesture:   gesture,
		Back:      usecase.NewHandleBackUseCase(panel, in.Ports.Chrome),
		Theme:     theme,
		Lifecycle: usecase.NewShellLifecycleUseCase(in.Ports.Chrome, theme),
	}, nil
}

// ApplyConfig pushes a reloaded configuration into the parts that follow it
// live: the panel scripts. Everything else needs a restart.
func (s *Stack) ApplyConfig(ctx context.Context, cfg *config.Config) {
	log := logging.FromContext(ctx)
	if err := s.Scripts.Update(cfg.InjectOptions()); err != nil {
		log.Warn().Err(err).Msg("keeping previous scripts after config reload")
		return
	}
	log.Info().Msg("panel scripts updated from config")
}

// Close stops pending timers.
func (s *Stack) Close() {
	s.Theme.Stop()
}
