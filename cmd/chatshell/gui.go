package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/bnema/chatshell/internal/bootstrap"
	"github.com/bnema/chatshell/internal/infrastructure/config"
	"github.com/bnema/chatshell/internal/infrastructure/inject"
	"github.com/bnema/chatshell/internal/infrastructure/webkit"
	"github.com/bnema/chatshell/internal/logging"
)

func runGUI() int {
	runtime.LockOSThread()
	timer := bootstrap.NewStartupTimer()

	mgr, cfg := initConfig()
	if initialURL != "" {
		cfg.Shell.URL = initialURL
	}
	timer.Mark("config")

	ctx := initStartupContext(cfg)
	log := logging.FromContext(ctx)
	timer.Mark("logger")

	scripts, err := bootstrap.NewScripts(cfg)
	if err != nil {
		log.Error().Err(err).Msg("invalid injection settings")
		return 1
	}
	builder := scripts.Builder()

	opts := webkit.Options{
		AppID:          cfg.Shell.AppID,
		Title:          cfg.Shell.Title,
		Width:          cfg.Shell.Width,
		Height:         cfg.Shell.Height,
		URL:            cfg.Shell.URL,
		HandlerName:    builder.HandlerName(),
		Bootstrap:      builder.Bootstrap(),
		Stylesheet:     builder.Stylesheet(),
		TouchOnly:      cfg.Gesture.TouchOnly,
		EnableDevTools: cfg.Debug.EnableDevTools,
		BlurScript:     inject.BlurActiveElement(),
	}
	if cfg.Debug.InjectConsole {
		opts.ConsoleScript = inject.ConsoleLoader("")
	}
	shell := webkit.NewShell(ctx, opts)
	timer.Mark("shell")

	gtkDetector := webkit.NewGTKDetector()
	host := bootstrap.NewHostTheme(cfg, gtkDetector)

	stack, err := bootstrap.BuildStack(ctx, bootstrap.StackInput{
		Config:    cfg,
		Scripts:   scripts,
		HostTheme: host.Current(ctx),
		Ports: bootstrap.ShellPorts{
			Runner:   shell,
			Reloader: shell,
			Chrome:   shell,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to build shell stack")
		return 1
	}
	defer stack.Close()

	shell.Bind(webkit.Bindings{
		Router:    stack.Router,
		Gesture:   stack.Gesture,
		Back:      stack.Back,
		Lifecycle: stack.Lifecycle,
	})
	stopFollow := host.Follow(ctx, stack.Theme)
	defer stopFollow()
	timer.Mark("stack")

	shell.OnActivate(func() {
		// GTK settings are readable once the display is open.
		gtkDetector.MarkAvailable()
		gtkDetector.Watch(host.Refresh)
		host.Refresh()
	})

	watchConfig(ctx, mgr, stack, host)
	timer.Log(ctx)

	setupSignalHandler(ctx, shell)

	status, err := shell.Run(os.Args)
	if err != nil {
		log.Error().Err(err).Msg("shell failed")
		return 1
	}
	return status
}

// initConfig loads the config file. A missing or broken file falls back to
// defaults so the window still opens.
func initConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chatshell: %v\n", err)
		return nil, config.DefaultConfig()
	}
	if err := mgr.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "chatshell: using default config: %v\n", err)
		return nil, config.DefaultConfig()
	}
	return mgr, mgr.Get()
}

func initStartupContext(cfg *config.Config) context.Context {
	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info().
		Str("version", version).
		Str("commit", commit).
		Str("build_date", buildDate).
		Str("url", cfg.Shell.URL).
		Msg("starting chatshell")
	return logging.WithContext(context.Background(), logger)
}

// watchConfig applies config file edits that can change while running.
func watchConfig(ctx context.Context, mgr *config.Manager, stack *bootstrap.Stack, host *bootstrap.HostTheme) {
	if mgr == nil {
		return
	}
	log := logging.FromContext(ctx)

	mgr.OnConfigChange(func(cfg *config.Config) {
		log.Info().Msg("config reloaded")
		stack.ApplyConfig(ctx, cfg)
		host.ApplyConfig(cfg)
	})
	if err := mgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}
}

func setupSignalHandler(ctx context.Context, shell *webkit.Shell) {
	log := logging.FromContext(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		signal.Stop(sigCh)
		log.Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
		shell.Exit(ctx)
	}()
}
