package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/logging"
)

// DefaultThemeSwitchDelay leaves time for a closing panel to finish its
// animation before the switch opens it again.
const DefaultThemeSwitchDelay = time.Second

type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

// SyncThemeUseCase keeps the page theme in line with the host theme and
// paints the host chrome.
type SyncThemeUseCase struct {
	runner    port.ScriptRunner
	scripts   port.PanelScripts
	chrome    port.HostChrome
	scheduler port.Scheduler
	palette   entity.ChromePalette
	delay     time.Duration

	mu        sync.Mutex
	hostTheme entity.Theme
	pageTheme entity.Theme
	cancel    func() bool
}

// SyncThemeConfig groups the collaborators of SyncThemeUseCase.
type SyncThemeConfig struct {
	Runner    port.ScriptRunner
	Scripts   port.PanelScripts
	Chrome    port.HostChrome
	Scheduler port.Scheduler
	Palette   entity.ChromePalette
	Delay     time.Duration
	HostTheme entity.Theme
}

// NewSyncThemeUseCase creates the theme use case.
func NewSyncThemeUseCase(cfg SyncThemeConfig) *SyncThemeUseCase {
	if cfg.Scheduler == nil {
		cfg.Scheduler = timeScheduler{}
	}
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultThemeSwitchDelay
	}
	if cfg.HostTheme == "" {
		cfg.HostTheme = entity.DefaultTheme
	}
	if cfg.Palette == (entity.ChromePalette{}) {
		cfg.Palette = entity.DefaultChromePalette()
	}
	return &SyncThemeUseCase{
		runner:    cfg.Runner,
		scripts:   cfg.Scripts,
		chrome:    cfg.Chrome,
		scheduler: cfg.Scheduler,
		palette:   cfg.Palette,
		delay:     cfg.Delay,
		hostTheme: cfg.HostTheme,
	}
}

// HostTheme returns the current host theme.
func (uc *SyncThemeUseCase) HostTheme() entity.Theme {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.hostTheme
}

// ChromeColor returns the chrome color for the host theme.
func (uc *SyncThemeUseCase) ChromeColor() string {
	return uc.palette.For(uc.HostTheme())
}

// HandleMessage is the theme-sync handler.
func (uc *SyncThemeUseCase) HandleMessage(ctx context.Context, msg entity.Message) error {
	value, _ := msg.StringValue()
	return uc.HandleEmbedded(ctx, value)
}

// HandleEmbedded reacts to the theme reported by the page. The chrome color
// follows the reported theme at once; a mismatch with the host schedules one
// theme switch after the configured delay.
func (uc *SyncThemeUseCase) HandleEmbedded(ctx context.Context, value string) error {
	log := logging.FromContext(ctx)

	theme, err := entity.ParseTheme(value)
	if err != nil {
		log.Warn().Err(err).Str("default", string(entity.DefaultTheme)).Msg("page reported an unusable theme")
		theme = entity.DefaultTheme
	}

	uc.mu.Lock()
	uc.pageTheme = theme
	host := uc.hostTheme
	if theme == host {
		uc.cancelPendingLocked()
	}
	schedule := theme != host && uc.cancel == nil
	if schedule {
		uc.cancel = uc.scheduler.AfterFunc(uc.delay, func() {
			uc.mu.Lock()
			uc.cancel = nil
			uc.mu.Unlock()
			uc.switchTheme(ctx)
		})
	}
	uc.mu.Unlock()

	if schedule {
		log.Info().
			Str("page", string(theme)).
			Str("host", string(host)).
			Dur("delay", uc.delay).
			Msg("page theme differs from host, switch scheduled")
	}

	if err := uc.chrome.SetChromeColor(ctx, uc.palette.For(theme)); err != nil {
		return fmt.Errorf("set chrome color: %w", err)
	}
	return nil
}

// HandleHost reacts to a host theme change at runtime: the chrome is
// repainted and the page is switched unless it already matches.
func (uc *SyncThemeUseCase) HandleHost(ctx context.Context, theme entity.Theme) error {
	uc.mu.Lock()
	changed := uc.hostTheme != theme
	uc.hostTheme = theme
	needsSwitch := uc.pageTheme != theme
	if changed {
		// A switch scheduled against the old host theme is obsolete.
		uc.cancelPendingLocked()
	}
	uc.mu.Unlock()

	if !changed {
		return nil
	}

	logging.FromContext(ctx).Info().Str("theme", string(theme)).Msg("host theme changed")

	if err := uc.chrome.SetChromeColor(ctx, uc.palette.For(theme)); err != nil {
		return fmt.Errorf("set chrome color: %w", err)
	}
	if needsSwitch {
		uc.switchTheme(ctx)
	}
	return nil
}

// Stop cancels a scheduled switch.
func (uc *SyncThemeUseCase) Stop() {
	uc.mu.Lock()
	uc.cancelPendingLocked()
	uc.mu.Unlock()
}

// cancelPendingLocked must be called with uc.mu held.
func (uc *SyncThemeUseCase) cancelPendingLocked() {
	if uc.cancel != nil {
		uc.cancel()
		uc.cancel = nil
	}
}

func (uc *SyncThemeUseCase) switchTheme(ctx context.Context) {
	log := logging.FromContext(ctx)

	if err := uc.runner.RunScript(ctx, uc.scripts.SwitchTheme()); err != nil {
		log.Error().Err(err).Msg("theme switch injection failed")
		return
	}
	if err := uc.chrome.FocusContent(ctx); err != nil {
		log.Debug().Err(err).Msg("could not refocus content after theme switch")
	}
}
