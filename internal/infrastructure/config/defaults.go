package config

import (
	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/infrastructure/inject"
)

const (
	defaultURL                 = "https://chat.openai.com/chat"
	defaultTitle               = "ChatShell"
	defaultAppID               = "io.github.bnema.chatshell"
	defaultWidth               = 480
	defaultHeight              = 860
	defaultQueryTimeoutMs      = 10000
	defaultThemeSwitchDelayMs  = 1000
	defaultScrollEndDebounceMs = 1000
	defaultGestureThreshold    = 70
	defaultGestureThrottleMs   = 500
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	palette := entity.DefaultChromePalette()
	selectors := inject.DefaultSelectors()
	opts := inject.DefaultOptions()

	return &Config{
		Shell: ShellConfig{
			URL:      defaultURL,
			ChatPath: inject.DefaultChatPath,
			Title:    defaultTitle,
			Width:    defaultWidth,
			Height:   defaultHeight,
			AppID:    defaultAppID,
		},
		Bridge: BridgeConfig{
			HandlerName:         inject.DefaultHandlerName,
			QueryTimeoutMs:      defaultQueryTimeoutMs,
			ThemeSwitchDelayMs:  defaultThemeSwitchDelayMs,
			ScrollEndDebounceMs: defaultScrollEndDebounceMs,
		},
		Gesture: GestureConfig{
			Threshold:         defaultGestureThreshold,
			ThrottleMs:        defaultGestureThrottleMs,
			RequireHorizontal: true,
			RespectScroll:     true,
			TouchOnly:         true,
		},
		Appearance: AppearanceConfig{
			ColorScheme: ThemeDefault,
			LightChrome: palette.Light,
			DarkChrome:  palette.Dark,
			FontSize:    opts.FontSize,
		},
		Selectors: SelectorsConfig{
			PanelOpen:   selectors.PanelOpen,
			PanelToggle: selectors.PanelToggle,
			ThemeToggle: selectors.ThemeToggle,
			PortalRoot:  selectors.PortalRoot,
			ObserveRoot: selectors.ObserveRoot,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: LogFormatConsole,
		},
	}
}
