package config

import (
	"time"

	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/infrastructure/inject"
)

// InjectOptions converts the config to script builder options.
func (c *Config) InjectOptions() inject.Options {
	return inject.Options{
		HandlerName:       c.Bridge.HandlerName,
		ChatPath:          c.Shell.ChatPath,
		ScrollEndDebounce: millis(c.Bridge.ScrollEndDebounceMs),
		DefaultTheme:      entity.DefaultTheme,
		Selectors: inject.Selectors{
			PanelOpen:   c.Selectors.PanelOpen,
			PanelToggle: c.Selectors.PanelToggle,
			ThemeToggle: c.Selectors.ThemeToggle,
			PortalRoot:  c.Selectors.PortalRoot,
			ObserveRoot: c.Selectors.ObserveRoot,
		},
		FontSize:  c.Appearance.FontSize,
		CustomCSS: c.Appearance.CustomCSS,
	}
}

// GesturePolicy returns the drag claim policy.
func (c *Config) GesturePolicy() entity.GesturePolicy {
	return entity.GesturePolicy{
		Threshold:         c.Gesture.Threshold,
		RequireHorizontal: c.Gesture.RequireHorizontal,
		RespectScroll:     c.Gesture.RespectScroll,
	}
}

// ChromePalette returns the host chrome colors.
func (c *Config) ChromePalette() entity.ChromePalette {
	return entity.ChromePalette{
		Light: c.Appearance.LightChrome,
		Dark:  c.Appearance.DarkChrome,
	}
}

// QueryTimeout bounds panel state queries.
func (c *Config) QueryTimeout() time.Duration {
	return millis(c.Bridge.QueryTimeoutMs)
}

// ThemeSwitchDelay is the wait before a scheduled theme switch.
func (c *Config) ThemeSwitchDelay() time.Duration {
	return millis(c.Bridge.ThemeSwitchDelayMs)
}

// GestureThrottle is the window between panel actions fired by drags.
func (c *Config) GestureThrottle() time.Duration {
	return millis(c.Gesture.ThrottleMs)
}

// GetColorScheme implements colorscheme.ConfigProvider.
func (c *Config) GetColorScheme() string {
	return c.Appearance.ColorScheme
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
