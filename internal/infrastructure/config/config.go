// Package config loads, validates and watches the chatshell configuration.
package config

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration for chatshell.
type Config struct {
	Shell      ShellConfig      `mapstructure:"shell" toml:"shell"`
	Bridge     BridgeConfig     `mapstructure:"bridge" toml:"bridge"`
	Gesture    GestureConfig    `mapstructure:"gesture" toml:"gesture"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance"`
	// Selectors locate the hosted page's panel, toggles and portal root.
	Selectors SelectorsConfig `mapstructure:"selectors" toml:"selectors"`
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging"`
	Debug     DebugConfig     `mapstructure:"debug" toml:"debug"`
}

// ShellConfig describes the window and the page it hosts.
type ShellConfig struct {
	URL string `mapstructure:"url" toml:"url" jsonschema:"format=uri"`
	// ChatPath is the page path where the on-screen keyboard is kept.
	ChatPath string `mapstructure:"chat_path" toml:"chat_path"`
	Title    string `mapstructure:"title" toml:"title"`
	Width    int    `mapstructure:"width" toml:"width" jsonschema:"minimum=200"`
	Height   int    `mapstructure:"height" toml:"height" jsonschema:"minimum=200"`
	AppID    string `mapstructure:"app_id" toml:"app_id"`
}

// BridgeConfig tunes the page bridge.
type BridgeConfig struct {
	HandlerName         string `mapstructure:"handler_name" toml:"handler_name"`
	QueryTimeoutMs      int    `mapstructure:"query_timeout_ms" toml:"query_timeout_ms" jsonschema:"minimum=1"`
	ThemeSwitchDelayMs  int    `mapstructure:"theme_switch_delay_ms" toml:"theme_switch_delay_ms" jsonschema:"minimum=0"`
	ScrollEndDebounceMs int    `mapstructure:"scroll_end_debounce_ms" toml:"scroll_end_debounce_ms" jsonschema:"minimum=1"`
}

// GestureConfig tunes horizontal drag navigation.
type GestureConfig struct {
	// Threshold is the horizontal distance in pixels a drag must exceed.
	Threshold  float64 `mapstructure:"threshold" toml:"threshold" jsonschema:"minimum=0"`
	ThrottleMs int     `mapstructure:"throttle_ms" toml:"throttle_ms" jsonschema:"minimum=0"`
	// RequireHorizontal ignores drags that move more vertically than sideways.
	RequireHorizontal bool `mapstructure:"require_horizontal" toml:"require_horizontal"`
	// RespectScroll ignores drags while page content scrolls horizontally.
	RespectScroll bool `mapstructure:"respect_scroll" toml:"respect_scroll"`
	// TouchOnly limits drags to touchscreens so mouse text selection keeps working.
	TouchOnly bool `mapstructure:"touch_only" toml:"touch_only"`
}

// AppearanceConfig holds the host theme and the page style patches.
type AppearanceConfig struct {
	// ColorScheme: "prefer-dark", "prefer-light" or "default" (follow the system).
	ColorScheme string `mapstructure:"color_scheme" toml:"color_scheme" jsonschema:"enum=default,enum=prefer-dark,enum=prefer-light"`
	LightChrome string `mapstructure:"light_chrome" toml:"light_chrome"`
	DarkChrome  string `mapstructure:"dark_chrome" toml:"dark_chrome"`
	FontSize    string `mapstructure:"font_size" toml:"font_size"`
	CustomCSS   string `mapstructure:"custom_css" toml:"custom_css"`
}

// SelectorsConfig mirrors inject.Selectors.
type SelectorsConfig struct {
	PanelOpen   string `mapstructure:"panel_open" toml:"panel_open"`
	PanelToggle string `mapstructure:"panel_toggle" toml:"panel_toggle"`
	ThemeToggle string `mapstructure:"theme_toggle" toml:"theme_toggle"`
	PortalRoot  string `mapstructure:"portal_root" toml:"portal_root"`
	ObserveRoot string `mapstructure:"observe_root" toml:"observe_root"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" jsonschema:"enum=console,enum=json"`
}

// DebugConfig holds debug options.
type DebugConfig struct {
	// EnableDevTools turns on the WebKit inspector.
	EnableDevTools bool `mapstructure:"enable_devtools" toml:"enable_devtools"`
	// InjectConsole loads an in-page console (eruda) for pages without devtools access.
	InjectConsole bool `mapstructure:"inject_console" toml:"inject_console"`
}

// Color scheme settings.
const (
	ThemePreferDark  = "prefer-dark"
	ThemePreferLight = "prefer-light"
	ThemeDefault     = "default"
)

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)
