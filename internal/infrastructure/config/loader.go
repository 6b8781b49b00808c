package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a manager for the XDG config file.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithFile(configFile)
}

// NewManagerWithFile creates a manager for an explicit config file path.
// The file is created with defaults on Load if it does not exist.
func NewManagerWithFile(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// CHATSHELL_SHELL_URL, CHATSHELL_GESTURE_THRESHOLD, ...
	v.SetEnvPrefix("CHATSHELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "CHATSHELL_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind CHATSHELL_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "CHATSHELL_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind CHATSHELL_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if _, statErr := os.Stat(m.configFile); errors.Is(statErr, os.ErrNotExist) {
		if err := m.createDefaultConfig(); err != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configFile,
				err,
			)
		}
	}

	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	switch strings.ToLower(strings.TrimSpace(config.Appearance.ColorScheme)) {
	case ThemePreferDark, "dark":
		config.Appearance.ColorScheme = ThemePreferDark
	case ThemePreferLight, "light":
		config.Appearance.ColorScheme = ThemePreferLight
	default:
		config.Appearance.ColorScheme = ThemeDefault
	}

	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case LogFormatJSON:
		config.Logging.Format = LogFormatJSON
	default:
		config.Logging.Format = LogFormatConsole
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Shell.URL = strings.TrimSpace(config.Shell.URL)
	if config.Shell.ChatPath != "" && !strings.HasPrefix(config.Shell.ChatPath, "/") {
		config.Shell.ChatPath = "/" + config.Shell.ChatPath
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// Set overrides a single key for this process, e.g. the URL given on the
// command line. The file on disk is not touched.
func (m *Manager) Set(key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	previous := m.viper.Get(key)
	m.viper.Set(key, value)

	config, err := m.unmarshalConfig()
	if err == nil {
		normalizeConfig(config)
		if err = validateConfig(config); err != nil {
			err = fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	if err != nil {
		m.viper.Set(key, previous)
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfig(DefaultConfig(), m.configFile); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", m.configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setShellDefaults(defaults)
	m.setBridgeDefaults(defaults)
	m.setGestureDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	m.setSelectorsDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setDebugDefaults(defaults)
}

func (m *Manager) setShellDefaults(defaults *Config) {
	m.viper.SetDefault("shell.url", defaults.Shell.URL)
	m.viper.SetDefault("shell.chat_path", defaults.Shell.ChatPath)
	m.viper.SetDefault("shell.title", defaults.Shell.Title)
	m.viper.SetDefault("shell.width", defaults.Shell.Width)
	m.viper.SetDefault("shell.height", defaults.Shell.Height)
	m.viper.SetDefault("shell.app_id", defaults.Shell.AppID)
}

func (m *Manager) setBridgeDefaults(defaults *Config) {
	m.viper.SetDefault("bridge.handler_name", defaults.Bridge.HandlerName)
	m.viper.SetDefault("bridge.query_timeout_ms", defaults.Bridge.QueryTimeoutMs)
	m.viper.SetDefault("bridge.theme_switch_delay_ms", defaults.Bridge.ThemeSwitchDelayMs)
	m.viper.SetDefault("bridge.scroll_end_debounce_ms", defaults.Bridge.ScrollEndDebounceMs)
}

func (m *Manager) setGestureDefaults(defaults *Config) {
	m.viper.SetDefault("gesture.threshold", defaults.Gesture.Threshold)
	m.viper.SetDefault("gesture.throttle_ms", defaults.Gesture.ThrottleMs)
	m.viper.SetDefault("gesture.require_horizontal", defaults.Gesture.RequireHorizontal)
	m.viper.SetDefault("gesture.respect_scroll", defaults.Gesture.RespectScroll)
	m.viper.SetDefault("gesture.touch_only", defaults.Gesture.TouchOnly)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.color_scheme", defaults.Appearance.ColorScheme)
	m.viper.SetDefault("appearance.light_chrome", defaults.Appearance.LightChrome)
	m.viper.SetDefault("appearance.dark_chrome", defaults.Appearance.DarkChrome)
	m.viper.SetDefault("appearance.font_size", defaults.Appearance.FontSize)
	m.viper.SetDefault("appearance.custom_css", defaults.Appearance.CustomCSS)
}

func (m *Manager) setSelectorsDefaults(defaults *Config) {
	m.viper.SetDefault("selectors.panel_open", defaults.Selectors.PanelOpen)
	m.viper.SetDefault("selectors.panel_toggle", defaults.Selectors.PanelToggle)
	m.viper.SetDefault("selectors.theme_toggle", defaults.Selectors.ThemeToggle)
	m.viper.SetDefault("selectors.portal_root", defaults.Selectors.PortalRoot)
	m.viper.SetDefault("selectors.observe_root", defaults.Selectors.ObserveRoot)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

func (m *Manager) setDebugDefaults(defaults *Config) {
	m.viper.SetDefault("debug.enable_devtools", defaults.Debug.EnableDevTools)
	m.viper.SetDefault("debug.inject_console", defaults.Debug.InjectConsole)
}
