package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var cssColorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|(rgb|rgba|hsl|hsla)\([^()]*\)|[a-zA-Z]+)$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateShell(config)...)
	validationErrors = append(validationErrors, validateBridge(config)...)
	validationErrors = append(validationErrors, validateGesture(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateSelectors(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateShell(config *Config) []string {
	var validationErrors []string

	u, err := url.Parse(config.Shell.URL)
	switch {
	case config.Shell.URL == "":
		validationErrors = append(validationErrors, "shell.url must not be empty")
	case err != nil || (u.Scheme != "http" && u.Scheme != "https" && u.Scheme != "file"):
		validationErrors = append(validationErrors, "shell.url must be an http, https or file URL")
	}

	if config.Shell.Width < 200 || config.Shell.Height < 200 {
		validationErrors = append(validationErrors, "shell.width and shell.height must be at least 200")
	}
	if strings.TrimSpace(config.Shell.AppID) == "" {
		validationErrors = append(validationErrors, "shell.app_id must not be empty")
	}
	return validationErrors
}

func validateBridge(config *Config) []string {
	var validationErrors []string
	if strings.TrimSpace(config.Bridge.HandlerName) == "" {
		validationErrors = append(validationErrors, "bridge.handler_name must not be empty")
	}
	if config.Bridge.QueryTimeoutMs <= 0 {
		validationErrors = append(validationErrors, "bridge.query_timeout_ms must be positive")
	}
	if config.Bridge.ThemeSwitchDelayMs < 0 {
		validationErrors = append(validationErrors, "bridge.theme_switch_delay_ms must be non-negative")
	}
	if config.Bridge.ScrollEndDebounceMs <= 0 {
		validationErrors = append(validationErrors, "bridge.scroll_end_debounce_ms must be positive")
	}
	return validationErrors
}

func validateGesture(config *Config) []string {
	var validationErrors []string
	if config.Gesture.Threshold < 0 {
		validationErrors = append(validationErrors, "gesture.threshold must be non-negative")
	}
	if config.Gesture.ThrottleMs < 0 {
		validationErrors = append(validationErrors, "gesture.throttle_ms must be non-negative")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	if !cssColorPattern.MatchString(strings.TrimSpace(config.Appearance.LightChrome)) {
		validationErrors = append(validationErrors, "appearance.light_chrome must be a CSS color")
	}
	if !cssColorPattern.MatchString(strings.TrimSpace(config.Appearance.DarkChrome)) {
		validationErrors = append(validationErrors, "appearance.dark_chrome must be a CSS color")
	}
	return validationErrors
}

func validateSelectors(config *Config) []string {
	if err := config.InjectOptions().Selectors.Validate(); err != nil {
		return strings.Split(err.Error(), "\n")
	}
	return nil
}

func validateLogging(config *Config) []string {
	switch config.Logging.Level {
	case "", "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
		return nil
	}
	return []string{fmt.Sprintf("logging.level %q is not a known level", config.Logging.Level)}
}
