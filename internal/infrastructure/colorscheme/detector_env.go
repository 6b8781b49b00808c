package colorscheme

import (
	"os"
	"strings"
)

const (
	detectorNameEnv = "GTK_THEME"
	priorityEnv     = 20
)

// EnvDetector reads GTK_THEME, e.g. "Adwaita:dark".
type EnvDetector struct {
	lookup func(string) string
}

// NewEnvDetector creates a new environment variable-based detector.
func NewEnvDetector() *EnvDetector {
	return &EnvDetector{lookup: os.Getenv}
}

// Name implements port.ColorSchemeDetector.
func (*EnvDetector) Name() string {
	return detectorNameEnv
}

// Priority implements port.ColorSchemeDetector.
func (*EnvDetector) Priority() int {
	return priorityEnv
}

// Available implements port.ColorSchemeDetector.
func (d *EnvDetector) Available() bool {
	return d.lookup("GTK_THEME") != ""
}

// Detect implements port.ColorSchemeDetector. A theme name or variant
// containing "dark" means dark; any other value means light.
func (d *EnvDetector) Detect() (prefersDark, ok bool) {
	gtkTheme := strings.TrimSpace(d.lookup("GTK_THEME"))
	if gtkTheme == "" {
		return false, false
	}
	return strings.Contains(strings.ToLower(gtkTheme), "dark"), true
}
