package colorscheme

import (
	"os/exec"
	"strings"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 10
)

// GsettingsDetector asks GNOME's org.gnome.desktop.interface color-scheme.
type GsettingsDetector struct {
	run func() ([]byte, error)
}

// NewGsettingsDetector creates a new gsettings-based detector.
func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{run: func() ([]byte, error) {
		return exec.Command("gsettings", "get", "org.gnome.desktop.interface", "color-scheme").Output()
	}}
}

// Name implements port.ColorSchemeDetector.
func (*GsettingsDetector) Name() string {
	return detectorNameGsettings
}

// Priority implements port.ColorSchemeDetector.
func (*GsettingsDetector) Priority() int {
	return priorityGsettings
}

// Available implements port.ColorSchemeDetector.
func (*GsettingsDetector) Available() bool {
	_, err := exec.LookPath("gsettings")
	return err == nil
}

// Detect implements port.ColorSchemeDetector. "default" is not an answer
// and leaves the decision to lower priority detectors.
func (d *GsettingsDetector) Detect() (prefersDark, ok bool) {
	output, err := d.run()
	if err != nil {
		return false, false
	}
	return parseGsettingsScheme(string(output))
}

// parseGsettingsScheme reads output like "'prefer-dark'\n".
func parseGsettingsScheme(output string) (prefersDark, ok bool) {
	switch strings.Trim(strings.TrimSpace(output), "'\"") {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	default:
		return false, false
	}
}
