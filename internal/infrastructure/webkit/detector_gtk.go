package webkit

import (
	"sync/atomic"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

const (
	detectorNameGTK = "gtk-settings"
	priorityGTK     = 100

	preferDarkProperty = "gtk-application-prefer-dark-theme"
)

// GTKDetector reads the dark preference from GtkSettings. It is the same
// setting WebKit maps to prefers-color-scheme, so it is asked first once
// GTK is initialised.
//
// GtkSettings is only read on the main loop (MarkAvailable and the Watch
// notification). Detect returns the cached value, so the resolver may call it
// from any goroutine, including the config watcher.
type GTKDetector struct {
	available   atomic.Bool
	prefersDark atomic.Bool
}

// NewGTKDetector creates a detector that stays unavailable until
// MarkAvailable is called from the GTK main thread.
func NewGTKDetector() *GTKDetector {
	return &GTKDetector{}
}

// Name implements port.ColorSchemeDetector.
func (*GTKDetector) Name() string {
	return detectorNameGTK
}

// Priority implements port.ColorSchemeDetector.
func (*GTKDetector) Priority() int {
	return priorityGTK
}

// Available implements port.ColorSchemeDetector.
func (d *GTKDetector) Available() bool {
	return d.available.Load()
}

// MarkAvailable reads the current setting. It must run on the GTK main thread
// after gtk has been initialised.
func (d *GTKDetector) MarkAvailable() {
	d.sync()
}

// Detect implements port.ColorSchemeDetector.
func (d *GTKDetector) Detect() (prefersDark, ok bool) {
	if !d.Available() {
		return false, false
	}
	return d.prefersDark.Load(), true
}

// Watch calls fn whenever the GTK dark preference changes, after the cached
// value is updated. It must run on the GTK main thread.
func (d *GTKDetector) Watch(fn func()) {
	settings := gtk.SettingsGetDefault()
	if settings == nil {
		return
	}
	settings.NotifyProperty(preferDarkProperty, func() {
		d.sync()
		fn()
	})
}

func (d *GTKDetector) sync() {
	settings := gtk.SettingsGetDefault()
	if settings == nil {
		return
	}
	dark, ok := settings.ObjectProperty(preferDarkProperty).(bool)
	if !ok {
		return
	}
	d.store(dark)
}

func (d *GTKDetector) store(dark bool) {
	d.prefersDark.Store(dark)
	d.available.Store(true)
}
