package colorscheme

import (
	"errors"
	"sync"
	"testing"

	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
)

type staticScheme string

func (s staticScheme) GetColorScheme() string { return string(s) }

type stubDetector struct {
	name        string
	priority    int
	available   bool
	prefersDark bool
	detectOk    bool
}

func (d *stubDetector) Name() string         { return d.name }
func (d *stubDetector) Priority() int        { return d.priority }
func (d *stubDetector) Available() bool      { return d.available }
func (d *stubDetector) Detect() (bool, bool) { return d.prefersDark, d.detectOk }

func TestResolver_Resolve(t *testing.T) {
	darkLow := &stubDetector{name: "dark-low", priority: 10, available: true, prefersDark: true, detectOk: true}
	lightHigh := &stubDetector{name: "light-high", priority: 100, available: true, detectOk: true}
	offline := &stubDetector{name: "offline", priority: 200, available: false, detectOk: true}
	failing := &stubDetector{name: "failing", priority: 150, available: true, detectOk: false}

	tests := []struct {
		name       string
		config     ConfigProvider
		detectors  []port.ColorSchemeDetector
		wantDark   bool
		wantSource string
	}{
		{name: "prefer-dark from config", config: staticScheme("prefer-dark"), detectors: []port.ColorSchemeDetector{lightHigh}, wantDark: true, wantSource: "config"},
		{name: "dark from config", config: staticScheme("Dark"), wantDark: true, wantSource: "config"},
		{name: "prefer-light from config", config: staticScheme("prefer-light"), detectors: []port.ColorSchemeDetector{darkLow}, wantSource: "config"},
		{name: "light from config", config: staticScheme("light"), wantSource: "config"},
		{name: "default asks detectors", config: staticScheme("default"), detectors: []port.ColorSchemeDetector{darkLow}, wantDark: true, wantSource: "dark-low"},
		{name: "empty asks detectors", config: staticScheme(""), detectors: []port.ColorSchemeDetector{darkLow}, wantDark: true, wantSource: "dark-low"},
		{name: "nil config asks detectors", detectors: []port.ColorSchemeDetector{darkLow}, wantDark: true, wantSource: "dark-low"},
		{name: "highest priority wins", config: staticScheme("default"), detectors: []port.ColorSchemeDetector{darkLow, lightHigh}, wantSource: "light-high"},
		{name: "unavailable and failing skipped", config: staticScheme("default"), detectors: []port.ColorSchemeDetector{offline, failing, darkLow}, wantDark: true, wantSource: "dark-low"},
		{name: "no detectors falls back to light", config: staticScheme("default"), wantSource: "fallback"},
		{name: "all failing falls back to light", config: staticScheme("default"), detectors: []port.ColorSchemeDetector{offline, failing}, wantSource: "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolver(tt.config)
			for _, d := range tt.detectors {
				resolver.RegisterDetector(d)
			}

			pref := resolver.Resolve()
			assert.Equal(t, tt.wantDark, pref.PrefersDark)
			assert.Equal(t, tt.wantSource, pref.Source)
		})
	}
}

func TestResolver_OnChange(t *testing.T) {
	resolver := NewResolver(staticScheme("default"))
	detector := &stubDetector{name: "test", priority: 50, available: true, detectOk: true}
	resolver.RegisterDetector(detector)

	var got []entity.Theme
	resolver.OnChange(func(pref port.ColorSchemePreference) {
		got = append(got, pref.Theme())
	})

	resolver.Refresh()
	assert.Empty(t, got, "initial light state matches the detector")

	detector.prefersDark = true
	resolver.Refresh()
	resolver.Refresh()
	assert.Equal(t, []entity.Theme{entity.ThemeDark}, got)
}

func TestResolver_OnChangeUnregister(t *testing.T) {
	resolver := NewResolver(staticScheme("default"))
	detector := &stubDetector{name: "test", priority: 50, available: true, prefersDark: true, detectOk: true}
	resolver.RegisterDetector(detector)

	calls := 0
	unregister := resolver.OnChange(func(port.ColorSchemePreference) { calls++ })

	resolver.Refresh()
	assert.Equal(t, 1, calls)

	unregister()
	detector.prefersDark = false
	resolver.Refresh()
	assert.Equal(t, 1, calls)
}

func TestResolver_ConfigAdapterFollowsReload(t *testing.T) {
	cfg := config.DefaultConfig()
	adapter := NewConfigAdapter(cfg)
	resolver := NewResolver(adapter)

	var got port.ColorSchemePreference
	resolver.OnChange(func(pref port.ColorSchemePreference) { got = pref })

	reloaded := config.DefaultConfig()
	reloaded.Appearance.ColorScheme = config.ThemePreferDark
	adapter.Update(reloaded)
	resolver.Refresh()

	assert.True(t, got.PrefersDark)
	assert.Equal(t, "config", got.Source)

	light := config.DefaultConfig()
	light.Appearance.ColorScheme = config.ThemePreferLight
	adapter.Update(light)
	assert.False(t, resolver.Refresh().PrefersDark)
	assert.False(t, got.PrefersDark)
}

func TestResolver_ConcurrentAccess(_ *testing.T) {
	resolver := NewResolver(staticScheme("default"))
	resolver.RegisterDetector(&stubDetector{name: "test", priority: 50, available: true, detectOk: true})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				resolver.Resolve()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				resolver.Refresh()
			}
		}()
		go func(id int) {
			defer wg.Done()
			resolver.RegisterDetector(&stubDetector{name: "concurrent", priority: id, available: true, prefersDark: id%2 == 0, detectOk: true})
		}(i)
	}
	wg.Wait()
}

func TestEnvDetector(t *testing.T) {
	tests := []struct {
		value     string
		available bool
		wantDark  bool
	}{
		{value: "", available: false},
		{value: "Adwaita:dark", available: true, wantDark: true},
		{value: "Adwaita-Dark", available: true, wantDark: true},
		{value: "Adwaita", available: true, wantDark: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			d := &EnvDetector{lookup: func(string) string { return tt.value }}
			assert.Equal(t, tt.available, d.Available())

			dark, ok := d.Detect()
			assert.Equal(t, tt.available, ok)
			assert.Equal(t, tt.wantDark, dark)
		})
	}
}

func TestGsettingsDetector(t *testing.T) {
	tests := []struct {
		output   string
		err      error
		wantDark bool
		wantOk   bool
	}{
		{output: "'prefer-dark'\n", wantDark: true, wantOk: true},
		{output: "'prefer-light'\n", wantOk: true},
		{output: "'default'\n"},
		{output: "", err: errors.New("no schema")},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			d := &GsettingsDetector{run: func() ([]byte, error) { return []byte(tt.output), tt.err }}
			dark, ok := d.Detect()
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantDark, dark)
		})
	}
}
