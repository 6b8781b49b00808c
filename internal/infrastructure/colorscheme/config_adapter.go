package colorscheme

import (
	"sync/atomic"

	"github.com/bnema/chatshell/internal/infrastructure/config"
)

// ConfigAdapter exposes the live config's color scheme to the resolver.
type ConfigAdapter struct {
	cfg atomic.Pointer[config.Config]
}

// NewConfigAdapter creates a new config adapter.
func NewConfigAdapter(cfg *config.Config) *ConfigAdapter {
	a := &ConfigAdapter{}
	a.cfg.Store(cfg)
	return a
}

// Update replaces the config after a reload.
func (a *ConfigAdapter) Update(cfg *config.Config) {
	a.cfg.Store(cfg)
}

// GetColorScheme implements ConfigProvider.
func (a *ConfigAdapter) GetColorScheme() string {
	cfg := a.cfg.Load()
	if cfg == nil {
		return ""
	}
	return cfg.Appearance.ColorScheme
}
