package bootstrap

import (
	"context"

	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/application/usecase"
	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/infrastructure/colorscheme"
	"github.com/bnema/chatshell/internal/infrastructure/config"
	"github.com/bnema/chatshell/internal/logging"
)

// HostTheme resolves the host light/dark preference from the config and the
// desktop, and follows changes of either.
type HostTheme struct {
	resolver *colorscheme.Resolver
	adapter  *colorscheme.ConfigAdapter
}

// NewHostTheme registers the environment and gsettings detectors plus extra.
func NewHostTheme(cfg *config.Config, extra ...port.ColorSchemeDetector) *HostTheme {
	adapter := colorscheme.NewConfigAdapter(cfg)
	resolver := colorscheme.NewResolver(adapter)
	resolver.RegisterDetector(colorscheme.NewEnvDetector())
	resolver.RegisterDetector(colorscheme.NewGsettingsDetector())
	for _, d := range extra {
		resolver.RegisterDetector(d)
	}
	return &HostTheme{resolver: resolver, adapter: adapter}
}

// Resolver exposes the underlying resolver.
func (h *HostTheme) Resolver() *colorscheme.Resolver {
	return h.resolver
}

// Current re-resolves the preference and returns the host theme.
func (h *HostTheme) Current(ctx context.Context) entity.Theme {
	pref := h.resolver.Refresh()
	logging.FromContext(ctx).Debug().
		Bool("prefers_dark", pref.PrefersDark).
		Str("source", pref.Source).
		Msg("host color scheme resolved")
	return pref.Theme()
}

// Follow forwards host theme changes to the theme use case. The returned
// function stops following.
func (h *HostTheme) Follow(ctx context.Context, theme *usecase.SyncThemeUseCase) func() {
	return h.resolver.OnChange(func(pref port.ColorSchemePreference) {
		log := logging.FromContext(ctx)
		log.Info().
			Bool("prefers_dark", pref.PrefersDark).
			Str("source", pref.Source).
			Msg("host color scheme changed")
		if err := theme.HandleHost(ctx, pref.Theme()); err != nil {
			log.Warn().Err(err).Msg("failed to apply host theme")
		}
	})
}

// ApplyConfig re-resolves after a config reload.
func (h *HostTheme) ApplyConfig(cfg *config.Config) {
	h.adapter.Update(cfg)
	h.resolver.Refresh()
}

// Refresh re-resolves after a desktop change.
func (h *HostTheme) Refresh() {
	h.resolver.Refresh()
}
