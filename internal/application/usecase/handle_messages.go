package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/chatshell/internal/application/bridge"
	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/logging"
)

// BridgeHandlers binds every event kind the page sends to its host handler.
type BridgeHandlers struct {
	Panel    *ControlPanelUseCase
	Theme    *SyncThemeUseCase
	Scroll   *ScrollState
	Chrome   port.HostChrome
	Reloader port.ContentReloader
}

// Register installs the handlers on router.
func (h *BridgeHandlers) Register(router *bridge.Router) error {
	handlers := map[entity.EventKind]bridge.HandlerFunc{
		entity.EventDrawerOpenQuery: h.Panel.HandleReply,
		entity.EventThemeSync:       h.Theme.HandleMessage,
		entity.EventDismissKeyboard: h.dismissKeyboard,
		entity.EventScrollStarted:   h.Scroll.HandleStarted,
		entity.EventScrollEnded:     h.Scroll.HandleEnded,
		entity.EventReloadRequest:   h.reload,
	}

	for _, kind := range entity.EventKinds() {
		fn, ok := handlers[kind]
		if !ok {
			continue
		}
		if err := router.Register(kind, fn); err != nil {
			return fmt.Errorf("register %s handler: %w", kind, err)
		}
	}
	return nil
}

func (h *BridgeHandlers) dismissKeyboard(ctx context.Context, _ entity.Message) error {
	return h.Chrome.DismissKeyboard(ctx)
}

func (h *BridgeHandlers) reload(ctx context.Context, _ entity.Message) error {
	logging.FromContext(ctx).Info().Msg("connection restored, reloading page")
	return h.Reloader.Reload(ctx)
}
