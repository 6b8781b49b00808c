// Package usecase contains the shell's use cases: panel control, gesture and
// back navigation, theme sync and bridge message handling.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/chatshell/internal/application/bridge"
	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/logging"
)

// ControlPanelUseCase opens, closes and queries the page's side panel.
// It keeps no copy of the panel state: the page DOM is asked every time.
type ControlPanelUseCase struct {
	runner  port.ScriptRunner
	scripts port.PanelScripts
	pending *bridge.Pending
	timeout time.Duration
}

// NewControlPanelUseCase creates the panel use case. A non-positive timeout
// uses bridge.DefaultQueryTimeout.
func NewControlPanelUseCase(
	runner port.ScriptRunner,
	scripts port.PanelScripts,
	pending *bridge.Pending,
	timeout time.Duration,
) *ControlPanelUseCase {
	if timeout <= 0 {
		timeout = bridge.DefaultQueryTimeout
	}
	if pending == nil {
		pending = bridge.NewPending()
	}
	return &ControlPanelUseCase{
		runner:  runner,
		scripts: scripts,
		pending: pending,
		timeout: timeout,
	}
}

// Open opens the panel unless it is already open.
func (uc *ControlPanelUseCase) Open(ctx context.Context) error {
	return uc.Set(ctx, entity.PanelOpen)
}

// Close closes the panel unless it is already closed.
func (uc *ControlPanelUseCase) Close(ctx context.Context) error {
	return uc.Set(ctx, entity.PanelClose)
}

// Set injects the fire-and-forget mutation for dir.
func (uc *ControlPanelUseCase) Set(ctx context.Context, dir entity.PanelDirection) error {
	logging.FromContext(ctx).Debug().Str("direction", dir.String()).Msg("setting panel")

	if err := uc.runner.RunScript(ctx, uc.scripts.SetPanel(dir)); err != nil {
		return fmt.Errorf("failed to %s panel: %w", dir, err)
	}
	return nil
}

// IsOpen asks the page whether the panel is open and waits for the reply.
// No reply within the timeout reads as closed.
func (uc *ControlPanelUseCase) IsOpen(ctx context.Context) (bool, error) {
	log := logging.FromContext(ctx)

	ticket := uc.pending.Begin()
	if err := uc.runner.RunScript(ctx, uc.scripts.QueryPanel(ticket.ID())); err != nil {
		ticket.Abandon()
		return false, fmt.Errorf("failed to query panel state: %w", err)
	}

	open, err := ticket.Wait(ctx, uc.timeout)
	if errors.Is(err, bridge.ErrQueryTimeout) {
		log.Warn().
			Str("request_id", ticket.ID()).
			Dur("timeout", uc.timeout).
			Msg("panel query timed out, assuming closed")
		return false, nil
	}
	if err != nil {
		return false, err
	}

	log.Debug().Str("request_id", ticket.ID()).Bool("open", open).Msg("panel state received")
	return open, nil
}

// HandleReply resolves the pending query with a drawer-open-query reply.
func (uc *ControlPanelUseCase) HandleReply(ctx context.Context, msg entity.Message) error {
	if !uc.pending.Resolve(msg.ID, msg.BoolValue()) {
		logging.FromContext(ctx).Debug().
			Str("request_id", msg.ID).
			Msg("discarding panel reply without matching query")
	}
	return nil
}
