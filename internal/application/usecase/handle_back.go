package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/logging"
)

// BackOutcome is what the back action ended up doing.
type BackOutcome int

const (
	// BackHandled means the panel was closed and the app keeps running.
	BackHandled BackOutcome = iota
	// BackExit means the app was asked to terminate.
	BackExit
)

// String returns "handled" or "exit".
func (o BackOutcome) String() string {
	if o == BackHandled {
		return "handled"
	}
	return "exit"
}

// PanelQuerier is the part of the panel use case the back action needs.
type PanelQuerier interface {
	IsOpen(ctx context.Context) (bool, error)
	Close(ctx context.Context) error
}

// HandleBackUseCase closes an open panel on back, or exits the app.
type HandleBackUseCase struct {
	panel PanelQuerier
	host  port.HostChrome
}

// NewHandleBackUseCase creates the back use case.
func NewHandleBackUseCase(panel PanelQuerier, host port.HostChrome) *HandleBackUseCase {
	return &HandleBackUseCase{panel: panel, host: host}
}

// Execute blocks for at most the panel query timeout. A query that cannot be
// answered reads as closed, so the app exits rather than hangs. Only context
// cancellation skips the exit.
func (uc *HandleBackUseCase) Execute(ctx context.Context) (BackOutcome, error) {
	log := logging.FromContext(ctx)

	open, err := uc.panel.IsOpen(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return BackHandled, err
		}
		log.Warn().Err(err).Msg("panel state unknown, treating as closed")
		open = false
	}

	if open {
		if err := uc.panel.Close(ctx); err != nil {
			return BackHandled, fmt.Errorf("close panel on back: %w", err)
		}
		log.Debug().Msg("back closed the panel")
		return BackHandled, nil
	}

	log.Info().Msg("back with panel closed, exiting")
	uc.host.Exit(ctx)
	return BackExit, nil
}
