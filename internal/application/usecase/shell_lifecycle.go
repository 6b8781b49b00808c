package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/logging"
)

// ShellLifecycleUseCase runs the one-time work after the first page load.
type ShellLifecycleUseCase struct {
	chrome port.HostChrome
	theme  *SyncThemeUseCase
	once   sync.Once
}

// NewShellLifecycleUseCase creates the lifecycle use case.
func NewShellLifecycleUseCase(chrome port.HostChrome, theme *SyncThemeUseCase) *ShellLifecycleUseCase {
	return &ShellLifecycleUseCase{chrome: chrome, theme: theme}
}

// LoadFinished focuses the page and paints the chrome for the host theme.
// Only the first call does anything.
func (uc *ShellLifecycleUseCase) LoadFinished(ctx context.Context) error {
	var err error
	uc.once.Do(func() {
		logging.FromContext(ctx).Debug().Msg("first load finished")

		if focusErr := uc.chrome.FocusContent(ctx); focusErr != nil {
			err = fmt.Errorf("focus content: %w", focusErr)
			return
		}
		if colorErr := uc.chrome.SetChromeColor(ctx, uc.theme.ChromeColor()); colorErr != nil {
			err = fmt.Errorf("set chrome color: %w", colorErr)
		}
	})
	return err
}
