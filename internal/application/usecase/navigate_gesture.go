package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/logging"
)

// DefaultGestureThrottle is the leading-edge window between panel actions.
const DefaultGestureThrottle = 500 * time.Millisecond

// PanelSetter is the part of the panel use case gestures need.
type PanelSetter interface {
	Set(ctx context.Context, dir entity.PanelDirection) error
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// leadingThrottle lets the first call of a burst through and suppresses the
// rest until window has elapsed since that call. There is no trailing call.
type leadingThrottle struct {
	window time.Duration
	clock  port.Clock
	last   time.Time
	fired  bool
}

func (t *leadingThrottle) allow() bool {
	now := t.clock.Now()
	if t.fired && now.Sub(t.last) < t.window {
		return false
	}
	t.last = now
	t.fired = true
	return true
}

// NavigateGestureUseCase turns horizontal drags into panel open/close.
//
// A drag is claimed once, on the first update that passes the policy; after
// that every update fires through the throttle with its current direction.
type NavigateGestureUseCase struct {
	panel  PanelSetter
	policy entity.GesturePolicy
	scroll *ScrollState

	mu       sync.Mutex
	throttle leadingThrottle
	claimed  bool
}

// NewNavigateGestureUseCase creates the gesture use case. clock may be nil.
func NewNavigateGestureUseCase(
	panel PanelSetter,
	policy entity.GesturePolicy,
	scroll *ScrollState,
	window time.Duration,
	clock port.Clock,
) *NavigateGestureUseCase {
	if window <= 0 {
		window = DefaultGestureThrottle
	}
	if clock == nil {
		clock = systemClock{}
	}
	if scroll == nil {
		scroll = NewScrollState()
	}
	return &NavigateGestureUseCase{
		panel:    panel,
		policy:   policy,
		scroll:   scroll,
		throttle: leadingThrottle{window: window, clock: clock},
	}
}

// Claim reports whether g would be taken as a panel gesture right now.
func (uc *NavigateGestureUseCase) Claim(g entity.Gesture) bool {
	return uc.policy.Claims(g, uc.scroll.Scrolling())
}

// Begin starts a new drag.
func (uc *NavigateGestureUseCase) Begin() {
	uc.mu.Lock()
	uc.claimed = false
	uc.mu.Unlock()
}

// End finishes the current drag.
func (uc *NavigateGestureUseCase) End() {
	uc.Begin()
}

// Claimed reports whether the current drag belongs to the panel.
func (uc *NavigateGestureUseCase) Claimed() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.claimed
}

// Move feeds the cumulative displacement of the current drag. It returns
// whether a panel action fired.
func (uc *NavigateGestureUseCase) Move(ctx context.Context, g entity.Gesture) (bool, error) {
	uc.mu.Lock()
	if !uc.claimed {
		uc.claimed = uc.Claim(g)
	}
	fire := uc.claimed && uc.throttle.allow()
	uc.mu.Unlock()

	if !fire {
		return false, nil
	}

	dir := g.Direction()
	logging.FromContext(ctx).Debug().
		Float64("dx", g.DX).
		Float64("dy", g.DY).
		Str("direction", dir.String()).
		Msg("panel gesture")

	if err := uc.panel.Set(ctx, dir); err != nil {
		return true, err
	}
	return true, nil
}
