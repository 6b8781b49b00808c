// Package port defines application-layer interfaces for external capabilities.
// Ports keep the bridge and the gesture controller independent of GTK and
// WebKit so they can be driven from tests.
package port

import (
	"context"
	"errors"
	"time"
)

// ErrViewClosed is returned when the embedded view is gone.
var ErrViewClosed = errors.New("embedded view closed")

// ScriptRunner evaluates self-contained scripts inside the embedded page.
// Evaluation is fire-and-forget: the result of the script is not returned.
type ScriptRunner interface {
	RunScript(ctx context.Context, script string) error
}

// ContentReloader reloads the embedded page.
type ContentReloader interface {
	// Reload reloads the page from scratch, bypassing the cache.
	Reload(ctx context.Context) error
}

// HostChrome is the native window around the embedded page.
type HostChrome interface {
	// SetChromeColor paints the window background and bars.
	SetChromeColor(ctx context.Context, color string) error
	// DismissKeyboard moves focus to a hidden entry and back to the page,
	// dropping any on-screen keyboard without visible changes.
	DismissKeyboard(ctx context.Context) error
	// FocusContent gives keyboard focus to the embedded page.
	FocusContent(ctx context.Context) error
	// Exit terminates the application.
	Exit(ctx context.Context)
}

// Scheduler runs a callback after a delay.
type Scheduler interface {
	// AfterFunc schedules fn and returns a function that cancels it.
	// The cancel function reports whether fn was stopped before running.
	AfterFunc(d time.Duration, fn func()) (cancel func() bool)
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}
