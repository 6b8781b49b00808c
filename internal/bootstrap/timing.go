package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/chatshell/internal/logging"
)

// Phase is one measured step of the startup.
type Phase struct {
	Name     string
	Duration time.Duration
}

// StartupTimer measures the steps between process start and the window
// being presented. Safe for concurrent use.
type StartupTimer struct {
	mu     sync.Mutex
	now    func() time.Time
	start  time.Time
	last   time.Time
	phases []Phase
}

// NewStartupTimer creates a timer starting from now.
func NewStartupTimer() *StartupTimer {
	return newStartupTimer(time.Now)
}

func newStartupTimer(now func() time.Time) *StartupTimer {
	start := now()
	return &StartupTimer{now: now, start: start, last: start}
}

// Mark records the time since the previous mark under name.
func (t *StartupTimer) Mark(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.phases = append(t.phases, Phase{Name: name, Duration: now.Sub(t.last)})
	t.last = now
}

// Phases returns the recorded phases in order.
func (t *StartupTimer) Phases() []Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Phase(nil), t.phases...)
}

// Total is the time since the timer was created.
func (t *StartupTimer) Total() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.now().Sub(t.start)
}

// Log writes every phase at debug level.
func (t *StartupTimer) Log(ctx context.Context) {
	t.log(logging.FromContext(ctx).Debug())
}

func (t *StartupTimer) log(event *zerolog.Event) {
	total := t.Total()
	for _, p := range t.Phases() {
		event = event.Dur(p.Name, p.Duration)
	}
	event.Dur("total", total).Msg("startup timing")
}
