package usecase_test

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/logging"
	"github.com/rs/zerolog"
)

func testContext() context.Context {
	logger := logging.New(logging.Config{Level: zerolog.DebugLevel, Format: logging.FormatJSON, Output: io.Discard})
	return logging.WithContext(context.Background(), logger)
}

// stubScripts renders scripts as short tags the tests can match on.
type stubScripts struct{}

func (stubScripts) SetPanel(dir entity.PanelDirection) string { return "set:" + dir.String() }
func (stubScripts) QueryPanel(id string) string             { return "query:" + id }
func (stubScripts) SwitchTheme() string                     { return "switch-theme" }

func queryID(script string) (string, bool) {
	return strings.CutPrefix(script, "query:")
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type scheduledCall struct {
	delay    time.Duration
	fn       func()
	canceled bool
}

// fakeScheduler records callbacks instead of running them.
type fakeScheduler struct {
	mu    sync.Mutex
	calls []*scheduledCall
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	call := &scheduledCall{delay: d, fn: fn}
	s.mu.Lock()
	s.calls = append(s.calls, call)
	s.mu.Unlock()
	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		if call.canceled {
			return false
		}
		call.canceled = true
		return true
	}
}

func (s *fakeScheduler) Scheduled() []*scheduledCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*scheduledCall(nil), s.calls...)
}

// Fire runs every pending callback that was not canceled.
func (s *fakeScheduler) Fire() int {
	s.mu.Lock()
	var due []func()
	for _, c := range s.calls {
		if !c.canceled && c.fn != nil {
			due = append(due, c.fn)
			c.fn = nil
		}
	}
	s.mu.Unlock()

	for _, fn := range due {
		fn()
	}
	return len(due)
}
