package usecase

import (
	"context"
	"sync/atomic"

	"github.com/bnema/chatshell/internal/domain/entity"
)

// ScrollState tracks whether the page content is scrolling horizontally.
type ScrollState struct {
	scrolling atomic.Bool
}

// NewScrollState returns a state that is not scrolling.
func NewScrollState() *ScrollState {
	return &ScrollState{}
}

// Scrolling reports the current state.
func (s *ScrollState) Scrolling() bool {
	return s.scrolling.Load()
}

// HandleStarted is the scroll-started handler.
func (s *ScrollState) HandleStarted(_ context.Context, _ entity.Message) error {
	s.scrolling.Store(true)
	return nil
}

// HandleEnded is the scroll-ended handler.
func (s *ScrollState) HandleEnded(_ context.Context, _ entity.Message) error {
	s.scrolling.Store(false)
	return nil
}
