// Package bridge carries messages from the embedded page to the host and
// tracks the host's single outstanding query.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/logging"
)

var (
	// ErrNilHandler is returned when registering a nil handler.
	ErrNilHandler = errors.New("message handler cannot be nil")
	// ErrNoHandler is returned by Dispatch when no handler owns the kind.
	ErrNoHandler = errors.New("no handler registered for message kind")
)

// Handler handles one decoded message.
type Handler interface {
	Handle(ctx context.Context, msg entity.Message) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, msg entity.Message) error

// Handle calls f(ctx, msg).
func (f HandlerFunc) Handle(ctx context.Context, msg entity.Message) error {
	return f(ctx, msg)
}

// Router dispatches page messages to the handler registered for their kind.
type Router struct {
	mu       sync.RWMutex
	handlers map[entity.EventKind]Handler
	baseCtx  context.Context
}

// NewRouter creates a router. ctx carries the logger used for dispatch.
func NewRouter(ctx context.Context) *Router {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Router{
		handlers: make(map[entity.EventKind]Handler),
		baseCtx:  ctx,
	}
}

// Register installs handler for kind, replacing any previous one.
func (r *Router) Register(kind entity.EventKind, handler Handler) error {
	if handler == nil {
		return ErrNilHandler
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[kind] = handler
	return nil
}

// RegisterFunc is Register for plain functions.
func (r *Router) RegisterFunc(kind entity.EventKind, fn func(ctx context.Context, msg entity.Message) error) error {
	if fn == nil {
		return ErrNilHandler
	}
	return r.Register(kind, HandlerFunc(fn))
}

// Kinds returns the kinds that currently have a handler.
func (r *Router) Kinds() []entity.EventKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]entity.EventKind, 0, len(r.handlers))
	for _, k := range entity.EventKinds() {
		if _, ok := r.handlers[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// HandleRaw decodes and dispatches a message received from the page.
// Malformed or unroutable messages are logged and dropped; nothing is
// reported back to the page.
func (r *Router) HandleRaw(raw string) {
	ctx := r.context()
	log := logging.FromContext(ctx).With().Str("component", "bridge-router").Logger()

	msg, err := entity.DecodeMessage([]byte(raw))
	if err != nil {
		log.Warn().Err(err).Str("raw", raw).Msg("dropping undecodable bridge message")
		return
	}

	if err := r.Dispatch(ctx, msg); err != nil {
		if errors.Is(err, ErrNoHandler) {
			log.Warn().Str("type", msg.Type.String()).Msg("dropping bridge message without handler")
			return
		}
		log.Error().Err(err).Str("type", msg.Type.String()).Msg("bridge handler failed")
	}
}

// Dispatch routes an already decoded message.
func (r *Router) Dispatch(ctx context.Context, msg entity.Message) error {
	r.mu.RLock()
	handler, ok := r.handlers[msg.Type]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrNoHandler, msg.Type)
	}

	logging.FromContext(ctx).Debug().
		Str("type", msg.Type.String()).
		Int("value_len", len(msg.Value)).
		Msg("dispatching bridge message")

	if err := handler.Handle(logging.WithEvent(ctx, msg.Type.String()), msg); err != nil {
		return fmt.Errorf("handle %s: %w", msg.Type, err)
	}
	return nil
}

func (r *Router) context() context.Context {
	return r.baseCtx
}
