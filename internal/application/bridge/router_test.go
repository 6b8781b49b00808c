package bridge

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/logging"
)

func newTestRouter(t *testing.T) (*Router, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: zerolog.DebugLevel, Format: logging.FormatJSON, Output: &buf})
	return NewRouter(logging.WithContext(context.Background(), logger)), &buf
}

func TestRouter_HandleRawDispatchesByKind(t *testing.T) {
	r, _ := newTestRouter(t)

	var got []entity.Message
	record := func(_ context.Context, msg entity.Message) error {
		got = append(got, msg)
		return nil
	}
	require.NoError(t, r.RegisterFunc(entity.EventThemeSync, record))
	require.NoError(t, r.RegisterFunc(entity.EventScrollStarted, record))

	r.HandleRaw(`{"type":1,"value":"dark"}`)
	r.HandleRaw(`"{\"type\":3}"`)

	require.Len(t, got, 2)
	assert.Equal(t, entity.EventThemeSync, got[0].Type)
	v, ok := got[0].StringValue()
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
	assert.Equal(t, entity.EventScrollStarted, got[1].Type)
}

func TestRouter_HandleRawDropsMalformed(t *testing.T) {
	r, buf := newTestRouter(t)

	called := false
	require.NoError(t, r.RegisterFunc(entity.EventThemeSync, func(context.Context, entity.Message) error {
		called = true
		return nil
	}))

	assert.NotPanics(t, func() { r.HandleRaw(`{"type":`) })
	assert.False(t, called)
	assert.Contains(t, buf.String(), "dropping undecodable bridge message")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestRouter_HandleRawDropsMessageWithoutType(t *testing.T) {
	r, buf := newTestRouter(t)

	called := false
	require.NoError(t, r.RegisterFunc(entity.EventDrawerOpenQuery, func(context.Context, entity.Message) error {
		called = true
		return nil
	}))

	r.HandleRaw(`{"value":false}`)
	r.HandleRaw(`{"type":null,"id":"q1"}`)

	assert.False(t, called)
	assert.Contains(t, buf.String(), "dropping undecodable bridge message")
}

func TestRouter_HandleRawDropsUnknownKind(t *testing.T) {
	r, buf := newTestRouter(t)

	r.HandleRaw(`{"type":99}`)

	assert.Contains(t, buf.String(), "dropping bridge message without handler")
}

func TestRouter_HandlerErrorIsLogged(t *testing.T) {
	r, buf := newTestRouter(t)
	require.NoError(t, r.RegisterFunc(entity.EventReloadRequest, func(context.Context, entity.Message) error {
		return errors.New("boom")
	}))

	r.HandleRaw(`{"type":5}`)

	assert.Contains(t, buf.String(), "bridge handler failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestRouter_Dispatch(t *testing.T) {
	r, _ := newTestRouter(t)

	err := r.Dispatch(context.Background(), entity.Message{Type: entity.EventScrollEnded})
	assert.ErrorIs(t, err, ErrNoHandler)

	assert.ErrorIs(t, r.Register(entity.EventScrollEnded, nil), ErrNilHandler)
	assert.ErrorIs(t, r.RegisterFunc(entity.EventScrollEnded, nil), ErrNilHandler)

	sentinel := errors.New("handler failed")
	require.NoError(t, r.RegisterFunc(entity.EventScrollEnded, func(context.Context, entity.Message) error {
		return sentinel
	}))
	err = r.Dispatch(context.Background(), entity.Message{Type: entity.EventScrollEnded})
	assert.ErrorIs(t, err, sentinel)

	assert.Equal(t, []entity.EventKind{entity.EventScrollEnded}, r.Kinds())
}
