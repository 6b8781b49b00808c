package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMessage(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    EventKind
		wantID  string
		wantErr bool
	}{
		{name: "object", raw: `{"type":1,"value":"dark"}`, want: EventThemeSync},
		{name: "wrapped string", raw: `"{\"type\":3}"`, want: EventScrollStarted},
		{name: "reply with id", raw: `{"type":0,"value":true,"id":"abc"}`, want: EventDrawerOpenQuery, wantID: "abc"},
		{name: "unknown kind still decodes", raw: `{"type":42}`, want: EventKind(42)},
		{name: "surrounding whitespace", raw: "  {\"type\":5}\n", want: EventReloadRequest},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "empty wrapped", raw: `""`, wantErr: true},
		{name: "garbage", raw: `not json`, wantErr: true},
		{name: "wrong type field", raw: `{"type":"theme"}`, wantErr: true},
		{name: "missing type", raw: `{"value":"anything"}`, wantErr: true},
		{name: "null type", raw: `{"type":null,"value":false}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := DecodeMessage([]byte(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, msg.Type)
			assert.Equal(t, tt.wantID, msg.ID)
		})
	}
}

func TestMessage_Values(t *testing.T) {
	open := Message{Type: EventDrawerOpenQuery, Value: json.RawMessage(`true`)}
	assert.True(t, open.BoolValue())

	missing := Message{Type: EventDrawerOpenQuery}
	assert.False(t, missing.BoolValue())

	notBool := Message{Type: EventDrawerOpenQuery, Value: json.RawMessage(`"yes"`)}
	assert.False(t, notBool.BoolValue())

	theme := Message{Type: EventThemeSync, Value: json.RawMessage(`"dark"`)}
	v, ok := theme.StringValue()
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	_, ok = missing.StringValue()
	assert.False(t, ok)
}

func TestMessage_EncodeOmitsEmptyFields(t *testing.T) {
	data, err := Message{Type: EventDismissKeyboard}.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":2}`, string(data))
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "theme-sync", EventThemeSync.String())
	assert.Equal(t, "reload-request", EventReloadRequest.String())
	assert.Equal(t, "unknown(9)", EventKind(9).String())
	assert.False(t, EventKind(9).Known())
	assert.Len(t, EventKinds(), 6)
}

func TestDecodeMessage_MissingKindIsNotDrawerQuery(t *testing.T) {
	_, err := DecodeMessage([]byte(`"{\"value\":false,\"id\":\"abc\"}"`))
	require.ErrorIs(t, err, ErrMissingKind)
}
