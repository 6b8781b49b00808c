package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// EventKind identifies a bridge message. The numbering is part of the wire
// format shared with the injected scripts; new kinds are appended, never
// renumbered.
type EventKind int

const (
	// EventDrawerOpenQuery is the reply to a panel-state query.
	EventDrawerOpenQuery EventKind = iota
	// EventThemeSync reports the page's stored theme.
	EventThemeSync
	// EventDismissKeyboard asks the host to drop input focus.
	EventDismissKeyboard
	// EventScrollStarted marks the start of horizontal content scrolling.
	EventScrollStarted
	// EventScrollEnded marks the end of horizontal content scrolling.
	EventScrollEnded
	// EventReloadRequest asks the host to reload the page from scratch.
	EventReloadRequest
)

// ErrEmptyMessage is returned when decoding blank input.
var ErrEmptyMessage = errors.New("empty bridge message")

// ErrMissingKind is returned for a message without a type. Kind 0 is a real
// event, so an absent type must not read as it.
var ErrMissingKind = errors.New("bridge message has no type")

var eventKindNames = map[EventKind]string{
	EventDrawerOpenQuery: "drawer-open-query",
	EventThemeSync:       "theme-sync",
	EventDismissKeyboard: "dismiss-keyboard",
	EventScrollStarted:   "scroll-started",
	EventScrollEnded:     "scroll-ended",
	EventReloadRequest:   "reload-request",
}

// String returns the kebab-case name of the kind.
func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown(" + strconv.Itoa(int(k)) + ")"
}

// Known reports whether this build understands the kind.
func (k EventKind) Known() bool {
	_, ok := eventKindNames[k]
	return ok
}

// EventKinds returns every known kind in wire order.
func EventKinds() []EventKind {
	kinds := make([]EventKind, 0, len(eventKindNames))
	for k := EventDrawerOpenQuery; k <= EventReloadRequest; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Message is the envelope exchanged across the bridge.
type Message struct {
	Type  EventKind       `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
	// ID correlates a drawer-open-query reply with the query that asked for it.
	ID string `json:"id,omitempty"`
}

// DecodeMessage parses a message posted by the page. The input is either the
// JSON object itself or a JSON string holding it, which is how WebKit hands a
// posted string back to the host.
func DecodeMessage(raw []byte) (Message, error) {
	var msg Message

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return msg, ErrEmptyMessage
	}

	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return msg, fmt.Errorf("decode wrapped message: %w", err)
		}
		trimmed = bytes.TrimSpace([]byte(inner))
		if len(trimmed) == 0 {
			return msg, ErrEmptyMessage
		}
	}

	var head struct {
		Type *EventKind `json:"type"`
	}
	if err := json.Unmarshal(trimmed, &head); err != nil {
		return msg, fmt.Errorf("decode message: %w", err)
	}
	if head.Type == nil {
		return msg, ErrMissingKind
	}

	if err := json.Unmarshal(trimmed, &msg); err != nil {
		return msg, fmt.Errorf("decode message: %w", err)
	}
	return msg, nil
}

// Encode serializes the message to its wire text.
func (m Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// BoolValue interprets the payload as a boolean. Missing or non-boolean
// payloads read as false.
func (m Message) BoolValue() bool {
	var v bool
	if len(m.Value) == 0 {
		return false
	}
	if err := json.Unmarshal(m.Value, &v); err != nil {
		return false
	}
	return v
}

// StringValue interprets the payload as a string.
func (m Message) StringValue() (string, bool) {
	var v string
	if len(m.Value) == 0 {
		return "", false
	}
	if err := json.Unmarshal(m.Value, &v); err != nil {
		return "", false
	}
	return v, true
}
