// Package client provides WebSocket and HTTP clients for folio-server.
// Message types mirror the server's wire protocol.
package client

import (
	"encoding/json"
	"fmt"

	"github.com/zhaoyu-io/folio/internal/content"
)

// MessageType identifies the kind of WebSocket message.
type MessageType string

const (
	MsgSnapshot MessageType = "snapshot"
	MsgUpdate   MessageType = "update"
	MsgError    MessageType = "error"
)

// WSMessage is the envelope for all WebSocket messages.
type WSMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ContentPayload is carried by snapshot and update messages.
type ContentPayload struct {
	ClientID string           `json:"clientId,omitempty"`
	Version  uint64           `json:"version"`
	Content  *content.Content `json:"content"`
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method string
	Path   string
	Code   int
	// Message is the envelope's error text, or the raw body when the reply
	// was not an envelope.
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.Path, e.Code)
	}
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.Path, e.Code, e.Message)
}
