package ws

import "github.com/zhaoyu-io/folio/internal/content"

type MessageType string

const (
	// MsgSnapshot carries the full content. Sent on connect and then
	// periodically so a client that missed an update catches up.
	MsgSnapshot MessageType = "snapshot"
	// MsgUpdate carries the full content after a reload.
	MsgUpdate MessageType = "update"
	MsgError  MessageType = "error"
)

type WSMessage struct {
	Type    MessageType `json:"type" cbor:"type"`
	Payload interface{} `json:"payload" cbor:"payload"`
}

type SnapshotPayload struct {
	ClientID string           `json:"clientId,omitempty" cbor:"clientId,omitempty"`
	Version  uint64           `json:"version" cbor:"version"`
	Content  *content.Content `json:"content" cbor:"content"`
}

type ErrorPayload struct {
	Message string `json:"message" cbor:"message"`
}
