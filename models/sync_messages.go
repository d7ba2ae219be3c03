// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// MessageType is the "type" discriminator of duplex channel messages.
type MessageType string

// Client → server.
const (
	MessageHandshake MessageType = "handshake"
	MessageNewNote   MessageType = "new_note"
)

// Server → client.
const (
	MessageSyncBatch      MessageType = "sync_batch"
	MessageSyncComplete   MessageType = "sync_complete"
	MessageRealtimeUpdate MessageType = "realtime_update"
	MessageNewNoteAck     MessageType = "new_note_ack"
	MessageError          MessageType = "error"
)

// Both directions.
const (
	MessagePing MessageType = "ping"
	MessagePong MessageType = "pong"
)

// MessageHeader is decoded first to find out how to decode the rest.
type MessageHeader struct {
	Type MessageType `json:"type"`
}

// HandshakeMessage is the first message sent after the channel opens.
type HandshakeMessage struct {
	Type       MessageType `json:"type"`
	ClientID   string      `json:"client_id"`
	LastSyncID int64       `json:"last_sync_id"`
}

// ControlMessage is a payload-less message such as ping or pong.
type ControlMessage struct {
	Type MessageType `json:"type"`
}

// WireNote is a note as delivered by the remote store. Content is an
// encrypted envelope.
type WireNote struct {
	ID        int64    `json:"id"`
	Content   string   `json:"content"`
	Channel   string   `json:"channel"`
	CreatedAt WireTime `json:"created_at"`
}

// SyncBatchMessage carries one page of missed history. Notes stay raw so
// each one can be decoded, and rejected, on its own.
type SyncBatchMessage struct {
	BatchID      int               `json:"batch_id"`
	TotalBatches int               `json:"total_batches"`
	Notes        []json.RawMessage `json:"notes"`
}

// SyncCompleteMessage closes a sync round.
type SyncCompleteMessage struct {
	TotalSynced int   `json:"total_synced"`
	LastSyncID  int64 `json:"last_sync_id"`
}

// RealtimeUpdateMessage pushes a single freshly stored note.
type RealtimeUpdateMessage struct {
	Note json.RawMessage `json:"note"`
}

// DecodeWireNote decodes one note of a sync_batch or realtime_update.
func DecodeWireNote(raw json.RawMessage) (WireNote, error) {
	var note WireNote
	if err := json.Unmarshal(raw, &note); err != nil {
		return WireNote{}, fmt.Errorf("decode note: %w", err)
	}
	return note, nil
}

// NewNoteAckMessage acknowledges a note submitted over the duplex channel.
type NewNoteAckMessage struct {
	ID      int64 `json:"id"`
	Success bool  `json:"success"`
}

// ErrorMessage is a server-reported error. It does not close the channel.
type ErrorMessage struct {
	Message string `json:"message"`
}

// WireTime accepts created_at as an RFC 3339 string, as an SQL datetime
// string (read as UTC) or as a unix timestamp number (seconds or
// milliseconds).
type WireTime struct {
	time.Time
}

// wireTimeLayouts are tried in order. Layouts without a zone parse as UTC.
var wireTimeLayouts = []string{
	time.RFC3339Nano,
	time.DateTime,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
}

// msThreshold separates unix seconds from unix milliseconds. Second-based
// values stay below it until the year 5138.
const msThreshold = 100_000_000_000

// UnmarshalJSON implements [json.Unmarshaler].
func (t *WireTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			t.Time = time.Time{}
			return nil
		}
		for _, layout := range wireTimeLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				t.Time = parsed.UTC()
				return nil
			}
		}
		return fmt.Errorf("parse created_at %q: unsupported layout", s)
	}

	n, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("parse created_at %s: %w", data, err)
	}
	if n >= msThreshold {
		t.Time = time.UnixMilli(int64(n)).UTC()
	} else {
		t.Time = time.Unix(int64(n), 0).UTC()
	}
	return nil
}

// MarshalJSON implements [json.Marshaler]. Times are always written as RFC 3339.
func (t WireTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}
