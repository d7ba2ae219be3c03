// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncengine

import (
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

// EventKind identifies an engine [Event].
type EventKind string

const (
	EventStateChanged       EventKind = "state_changed"
	EventSyncProgress       EventKind = "sync_progress"
	EventSyncCompleted      EventKind = "sync_completed"
	EventNoteReceived       EventKind = "note_received"
	EventServerError        EventKind = "server_error"
	EventNoteAcked          EventKind = "note_acked"
	EventReconnectScheduled EventKind = "reconnect_scheduled"
	EventReconnectExhausted EventKind = "reconnect_exhausted"
)

// Event is published to every subscriber of the engine. Only the fields
// relevant to Kind are set.
//
// StateChanged, ReconnectScheduled and ReconnectExhausted are published from
// whichever goroutine changed the state. All other kinds are published from
// the connection's read goroutine, in the order their messages arrived.
type Event struct {
	Kind EventKind

	// StateChanged.
	State State

	// SyncProgress: batches received so far in the current round, the total
	// announced by the remote store and the notes accumulated so far.
	BatchesReceived int
	TotalBatches    int
	NotesPending    int

	// SyncCompleted: notes flushed to the cache and the cursor after the
	// round. Err is set when the flush failed and the cursor was kept.
	NotesSynced int
	LastSyncID  int64

	// NoteReceived.
	Note *models.Note

	// ServerError.
	Message string

	// NoteAcked.
	AckID      int64
	AckSuccess bool

	// ReconnectScheduled: the attempt number (starting at 1) and the delay
	// before it.
	Attempt int
	Delay   time.Duration

	Err error
}
