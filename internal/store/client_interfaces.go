// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// NoteCache is the local durable copy of the user's notes plus the sync cursor.
//
// All mutations are serialized by the cache and each runs in one transaction.
// Reads may run concurrently with writes.
type NoteCache interface {
	// UpsertNote inserts note or replaces the note with the same id.
	// Publishes [EventNoteInserted] after the write is durable. Re-delivering
	// a note identical to the cached one writes nothing and publishes nothing.
	UpsertNote(ctx context.Context, note models.Note) error

	// UpsertNotes writes every note in one transaction: either all of them
	// become visible or none does. Publishes [EventNotesBatchInserted] with
	// the whole batch after commit, duplicates included. An empty batch is a
	// no-op.
	UpsertNotes(ctx context.Context, notes []models.Note) error

	// SearchNotes returns notes whose plaintext contains query, newest first,
	// at most limit of them (see [DefaultLimit] and [MaxLimit]). A blank query
	// returns an empty result without touching the database.
	SearchNotes(ctx context.Context, query string, limit int) ([]models.Note, error)

	// NotesInWindow returns notes created within the last daysBack days,
	// newest first, at most limit of them.
	NotesInWindow(ctx context.Context, daysBack int, limit int) ([]models.Note, error)

	// Count returns the number of cached notes.
	Count(ctx context.Context) (int64, error)

	// OldestCreatedAt returns the creation time of the oldest note, or nil
	// when the cache is empty.
	OldestCreatedAt(ctx context.Context) (*time.Time, error)

	// Stats summarises the cache.
	Stats(ctx context.Context) (models.Stats, error)

	// GetCursor returns the sync cursor.
	GetCursor(ctx context.Context) (models.SyncCursor, error)

	// SetCursor advances the cursor to id. A smaller id never moves it back.
	SetCursor(ctx context.Context, id int64) error

	// ResetCursor sets the cursor back to [models.NoCursor] and keeps all notes.
	ResetCursor(ctx context.Context) error

	// ClearAll deletes every note and resets the cursor in one transaction.
	ClearAll(ctx context.Context) error

	// Subscribe registers a change listener; see package events for the
	// delivery guarantees.
	Subscribe(buffer int) (<-chan CacheEvent, func())

	// Close closes subscriber channels and the database.
	Close() error
}
