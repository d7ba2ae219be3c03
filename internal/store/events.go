// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-note-keeper/models"

// CacheEventKind distinguishes cache change notifications.
type CacheEventKind int

const (
	// EventNoteInserted follows every UpsertNote that changed the cache.
	// Note is set.
	EventNoteInserted CacheEventKind = iota + 1

	// EventNotesBatchInserted follows every committed non-empty UpsertNotes.
	// Notes holds the whole batch.
	EventNotesBatchInserted

	// EventCacheCleared follows ClearAll.
	EventCacheCleared
)

// String implements [fmt.Stringer].
func (k CacheEventKind) String() string {
	switch k {
	case EventNoteInserted:
		return "inserted"
	case EventNotesBatchInserted:
		return "batch_inserted"
	case EventCacheCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// CacheEvent is delivered to cache subscribers after the corresponding write
// has been committed. Events are published on the writing goroutine, in
// commit order.
type CacheEvent struct {
	Kind  CacheEventKind
	Note  *models.Note
	Notes []models.Note
}
