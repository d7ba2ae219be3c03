// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	notesTable = "notes"

	// upsertNote leaves an identical row untouched, so re-delivery reports
	// zero affected rows.
	upsertNote = `
		INSERT INTO notes (
			id,
			content,
			channel,
			created_at,
			ciphertext
		) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			content    = excluded.content,
			channel    = excluded.channel,
			created_at = excluded.created_at,
			ciphertext = excluded.ciphertext
		WHERE notes.content    IS NOT excluded.content
		   OR notes.channel    IS NOT excluded.channel
		   OR notes.created_at IS NOT excluded.created_at
		   OR notes.ciphertext IS NOT excluded.ciphertext;`

	countNotes = `SELECT COUNT(*) FROM notes;`

	oldestNote = `SELECT MIN(created_at) FROM notes;`

	deleteAllNotes = `DELETE FROM notes;`

	getCursor = `
		SELECT
			last_sync_id,
			last_sync_at
		FROM sync_state
		WHERE id = 1;`

	// setCursor never moves the cursor backwards.
	setCursor = `
		INSERT INTO sync_state (id, last_sync_id, last_sync_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_sync_id = MAX(sync_state.last_sync_id, excluded.last_sync_id),
			last_sync_at = excluded.last_sync_at;`

	resetCursor = `
		INSERT INTO sync_state (id, last_sync_id, last_sync_at)
		VALUES (1, 0, NULL)
		ON CONFLICT(id) DO UPDATE SET
			last_sync_id = 0,
			last_sync_at = NULL;`
)

// noteColumns is the column order every note SELECT scans in.
var noteColumns = []string{"id", "content", "channel", "created_at", "ciphertext"}
