// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NoCursor is the sentinel cursor value meaning "nothing has been synced yet".
const NoCursor int64 = 0

// SyncCursor is the single-row pointer to the last remote id durably applied
// to the cache. It only moves forward unless explicitly reset.
type SyncCursor struct {
	LastSyncID int64      `json:"last_sync_id"`
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`
}

// IsZero reports whether the cursor still holds the sentinel value.
func (c SyncCursor) IsZero() bool {
	return c.LastSyncID == NoCursor
}
