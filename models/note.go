// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// DefaultChannel is the channel tag used when a note is submitted without one.
const DefaultChannel = "inbox"

// NormalizeChannel trims channel and falls back to [DefaultChannel].
func NormalizeChannel(channel string) string {
	if c := strings.TrimSpace(channel); c != "" {
		return c
	}
	return DefaultChannel
}

// Note is a single captured note as it is kept in the local cache.
//
// ID is assigned by the remote store and is zero until the note has been
// acknowledged. Content is always plaintext; Ciphertext optionally retains the
// envelope the note arrived in and must decrypt to Content under the current
// passcode.
type Note struct {
	ID         int64     `json:"id"`
	Content    string    `json:"content"`
	Channel    string    `json:"channel"`
	CreatedAt  time.Time `json:"created_at"`
	Ciphertext *string   `json:"ciphertext,omitempty"`
}

// Stats is a summary of the local cache used by the CLI and the forwarding shim.
type Stats struct {
	Count  int64      `json:"count"`
	Oldest *time.Time `json:"oldest,omitempty"`
	Cursor SyncCursor `json:"cursor"`
}
