// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// ImportLine is one line of an NDJSON export. Older exports name the fields
// content and timestamp instead of text and ts; both spellings are accepted.
type ImportLine struct {
	Text      string   `json:"text"`
	Content   string   `json:"content"`
	Channel   string   `json:"channel"`
	TS        WireTime `json:"ts"`
	Timestamp WireTime `json:"timestamp"`
	Encrypted bool     `json:"encrypted"`
}

// Body returns the note text under whichever field name the line used.
func (l ImportLine) Body() string {
	if strings.TrimSpace(l.Text) != "" {
		return l.Text
	}
	return l.Content
}

// Time returns the note timestamp, or fallback when the line has none.
func (l ImportLine) Time(fallback time.Time) time.Time {
	switch {
	case !l.TS.IsZero():
		return l.TS.Time
	case !l.Timestamp.IsZero():
		return l.Timestamp.Time
	default:
		return fallback
	}
}

// ImportError describes one rejected import line.
type ImportError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportReport summarizes an import run. Blank lines are not counted.
type ImportReport struct {
	Total     int           `json:"total"`
	Submitted int           `json:"submitted"`
	Failed    int           `json:"failed"`
	Errors    []ImportError `json:"errors,omitempty"`
}
