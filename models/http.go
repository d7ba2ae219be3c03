// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NoteRequest is the body of the write-path POST request.
// Text always carries an encrypted envelope, so Encrypted is always true.
type NoteRequest struct {
	Channel   string `json:"channel"`
	Text      string `json:"text"`
	TS        string `json:"ts"`
	Encrypted bool   `json:"encrypted"`
}

// NoteResponse is the optional body the remote store answers with.
type NoteResponse struct {
	ID *int64 `json:"id,omitempty"`
}

// CaptureRequest is the plaintext request accepted by the local forwarding shim.
type CaptureRequest struct {
	Text    string `json:"text"`
	Channel string `json:"channel"`

	// TS is optional; the current time is used when it is empty.
	TS string `json:"ts,omitempty"`
}
