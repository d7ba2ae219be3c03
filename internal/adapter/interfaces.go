// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client engine and
// the remote note store.
//
// [NoteAdapter] is the HTTP write path: it POSTs one encrypted note and
// returns the id the remote store assigned, if any. [SyncDialer] opens the
// duplex sync channel and returns a [SyncConn] that the sync engine reads
// protocol messages from.
//
// Non-2xx responses are mapped to the sentinel errors in errors.go by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// NoteAdapter sends notes to the remote store over HTTP.
type NoteAdapter interface {
	// PostNote POSTs req to endpoint with "Authorization: Bearer <token>".
	// Any 2xx status is a success; the response body is decoded best-effort
	// and an undecodable body yields an empty [models.NoteResponse]. Non-2xx
	// statuses return a wrapped sentinel from this package, failures before a
	// response arrives wrap [ErrTransport].
	PostNote(ctx context.Context, endpoint, token string, req models.NoteRequest) (models.NoteResponse, error)
}

// SyncDialer opens the duplex sync channel.
type SyncDialer interface {
	// Dial connects to rawURL. A failed upgrade with an HTTP response is
	// mapped like any other non-2xx status.
	Dial(ctx context.Context, rawURL string, header http.Header) (SyncConn, error)
}

// SyncConn is one established duplex channel. ReadMessage must be called
// from a single goroutine; WriteJSON and Close are safe for concurrent use.
type SyncConn interface {
	// ReadMessage blocks until the next text or binary frame arrives.
	ReadMessage() ([]byte, error)
	// WriteJSON sends v as one text frame.
	WriteJSON(v any) error
	// Close closes the channel. It is idempotent.
	Close() error
}
