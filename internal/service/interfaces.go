// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client's use cases on top of the cipher,
// the local cache and the transport adapters.
//
// [NoteService] is the encrypted write path shared by every entry point
// (CLI, forwarding shim, tool adapter, importer). [NoteQueryService] serves
// reads from the local cache. [ImportService] replays NDJSON exports through
// the write path.
package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoteService sends notes to the remote store. No method returns an error or
// panics; every outcome is a [models.Result].
type NoteService interface {
	// Submit encrypts plaintext under the configured passcode and posts it.
	Submit(ctx context.Context, plaintext, channel string, ts time.Time) models.Result

	// SubmitPreEncrypted posts an envelope that is already encrypted, such as
	// a note from an export, without encrypting it again.
	SubmitPreEncrypted(ctx context.Context, ciphertext, channel string, ts time.Time) models.Result

	// SubmitAsync runs Submit on its own goroutine. The returned channel
	// receives exactly one Result and is then closed.
	SubmitAsync(ctx context.Context, plaintext, channel string, ts time.Time) <-chan models.Result

	// SubmitPreEncryptedAsync is the asynchronous form of SubmitPreEncrypted.
	SubmitPreEncryptedAsync(ctx context.Context, ciphertext, channel string, ts time.Time) <-chan models.Result
}

// NoteQueryService reads the local cache.
type NoteQueryService interface {
	Search(ctx context.Context, query string, limit int) ([]models.Note, error)
	Recent(ctx context.Context, days int, limit int) ([]models.Note, error)
	Stats(ctx context.Context) (models.Stats, error)

	// Reset forgets the sync cursor so the next handshake replays the full
	// history. With clearNotes the cached notes are deleted as well.
	Reset(ctx context.Context, clearNotes bool) error
}

// ImportService replays exported notes through [NoteService].
type ImportService interface {
	ImportNDJSON(ctx context.Context, r io.Reader) (models.ImportReport, error)
}
