// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

type noteService struct {
	cipher      crypto.NoteCipher
	adapter     adapter.NoteAdapter
	credentials config.Credentials

	logger *logger.Logger
	now    func() time.Time
}

// NewNoteService builds the encrypted write path. Credentials are read on
// every submission, so changes to them apply to the next call.
func NewNoteService(cipher crypto.NoteCipher, noteAdapter adapter.NoteAdapter, credentials config.Credentials, logger *logger.Logger) NoteService {
	return &noteService{
		cipher:      cipher,
		adapter:     noteAdapter,
		credentials: credentials,
		logger:      logger,
		now:         time.Now,
	}
}

// Submit implements [NoteService].
func (s *noteService) Submit(ctx context.Context, plaintext, channel string, ts time.Time) models.Result {
	const fn = "noteService.Submit"

	endpoint, token, err := s.checkTransport()
	if err != nil {
		return s.fail(ctx, fn, err)
	}
	passcode := s.credentials.Passcode()
	if passcode == "" {
		return s.fail(ctx, fn, ErrPasscodeNotConfigured)
	}
	if strings.TrimSpace(plaintext) == "" {
		return s.fail(ctx, fn, ErrEmptyContent)
	}

	envelope, err := s.cipher.Encrypt(passcode, plaintext)
	if err != nil {
		return s.fail(ctx, fn, fmt.Errorf("%w: %w", ErrEncryption, err))
	}

	return s.post(ctx, fn, endpoint, token, envelope, plaintext, channel, ts)
}

// SubmitPreEncrypted implements [NoteService].
func (s *noteService) SubmitPreEncrypted(ctx context.Context, ciphertext, channel string, ts time.Time) models.Result {
	const fn = "noteService.SubmitPreEncrypted"

	endpoint, token, err := s.checkTransport()
	if err != nil {
		return s.fail(ctx, fn, err)
	}
	ciphertext = strings.TrimSpace(ciphertext)
	if ciphertext == "" {
		return s.fail(ctx, fn, ErrEmptyContent)
	}

	return s.post(ctx, fn, endpoint, token, ciphertext, "", channel, ts)
}

// SubmitAsync implements [NoteService].
func (s *noteService) SubmitAsync(ctx context.Context, plaintext, channel string, ts time.Time) <-chan models.Result {
	return async(func() models.Result { return s.Submit(ctx, plaintext, channel, ts) })
}

// SubmitPreEncryptedAsync implements [NoteService].
func (s *noteService) SubmitPreEncryptedAsync(ctx context.Context, ciphertext, channel string, ts time.Time) <-chan models.Result {
	return async(func() models.Result { return s.SubmitPreEncrypted(ctx, ciphertext, channel, ts) })
}

// checkTransport validates the settings every submission needs.
func (s *noteService) checkTransport() (endpoint, token string, err error) {
	endpoint = strings.TrimSpace(s.credentials.Endpoint())
	if endpoint == "" {
		return "", "", ErrEndpointNotConfigured
	}
	token = strings.TrimSpace(s.credentials.Token())
	if token == "" {
		return "", "", ErrTokenNotConfigured
	}
	if utils.IsTokenExpired(token, s.now()) {
		return "", "", ErrTokenExpired
	}
	return endpoint, token, nil
}

func (s *noteService) post(ctx context.Context, fn, endpoint, token, envelope, echo, channel string, ts time.Time) models.Result {
	if ts.IsZero() {
		ts = s.now()
	}

	req := models.NoteRequest{
		Channel:   models.NormalizeChannel(channel),
		Text:      envelope,
		TS:        ts.UTC().Format(time.RFC3339),
		Encrypted: true,
	}

	resp, err := s.adapter.PostNote(ctx, endpoint, token, req)
	if err != nil {
		return s.fail(ctx, fn, err)
	}

	event := logger.FromContextOr(ctx, s.logger).Debug().Str("func", fn).Str("channel", req.Channel)
	if resp.ID != nil {
		event = event.Int64("assigned_id", *resp.ID)
	}
	event.Msg("note sent")

	return models.Succeeded(MsgNoteSent, echo, resp.ID)
}

func (s *noteService) fail(ctx context.Context, fn string, err error) models.Result {
	result := mapSubmitError(err)
	logger.FromContextOr(ctx, s.logger).Warn().
		Err(err).
		Str("func", fn).
		Str("reason", string(result.Reason)).
		Msg("note submission failed")
	return result
}

// async runs submit on a new goroutine. The channel is buffered so the
// goroutine never blocks on a caller that stopped listening.
func async(submit func() models.Result) <-chan models.Result {
	out := make(chan models.Result, 1)
	go func() {
		defer close(out)
		out <- submit()
	}()
	return out
}
