// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/models"
)

// User-facing messages. Diagnostic detail goes to the log, not here.
const (
	MsgNoteSent              = "Note sent"
	MsgEndpointNotConfigured = "Note endpoint not configured. Set it in settings."
	MsgTokenNotConfigured    = "API token not configured. Set it in settings."
	MsgTokenExpired          = "API token expired. Update it in settings."
	MsgPasscodeNotConfigured = "Passcode not configured. Set it in settings."
	MsgEmptyContent          = "Nothing to send: the note is empty."
	MsgEncryptionFailed      = "Could not encrypt the note."
	MsgInvalidEndpoint       = "Note endpoint is not a valid http(s) URL."
	MsgUnauthorized          = "The note server rejected the API token."
	MsgForbidden             = "The note server denied access."
	MsgRejected              = "The note server rejected the note."
	MsgTooLarge              = "The note is too large for the note server."
	MsgRateLimited           = "Too many notes sent. Try again later."
	MsgServerError           = "The note server failed. Try again later."
	MsgTimeout               = "The note server did not answer in time."
	MsgUnreachable           = "Could not reach the note server."
	MsgCancelled             = "Sending was cancelled."
	MsgUnknownFailure        = "Failed to send the note."
)

// mapSubmitError translates a write-path error into the failed Result shown
// to the user.
func mapSubmitError(err error) models.Result {
	switch {
	case errors.Is(err, ErrEndpointNotConfigured):
		return models.Failed(models.ReasonConfiguration, MsgEndpointNotConfigured)
	case errors.Is(err, ErrTokenNotConfigured):
		return models.Failed(models.ReasonConfiguration, MsgTokenNotConfigured)
	case errors.Is(err, ErrTokenExpired):
		return models.Failed(models.ReasonConfiguration, MsgTokenExpired)
	case errors.Is(err, ErrPasscodeNotConfigured), errors.Is(err, crypto.ErrNotConfigured):
		return models.Failed(models.ReasonConfiguration, MsgPasscodeNotConfigured)
	case errors.Is(err, adapter.ErrInvalidEndpoint):
		return models.Failed(models.ReasonConfiguration, MsgInvalidEndpoint)

	case errors.Is(err, ErrEmptyContent):
		return models.Failed(models.ReasonValidation, MsgEmptyContent)
	case errors.Is(err, ErrEncryption):
		return models.Failed(models.ReasonEncryption, MsgEncryptionFailed)

	case errors.Is(err, adapter.ErrUnauthorized):
		return models.Failed(models.ReasonRejected, MsgUnauthorized)
	case errors.Is(err, adapter.ErrForbidden):
		return models.Failed(models.ReasonRejected, MsgForbidden)
	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return models.Failed(models.ReasonRejected, MsgTooLarge)
	case errors.Is(err, adapter.ErrTooManyRequests):
		return models.Failed(models.ReasonRejected, MsgRateLimited)
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrConflict):
		return models.Failed(models.ReasonRejected, MsgRejected)
	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrUnexpectedStatus):
		return models.Failed(models.ReasonRejected, MsgServerError)

	case errors.Is(err, context.Canceled):
		return models.Failed(models.ReasonTransport, MsgCancelled)
	case errors.Is(err, context.DeadlineExceeded):
		return models.Failed(models.ReasonTransport, MsgTimeout)
	case errors.Is(err, adapter.ErrTransport):
		return models.Failed(models.ReasonTransport, MsgUnreachable)
	}

	return models.Failed(models.ReasonTransport, MsgUnknownFailure)
}
