// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors produced by mapHTTPError from non-2xx responses. They are
// wrapped together with the response body, so callers match with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected http status")
)

// Transport-level errors.
var (
	// ErrTransport wraps failures that happened before any response arrived:
	// DNS, TLS, refused connections and timeouts.
	ErrTransport = errors.New("transport failure")

	// ErrInvalidEndpoint is returned for an endpoint that is not an absolute
	// http(s) or ws(s) URL.
	ErrInvalidEndpoint = errors.New("invalid endpoint")

	// ErrConnClosed is returned by writes on a closed sync connection.
	ErrConnClosed = errors.New("sync connection closed")
)
