// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrNotConfigured is returned when no passcode has been set.
	ErrNotConfigured = errors.New("passcode not configured")

	// ErrInvalidFormat is returned when the envelope is not valid base64 or is
	// shorter than the fixed header plus the authentication tag.
	ErrInvalidFormat = errors.New("invalid envelope format")

	// ErrAuthentication is returned when the AEAD tag does not match: wrong
	// passcode or a modified envelope.
	ErrAuthentication = errors.New("authentication failed")

	// ErrUnsupportedScheme is returned for any envelope version other than the current one.
	ErrUnsupportedScheme = errors.New("unsupported scheme, re-encryption required")

	// ErrStaleEnvelope is returned when the embedded timestamp is older than
	// the configured maximum age.
	ErrStaleEnvelope = errors.New("envelope timestamp is implausibly old")
)
