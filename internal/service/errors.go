// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Configuration errors detected before any I/O.
var (
	ErrEndpointNotConfigured = errors.New("note endpoint is not configured")
	ErrTokenNotConfigured    = errors.New("api token is not configured")
	ErrTokenExpired          = errors.New("api token is expired")
	ErrPasscodeNotConfigured = errors.New("passcode is not configured")
)

// Validation errors.
var (
	ErrEmptyContent = errors.New("note content is empty")
	ErrEncryption   = errors.New("note encryption failed")
	ErrInvalidQuery = errors.New("invalid query")
)

// ErrVersionIsNotSpecified is returned when the binary was built without a
// version string.
var ErrVersionIsNotSpecified = errors.New("app version is not specified")

// Import errors reported per line.
var (
	ErrImportLineMalformed = errors.New("malformed import line")
	ErrImportLineRejected  = errors.New("import line rejected")
	ErrImportLineTooLong   = errors.New("import line too long")
)
