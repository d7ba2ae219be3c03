// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a non-positive request timeout or a sync URL that is not ws/wss).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSyncConfigs indicates invalid sync engine settings
	// (for example, a zero heartbeat or a max delay below the initial delay).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidForwarderConfigs indicates an unusable forwarding shim address.
	ErrInvalidForwarderConfigs = errors.New("invalid forwarder configuration")
)
