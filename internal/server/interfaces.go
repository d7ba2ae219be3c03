// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

type Server interface {
	// Run serves until ctx is cancelled, then shuts down gracefully.
	Run(ctx context.Context) error

	// Addr is the bound listen address.
	Addr() string
}
