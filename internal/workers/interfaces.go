// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's long-lived background components, the
// sync engine and the forwarding shim, under one errgroup.
package workers

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/syncengine"
)

// Worker is a background component. Run blocks until ctx is cancelled or the
// worker fails, and must release its resources before returning.
type Worker interface {
	Run(ctx context.Context) error
}

// SyncEngine is the part of [syncengine.Engine] the sync worker drives.
type SyncEngine interface {
	Connect()
	Shutdown()
	Subscribe(buffer int) (<-chan syncengine.Event, func())
}
