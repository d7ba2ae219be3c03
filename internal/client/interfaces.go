// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of the long-running client.
type Client interface {
	// Run keeps the client synced and serving until ctx is cancelled.
	Run(ctx context.Context) error

	// Close releases the local cache.
	Close() error
}
