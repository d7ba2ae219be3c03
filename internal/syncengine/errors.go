// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncengine

import "errors"

var (
	// ErrIncompleteRound is reported by a sync round in which a whole batch
	// could not be decoded. The notes that did arrive are stored, the cursor
	// stays put.
	ErrIncompleteRound = errors.New("sync round incomplete, cursor kept")

	// ErrPeerUnresponsive closes a session that received nothing for
	// several heartbeat intervals.
	ErrPeerUnresponsive = errors.New("remote store stopped responding")
)
