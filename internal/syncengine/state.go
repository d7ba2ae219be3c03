// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncengine

// State is the connection state of the [Engine].
type State int

const (
	// StateDisconnected is the initial state and the state after Disconnect
	// or a lost connection.
	StateDisconnected State = iota
	// StateConnecting means a dial is in flight.
	StateConnecting
	// StateConnected means the handshake was sent and the engine is idle.
	StateConnected
	// StateSyncing means sync batches are being received.
	StateSyncing
	// StateReconnecting means a reconnect is scheduled.
	StateReconnecting
	// StateFailed means reconnect attempts are exhausted. Only an explicit
	// Connect leaves it.
	StateFailed
	// StateShutDown is terminal.
	StateShutDown
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateSyncing:
		return "syncing"
	case StateReconnecting:
		return "reconnecting"
	case StateFailed:
		return "failed"
	case StateShutDown:
		return "shut_down"
	default:
		return "unknown"
	}
}

// active reports whether a connection exists or is being established.
func (s State) active() bool {
	return s == StateConnecting || s == StateConnected || s == StateSyncing
}
