// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncengine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/models"
)

// MissedHeartbeats is how many heartbeat intervals may pass without any
// inbound message before the session is considered dead.
const MissedHeartbeats = 3

// session is one established connection. Its accumulator is touched only by
// the read goroutine.
type session struct {
	conn   adapter.SyncConn
	ctx    context.Context
	cancel context.CancelFunc

	// lastSeen is the unix-nano time of the last inbound message.
	lastSeen atomic.Int64

	pending         []models.Note
	batchesReceived int
	totalBatches    int
	incomplete      bool

	closeOnce sync.Once
	causeMu   sync.Mutex
	cause     error
}

func newSession(parent context.Context, conn adapter.SyncConn) *session {
	ctx, cancel := context.WithCancel(parent)
	s := &session{conn: conn, ctx: ctx, cancel: cancel}
	s.touch()
	return s
}

// touch records inbound traffic.
func (s *session) touch() {
	s.lastSeen.Store(time.Now().UnixNano())
}

func (s *session) silentFor(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, s.lastSeen.Load()))
}

// resetRound drops the accumulator and the batch counters.
func (s *session) resetRound() {
	s.pending = nil
	s.batchesReceived = 0
	s.totalBatches = 0
	s.incomplete = false
}

// close stops the heartbeat and closes the connection, which unblocks the
// read goroutine. It is idempotent.
func (s *session) close() {
	s.closeWith(nil)
}

// closeWith is close that remembers why the session ended. Only the first
// call counts.
func (s *session) closeWith(cause error) {
	s.closeOnce.Do(func() {
		s.causeMu.Lock()
		s.cause = cause
		s.causeMu.Unlock()
		s.cancel()
		_ = s.conn.Close()
	})
}

// closeCause returns the error given to closeWith, if any.
func (s *session) closeCause() error {
	s.causeMu.Lock()
	defer s.causeMu.Unlock()
	return s.cause
}

// heartbeat sends a ping every interval until the session ends. A failed
// write, or MissedHeartbeats intervals without any inbound message, closes
// the session so the read goroutine notices the loss.
func (s *session) heartbeat(interval time.Duration, onError func(error)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	deadline := MissedHeartbeats * interval
	for {
		select {
		case <-s.ctx.Done():
			return
		case now := <-ticker.C:
			if s.silentFor(now) >= deadline {
				onError(ErrPeerUnresponsive)
				s.closeWith(ErrPeerUnresponsive)
				return
			}
			if err := s.conn.WriteJSON(models.ControlMessage{Type: models.MessagePing}); err != nil {
				onError(err)
				s.closeWith(err)
				return
			}
		}
	}
}
