// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncengine

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

// handleMessage dispatches one inbound message. Malformed and unknown
// messages are logged and dropped; they never end the session.
func (e *Engine) handleMessage(sess *session, data []byte) {
	var header models.MessageHeader
	if err := json.Unmarshal(data, &header); err != nil {
		e.logger.Warn().Err(err).Str("func", "Engine.handleMessage").Msg("dropping malformed message")
		return
	}

	var err error
	switch header.Type {
	case models.MessageSyncBatch:
		err = e.handleSyncBatch(sess, data)
	case models.MessageSyncComplete:
		err = e.handleSyncComplete(sess, data)
	case models.MessageRealtimeUpdate:
		err = e.handleRealtimeUpdate(sess, data)
	case models.MessageNewNoteAck:
		err = e.handleNewNoteAck(sess, data)
	case models.MessageError:
		err = e.handleServerError(sess, data)
	case models.MessagePing:
		err = sess.conn.WriteJSON(models.ControlMessage{Type: models.MessagePong})
	case models.MessagePong:
	default:
		e.logger.Debug().
			Str("func", "Engine.handleMessage").
			Str("type", string(header.Type)).
			Msg("ignoring unknown message type")
	}

	if err != nil {
		e.logger.Warn().
			Err(err).
			Str("func", "Engine.handleMessage").
			Str("type", string(header.Type)).
			Msg("failed to handle message")
	}
}

// handleSyncBatch decodes and decrypts each note on its own, so one bad note
// never costs the rest of the batch. A batch that cannot be decoded at all
// marks the round incomplete.
func (e *Engine) handleSyncBatch(sess *session, data []byte) error {
	var msg models.SyncBatchMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		sess.incomplete = true
		return fmt.Errorf("%w: %w", ErrIncompleteRound, err)
	}

	for _, raw := range msg.Notes {
		wire, err := models.DecodeWireNote(raw)
		if err != nil {
			e.logger.Warn().Err(err).Str("func", "Engine.handleSyncBatch").Msg("dropping note that failed to decode")
			continue
		}
		note, ok := e.decryptNote(wire)
		if !ok {
			continue
		}
		sess.pending = append(sess.pending, note)
	}
	sess.batchesReceived++
	if msg.TotalBatches > sess.totalBatches {
		sess.totalBatches = msg.TotalBatches
	}

	e.setStateIfCurrent(sess, StateConnected, StateSyncing)
	e.publishIfCurrent(sess, Event{
		Kind:            EventSyncProgress,
		BatchesReceived: sess.batchesReceived,
		TotalBatches:    sess.totalBatches,
		NotesPending:    len(sess.pending),
	})

	e.logger.Debug().
		Str("func", "Engine.handleSyncBatch").
		Int("batch_id", msg.BatchID).
		Int("total_batches", msg.TotalBatches).
		Int("notes", len(msg.Notes)).
		Int("pending", len(sess.pending)).
		Msg("sync batch received")
	return nil
}

// handleSyncComplete flushes the accumulator in one transaction and only
// then advances the cursor. A failed flush or an incomplete round keeps the
// cursor where it was so the next handshake asks for the same history again.
func (e *Engine) handleSyncComplete(sess *session, data []byte) error {
	var msg models.SyncCompleteMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return err
	}

	pending, incomplete := sess.pending, sess.incomplete
	sess.resetRound()

	var flushErr error
	if len(pending) > 0 {
		flushErr = e.cache.UpsertNotes(sess.ctx, pending)
	}
	if flushErr == nil && incomplete {
		flushErr = ErrIncompleteRound
	}
	if flushErr == nil && msg.TotalSynced > 0 && msg.LastSyncID > 0 {
		flushErr = e.cache.SetCursor(sess.ctx, msg.LastSyncID)
	}

	lastSyncID := models.NoCursor
	if cursor, err := e.cache.GetCursor(sess.ctx); err == nil {
		lastSyncID = cursor.LastSyncID
	}

	e.setStateIfCurrent(sess, StateSyncing, StateConnected)
	e.publishIfCurrent(sess, Event{
		Kind:        EventSyncCompleted,
		NotesSynced: len(pending),
		LastSyncID:  lastSyncID,
		Err:         flushErr,
	})

	if flushErr != nil {
		e.logger.Err(flushErr).
			Str("func", "Engine.handleSyncComplete").
			Int("notes", len(pending)).
			Msg("sync round not fully applied, cursor kept")
		return nil
	}

	e.logger.Info().
		Str("func", "Engine.handleSyncComplete").
		Int("notes", len(pending)).
		Int("total_synced", msg.TotalSynced).
		Int64("last_sync_id", lastSyncID).
		Msg("sync round applied")
	return nil
}

func (e *Engine) handleRealtimeUpdate(sess *session, data []byte) error {
	var msg models.RealtimeUpdateMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return err
	}
	wire, err := models.DecodeWireNote(msg.Note)
	if err != nil {
		return err
	}

	note, ok := e.decryptNote(wire)
	if !ok {
		return nil
	}
	if err := e.cache.UpsertNote(sess.ctx, note); err != nil {
		return err
	}

	e.publishIfCurrent(sess, Event{Kind: EventNoteReceived, Note: &note})
	return nil
}

func (e *Engine) handleNewNoteAck(sess *session, data []byte) error {
	var msg models.NewNoteAckMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return err
	}

	e.publishIfCurrent(sess, Event{Kind: EventNoteAcked, AckID: msg.ID, AckSuccess: msg.Success})
	return nil
}

func (e *Engine) handleServerError(sess *session, data []byte) error {
	var msg models.ErrorMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return err
	}

	e.logger.Warn().
		Str("func", "Engine.handleServerError").
		Str("message", msg.Message).
		Msg("remote store reported an error")
	e.publishIfCurrent(sess, Event{Kind: EventServerError, Message: msg.Message})
	return nil
}

// decryptNote turns a wire note into a cache note. Notes without a remote id
// or that fail to decrypt are dropped on their own.
func (e *Engine) decryptNote(wire models.WireNote) (models.Note, bool) {
	log := e.logger.With().Int64("note_id", wire.ID).Logger()

	if wire.ID <= 0 {
		log.Warn().Str("func", "Engine.decryptNote").Msg("dropping note without a remote id")
		return models.Note{}, false
	}

	envelope := strings.TrimSpace(wire.Content)
	plaintext, err := e.cipher.Decrypt(e.credentials.Passcode(), envelope)
	if err != nil {
		log.Warn().Err(err).Str("func", "Engine.decryptNote").Msg("dropping note that failed to decrypt")
		return models.Note{}, false
	}

	createdAt := wire.CreatedAt.Time
	if createdAt.IsZero() {
		createdAt = e.now().UTC()
	}

	return models.Note{
		ID:         wire.ID,
		Content:    plaintext,
		Channel:    models.NormalizeChannel(wire.Channel),
		CreatedAt:  createdAt,
		Ciphertext: &envelope,
	}, true
}
