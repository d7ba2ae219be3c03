// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/syncengine"
)

const syncEventBuffer = 64

// SyncWorker keeps the sync engine connected for the lifetime of its context
// and logs what the engine reports.
type SyncWorker struct {
	engine SyncEngine
	logger *logger.Logger
}

func NewSyncWorker(engine SyncEngine, logger *logger.Logger) *SyncWorker {
	return &SyncWorker{engine: engine, logger: logger}
}

func (w *SyncWorker) Run(ctx context.Context) error {
	events, unsubscribe := w.engine.Subscribe(syncEventBuffer)
	defer unsubscribe()

	w.engine.Connect()

	for {
		select {
		case <-ctx.Done():
			w.engine.Shutdown()
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			w.logEvent(ev)
		}
	}
}

func (w *SyncWorker) logEvent(ev syncengine.Event) {
	log := w.logger

	switch ev.Kind {
	case syncengine.EventStateChanged:
		log.Info().Str("state", ev.State.String()).Msg("sync state changed")
	case syncengine.EventSyncCompleted:
		if ev.Err != nil {
			log.Err(ev.Err).Int("notes", ev.NotesSynced).Msg("sync round failed")
			return
		}
		log.Info().Int("notes", ev.NotesSynced).Int64("last_sync_id", ev.LastSyncID).Msg("sync round completed")
	case syncengine.EventNoteReceived:
		if ev.Note != nil {
			log.Info().Int64("note_id", ev.Note.ID).Str("channel", ev.Note.Channel).Msg("note received")
		}
	case syncengine.EventServerError:
		log.Warn().Str("message", ev.Message).Msg("remote store error")
	case syncengine.EventReconnectScheduled:
		log.Info().Int("attempt", ev.Attempt).Dur("delay", ev.Delay).Msg("reconnect scheduled")
	case syncengine.EventReconnectExhausted:
		log.Error().Err(ev.Err).Int("attempts", ev.Attempt).Msg("sync channel gave up, restart to retry")
	}
}
