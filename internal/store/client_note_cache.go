// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/internal/events"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// Result bounds of SearchNotes and NotesInWindow.
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

type noteCache struct {
	*DB
	logger *logger.Logger

	// writeMu serializes every mutation so that commits and the events that
	// follow them happen in one order.
	writeMu sync.Mutex
	closed  bool

	events *events.Bus[CacheEvent]
	now    func() time.Time
}

// NewNoteCache wraps an opened and migrated [DB] into a [NoteCache].
func NewNoteCache(db *DB, logger *logger.Logger) NoteCache {
	return newNoteCache(db, logger)
}

func newNoteCache(db *DB, log *logger.Logger) *noteCache {
	return &noteCache{
		DB:     db,
		logger: log,
		events: events.NewBus[CacheEvent]("cache", log),
		now:    time.Now,
	}
}

func (c *noteCache) UpsertNote(ctx context.Context, note models.Note) error {
	log := logger.FromContextOr(ctx, c.logger)

	if note.ID <= 0 {
		return ErrNoteWithoutID
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.closed {
		return ErrStoreClosed
	}

	res, err := c.DB.ExecContext(ctx, upsertNote, noteArgs(note)...)
	if err != nil {
		log.Err(err).
			Str("func", "noteCache.UpsertNote").
			Int64("id", note.ID).
			Msg("failed to execute upsert for note")
		return fmt.Errorf("%w: upsert note (id=%d): %w", ErrExecutingStatement, note.ID, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		log.Debug().
			Str("func", "noteCache.UpsertNote").
			Int64("id", note.ID).
			Msg("note already cached unchanged")
		return nil
	}

	c.events.Publish(CacheEvent{Kind: EventNoteInserted, Note: &note})
	return nil
}

func (c *noteCache) UpsertNotes(ctx context.Context, notes []models.Note) error {
	log := logger.FromContextOr(ctx, c.logger)

	if len(notes) == 0 {
		return nil
	}
	for _, n := range notes {
		if n.ID <= 0 {
			return ErrNoteWithoutID
		}
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.closed {
		return ErrStoreClosed
	}

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "noteCache.UpsertNotes").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Err(rbErr).Str("func", "noteCache.UpsertNotes").Msg("failed to rollback transaction")
			}
		}
	}()

	for _, n := range notes {
		if _, err = tx.ExecContext(ctx, upsertNote, noteArgs(n)...); err != nil {
			log.Err(err).
				Str("func", "noteCache.UpsertNotes").
				Int64("id", n.ID).
				Int("batch_size", len(notes)).
				Msg("failed to execute upsert for note in batch")
			return fmt.Errorf("%w: upsert note (id=%d): %w", ErrExecutingStatement, n.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "noteCache.UpsertNotes").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	batch := make([]models.Note, len(notes))
	copy(batch, notes)
	c.events.Publish(CacheEvent{Kind: EventNotesBatchInserted, Notes: batch})

	return nil
}

func (c *noteCache) SearchNotes(ctx context.Context, query string, limit int) ([]models.Note, error) {
	if strings.TrimSpace(query) == "" {
		return []models.Note{}, nil
	}

	return c.selectNotes(ctx, "noteCache.SearchNotes",
		sq.Expr(`content LIKE ? ESCAPE '\'`, "%"+escapeLike(query)+"%"),
		limit,
	)
}

func (c *noteCache) NotesInWindow(ctx context.Context, daysBack int, limit int) ([]models.Note, error) {
	if daysBack <= 0 {
		return nil, ErrInvalidWindow
	}

	since := c.now().AddDate(0, 0, -daysBack)
	return c.selectNotes(ctx, "noteCache.NotesInWindow",
		sq.GtOrEq{"created_at": since.UnixMilli()},
		limit,
	)
}

func (c *noteCache) selectNotes(ctx context.Context, caller string, where sq.Sqlizer, limit int) ([]models.Note, error) {
	log := logger.FromContextOr(ctx, c.logger)

	query, args, err := sq.Select(noteColumns...).
		From(notesTable).
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(clampLimit(limit))).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", caller).Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("failed to execute select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		n, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", caller).Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		notes = append(notes, n)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", caller).Msg("error during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

func (c *noteCache) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := c.DB.QueryRowContext(ctx, countNotes).Scan(&n); err != nil {
		logger.FromContextOr(ctx, c.logger).Err(err).Str("func", "noteCache.Count").Msg("failed to count notes")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return n, nil
}

func (c *noteCache) OldestCreatedAt(ctx context.Context) (*time.Time, error) {
	var oldest sql.NullInt64
	if err := c.DB.QueryRowContext(ctx, oldestNote).Scan(&oldest); err != nil {
		logger.FromContextOr(ctx, c.logger).Err(err).Str("func", "noteCache.OldestCreatedAt").Msg("failed to query oldest note")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if !oldest.Valid {
		return nil, nil
	}

	t := time.UnixMilli(oldest.Int64).UTC()
	return &t, nil
}

func (c *noteCache) Stats(ctx context.Context) (models.Stats, error) {
	count, err := c.Count(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	oldest, err := c.OldestCreatedAt(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	cursor, err := c.GetCursor(ctx)
	if err != nil {
		return models.Stats{}, err
	}

	return models.Stats{Count: count, Oldest: oldest, Cursor: cursor}, nil
}

func (c *noteCache) ClearAll(ctx context.Context) error {
	log := logger.FromContextOr(ctx, c.logger)

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.closed {
		return ErrStoreClosed
	}

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "noteCache.ClearAll").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteAllNotes); err != nil {
		log.Err(err).Str("func", "noteCache.ClearAll").Msg("failed to delete notes")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if _, err = tx.ExecContext(ctx, resetCursor); err != nil {
		log.Err(err).Str("func", "noteCache.ClearAll").Msg("failed to reset cursor")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "noteCache.ClearAll").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	c.events.Publish(CacheEvent{Kind: EventCacheCleared})
	return nil
}

func (c *noteCache) Subscribe(buffer int) (<-chan CacheEvent, func()) {
	return c.events.Subscribe(buffer)
}

func (c *noteCache) Close() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.events.Close()

	return c.DB.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		n          models.Note
		createdAt  int64
		ciphertext sql.NullString
	)
	if err := row.Scan(&n.ID, &n.Content, &n.Channel, &createdAt, &ciphertext); err != nil {
		return models.Note{}, err
	}

	n.CreatedAt = time.UnixMilli(createdAt).UTC()
	if ciphertext.Valid {
		n.Ciphertext = &ciphertext.String
	}
	return n, nil
}

func noteArgs(n models.Note) []any {
	var ciphertext sql.NullString
	if n.Ciphertext != nil {
		ciphertext = sql.NullString{String: *n.Ciphertext, Valid: true}
	}
	return []any{n.ID, n.Content, n.Channel, n.CreatedAt.UnixMilli(), ciphertext}
}

// escapeLike makes query match literally inside a LIKE pattern using '\' as
// the escape character.
func escapeLike(query string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(query)
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}
