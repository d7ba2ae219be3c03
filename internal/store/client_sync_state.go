// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

func (c *noteCache) GetCursor(ctx context.Context) (models.SyncCursor, error) {
	var (
		cursor     models.SyncCursor
		lastSyncAt sql.NullInt64
	)

	err := c.DB.QueryRowContext(ctx, getCursor).Scan(&cursor.LastSyncID, &lastSyncAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncCursor{LastSyncID: models.NoCursor}, nil
	}
	if err != nil {
		logger.FromContextOr(ctx, c.logger).Err(err).Str("func", "noteCache.GetCursor").Msg("failed to read sync cursor")
		return models.SyncCursor{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if lastSyncAt.Valid {
		t := time.UnixMilli(lastSyncAt.Int64).UTC()
		cursor.LastSyncAt = &t
	}
	return cursor, nil
}

func (c *noteCache) SetCursor(ctx context.Context, id int64) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.closed {
		return ErrStoreClosed
	}

	if _, err := c.DB.ExecContext(ctx, setCursor, id, c.now().UnixMilli()); err != nil {
		logger.FromContextOr(ctx, c.logger).Err(err).
			Str("func", "noteCache.SetCursor").
			Int64("last_sync_id", id).
			Msg("failed to advance sync cursor")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (c *noteCache) ResetCursor(ctx context.Context) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.closed {
		return ErrStoreClosed
	}

	if _, err := c.DB.ExecContext(ctx, resetCursor); err != nil {
		logger.FromContextOr(ctx, c.logger).Err(err).Str("func", "noteCache.ResetCursor").Msg("failed to reset sync cursor")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
