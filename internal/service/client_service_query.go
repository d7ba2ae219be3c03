// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

type noteQueryService struct {
	cache store.NoteCache

	logger *logger.Logger
}

func NewNoteQueryService(cache store.NoteCache, logger *logger.Logger) NoteQueryService {
	return &noteQueryService{cache: cache, logger: logger}
}

func (s *noteQueryService) Search(ctx context.Context, query string, limit int) ([]models.Note, error) {
	notes, err := s.cache.SearchNotes(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}
	return notes, nil
}

func (s *noteQueryService) Recent(ctx context.Context, days int, limit int) ([]models.Note, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be positive, got %d", ErrInvalidQuery, days)
	}

	notes, err := s.cache.NotesInWindow(ctx, days, limit)
	if err != nil {
		return nil, fmt.Errorf("recent notes: %w", err)
	}
	return notes, nil
}

func (s *noteQueryService) Stats(ctx context.Context) (models.Stats, error) {
	stats, err := s.cache.Stats(ctx)
	if err != nil {
		return models.Stats{}, fmt.Errorf("cache stats: %w", err)
	}
	return stats, nil
}

func (s *noteQueryService) Reset(ctx context.Context, clearNotes bool) error {
	log := logger.FromContextOr(ctx, s.logger)

	if clearNotes {
		if err := s.cache.ClearAll(ctx); err != nil {
			return fmt.Errorf("clear cache: %w", err)
		}
		log.Info().Str("func", "noteQueryService.Reset").Msg("local cache cleared")
		return nil
	}

	if err := s.cache.ResetCursor(ctx); err != nil {
		return fmt.Errorf("reset sync cursor: %w", err)
	}
	log.Info().Str("func", "noteQueryService.Reset").Msg("sync cursor reset")
	return nil
}
