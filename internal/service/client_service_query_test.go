// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

func newTestQuerySvc(t *testing.T, ctrl *gomock.Controller) (NoteQueryService, *mock.MockNoteCache) {
	t.Helper()
	mockCache := mock.NewMockNoteCache(ctrl)
	return NewNoteQueryService(mockCache, logger.Nop()), mockCache
}

func TestNoteQueryService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache := newTestQuerySvc(t, ctrl)
	ctx := context.Background()
	want := []models.Note{{ID: 1, Content: "milk", Channel: "inbox", CreatedAt: time.Now()}}

	mockCache.EXPECT().SearchNotes(ctx, "milk", 20).Return(want, nil)

	got, err := svc.Search(ctx, "milk", 20)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNoteQueryService_Search_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache := newTestQuerySvc(t, ctrl)
	mockCache.EXPECT().SearchNotes(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, store.ErrExecutingQuery)

	_, err := svc.Search(context.Background(), "x", 0)

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestNoteQueryService_Recent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache := newTestQuerySvc(t, ctrl)
	mockCache.EXPECT().NotesInWindow(gomock.Any(), 7, 0).Return([]models.Note{}, nil)

	got, err := svc.Recent(context.Background(), 7, 0)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNoteQueryService_Recent_InvalidDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestQuerySvc(t, ctrl)

	_, err := svc.Recent(context.Background(), 0, 10)

	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestNoteQueryService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache := newTestQuerySvc(t, ctrl)
	want := models.Stats{Count: 3, Cursor: models.SyncCursor{LastSyncID: 9}}
	mockCache.EXPECT().Stats(gomock.Any()).Return(want, nil)

	got, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNoteQueryService_Reset_CursorOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache := newTestQuerySvc(t, ctrl)
	mockCache.EXPECT().ResetCursor(gomock.Any()).Return(nil)

	require.NoError(t, svc.Reset(context.Background(), false))
}

func TestNoteQueryService_Reset_All(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache := newTestQuerySvc(t, ctrl)
	mockCache.EXPECT().ClearAll(gomock.Any()).Return(nil)

	require.NoError(t, svc.Reset(context.Background(), true))
}

func TestNoteQueryService_Reset_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCache := newTestQuerySvc(t, ctrl)
	mockCache.EXPECT().ClearAll(gomock.Any()).Return(errors.New("locked"))

	err := svc.Reset(context.Background(), true)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "clear cache")
}
