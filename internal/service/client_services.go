// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

type ClientServices struct {
	NoteService    NoteService
	QueryService   NoteQueryService
	ImportService  ImportService
	AppInfoService AppInfoService
}

func NewClientServices(
	storages *store.ClientStorages,
	noteAdapter adapter.NoteAdapter,
	cipher crypto.NoteCipher,
	credentials config.Credentials,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*ClientServices, error) {
	appInfoSvc, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	noteSvc := NewNoteService(cipher, noteAdapter, credentials, logger)

	return &ClientServices{
		NoteService:    noteSvc,
		QueryService:   NewNoteQueryService(storages.NoteCache, logger),
		ImportService:  NewImportService(noteSvc, logger),
		AppInfoService: appInfoSvc,
	}, nil
}
