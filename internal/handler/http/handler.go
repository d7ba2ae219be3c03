// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

// maxBodyBytes bounds a capture request body.
const maxBodyBytes = 1 << 20

type Handler struct {
	notes   service.NoteService
	queries service.NoteQueryService
	appInfo service.AppInfoService

	logger *logger.Logger
	now    func() time.Time
}

func NewHandler(services *service.ClientServices, logger *logger.Logger) *Handler {
	logger.Info().Msg("forwarding shim handler created")
	return &Handler{
		notes:   services.NoteService,
		queries: services.QueryService,
		appInfo: services.AppInfoService,
		logger:  logger,
		now:     time.Now,
	}
}
