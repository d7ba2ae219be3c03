// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-note-keeper/internal/handler/http"
	"github.com/MKhiriev/go-note-keeper/internal/handler/mcp"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

// Handlers are the local entry points that feed the write path: the HTTP
// forwarding shim and the stdio tool adapter.
type Handlers struct {
	HTTP *http.Handler
	MCP  *mcp.Handler
}

func NewHandlers(services *service.ClientServices, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
		MCP:  mcp.NewHandler(services, logger),
	}
}
