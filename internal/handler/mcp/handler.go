// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mcp exposes the encrypted write path as a JSON-RPC tool over stdio,
// so that assistants speaking the Model Context Protocol can capture notes.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	stdlog "log"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

const (
	ServerName      = "go-note-keeper"
	ToolCaptureNote = "capture_note"
)

type Handler struct {
	notes  service.NoteService
	server *server.MCPServer

	logger *logger.Logger
	now    func() time.Time
}

func NewHandler(services *service.ClientServices, logger *logger.Logger) *Handler {
	h := &Handler{
		notes:  services.NoteService,
		logger: logger,
		now:    time.Now,
	}

	version := services.AppInfoService.GetAppVersion(context.Background())
	h.server = server.NewMCPServer(ServerName, version, server.WithToolCapabilities(true))
	h.server.AddTool(mcp.NewTool(ToolCaptureNote,
		mcp.WithDescription("Encrypt a note on this device and send it to the user's note store."),
		mcp.WithString("content",
			mcp.Description("The note text"),
			mcp.Required(),
		),
		mcp.WithString("channel",
			mcp.Description("Channel tag, \"inbox\" when omitted"),
		),
	), h.captureNote)

	logger.Info().Msg("tool adapter handler created")
	return h
}

// Serve speaks JSON-RPC over in and out until ctx is cancelled or in is
// exhausted.
func (h *Handler) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(h.server)
	stdio.SetErrorLogger(stdlog.New(h.logger, "", 0))

	h.logger.Info().Str("func", "*Handler.Serve").Msg("tool adapter listening on stdio")
	return stdio.Listen(ctx, in, out)
}

// HandleMessage processes a single JSON-RPC message.
func (h *Handler) HandleMessage(ctx context.Context, message json.RawMessage) mcp.JSONRPCMessage {
	return h.server.HandleMessage(ctx, message)
}

func (h *Handler) captureNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res := h.notes.Submit(ctx, content, req.GetString("channel", ""), h.now())
	if !res.Success {
		h.logger.Warn().
			Str("func", "*Handler.captureNote").
			Str("reason", string(res.Reason)).
			Msg(res.Message)
		return mcp.NewToolResultError(res.Message), nil
	}

	if res.AssignedID != nil {
		return mcp.NewToolResultText(fmt.Sprintf("%s (id %d)", res.Message, *res.AssignedID)), nil
	}
	return mcp.NewToolResultText(res.Message), nil
}
